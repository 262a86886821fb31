package controllers

import (
	"strings"

	"classroom/backend/config"
	"classroom/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StudentsController struct {
	Cfg *config.Config
}

func NewStudentsController(cfg *config.Config) *StudentsController {
	return &StudentsController{Cfg: cfg}
}

// SetStudentName godoc
// @Summary Set the student name
// @Description Stores the trimmed student name in the session cookie and redirects back
// @Tags students
// @Accept x-www-form-urlencoded
// @Param student_name formData string true "Student name"
// @Success 302
// @Router /set-student-name [post]
func (sc *StudentsController) SetStudentName(c *fiber.Ctx) error {
	studentName := strings.TrimSpace(c.FormValue("student_name"))
	if studentName != "" {
		if err := utils.SetStudentSession(c, studentName, sc.Cfg); err != nil {
			return utils.InternalServerError(c, "Could not create session")
		}
	}

	referer := c.Get("Referer")
	if referer == "" {
		referer = "/"
	}
	return c.Redirect(referer, fiber.StatusFound)
}
