package controllers

import (
	"errors"
	"fmt"

	"classroom/backend/config"
	"classroom/backend/storage"
	"classroom/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type SubmissionsController struct {
	Store *storage.Store
	Cfg   *config.Config
}

func NewSubmissionsController(store *storage.Store, cfg *config.Config) *SubmissionsController {
	return &SubmissionsController{Store: store, Cfg: cfg}
}

// Upload godoc
// @Summary Upload a lesson submission
// @Description Saves the uploaded scene file under the student's directory and records the submission
// @Tags submissions
// @Accept multipart/form-data
// @Param id path int true "Lesson ID"
// @Param file formData file true "Scene file"
// @Success 302
// @Failure 400 {string} string "validation message"
// @Router /upload/{id} [post]
func (sc *SubmissionsController) Upload(c *fiber.Ctx) error {
	studentName := utils.StudentNameFromSession(c, sc.Cfg)
	if studentName == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Please enter your name first")
	}

	lessonID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid lesson id")
	}

	// A missing file part is a validation error, not a transport error
	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	if _, err := sc.Store.SaveSubmission(file, uint(lessonID), studentName); err != nil {
		var vErr *storage.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).SendString(vErr.Message)
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Could not save submission")
	}

	return c.Redirect(fmt.Sprintf("/lesson/%d", lessonID), fiber.StatusFound)
}
