package controllers

import (
	"time"

	"classroom/backend/config"
	"classroom/backend/models"
	"classroom/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// MarkComplete godoc
// @Summary Mark a lesson as complete
// @Description Upserts the student's completion record for the lesson
// @Tags progress
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /mark-complete/{id} [post]
func (pc *ProgressController) MarkComplete(c *fiber.Ctx) error {
	studentName := utils.StudentNameFromSession(c, pc.Cfg)
	if studentName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter your name first",
		})
	}

	lessonID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lesson id",
		})
	}

	now := time.Now()
	progress := models.StudentProgress{
		StudentName: studentName,
		LessonID:    uint(lessonID),
		Completed:   true,
		CompletedAt: &now,
	}

	// Atomic insert-or-update on the (student_name, lesson_id) unique index,
	// so concurrent calls converge to a single row
	err = pc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_name"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at"}),
	}).Create(&progress).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
