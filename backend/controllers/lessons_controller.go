package controllers

import (
	"errors"

	"classroom/backend/config"
	"classroom/backend/models"
	"classroom/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LessonsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLessonsController(db *gorm.DB, cfg *config.Config) *LessonsController {
	return &LessonsController{DB: db, Cfg: cfg}
}

// GetLesson godoc
// @Summary Get lesson details
// @Description Returns a lesson with its course, the current student's completion flag and latest submission
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /lesson/{id} [get]
func (lc *LessonsController) GetLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson id")
	}

	var lesson models.Lesson
	if err := lc.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Lesson not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var course models.Course
	if err := lc.DB.First(&course, lesson.CourseID).Error; err != nil {
		return utils.InternalServerError(c, "Could not query course")
	}

	studentName := utils.StudentNameFromSession(c, lc.Cfg)
	completed := false
	var latest *models.Submission

	if studentName != "" {
		var progress models.StudentProgress
		err := lc.DB.Where("student_name = ? AND lesson_id = ?", studentName, lesson.ID).
			First(&progress).Error
		if err == nil {
			completed = progress.Completed
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query progress")
		}

		// Concurrent uploads in the same second resolve by id
		var submission models.Submission
		err = lc.DB.Where("student_name = ? AND lesson_id = ?", studentName, lesson.ID).
			Order("submitted_at DESC, id DESC").
			First(&submission).Error
		if err == nil {
			latest = &submission
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query submissions")
		}
	}

	return c.JSON(fiber.Map{
		"lesson":       lesson,
		"course":       course,
		"completed":    completed,
		"submission":   latest,
		"student_name": studentName,
	})
}
