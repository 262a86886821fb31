package controllers

import (
	"errors"

	"classroom/backend/config"
	"classroom/backend/models"
	"classroom/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

// ListCourses godoc
// @Summary List all courses
// @Description Returns all courses, newest first
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := cc.DB.Order("created_at DESC").Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}

	return c.JSON(fiber.Map{
		"courses":      courses,
		"student_name": utils.StudentNameFromSession(c, cc.Cfg),
	})
}

// GetCourse godoc
// @Summary Get course details
// @Description Returns a course, its lessons in display order and the current student's completion map
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /course/{id} [get]
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var lessons []models.Lesson
	if err := cc.DB.Where("course_id = ?", course.ID).Order("order_num").Find(&lessons).Error; err != nil {
		return utils.InternalServerError(c, "Could not query lessons")
	}

	// Completion map only exists once the student has set a name
	studentName := utils.StudentNameFromSession(c, cc.Cfg)
	progress := map[uint]bool{}
	if studentName != "" && len(lessons) > 0 {
		var rows []models.StudentProgress
		if err := cc.DB.Where("student_name = ? AND lesson_id IN ?", studentName, lessonIDs(lessons)).
			Find(&rows).Error; err != nil {
			return utils.InternalServerError(c, "Could not query progress")
		}
		for _, row := range rows {
			progress[row.LessonID] = row.Completed
		}
	}

	return c.JSON(fiber.Map{
		"course":       course,
		"lessons":      lessons,
		"progress":     progress,
		"student_name": studentName,
	})
}

func lessonIDs(lessons []models.Lesson) []uint {
	ids := make([]uint, 0, len(lessons))
	for _, lesson := range lessons {
		ids = append(ids, lesson.ID)
	}
	return ids
}
