package routes

import (
	"classroom/backend/config"
	"classroom/backend/controllers"
	"classroom/backend/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Course routes
	coursesController := controllers.NewCoursesController(db, cfg)
	app.Get("/", coursesController.ListCourses)
	app.Get("/course/:id", coursesController.GetCourse)

	// Lesson routes
	lessonsController := controllers.NewLessonsController(db, cfg)
	app.Get("/lesson/:id", lessonsController.GetLesson)

	// Student identity
	studentsController := controllers.NewStudentsController(cfg)
	app.Post("/set-student-name", studentsController.SetStudentName)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Post("/mark-complete/:id", progressController.MarkComplete)

	// Submission routes
	store := storage.NewStore(db, cfg.UploadDir, cfg.AllowedExts)
	submissionsController := controllers.NewSubmissionsController(store, cfg)
	app.Post("/upload/:id", submissionsController.Upload)
}
