package utils

import (
	"classroom/backend/config"
	"classroom/backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Course{},
		&models.Lesson{},
		&models.StudentProgress{},
		&models.Submission{},
	); err != nil {
		return nil, err
	}

	if err := SeedCourses(db); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedCourses inserts the sample course with its lessons. It only runs when
// the courses table is empty, so calling it on every startup is safe and an
// empty unrelated table never triggers a re-seed.
func SeedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	course := models.Course{
		Name:        "Computer Animation",
		Description: "Learn the fundamentals of 3D animation using Blender",
	}
	if err := db.Create(&course).Error; err != nil {
		return err
	}

	lessons := []models.Lesson{
		{
			CourseID:    course.ID,
			Title:       "Introduction to Blender",
			Description: "Learn the Blender interface and basic navigation",
			VideoURL:    "https://www.youtube.com/embed/jnj2BL4chaQ",
			OrderNum:    1,
		},
		{
			CourseID:    course.ID,
			Title:       "Basic Modeling",
			Description: "Create your first 3D models using basic shapes",
			VideoURL:    "https://www.youtube.com/embed/imdYIdv8F4w",
			OrderNum:    2,
		},
		{
			CourseID:    course.ID,
			Title:       "Materials and Textures",
			Description: "Add colors and textures to your 3D models",
			VideoURL:    "https://www.youtube.com/embed/OYsZmH1Fa3k",
			OrderNum:    3,
		},
		{
			CourseID:    course.ID,
			Title:       "Introduction to Animation",
			Description: "Learn keyframe animation basics",
			VideoURL:    "https://www.youtube.com/embed/1d8PjiPu4kM",
			OrderNum:    4,
		},
	}

	return db.Create(&lessons).Error
}
