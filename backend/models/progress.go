package models

import "time"

// StudentProgress is the per-student completion record for one lesson.
// One row per (student_name, lesson_id); repeat completions update it.
type StudentProgress struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	StudentName string     `json:"student_name" gorm:"uniqueIndex:idx_student_lesson;not null"`
	LessonID    uint       `json:"lesson_id" gorm:"uniqueIndex:idx_student_lesson;not null"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
