package models

import "time"

// Submission records one uploaded deliverable file. Multiple submissions
// per (student, lesson) are kept; the latest one is shown on the lesson page.
type Submission struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentName string    `json:"student_name" gorm:"index;not null"`
	LessonID    uint      `json:"lesson_id" gorm:"index;not null"`
	Filename    string    `json:"filename"`
	Filepath    string    `json:"filepath"`
	SubmittedAt time.Time `json:"submitted_at"`
}
