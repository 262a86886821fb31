package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"classroom/backend/models"

	"gorm.io/gorm"
)

// ValidationError marks upload rejections the client can fix and resubmit.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Store persists uploaded lesson files under a per-student directory and
// records a Submission row for each saved file.
type Store struct {
	DB          *gorm.DB
	UploadDir   string
	AllowedExts []string
}

func NewStore(db *gorm.DB, uploadDir string, allowedExts []string) *Store {
	return &Store{DB: db, UploadDir: uploadDir, AllowedExts: allowedExts}
}

// SaveSubmission validates the uploaded file, writes it under the student's
// directory and records a Submission row. The row is only inserted after a
// successful write, so a failed write never leaves a dangling record.
func (s *Store) SaveSubmission(file *multipart.FileHeader, lessonID uint, studentName string) (*models.Submission, error) {
	if file == nil {
		return nil, &ValidationError{Message: "No file provided"}
	}
	if file.Filename == "" {
		return nil, &ValidationError{Message: "No file selected"}
	}
	if !s.extensionAllowed(file.Filename) {
		return nil, &ValidationError{
			Message: fmt.Sprintf("Only %s files are allowed", strings.Join(s.AllowedExts, ", ")),
		}
	}

	// The student name doubles as a directory name, so it gets the same
	// sanitization as the filename
	studentDir := filepath.Join(s.UploadDir, SanitizeName(strings.ReplaceAll(studentName, " ", "_")))
	if err := os.MkdirAll(studentDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create student directory: %w", err)
	}

	filename := SanitizeName(file.Filename)
	timestamp := time.Now().Format("20060102_150405")
	destPath := filepath.Join(studentDir, fmt.Sprintf("lesson_%d_%s_%s", lessonID, timestamp, filename))

	if err := writeFile(file, destPath); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	submission := models.Submission{
		StudentName: studentName,
		LessonID:    lessonID,
		Filename:    filename,
		Filepath:    destPath,
		SubmittedAt: time.Now(),
	}
	if err := s.DB.Create(&submission).Error; err != nil {
		return nil, err
	}

	return &submission, nil
}

func (s *Store) extensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range s.AllowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

func writeFile(file *multipart.FileHeader, destPath string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

// SanitizeName strips path separators and characters unsafe in filenames
// from a browser-supplied name.
func SanitizeName(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	return strings.Trim(b.String(), "._")
}
