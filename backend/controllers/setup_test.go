package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"classroom/backend/config"
	"classroom/backend/routes"
	"classroom/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	app     *fiber.App
	db      *gorm.DB
	cfg     *config.Config
	tempDir string
)

func TestMain(m *testing.M) {
	// Setup
	setup()
	// Run tests
	code := m.Run()
	// Cleanup
	teardown()
	os.Exit(code)
}

func setup() {
	var err error
	tempDir, err = os.MkdirTemp("", "classroom-test")
	if err != nil {
		panic(err)
	}

	cfg = &config.Config{
		SessionSecret: "testsecret",
		DBPath:        filepath.Join(tempDir, "test.db"),
		UploadDir:     filepath.Join(tempDir, "uploads"),
		MaxUploadMB:   100,
		AllowedExts:   []string{".blend"},
		ServerPort:    "8080",
	}

	app, db, err = newApp(cfg)
	if err != nil {
		panic(err)
	}
}

func teardown() {
	os.RemoveAll(tempDir)
}

// newApp wires the app the same way main does.
func newApp(cfg *config.Config) (*fiber.App, *gorm.DB, error) {
	db, err := utils.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadBytes(),
	})
	routes.SetupRoutes(app, db, cfg)

	return app, db, nil
}

// sessionCookie registers the student name through the real endpoint and
// returns the signed session cookie.
func sessionCookie(t *testing.T, studentName string) *http.Cookie {
	t.Helper()

	form := url.Values{"student_name": {studentName}}
	req := httptest.NewRequest("POST", "/set-student-name", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("set-student-name request failed: %v", err)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == utils.SessionCookie {
			return cookie
		}
	}

	t.Fatal("no session cookie set")
	return nil
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("could not decode response body: %v", err)
	}
	return result
}
