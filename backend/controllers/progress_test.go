package controllers_test

import (
	"net/http/httptest"
	"testing"

	"classroom/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMarkCompleteRequiresName(t *testing.T) {
	req := httptest.NewRequest("POST", "/mark-complete/1", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "Please enter your name first", result["error"])
}

func TestMarkCompleteAndView(t *testing.T) {
	adaCookie := sessionCookie(t, "Ada")

	req := httptest.NewRequest("POST", "/mark-complete/1", nil)
	req.AddCookie(adaCookie)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])

	// Ada's lesson view shows the completion
	view := httptest.NewRequest("GET", "/lesson/1", nil)
	view.AddCookie(adaCookie)
	viewResp, err := app.Test(view)
	assert.NoError(t, err)
	assert.Equal(t, true, decodeBody(t, viewResp)["completed"])

	// Ada's course view carries it in the completion map
	course := httptest.NewRequest("GET", "/course/1", nil)
	course.AddCookie(adaCookie)
	courseResp, err := app.Test(course)
	assert.NoError(t, err)
	progress := decodeBody(t, courseResp)["progress"].(map[string]interface{})
	assert.Equal(t, true, progress["1"])

	// Another student on the same lesson is unaffected
	bobCookie := sessionCookie(t, "Bob")
	other := httptest.NewRequest("GET", "/lesson/1", nil)
	other.AddCookie(bobCookie)
	otherResp, err := app.Test(other)
	assert.NoError(t, err)
	assert.Equal(t, false, decodeBody(t, otherResp)["completed"])
}

func TestMarkCompleteTwiceKeepsOneRow(t *testing.T) {
	cookie := sessionCookie(t, "Margaret")

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/mark-complete/3", nil)
		req.AddCookie(cookie)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var count int64
	db.Model(&models.StudentProgress{}).
		Where("student_name = ? AND lesson_id = ?", "Margaret", 3).
		Count(&count)
	assert.Equal(t, int64(1), count)

	var progress models.StudentProgress
	err := db.Where("student_name = ? AND lesson_id = ?", "Margaret", 3).
		First(&progress).Error
	assert.NoError(t, err)
	assert.True(t, progress.Completed)
	assert.NotNil(t, progress.CompletedAt)
}
