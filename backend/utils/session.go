package utils

import (
	"time"

	"classroom/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const SessionCookie = "classroom_session"

// SetStudentSession stores the student name in a signed session cookie.
func SetStudentSession(c *fiber.Ctx, studentName string, cfg *config.Config) error {
	claims := jwt.MapClaims{
		"student_name": studentName,
		"exp":          time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.SessionSecret))
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    signed,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return nil
}

// StudentNameFromSession returns the student name carried by the session
// cookie, or an empty string when there is no valid session.
func StudentNameFromSession(c *fiber.Ctx, cfg *config.Config) string {
	cookie := c.Cookies(SessionCookie)
	if cookie == "" {
		return ""
	}

	token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	name, _ := claims["student_name"].(string)
	return name
}
