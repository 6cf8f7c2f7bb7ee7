package middleware

import (
	"github.com/fadilmartias/casting-intake/internal/model"
	"github.com/fadilmartias/casting-intake/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

const sessionLocalKey = "intake_session"

// Session attaches the caller's intake session to the request, creating a
// seeded one when the cookie is missing or stale.
func Session(uc *usecase.IntakeUsecase, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, created := uc.Session(c.Cookies(cookieName))
		if created {
			SetSessionCookie(c, cookieName, s)
		}
		c.Locals(sessionLocalKey, s)
		return c.Next()
	}
}

// SetSessionCookie binds s to the client. The cookie has no expiry so it
// ends with the browser session.
func SetSessionCookie(c *fiber.Ctx, cookieName string, s *model.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    s.ID.String(),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(sessionLocalKey, s)
}

func CurrentSession(c *fiber.Ctx) *model.Session {
	s, _ := c.Locals(sessionLocalKey).(*model.Session)
	return s
}
