package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trabalha-floriano/portal-backend/internal/session"
)

const sessionLocal = "sessao"

// AttachSession resolves the simulated session from the `logged` query
// parameter and stores it in request locals. adminPanelPath is where the
// transient admin role is redirected to.
func AttachSession(adminPanelPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, redirectAdmin := session.FromRoleParam(c.Query(session.Param))
		if redirectAdmin {
			return c.Redirect(adminPanelPath, fiber.StatusFound)
		}
		c.Locals(sessionLocal, s)
		return c.Next()
	}
}

// Sessao reads the session attached by AttachSession; anonymous when absent.
func Sessao(c *fiber.Ctx) session.Session {
	if s, ok := c.Locals(sessionLocal).(session.Session); ok {
		return s
	}
	return session.Anonymous()
}
