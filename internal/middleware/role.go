package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/trabalha-floriano/portal-backend/internal/models"
)

// RequireRoles gates a route to sessions carrying one of the allowed roles.
// The session is simulated (see package session), so this is an affordance
// gate, not a security boundary. It cannot gate the admin panel routes: the
// admin role is transient and never yields a session, so those routes stay
// open like the original's.
func RequireRoles(allowed ...models.Role) fiber.Handler {
	allowedSet := map[models.Role]bool{}
	for _, r := range allowed {
		allowedSet[models.Role(strings.ToLower(string(r)))] = true
	}

	return func(c *fiber.Ctx) error {
		s := Sessao(c)
		if !s.LoggedIn {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Faça login para continuar.",
			})
		}
		if !allowedSet[s.Role] {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Seu perfil não tem acesso a esta ação.",
			})
		}
		return c.Next()
	}
}
