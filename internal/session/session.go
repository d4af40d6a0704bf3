// Package session implements the simulated login hand-off. This is NOT real
// authentication: the role arrives as a one-shot URL query parameter, there is
// no token, no persistence and no verification. Reproduced as documented —
// hardening it is explicitly out of scope. Known weak point.
package session

import (
	"strings"

	"github.com/trabalha-floriano/portal-backend/internal/models"
)

// Param is the query parameter carrying the role hand-off.
const Param = "logged"

// Session is the per-request view of the simulated login. It is a plain value
// passed to render paths; there is no module-level mutable state.
type Session struct {
	LoggedIn bool        `json:"loggedIn"`
	Role     models.Role `json:"role,omitempty"`
}

// Anonymous is the default state.
func Anonymous() Session { return Session{} }

// FromRoleParam consumes the raw `logged` value. redirectAdmin is true for the
// admin role: admins never get a board session, they are sent to the panel.
// Unknown roles stay anonymous.
func FromRoleParam(raw string) (s Session, redirectAdmin bool) {
	switch models.Role(strings.ToLower(strings.TrimSpace(raw))) {
	case models.RoleAdmin:
		return Anonymous(), true
	case models.RoleColaborador:
		return Session{LoggedIn: true, Role: models.RoleColaborador}, false
	case models.RoleContratante:
		return Session{LoggedIn: true, Role: models.RoleContratante}, false
	}
	return Anonymous(), false
}

// Logout resets to anonymous and names the navigation target, mirroring the
// original full-page reset.
func Logout() (s Session, redirectTo string) {
	return Anonymous(), "/"
}
