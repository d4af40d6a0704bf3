package usuarios

import "github.com/trabalha-floriano/portal-backend/internal/models"

// Action is one row-level affordance of the admin users table.
type Action string

const (
	ActionEditar    Action = "editar"
	ActionAtivar    Action = "ativar"
	ActionDesativar Action = "desativar"
	ActionExcluir   Action = "excluir"
)

// AvailableActions lists the actions the admin panel offers for a given user.
// Exactly one of ativar/desativar appears, following the ativo flag. Excluir
// is never offered for admin-role users — a panel policy, not a storage rule.
func AvailableActions(u models.Usuario) []Action {
	actions := []Action{ActionEditar}
	if u.Ativo {
		actions = append(actions, ActionDesativar)
	} else {
		actions = append(actions, ActionAtivar)
	}
	if u.Role != models.RoleAdmin {
		actions = append(actions, ActionExcluir)
	}
	return actions
}

// CanExcluir is the delete-policy check on its own.
func CanExcluir(u models.Usuario) bool {
	return u.Role != models.RoleAdmin
}
