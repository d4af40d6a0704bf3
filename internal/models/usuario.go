package models

type Role string

const (
	RoleColaborador Role = "colaborador"
	RoleContratante Role = "contratante"
	RoleAdmin       Role = "admin"
)

// Usuario is a user as stored in the `usuarios` collection.
type Usuario struct {
	ID           uint   `json:"id,omitempty"`
	Email        string `json:"email"`
	Nome         string `json:"nome,omitempty"`
	Role         Role   `json:"role"`
	Ativo        bool   `json:"ativo"`
	DataCadastro string `json:"dataCadastro,omitempty"`
	DataCriacao  string `json:"dataCriacao,omitempty"` // fallback usado pelo dashboard
}

// DisplayName falls back to the local part of the email when nome is empty,
// the same way the admin panel always rendered it.
func (u Usuario) DisplayName() string {
	if u.Nome != "" {
		return u.Nome
	}
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}
