package usuarios_test

import (
	"testing"

	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/usuarios"
)

// ── AvailableActions ───────────────────────────────────────────────────────

func TestAvailableActions(t *testing.T) {
	cases := []struct {
		name string
		u    models.Usuario
		want []usuarios.Action
	}{
		{
			name: "colaborador ativo",
			u:    models.Usuario{Role: models.RoleColaborador, Ativo: true},
			want: []usuarios.Action{usuarios.ActionEditar, usuarios.ActionDesativar, usuarios.ActionExcluir},
		},
		{
			name: "colaborador inativo",
			u:    models.Usuario{Role: models.RoleColaborador, Ativo: false},
			want: []usuarios.Action{usuarios.ActionEditar, usuarios.ActionAtivar, usuarios.ActionExcluir},
		},
		{
			name: "contratante ativo",
			u:    models.Usuario{Role: models.RoleContratante, Ativo: true},
			want: []usuarios.Action{usuarios.ActionEditar, usuarios.ActionDesativar, usuarios.ActionExcluir},
		},
		{
			name: "admin ativo sem excluir",
			u:    models.Usuario{Role: models.RoleAdmin, Ativo: true},
			want: []usuarios.Action{usuarios.ActionEditar, usuarios.ActionDesativar},
		},
		{
			name: "admin inativo sem excluir",
			u:    models.Usuario{Role: models.RoleAdmin, Ativo: false},
			want: []usuarios.Action{usuarios.ActionEditar, usuarios.ActionAtivar},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := usuarios.AvailableActions(tc.u)
			if len(got) != len(tc.want) {
				t.Fatalf("actions = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("actions = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestAvailableActions_AtivarDesativarExclusive(t *testing.T) {
	for _, ativo := range []bool{true, false} {
		got := usuarios.AvailableActions(models.Usuario{Role: models.RoleColaborador, Ativo: ativo})
		var temAtivar, temDesativar bool
		for _, a := range got {
			temAtivar = temAtivar || a == usuarios.ActionAtivar
			temDesativar = temDesativar || a == usuarios.ActionDesativar
		}
		if temAtivar == temDesativar {
			t.Errorf("ativo=%v: exactly one of ativar/desativar must appear, got %v", ativo, got)
		}
	}
}

func TestCanExcluir(t *testing.T) {
	if usuarios.CanExcluir(models.Usuario{Role: models.RoleAdmin}) {
		t.Error("admin users must never be deletable")
	}
	if !usuarios.CanExcluir(models.Usuario{Role: models.RoleColaborador}) {
		t.Error("colaborador must be deletable")
	}
	if !usuarios.CanExcluir(models.Usuario{Role: models.RoleContratante}) {
		t.Error("contratante must be deletable")
	}
}
