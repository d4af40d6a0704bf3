package vagas_test

import (
	"reflect"
	"testing"

	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/vagas"
)

func boardFixture() []models.Vaga {
	return []models.Vaga{
		{ID: 1, Title: "Desenvolvedor Front-end", Area: "Tecnologia", Empresa: "Tech Solutions", Description: "Experiência com react e css"},
		{ID: 2, Title: "Auxiliar Administrativo", Area: "Administrativo", Empresa: "Comercial Floriano", Description: "Rotinas de escritório"},
		{ID: 3, Title: "Pintor", Area: "Serviços", Empresa: "Reformas JP", Description: "Pintura residencial", IsBico: true},
	}
}

// ── Filtrar ────────────────────────────────────────────────────────────────

func TestFiltrar_EmptyQueryReturnsUnchanged(t *testing.T) {
	lista := boardFixture()
	got := vagas.Filtrar(lista, "")
	if !reflect.DeepEqual(got, lista) {
		t.Error("Filtrar with empty query should return the input unchanged")
	}
}

func TestFiltrar_WhitespaceQueryReturnsUnchanged(t *testing.T) {
	lista := boardFixture()
	got := vagas.Filtrar(lista, "   ")
	if !reflect.DeepEqual(got, lista) {
		t.Error("Filtrar with whitespace-only query should return the input unchanged")
	}
}

func TestFiltrar_CaseInsensitiveSubstring(t *testing.T) {
	got := vagas.Filtrar(boardFixture(), "REACT")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("Filtrar(\"REACT\") = %v, want only the vaga whose description mentions react", got)
	}
}

func TestFiltrar_MatchesAllConcatenatedFields(t *testing.T) {
	cases := []struct {
		campo  string
		termo  string
		wantID uint
	}{
		{"title", "pintor", 3},
		{"area", "administrativo", 2},
		{"empresa", "tech solutions", 1},
		{"description", "escritório", 2},
	}
	for _, c := range cases {
		got := vagas.Filtrar(boardFixture(), c.termo)
		if len(got) != 1 || got[0].ID != c.wantID {
			t.Errorf("Filtrar(%q) should match by %s: got %v, want single vaga id=%d", c.termo, c.campo, got, c.wantID)
		}
	}
}

func TestFiltrar_NoMatchYieldsEmpty(t *testing.T) {
	got := vagas.Filtrar(boardFixture(), "soldador")
	if len(got) != 0 {
		t.Errorf("Filtrar with unmatched query should be empty, got %v", got)
	}
}
