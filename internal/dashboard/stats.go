// Package dashboard derives the admin overview from the full vagas and
// usuarios lists. Pure data-shaping: fetching and rendering live elsewhere.
package dashboard

import (
	"sort"
	"time"

	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/vagas"
)

const recentesLimit = 5

// Stats is the dashboard view-model.
type Stats struct {
	TotalVagas       int              `json:"totalVagas"`
	VagasPendentes   int              `json:"vagasPendentes"`
	VagasAprovadas   int              `json:"vagasAprovadas"`
	Contratantes     int              `json:"totalContratantes"`
	Colaboradores    int              `json:"totalColaboradores"`
	UsuariosAtivos   int              `json:"usuariosAtivos"`
	PercentAprovadas float64          `json:"percentAprovadas"`
	PercentPendentes float64          `json:"percentPendentes"`
	VagasRecentes    []models.Vaga    `json:"vagasRecentes"`
	UsuariosRecentes []models.Usuario `json:"usuariosRecentes"`
}

// Compute derives every dashboard figure from the two full lists.
func Compute(vs []models.Vaga, us []models.Usuario) Stats {
	st := Stats{TotalVagas: len(vs)}

	for _, v := range vs {
		switch v.Status {
		case string(vagas.StatusPendente):
			st.VagasPendentes++
		case string(vagas.StatusAprovada):
			st.VagasAprovadas++
		}
	}
	for _, u := range us {
		if !u.Ativo {
			continue
		}
		st.UsuariosAtivos++
		switch u.Role {
		case models.RoleContratante:
			st.Contratantes++
		case models.RoleColaborador:
			st.Colaboradores++
		}
	}

	st.PercentAprovadas = Percent(st.VagasAprovadas, st.TotalVagas)
	st.PercentPendentes = Percent(st.VagasPendentes, st.TotalVagas)
	st.VagasRecentes = VagasRecentes(vs)
	st.UsuariosRecentes = UsuariosRecentes(us)
	return st
}

// Percent is count/total*100, defined as 0 for an empty total so the rendered
// bars never see NaN or Inf.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// VagasRecentes returns up to 5 vagas by descending date, falling back to
// dataCriacao when date is absent. Ties keep store iteration order (stable
// sort), which is non-deterministic across stores — documented, not fixed.
func VagasRecentes(vs []models.Vaga) []models.Vaga {
	sorted := make([]models.Vaga, len(vs))
	copy(sorted, vs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDate(sorted[i].Date, sorted[i].DataCriacao).
			After(parseDate(sorted[j].Date, sorted[j].DataCriacao))
	})
	if len(sorted) > recentesLimit {
		sorted = sorted[:recentesLimit]
	}
	return sorted
}

// UsuariosRecentes returns up to 5 usuarios by descending dataCadastro,
// falling back to dataCriacao. Same tie semantics as VagasRecentes.
func UsuariosRecentes(us []models.Usuario) []models.Usuario {
	sorted := make([]models.Usuario, len(us))
	copy(sorted, us)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDate(sorted[i].DataCadastro, sorted[i].DataCriacao).
			After(parseDate(sorted[j].DataCadastro, sorted[j].DataCriacao))
	})
	if len(sorted) > recentesLimit {
		sorted = sorted[:recentesLimit]
	}
	return sorted
}

// Date labels in the store are free text: ISO dates from the admin panel,
// dd/mm/yyyy from the board form. Anything unparseable sorts as the zero time
// (oldest), mirroring the original's Invalid Date behavior.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

func parseDate(primary, fallback string) time.Time {
	for _, s := range []string{primary, fallback} {
		if s == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
