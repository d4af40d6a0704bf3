package vagas

import (
	"strings"

	"github.com/trabalha-floriano/portal-backend/internal/models"
)

// Filtrar keeps the vagas whose combined title+area+empresa+description text
// contains the query, case-insensitively. An empty or whitespace-only query
// returns the input unchanged. Purely local: never touches the network.
func Filtrar(vagas []models.Vaga, termo string) []models.Vaga {
	if strings.TrimSpace(termo) == "" {
		return vagas
	}
	needle := strings.ToLower(termo)

	out := make([]models.Vaga, 0, len(vagas))
	for _, v := range vagas {
		fullText := strings.ToLower(v.Title + " " + v.Area + " " + v.Empresa + " " + v.Description)
		if strings.Contains(fullText, needle) {
			out = append(out, v)
		}
	}
	return out
}
