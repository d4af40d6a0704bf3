package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trabalha-floriano/portal-backend/internal/dashboard"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	Dashboard *dashboard.Service
	Logger    *zap.Logger
}

func NewDashboardHandler(d *dashboard.Service, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Dashboard: d, Logger: logger}
}

// GetStats returns the full dashboard view-model. Unlike the public mural,
// the admin side surfaces store failures instead of degrading to zeros.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.Dashboard.Load(c.UserContext())
	if err != nil {
		return storeFail(c, "Não foi possível conectar ao servidor de dados. Tente novamente.")
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// Relatorio is the totals snapshot (the panel's "Relatório" quick action).
func (h *DashboardHandler) Relatorio(c *fiber.Ctx) error {
	stats, err := h.Dashboard.Load(c.UserContext())
	if err != nil {
		return storeFail(c, "Não foi possível conectar ao servidor de dados. Tente novamente.")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"vagas": fiber.Map{
				"total":     stats.TotalVagas,
				"pendentes": stats.VagasPendentes,
				"aprovadas": stats.VagasAprovadas,
			},
			"usuarios": fiber.Map{
				"ativos":        stats.UsuariosAtivos,
				"contratantes":  stats.Contratantes,
				"colaboradores": stats.Colaboradores,
			},
		},
	})
}
