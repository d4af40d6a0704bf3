package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/realtime"
	"github.com/trabalha-floriano/portal-backend/internal/store"
	"github.com/trabalha-floriano/portal-backend/internal/vagas"
)

// AdminVagasHandler manages the vagas table of the admin panel.
type AdminVagasHandler struct {
	Vagas    *vagas.Service
	Notifier *realtime.Notifier
	Logger   *zap.Logger
}

func NewAdminVagasHandler(v *vagas.Service, n *realtime.Notifier, logger *zap.Logger) *AdminVagasHandler {
	return &AdminVagasHandler{Vagas: v, Notifier: n, Logger: logger}
}

// List returns every vaga, pendentes first.
func (h *AdminVagasHandler) List(c *fiber.Ctx) error {
	lista, err := h.Vagas.ListAdmin(c.UserContext())
	if err != nil {
		h.Logger.Error("admin: falha ao carregar vagas", zap.Error(err))
		return storeFail(c, "Erro ao carregar vagas. Verifique se o servidor de dados está ativo.")
	}
	return c.JSON(fiber.Map{"success": true, "data": lista})
}

type VagaFormReq struct {
	Title       string `json:"title"`
	Empresa     string `json:"empresa"`
	Local       string `json:"local"`
	Description string `json:"description"`
	Area        string `json:"area"`
	Status      string `json:"status"`
}

// Criar adds a vaga straight from the panel. Unlike the public board path, the
// admin form's status choice is honored.
func (h *AdminVagasHandler) Criar(c *fiber.Ctx) error {
	var req VagaFormReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "Corpo da requisição inválido",
		})
	}

	if req.Title == "" || req.Empresa == "" || req.Local == "" || req.Description == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":  false,
			"mensagem": "Por favor, preencha todos os campos obrigatórios.",
		})
	}

	status := vagas.StatusPendente
	if req.Status != "" {
		parsed, err := vagas.ParseStatus(req.Status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Status de vaga inválido",
			})
		}
		status = parsed
	}

	nova := models.Vaga{
		Title:       req.Title,
		Empresa:     req.Empresa,
		Local:       req.Local,
		Description: req.Description,
		Area:        req.Area,
		Date:        time.Now().Format("02/01/2006"),
		DataCriacao: time.Now().Format("2006-01-02"),
		Contact:     "Contato via perfil",
	}

	criada, err := h.Vagas.CriarAdmin(c.UserContext(), nova, status)
	if err != nil {
		h.Logger.Error("admin: falha ao criar vaga", zap.Error(err))
		return storeFail(c, "Erro ao salvar vaga. Verifique se o servidor de dados está ativo.")
	}

	h.Notifier.Notify(c.UserContext(), "vagas")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"mensagem": "Vaga adicionada com sucesso!",
		"data":     criada,
	})
}

// Aprovar is two-phase: without confirmado=true it reads the vaga and answers
// the prompt (with the current title); confirmed, it patches only the status.
func (h *AdminVagasHandler) Aprovar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "ID de vaga inválido",
		})
	}

	if !confirmado(c) {
		atual, err := h.Vagas.Get(c.UserContext(), uint(id))
		if err != nil {
			h.Logger.Error("admin: falha ao buscar vaga para aprovação", zap.Uint("id", uint(id)), zap.Error(err))
			return storeFail(c, "Erro ao buscar vaga. Verifique se o servidor de dados está ativo.")
		}
		return pedirConfirmacao(c, fmt.Sprintf(
			"Deseja aprovar a vaga %q? Ela ficará visível no mural público.", atual.Title))
	}

	aprovada, err := h.Vagas.Aprovar(c.UserContext(), uint(id))
	if err != nil {
		if store.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Vaga não encontrada",
			})
		}
		h.Logger.Error("admin: falha ao aprovar vaga", zap.Uint("id", uint(id)), zap.Error(err))
		return storeFail(c, "Erro ao aprovar vaga. Verifique se o servidor de dados está ativo.")
	}

	h.Notifier.Notify(c.UserContext(), "vagas")

	return c.JSON(fiber.Map{
		"success":  true,
		"mensagem": fmt.Sprintf("Vaga %q aprovada com sucesso! Agora ela está visível no mural público.", aprovada.Title),
	})
}

// Editar saves the edit form with a full replace; the status latch lives in
// the service.
func (h *AdminVagasHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "ID de vaga inválido",
		})
	}

	var req VagaFormReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "Corpo da requisição inválido",
		})
	}
	if req.Title == "" || req.Empresa == "" || req.Local == "" || req.Description == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":  false,
			"mensagem": "Por favor, preencha todos os campos obrigatórios.",
		})
	}

	formStatus := vagas.StatusPendente
	if req.Status != "" {
		parsed, err := vagas.ParseStatus(req.Status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Status de vaga inválido",
			})
		}
		formStatus = parsed
	}

	edit := models.Vaga{
		Title:       req.Title,
		Empresa:     req.Empresa,
		Local:       req.Local,
		Description: req.Description,
		Area:        req.Area,
	}

	salva, err := h.Vagas.Editar(c.UserContext(), uint(id), edit, formStatus)
	if err != nil {
		if store.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Vaga não encontrada",
			})
		}
		h.Logger.Error("admin: falha ao atualizar vaga", zap.Uint("id", uint(id)), zap.Error(err))
		return storeFail(c, "Erro ao atualizar vaga. Verifique se o servidor de dados está ativo.")
	}

	h.Notifier.Notify(c.UserContext(), "vagas")

	return c.JSON(fiber.Map{
		"success":  true,
		"mensagem": "Vaga atualizada com sucesso!",
		"data":     salva,
	})
}

// Excluir removes a vaga after confirmation.
func (h *AdminVagasHandler) Excluir(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "ID de vaga inválido",
		})
	}

	if !confirmado(c) {
		return pedirConfirmacao(c, "TEM CERTEZA que deseja EXCLUIR esta vaga? Esta ação não pode ser desfeita.")
	}

	if err := h.Vagas.Excluir(c.UserContext(), uint(id)); err != nil {
		if store.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Vaga não encontrada",
			})
		}
		h.Logger.Error("admin: falha ao excluir vaga", zap.Uint("id", uint(id)), zap.Error(err))
		return storeFail(c, "Erro ao excluir vaga. Verifique se o servidor de dados está ativo.")
	}

	h.Notifier.Notify(c.UserContext(), "vagas")

	return c.JSON(fiber.Map{
		"success":  true,
		"mensagem": "Vaga excluída com sucesso!",
	})
}
