package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/realtime"
	"github.com/trabalha-floriano/portal-backend/internal/store"
	"github.com/trabalha-floriano/portal-backend/internal/usuarios"
)

// AdminUsuariosHandler manages the usuarios table of the admin panel.
type AdminUsuariosHandler struct {
	Usuarios *usuarios.Service
	Notifier *realtime.Notifier
	Logger   *zap.Logger
}

func NewAdminUsuariosHandler(u *usuarios.Service, n *realtime.Notifier, logger *zap.Logger) *AdminUsuariosHandler {
	return &AdminUsuariosHandler{Usuarios: u, Notifier: n, Logger: logger}
}

// UsuarioRow is the table row view-model: the record plus the actions the
// panel may offer for it (delete never shows up for admins).
type UsuarioRow struct {
	models.Usuario
	Nome    string            `json:"nomeExibicao"`
	Actions []usuarios.Action `json:"actions"`
}

func (h *AdminUsuariosHandler) List(c *fiber.Ctx) error {
	lista, err := h.Usuarios.List(c.UserContext())
	if err != nil {
		h.Logger.Error("admin: falha ao carregar usuários", zap.Error(err))
		return storeFail(c, "Erro ao carregar usuários. Verifique se o servidor de dados está ativo.")
	}

	rows := make([]UsuarioRow, 0, len(lista))
	for _, u := range lista {
		rows = append(rows, UsuarioRow{
			Usuario: u,
			Nome:    u.DisplayName(),
			Actions: usuarios.AvailableActions(u),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": rows})
}

type UsuarioFormReq struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Role  string `json:"role"`
	Ativo *bool  `json:"ativo"`
}

func parseRole(raw string) (models.Role, bool) {
	switch models.Role(strings.ToLower(strings.TrimSpace(raw))) {
	case models.RoleColaborador:
		return models.RoleColaborador, true
	case models.RoleContratante:
		return models.RoleContratante, true
	case models.RoleAdmin:
		return models.RoleAdmin, true
	}
	return "", false
}

// Criar adds a usuario after the duplicate-email pre-check; a duplicate never
// reaches the store's create endpoint.
func (h *AdminUsuariosHandler) Criar(c *fiber.Ctx) error {
	var req UsuarioFormReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "Corpo da requisição inválido",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		errs := FieldErrors{}
		errs.Add("email", "Por favor, informe o email.")
		return validationFail(c, errs)
	}

	role, ok := parseRole(req.Role)
	if !ok {
		role = models.RoleColaborador
	}
	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	novo := models.Usuario{
		Email:        email,
		Nome:         strings.TrimSpace(req.Nome),
		Role:         role,
		Ativo:        ativo,
		DataCadastro: time.Now().Format("2006-01-02"),
	}

	criado, err := h.Usuarios.Criar(c.UserContext(), novo)
	if err != nil {
		if errors.Is(err, usuarios.ErrEmailDuplicado) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Já existe um usuário com este email.",
			})
		}
		h.Logger.Error("admin: falha ao criar usuário", zap.Error(err))
		return storeFail(c, "Erro ao salvar usuário. Verifique se o servidor de dados está ativo.")
	}

	h.Notifier.Notify(c.UserContext(), "usuarios")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"mensagem": "Usuário adicionado com sucesso!",
		"data":     criado,
	})
}

// Editar saves the edit form (email immutable) with a full replace.
func (h *AdminUsuariosHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "ID de usuário inválido",
		})
	}

	var req UsuarioFormReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "Corpo da requisição inválido",
		})
	}

	role, ok := parseRole(req.Role)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "Tipo de usuário inválido",
		})
	}
	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	salvo, err := h.Usuarios.Editar(c.UserContext(), uint(id), strings.TrimSpace(req.Nome), role, ativo)
	if err != nil {
		if store.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Usuário não encontrado",
			})
		}
		h.Logger.Error("admin: falha ao atualizar usuário", zap.Uint("id", uint(id)), zap.Error(err))
		return storeFail(c, "Erro ao atualizar usuário. Verifique se o servidor de dados está ativo.")
	}

	h.Notifier.Notify(c.UserContext(), "usuarios")

	return c.JSON(fiber.Map{
		"success":  true,
		"mensagem": "Usuário atualizado com sucesso!",
		"data":     salvo,
	})
}

// Ativar flips ativo back on. Not confirmation-gated, by design asymmetry
// with Desativar.
func (h *AdminUsuariosHandler) Ativar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "ID de usuário inválido",
		})
	}

	if err := h.Usuarios.Ativar(c.UserContext(), uint(id)); err != nil {
		h.Logger.Error("admin: falha ao ativar usuário", zap.Uint("id", uint(id)), zap.Error(err))
		return storeFail(c, "Erro ao ativar usuário.")
	}

	h.Notifier.Notify(c.UserContext(), "usuarios")

	return c.JSON(fiber.Map{
		"success":  true,
		"mensagem": "Usuário ativado com sucesso!",
	})
}

// Desativar flips ativo off, after confirmation.
func (h *AdminUsuariosHandler) Desativar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "ID de usuário inválido",
		})
	}

	if !confirmado(c) {
		return pedirConfirmacao(c,
			"Deseja desativar este usuário? Ele não poderá fazer login enquanto estiver desativado.")
	}

	if err := h.Usuarios.Desativar(c.UserContext(), uint(id)); err != nil {
		h.Logger.Error("admin: falha ao desativar usuário", zap.Uint("id", uint(id)), zap.Error(err))
		return storeFail(c, "Erro ao desativar usuário.")
	}

	h.Notifier.Notify(c.UserContext(), "usuarios")

	return c.JSON(fiber.Map{
		"success":  true,
		"mensagem": "Usuário desativado com sucesso!",
	})
}

// Excluir removes a usuario after confirmation. Admin-role users are refused:
// the action is never offered for them and the handler enforces the same
// policy when called directly.
func (h *AdminUsuariosHandler) Excluir(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "ID de usuário inválido",
		})
	}

	alvo, err := h.Usuarios.Get(c.UserContext(), uint(id))
	if err != nil {
		if store.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success":  false,
				"mensagem": "Usuário não encontrado",
			})
		}
		h.Logger.Error("admin: falha ao buscar usuário para exclusão", zap.Uint("id", uint(id)), zap.Error(err))
		return storeFail(c, "Erro ao buscar usuário.")
	}

	if !usuarios.CanExcluir(alvo) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success":  false,
			"mensagem": "Usuários administradores não podem ser excluídos.",
		})
	}

	if !confirmado(c) {
		return pedirConfirmacao(c,
			"TEM CERTEZA que deseja EXCLUIR este usuário? As vagas associadas serão mantidas, mas o usuário será removido permanentemente.")
	}

	if err := h.Usuarios.Excluir(c.UserContext(), uint(id)); err != nil {
		h.Logger.Error("admin: falha ao excluir usuário", zap.Uint("id", uint(id)), zap.Error(err))
		return storeFail(c, "Erro ao excluir usuário.")
	}

	h.Notifier.Notify(c.UserContext(), "usuarios")

	return c.JSON(fiber.Map{
		"success":  true,
		"mensagem": "Usuário excluído com sucesso!",
	})
}
