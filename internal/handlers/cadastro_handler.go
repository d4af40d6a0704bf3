package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trabalha-floriano/portal-backend/internal/cadastro"
)

// CadastroHandler is the registration side-channel endpoint. It keeps the
// legacy response envelope: {"sucesso": true, "mensagem": ...} on success and
// {"erro": ...} on any failure.
type CadastroHandler struct {
	Cadastro *cadastro.Service
	Logger   *zap.Logger
}

func NewCadastroHandler(s *cadastro.Service, logger *zap.Logger) *CadastroHandler {
	return &CadastroHandler{Cadastro: s, Logger: logger}
}

// Registrar accepts the registration form (urlencoded or JSON) and inserts
// into the local table. Validation blocks before any database call.
func (h *CadastroHandler) Registrar(c *fiber.Ctx) error {
	nome := c.FormValue("nome")
	email := c.FormValue("email")
	senha := c.FormValue("senha")
	tipo := c.FormValue("tipo")

	if nome == "" && email == "" && senha == "" {
		// JSON body fallback for clients that do not post forms
		var req struct {
			Nome  string `json:"nome"`
			Email string `json:"email"`
			Senha string `json:"senha"`
			Tipo  string `json:"tipo"`
		}
		if err := c.BodyParser(&req); err == nil {
			nome, email, senha, tipo = req.Nome, req.Email, req.Senha, req.Tipo
		}
	}

	reg, err := h.Cadastro.Registrar(nome, email, senha, tipo)
	if err != nil {
		if errors.Is(err, cadastro.ErrCamposObrigatorios) {
			return c.JSON(fiber.Map{"erro": "Preencha todos os campos."})
		}
		if isDuplicateEmail(err) {
			h.Logger.Warn("cadastro: email duplicado", zap.String("email", email))
			return c.JSON(fiber.Map{"erro": "Erro ao cadastrar: email já cadastrado."})
		}
		h.Logger.Error("cadastro: falha ao inserir", zap.Error(err))
		return c.JSON(fiber.Map{"erro": "Erro ao cadastrar: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"sucesso":  true,
		"mensagem": "Usuário cadastrado com sucesso!",
		"id":       reg.ID,
	})
}

func isDuplicateEmail(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// the sqlite driver does not always translate constraint errors
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
