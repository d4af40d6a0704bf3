package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trabalha-floriano/portal-backend/internal/middleware"
	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/realtime"
	"github.com/trabalha-floriano/portal-backend/internal/session"
	"github.com/trabalha-floriano/portal-backend/internal/vagas"
)

// BoardHandler serves the public mural: approved vagas, local search and the
// contratante submission form.
type BoardHandler struct {
	Vagas    *vagas.Service
	Notifier *realtime.Notifier
	Logger   *zap.Logger
}

func NewBoardHandler(v *vagas.Service, n *realtime.Notifier, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{Vagas: v, Notifier: n, Logger: logger}
}

// CardVaga is the board card view-model. The apply affordance is resolved
// server-side from the session so the client renders it declaratively.
type CardVaga struct {
	models.Vaga
	TipoLabel string   `json:"tipoLabel"`
	Acao      AcaoCard `json:"acao"`
}

// AcaoCard names the card's button action.
type AcaoCard struct {
	Tipo     string `json:"tipo"` // "login" | "contato" | "visualizar"
	Mensagem string `json:"mensagem"`
	Contato  string `json:"contato,omitempty"`
}

// GetMural lists the approved vagas, locally filtered by ?busca=. On a store
// failure the board degrades to an empty list — but never silently: the error
// is logged and the response carries the notice. Documented weak guarantee.
func (h *BoardHandler) GetMural(c *fiber.Ctx) error {
	s := middleware.Sessao(c)
	busca := c.Query("busca")

	lista, err := h.Vagas.ListAprovadas(c.UserContext())
	if err != nil {
		h.Logger.Error("mural: falha ao buscar vagas", zap.Error(err))
		return c.JSON(fiber.Map{
			"success":  false,
			"mensagem": "Não foi possível carregar as vagas. Tente novamente.",
			"data":     []CardVaga{},
			"sessao":   s,
		})
	}

	lista = vagas.Filtrar(lista, busca)

	cards := make([]CardVaga, 0, len(lista))
	for _, v := range lista {
		cards = append(cards, buildCard(v, s))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cards,
		"sessao":  s,
	})
}

func buildCard(v models.Vaga, s session.Session) CardVaga {
	card := CardVaga{Vaga: v, TipoLabel: "Emprego"}
	if v.IsBico {
		card.TipoLabel = "Bico"
	}

	switch {
	case !s.LoggedIn:
		card.Acao = AcaoCard{
			Tipo:     "login",
			Mensagem: "Login para Candidatar",
		}
	case s.Role == models.RoleContratante:
		card.Acao = AcaoCard{
			Tipo:     "visualizar",
			Mensagem: "Você está logado como Contratante. Use o Painel Admin para gerenciar.",
		}
	default:
		card.Acao = AcaoCard{
			Tipo:     "contato",
			Mensagem: fmt.Sprintf("Entre em contato com a empresa: %s", v.Contact),
			Contato:  v.Contact,
		}
	}
	return card
}

// GetAreas lists the distinct areas of the approved vagas for the search UI.
func (h *BoardHandler) GetAreas(c *fiber.Ctx) error {
	areas, err := h.Vagas.Areas(c.UserContext())
	if err != nil {
		h.Logger.Error("mural: falha ao buscar áreas", zap.Error(err))
		return c.JSON(fiber.Map{
			"success":  false,
			"mensagem": "Não foi possível carregar as áreas.",
			"data":     []string{},
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": areas})
}

type PublicarVagaReq struct {
	Title       string `json:"title"`
	Area        string `json:"area"`
	Local       string `json:"local"`
	Description string `json:"description"`
	IsBico      bool   `json:"isBico"`
}

// PublicarVaga creates a vaga from the contratante board form. Whatever the
// form said, the vaga enters as pendente.
func (h *BoardHandler) PublicarVaga(c *fiber.Ctx) error {
	var req PublicarVagaReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":  false,
			"mensagem": "Corpo da requisição inválido",
		})
	}

	errs := FieldErrors{}
	if req.Title == "" {
		errs.Add("title", "Título é obrigatório")
	}
	if req.Area == "" {
		errs.Add("area", "Área é obrigatória")
	}
	if req.Local == "" {
		errs.Add("local", "Localização é obrigatória")
	}
	if req.Description == "" {
		errs.Add("description", "Descrição é obrigatória")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	// Empresa/contato seguem simulados como no portal original.
	nova := models.Vaga{
		Title:       req.Title,
		Area:        req.Area,
		Empresa:     "Contratante Logado (Simulado)",
		Local:       req.Local,
		Description: req.Description,
		Date:        fmt.Sprintf("Publicado agora (%s)", time.Now().Format("02/01/2006")),
		DataCriacao: time.Now().Format("2006-01-02"),
		Contact:     "Contato via Perfil do Contratante",
		IsBico:      req.IsBico,
	}

	criada, err := h.Vagas.Publicar(c.UserContext(), nova)
	if err != nil {
		h.Logger.Error("mural: falha ao publicar vaga", zap.Error(err))
		return storeFail(c, "Erro ao publicar vaga. Verifique se o servidor de dados está ativo.")
	}

	h.Notifier.Notify(c.UserContext(), "vagas")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"mensagem": fmt.Sprintf(
			"Vaga %q enviada com sucesso! Ela está PENDENTE DE APROVAÇÃO pelo Administrador.",
			criada.Title),
		"data": criada,
	})
}

// GetSessao exposes the resolved session state for the page shell.
func (h *BoardHandler) GetSessao(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": middleware.Sessao(c)})
}

// Logout performs the full navigation reset of the simulated session.
func (h *BoardHandler) Logout(c *fiber.Ctx) error {
	s, target := session.Logout()
	return c.JSON(fiber.Map{
		"success":    true,
		"mensagem":   "Você foi desconectado.",
		"data":       s,
		"redirectTo": target,
	})
}
