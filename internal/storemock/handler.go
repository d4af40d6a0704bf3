package storemock

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the store as a json-server style REST API:
//
//	GET    /:collection            (exact-match query filters)
//	GET    /:collection/:id
//	POST   /:collection
//	PUT    /:collection/:id
//	PATCH  /:collection/:id
//	DELETE /:collection/:id
type Handler struct {
	Store  *Store
	Logger *zap.Logger
}

func NewHandler(st *Store, logger *zap.Logger) *Handler {
	return &Handler{Store: st, Logger: logger}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/:collection", h.List)
	app.Post("/:collection", h.Create)
	app.Get("/:collection/:id", h.Get)
	app.Put("/:collection/:id", h.Replace)
	app.Patch("/:collection/:id", h.Patch)
	app.Delete("/:collection/:id", h.Delete)
}

func (h *Handler) List(c *fiber.Ctx) error {
	filter := map[string]string{}
	for k, v := range c.Queries() {
		filter[k] = v
	}

	docs, err := h.Store.List(c.Params("collection"), filter)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(docs)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	doc, err := h.Store.Get(c.Params("collection"), uint(id))
	if err != nil {
		return h.storeErr(c, err)
	}
	return c.JSON(doc)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	doc, err := h.Store.Create(c.Params("collection"), body)
	if err != nil {
		return h.internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *Handler) Replace(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	doc, err := h.Store.Replace(c.Params("collection"), uint(id), body)
	if err != nil {
		return h.storeErr(c, err)
	}
	return c.JSON(doc)
}

func (h *Handler) Patch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	doc, err := h.Store.Patch(c.Params("collection"), uint(id), fields)
	if err != nil {
		return h.storeErr(c, err)
	}
	return c.JSON(doc)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err := h.Store.Delete(c.Params("collection"), uint(id)); err != nil {
		return h.storeErr(c, err)
	}
	return c.JSON(fiber.Map{})
}

func (h *Handler) storeErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return h.internal(c, err)
}

func (h *Handler) internal(c *fiber.Ctx, err error) error {
	h.Logger.Error("storemock: request failed", zap.Error(err))
	return c.SendStatus(fiber.StatusInternalServerError)
}
