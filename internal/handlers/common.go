package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func validationFail(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  false,
		"mensagem": "Erro de validação",
		"errors":   errs,
	})
}

// confirmado reports whether the request carries the confirmation token. The
// destructive mutations are two-phase: a call without confirmado=true only
// returns the prompt, so the confirmation UX stays out of the mutation logic.
func confirmado(c *fiber.Ctx) bool {
	if c.Query("confirmado") == "true" {
		return true
	}
	var body struct {
		Confirmado bool `json:"confirmado"`
	}
	if err := c.BodyParser(&body); err != nil {
		return false
	}
	return body.Confirmado
}

// pedirConfirmacao answers the first phase with the prompt the client should
// show before retrying with confirmado=true.
func pedirConfirmacao(c *fiber.Ctx, mensagem string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": false,
		"confirmacao": fiber.Map{
			"mensagem": mensagem,
		},
	})
}

// storeFail answers admin/mutating paths when the data server is unreachable.
// The error was already logged at the call site; the client gets a retryable
// notice instead of a degraded view.
func storeFail(c *fiber.Ctx, mensagem string) error {
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"success":         false,
		"mensagem":        mensagem,
		"tentarNovamente": true,
	})
}
