package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/domain"
)

// devMode controla si los errores internos exponen su detalle en la respuesta.
var devMode bool

// SetDevMode habilita el detalle de errores internos (solo development).
func SetDevMode(enabled bool) { devMode = enabled }

// respondError traduce un error de dominio a su respuesta HTTP. Cualquier
// error no mapeado es un 500; el detalle solo se expone en development.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrNoFieldsToUpdate),
		errors.Is(err, domain.ErrForbiddenQuery),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	msg := "Error interno del servidor"
	if devMode {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msg})
}
