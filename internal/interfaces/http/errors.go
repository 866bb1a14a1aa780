package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
)

// respondError traduce los errores de dominio a la respuesta HTTP correspondiente.
//   - ErrUnsupportedCurrency → 400 INVALID_CURRENCY
//   - ErrInvalidInput        → 400 INVALID_PARAMS
//   - ErrDatasetUnavailable  → 503 DATASET_UNAVAILABLE
//   - cualquier otro         → 500 INTERNAL
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnsupportedCurrency):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_CURRENCY", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDatasetUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "DATASET_UNAVAILABLE", Message: "los datos de órdenes no están disponibles",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
