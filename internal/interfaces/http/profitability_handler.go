package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/profitability"
)

// ProfitabilityHandler maneja los endpoints de rentabilidad y saldo de caja.
type ProfitabilityHandler struct {
	uc *profitability.UseCase
}

// NewProfitabilityHandler construye el handler.
func NewProfitabilityHandler(uc *profitability.UseCase) *ProfitabilityHandler {
	return &ProfitabilityHandler{uc: uc}
}

// Orders devuelve la rentabilidad por orden.
// @Summary      Rentabilidad por orden
// @Tags         profitability
// @Produce      json
// @Param        currency  query  string  false  "Moneda de salida (USD, TL)"
// @Param        search    query  string  false  "Filtro por cliente o número de orden"
// @Success      200  {array}   dto.OrderProfitabilityDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/profitability/orders [get]
func (h *ProfitabilityHandler) Orders(c *fiber.Ctx) error {
	var q dto.ProfitabilityQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c)
	}
	rows, err := h.uc.OrdersProfitability(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Products devuelve la rentabilidad por producto.
// @Summary      Rentabilidad por producto
// @Tags         profitability
// @Produce      json
// @Param        currency  query  string  false  "Moneda de salida (USD, TL)"
// @Param        search    query  string  false  "Filtro por producto o número de factura"
// @Success      200  {array}   dto.ProductProfitabilityDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/profitability/products [get]
func (h *ProfitabilityHandler) Products(c *fiber.Ctx) error {
	var q dto.ProfitabilityQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c)
	}
	rows, err := h.uc.ProductsProfitability(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// CashBalance devuelve el saldo de caja.
// @Summary      Saldo de caja
// @Tags         profitability
// @Produce      json
// @Param        currency  query  string  false  "Moneda de salida (USD, TL)"
// @Success      200  {object}  dto.CashBalanceDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/cash-balance [get]
func (h *ProfitabilityHandler) CashBalance(c *fiber.Ctx) error {
	var q dto.ProfitabilityQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c)
	}
	balance, err := h.uc.CashBalance(c.UserContext(), q.Currency)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(balance)
}

func invalidParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
	})
}
