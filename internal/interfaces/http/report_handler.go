package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/report"
)

// ReportHandler sirve los reportes descargables.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// OrdersPDF descarga el reporte de rentabilidad por orden en PDF.
// @Summary      Reporte PDF de rentabilidad por orden
// @Tags         reports
// @Produce      application/pdf
// @Param        currency  query  string  false  "Moneda de salida (USD, TL)"
// @Param        search    query  string  false  "Filtro por cliente o número de orden"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/profitability/orders/report [get]
func (h *ReportHandler) OrdersPDF(c *fiber.Ctx) error {
	var q dto.ProfitabilityQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c)
	}

	pdf, filename, err := h.uc.OrdersReport(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
