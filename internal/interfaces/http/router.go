package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProfitabilityUC *profitability.UseCase
	ReportUC        *report.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	profitHandler := NewProfitabilityHandler(deps.ProfitabilityUC)

	// Rentabilidad
	profit := api.Group("/profitability")
	profit.Get("/orders", profitHandler.Orders)
	profit.Get("/products", profitHandler.Products)

	// Reporte PDF (solo si hay generador configurado)
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		profit.Get("/orders/report", reportHandler.OrdersPDF)
	}

	// Saldo de caja
	api.Get("/cash-balance", profitHandler.CashBalance)
}
