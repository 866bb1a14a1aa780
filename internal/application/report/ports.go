package report

import (
	"context"
	"time"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/shopspring/decimal"
)

// ReportData todo lo que necesita el generador para dibujar el reporte de órdenes.
type ReportData struct {
	Currency      string
	Search        string
	GeneratedAt   time.Time
	CustomerShare decimal.Decimal
	Orders        []dto.OrderProfitabilityDTO
	Totals        dto.ProfitabilityTotalsDTO
	CashBalance   decimal.Decimal
}

// Generator puerto de salida para el PDF de rentabilidad.
type Generator interface {
	GenerateProfitabilityPDF(ctx context.Context, data ReportData) ([]byte, error)
}
