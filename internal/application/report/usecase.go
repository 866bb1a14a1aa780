// Package report genera el reporte descargable (PDF) de rentabilidad por orden.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/profitability"
)

// UseCase arma los datos del reporte con las mismas consultas del dashboard
// y delega el dibujo en el Generator.
type UseCase struct {
	profit    *profitability.UseCase
	generator Generator
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(profit *profitability.UseCase, generator Generator) *UseCase {
	return &UseCase{profit: profit, generator: generator, now: time.Now}
}

// OrdersReport devuelve (pdfBytes, filename, nil) o el error de la consulta subyacente
// (moneda no soportada, dataset no disponible).
func (uc *UseCase) OrdersReport(ctx context.Context, q dto.ProfitabilityQuery) ([]byte, string, error) {
	orders, balance, err := uc.profit.OrdersWithBalance(ctx, q)
	if err != nil {
		return nil, "", err
	}

	now := uc.now()
	data := ReportData{
		Currency:      balance.Currency,
		Search:        q.Search,
		GeneratedAt:   now,
		CustomerShare: uc.profit.Policy().CustomerShare,
		Orders:        orders,
		Totals:        profitability.Totals(orders),
		CashBalance:   balance.Balance,
	}
	pdf, err := uc.generator.GenerateProfitabilityPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("rentabilidad_ordenes_%s_%s.pdf", data.Currency, now.Format("20060102"))
	return pdf, filename, nil
}
