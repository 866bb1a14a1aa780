package profitability

import (
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductCost costo total puesto en bodega de un producto (servicio de dominio).
// Costo = Σ cantidad × (costo_stock + costo_envío + costo_crédito) sobre su stocklog.
// Un historial vacío cuesta cero.
func ProductCost(p entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, m := range p.StockLogs {
		total = total.Add(m.TotalCost())
	}
	return total
}
