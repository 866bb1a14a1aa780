package profitability

import (
	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/shopspring/decimal"
)

// Totals suma las filas ya convertidas de un listado de órdenes.
func Totals(rows []dto.OrderProfitabilityDTO) dto.ProfitabilityTotalsDTO {
	t := dto.ProfitabilityTotalsDTO{
		TotalQuantity: decimal.Zero,
		Revenue:       decimal.Zero,
		Cost:          decimal.Zero,
		Profit:        decimal.Zero,
		NetProfit:     decimal.Zero,
	}
	for _, r := range rows {
		t.TotalQuantity = t.TotalQuantity.Add(r.TotalQuantity)
		t.Revenue = t.Revenue.Add(r.Revenue)
		t.Cost = t.Cost.Add(r.Cost)
		t.Profit = t.Profit.Add(r.Profit)
		t.NetProfit = t.NetProfit.Add(r.NetProfit)
	}
	return t
}
