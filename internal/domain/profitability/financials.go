package profitability

import (
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Financials cifras de rentabilidad de una orden o de una línea.
// TotalQuantity son unidades crudas y nunca se convierte de moneda.
type Financials struct {
	Revenue       decimal.Decimal
	Cost          decimal.Decimal
	Profit        decimal.Decimal
	NetProfit     decimal.Decimal
	TotalQuantity decimal.Decimal
}

// convert aplica la misma conversión a los cuatro montos.
func (f Financials) convert(target entity.Currency, rates entity.ExchangeRates) Financials {
	return Financials{
		Revenue:       Convert(f.Revenue, target, rates),
		Cost:          Convert(f.Cost, target, rates),
		Profit:        Convert(f.Profit, target, rates),
		NetProfit:     Convert(f.NetProfit, target, rates),
		TotalQuantity: f.TotalQuantity,
	}
}

// BaseFinancials cifras de la orden en moneda base (sin convertir).
//
//	ingreso  = subtotal × primary_rate
//	costo    = Σ ProductCost
//	utilidad = ingreso − costo
//	neta     = utilidad × CustomerShare
func BaseFinancials(o entity.Order, pol Policy) Financials {
	cost := decimal.Zero
	qty := decimal.Zero
	for _, p := range o.Products {
		cost = cost.Add(ProductCost(p))
		qty = qty.Add(p.Quantity)
	}
	revenue := o.Subtotal.Mul(o.PrimaryRate)
	profit := revenue.Sub(cost)
	return Financials{
		Revenue:       revenue,
		Cost:          cost,
		Profit:        profit,
		NetProfit:     profit.Mul(pol.CustomerShare),
		TotalQuantity: qty,
	}
}

// OrderFinancials cifras de la orden en la moneda pedida, convertidas con las
// tasas de la propia orden (dos órdenes de fechas distintas pueden convertir distinto).
func OrderFinancials(o entity.Order, target entity.Currency, pol Policy) Financials {
	return BaseFinancials(o, pol).convert(target, o.Rates())
}

// ProductFinancials cifras de una línea: ingreso = total_price × primary_rate de la orden.
func ProductFinancials(o entity.Order, p entity.Product, target entity.Currency, pol Policy) Financials {
	revenue := p.TotalPrice.Mul(o.PrimaryRate)
	cost := ProductCost(p)
	profit := revenue.Sub(cost)
	base := Financials{
		Revenue:       revenue,
		Cost:          cost,
		Profit:        profit,
		NetProfit:     profit.Mul(pol.CustomerShare),
		TotalQuantity: p.Quantity,
	}
	return base.convert(target, o.Rates())
}
