package profitability

import (
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const currencyDecimals = 2

var one = decimal.NewFromInt(1)

// ConversionFactor factor para llevar un monto base a la moneda pedida usando las
// tasas propias de la orden: 1 para la moneda base, secondary/primary en otro caso.
// Con primary en cero la orden no es convertible y el factor es cero.
func ConversionFactor(target entity.Currency, rates entity.ExchangeRates) decimal.Decimal {
	if target.IsBase() {
		return one
	}
	if rates.Primary.IsZero() {
		return decimal.Zero
	}
	return rates.Secondary.Div(rates.Primary)
}

// Convert lleva el monto a la moneda pedida. En la moneda base pasa intacto;
// en otra moneda se calcula amount × secondary / primary y se redondea a 2 decimales.
// Se multiplica antes de dividir: la única truncación de Div cae lejos del centavo.
func Convert(amount decimal.Decimal, target entity.Currency, rates entity.ExchangeRates) decimal.Decimal {
	if target.IsBase() {
		return amount
	}
	if rates.Primary.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(rates.Secondary).Div(rates.Primary).Round(currencyDecimals)
}
