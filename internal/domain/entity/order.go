package entity

import "github.com/shopspring/decimal"

// ExchangeRates tasas de cambio congeladas al momento de la orden.
// Primary convierte la moneda de la orden a la base (USD); Secondary a la moneda alterna (TL).
type ExchangeRates struct {
	Primary   decimal.Decimal
	Secondary decimal.Decimal
}

// Order cabecera de una compra con sus líneas de producto.
type Order struct {
	ID            string
	Number        string
	InvoiceNumber string
	Date          string // se conserva tal como viene en el dataset
	Customer      Customer
	Subtotal      decimal.Decimal // ingreso antes de impuestos
	TotalWithTax  decimal.Decimal
	PrimaryRate   decimal.Decimal
	SecondaryRate decimal.Decimal
	Products      []Product
}

// Rates devuelve el par de tasas propio de la orden.
func (o Order) Rates() ExchangeRates {
	return ExchangeRates{Primary: o.PrimaryRate, Secondary: o.SecondaryRate}
}
