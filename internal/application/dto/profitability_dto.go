package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// ProfitabilityQuery parámetros comunes de las consultas de rentabilidad.
type ProfitabilityQuery struct {
	Currency string `query:"currency"` // USD (defecto) | TL
	Search   string `query:"search"`   // filtro de texto opcional, sin distinguir mayúsculas
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// OrderProfitabilityDTO fila de GET /api/profitability/orders.
type OrderProfitabilityDTO struct {
	OrderID       string          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	OrderDate     string          `json:"order_date"`
	InvoiceNumber string          `json:"invoice_number"`
	Customer      string          `json:"customer"`
	TotalQuantity decimal.Decimal `json:"total_quantity"` // unidades, sin conversión
	Revenue       decimal.Decimal `json:"revenue"`        // subtotal × primary_rate
	Cost          decimal.Decimal `json:"cost"`           // Σ costo de stocklogs
	Profit        decimal.Decimal `json:"profit"`         // revenue - cost
	NetProfit     decimal.Decimal `json:"net_profit"`     // profit × participación del cliente
	Currency      string          `json:"currency"`
}

// ProductProfitabilityDTO fila de GET /api/profitability/products.
// Attributes se devuelve tal cual para la vista de detalle.
type ProductProfitabilityDTO struct {
	OrderID       string          `json:"order_id"`
	ProductName   string          `json:"product_name"`
	InvoiceNumber string          `json:"invoice_number"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	Revenue       decimal.Decimal `json:"revenue"`
	Cost          decimal.Decimal `json:"cost"`
	Profit        decimal.Decimal `json:"profit"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	Attributes    any             `json:"attributes"`
	Currency      string          `json:"currency"`
}

// CashBalanceDTO respuesta de GET /api/cash-balance.
type CashBalanceDTO struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// ProfitabilityTotalsDTO totales de un listado de órdenes (reporte PDF y CLI).
type ProfitabilityTotalsDTO struct {
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	Revenue       decimal.Decimal `json:"revenue"`
	Cost          decimal.Decimal `json:"cost"`
	Profit        decimal.Decimal `json:"profit"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}
