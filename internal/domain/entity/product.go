package entity

import "github.com/shopspring/decimal"

// Product línea de una orden con su propio historial de costos.
// Attributes es un valor opaco de solo presentación (normalmente un objeto); la capa
// de cálculo no lo interpreta.
type Product struct {
	Name       string
	Quantity   decimal.Decimal
	Unit       string
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // ingreso de la línea en moneda de la orden
	Attributes any
	StockLogs  []StockMovement
}
