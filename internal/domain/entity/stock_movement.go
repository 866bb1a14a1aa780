package entity

import "github.com/shopspring/decimal"

// StockMovement entrada del historial de stock (stocklog) de un producto.
// Los costos unitarios ausentes en el origen se resuelven a cero al decodificar.
type StockMovement struct {
	Quantity     decimal.Decimal // unidades movidas (stock_quantity)
	StockCost    decimal.Decimal // costo unitario de compra
	ShipmentCost decimal.Decimal // costo unitario de envío
	CreditCost   decimal.Decimal // recargo unitario por crédito
}

// UnitCost costo unitario total del movimiento.
func (m StockMovement) UnitCost() decimal.Decimal {
	return m.StockCost.Add(m.ShipmentCost).Add(m.CreditCost)
}

// TotalCost aporte del movimiento al costo del producto: Quantity × UnitCost.
func (m StockMovement) TotalCost() decimal.Decimal {
	return m.Quantity.Mul(m.UnitCost())
}
