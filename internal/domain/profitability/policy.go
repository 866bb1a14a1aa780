package profitability

import "github.com/shopspring/decimal"

// Policy reparto fijo de utilidades y capital inicial de caja.
//
//	utilidad neta (cliente) = utilidad × CustomerShare
//	aporte a caja (empresa) = utilidad × CompanyShare
type Policy struct {
	CustomerShare      decimal.Decimal
	CompanyShare       decimal.Decimal
	InitialCashBalance decimal.Decimal
}

// DefaultPolicy valores vigentes del negocio: 37,5% para el cliente, 100% de la
// utilidad bruta a caja y capital inicial de 100.000.
func DefaultPolicy() Policy {
	return Policy{
		CustomerShare:      decimal.RequireFromString("0.375"),
		CompanyShare:       decimal.NewFromInt(1),
		InitialCashBalance: decimal.NewFromInt(100000),
	}
}
