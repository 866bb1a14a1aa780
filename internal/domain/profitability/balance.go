package profitability

import (
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CashBalance saldo de caja: capital inicial + Σ (utilidad × CompanyShare) de cada
// orden, convirtiendo cada término con las tasas de su orden.
// La suma es conmutativa; el resultado no depende del orden de las órdenes.
func CashBalance(orders []entity.Order, target entity.Currency, pol Policy) decimal.Decimal {
	balance := pol.InitialCashBalance
	for _, o := range orders {
		contribution := BaseFinancials(o, pol).Profit.Mul(pol.CompanyShare)
		balance = balance.Add(Convert(contribution, target, o.Rates()))
	}
	return balance
}
