// Package profitability expone las tres consultas del dashboard de rentabilidad
// (órdenes, productos y saldo de caja) sobre una instantánea del dataset.
package profitability

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	domainprofit "github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// UseCase orquesta carga del dataset + cálculo. No guarda estado entre llamadas:
// misma entrada y mismo dataset producen exactamente la misma salida.
type UseCase struct {
	repo   repository.OrderRepository
	policy domainprofit.Policy
	log    zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.OrderRepository, policy domainprofit.Policy, log zerolog.Logger) *UseCase {
	return &UseCase{repo: repo, policy: policy, log: log}
}

// Policy reparto de utilidades vigente.
func (uc *UseCase) Policy() domainprofit.Policy { return uc.policy }

// OrdersProfitability una fila por orden, en el orden del dataset.
func (uc *UseCase) OrdersProfitability(ctx context.Context, q dto.ProfitabilityQuery) ([]dto.OrderProfitabilityDTO, error) {
	currency, err := entity.ParseCurrency(q.Currency)
	if err != nil {
		return nil, err
	}
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return uc.orderRows(ds, currency, q.Search), nil
}

// OrdersWithBalance filas de órdenes y saldo de caja calculados sobre la misma
// instantánea, para que ambos reflejen exactamente el mismo dataset.
func (uc *UseCase) OrdersWithBalance(ctx context.Context, q dto.ProfitabilityQuery) ([]dto.OrderProfitabilityDTO, *dto.CashBalanceDTO, error) {
	currency, err := entity.ParseCurrency(q.Currency)
	if err != nil {
		return nil, nil, err
	}
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return uc.orderRows(ds, currency, q.Search), uc.balance(ds, currency), nil
}

func (uc *UseCase) orderRows(ds *entity.Dataset, currency entity.Currency, search string) []dto.OrderProfitabilityDTO {
	needle := normalize(search)
	out := make([]dto.OrderProfitabilityDTO, 0, len(ds.Orders))
	for _, o := range ds.Orders {
		customer := customerName(o.Customer)
		if !matches(needle, customer, o.Number) {
			continue
		}
		f := domainprofit.OrderFinancials(o, currency, uc.policy)
		out = append(out, dto.OrderProfitabilityDTO{
			OrderID:       o.ID,
			OrderNumber:   o.Number,
			OrderDate:     o.Date,
			InvoiceNumber: o.InvoiceNumber,
			Customer:      customer,
			TotalQuantity: f.TotalQuantity,
			Revenue:       f.Revenue,
			Cost:          f.Cost,
			Profit:        f.Profit,
			NetProfit:     f.NetProfit,
			Currency:      currency.String(),
		})
	}
	return out
}

// ProductsProfitability una fila por línea de producto de todas las órdenes.
func (uc *UseCase) ProductsProfitability(ctx context.Context, q dto.ProfitabilityQuery) ([]dto.ProductProfitabilityDTO, error) {
	currency, err := entity.ParseCurrency(q.Currency)
	if err != nil {
		return nil, err
	}
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	needle := normalize(q.Search)
	out := []dto.ProductProfitabilityDTO{}
	for _, o := range ds.Orders {
		for _, p := range o.Products {
			if !matches(needle, p.Name, o.InvoiceNumber) {
				continue
			}
			f := domainprofit.ProductFinancials(o, p, currency, uc.policy)
			out = append(out, dto.ProductProfitabilityDTO{
				OrderID:       o.ID,
				ProductName:   p.Name,
				InvoiceNumber: o.InvoiceNumber,
				Quantity:      p.Quantity,
				Unit:          p.Unit,
				Revenue:       f.Revenue,
				Cost:          f.Cost,
				Profit:        f.Profit,
				NetProfit:     f.NetProfit,
				Attributes:    p.Attributes,
				Currency:      currency.String(),
			})
		}
	}
	return out, nil
}

// CashBalance saldo de caja en la moneda pedida.
func (uc *UseCase) CashBalance(ctx context.Context, currencyCode string) (*dto.CashBalanceDTO, error) {
	currency, err := entity.ParseCurrency(currencyCode)
	if err != nil {
		return nil, err
	}
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return uc.balance(ds, currency), nil
}

func (uc *UseCase) balance(ds *entity.Dataset, currency entity.Currency) *dto.CashBalanceDTO {
	return &dto.CashBalanceDTO{
		Balance:  domainprofit.CashBalance(ds.Orders, currency, uc.policy),
		Currency: currency.String(),
	}
}

// snapshot carga el dataset y registra los campos que se recuperaron con valores vacíos.
func (uc *UseCase) snapshot(ctx context.Context) (*entity.Dataset, error) {
	ds, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("profitability: cargar dataset: %w", err)
	}
	for _, is := range ds.Issues {
		uc.log.Warn().
			Str("order_id", is.OrderID).
			Str("field", is.Field).
			Err(is.Err).
			Msg("campo ilegible, se usa valor vacío")
	}
	return ds, nil
}

// customerName nombre a mostrar; sin razón social se usa el id del cliente.
func customerName(c entity.Customer) string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	if c.ID != "" {
		return "Cliente " + c.ID
	}
	return ""
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// matches verdadero si needle está vacío o aparece en alguno de los campos.
func matches(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
