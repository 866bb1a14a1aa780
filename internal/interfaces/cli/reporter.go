package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
)

// Reporter escribe los resultados como tabla alineada o como JSON.
type Reporter struct {
	w      io.Writer
	format string
}

// NewReporter construye el reporter; format es FormatTable o FormatJSON.
func NewReporter(w io.Writer, format string) *Reporter {
	return &Reporter{w: w, format: format}
}

type ordersOutput struct {
	Orders []dto.OrderProfitabilityDTO `json:"orders"`
	Totals dto.ProfitabilityTotalsDTO  `json:"totals"`
}

// Orders tabla de órdenes con fila de totales.
func (r *Reporter) Orders(rows []dto.OrderProfitabilityDTO, totals dto.ProfitabilityTotalsDTO) error {
	if r.format == FormatJSON {
		return r.json(ordersOutput{Orders: rows, Totals: totals})
	}

	tw := r.table()
	fmt.Fprintln(tw, "ORDEN\tCLIENTE\tFACTURA\tCANT.\tINGRESO\tCOSTO\tUTILIDAD\tNETA\tMONEDA")
	currency := ""
	for _, o := range rows {
		currency = o.Currency
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.OrderNumber, o.Customer, o.InvoiceNumber, o.TotalQuantity.String(),
			money(o.Revenue), money(o.Cost), money(o.Profit), money(o.NetProfit), o.Currency)
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t%s\t%s\t%s\t%s\t%s\t%s\n",
		totals.TotalQuantity.String(),
		money(totals.Revenue), money(totals.Cost), money(totals.Profit), money(totals.NetProfit), currency)
	return tw.Flush()
}

// Products tabla de productos.
func (r *Reporter) Products(rows []dto.ProductProfitabilityDTO) error {
	if r.format == FormatJSON {
		return r.json(rows)
	}

	tw := r.table()
	fmt.Fprintln(tw, "PRODUCTO\tFACTURA\tCANT.\tUNIDAD\tINGRESO\tCOSTO\tUTILIDAD\tNETA\tMONEDA")
	for _, p := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ProductName, p.InvoiceNumber, p.Quantity.String(), p.Unit,
			money(p.Revenue), money(p.Cost), money(p.Profit), money(p.NetProfit), p.Currency)
	}
	return tw.Flush()
}

// Balance una sola línea con el saldo.
func (r *Reporter) Balance(b *dto.CashBalanceDTO) error {
	if r.format == FormatJSON {
		return r.json(b)
	}
	_, err := fmt.Fprintf(r.w, "Saldo de caja: %s %s\n", money(b.Balance), b.Currency)
	return err
}

func (r *Reporter) table() *tabwriter.Writer {
	return tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
}

func (r *Reporter) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func money(v decimal.Decimal) string {
	return v.StringFixed(2)
}
