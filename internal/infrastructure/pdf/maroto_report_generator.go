// Package pdf dibuja el reporte de rentabilidad por orden con Maroto v2.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + moneda     │  fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Orden | Cliente | Cant | Ingreso | Costo | Util | Neta│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	│  SALDO DE CAJA                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/report"
)

var _ report.Generator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct {
	appName string
}

// NewMarotoReportGenerator construye el generador; appName va en los metadatos del PDF.
func NewMarotoReportGenerator(appName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{appName: appName}
}

// GenerateProfitabilityPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProfitabilityPDF(_ context.Context, data report.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Rentabilidad por orden", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range tableRows(data.Orders) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))
	m.AddRows(balanceRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + moneda (izq) y fecha de generación (der).
func headerRow(data report.ReportData) core.Row {
	subtitle := "Moneda: " + data.Currency
	if data.Search != "" {
		subtitle += "   |   Filtro: " + data.Search
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RENTABILIDAD POR ORDEN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d órdenes", len(data.Orders)), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de órdenes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Orden", 2, align.Left),
		h("Cliente", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Ingreso", 2, align.Right),
		h("Costo", 1, align.Right),
		h("Utilidad", 2, align.Right),
		h("Neta", 1, align.Right),
	)
}

// tableRows: una fila por orden; las utilidades negativas se resaltan.
func tableRows(orders []dto.OrderProfitabilityDTO) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(o.OrderNumber, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(o.Customer, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(o.TotalQuantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			amountCol(2, o.Revenue, false),
			amountCol(1, o.Cost, false),
			amountCol(2, o.Profit, true),
			amountCol(1, o.NetProfit, true),
		))
	}
	return result
}

// totalsRow: totales del listado.
func totalsRow(data report.ReportData) core.Row {
	t := data.Totals
	label := fmt.Sprintf("TOTALES (neta = %s%% de la utilidad)", data.CustomerShare.Mul(decimal.NewFromInt(100)).String())
	return row.New(8).Add(
		col.New(5).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 2})),
		col.New(1).Add(text.New(t.TotalQuantity.String(), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 2})),
		amountCol(2, t.Revenue, false),
		amountCol(1, t.Cost, false),
		amountCol(2, t.Profit, true),
		amountCol(1, t.NetProfit, true),
	)
}

// balanceRow: saldo de caja en la misma moneda del reporte.
func balanceRow(data report.ReportData) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("SALDO DE CAJA", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
		col.New(4).Add(text.New(money(data.CashBalance)+" "+data.Currency, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 3,
		})),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func amountCol(size int, v decimal.Decimal, highlightLoss bool) core.Col {
	p := props.Text{Size: 8, Align: align.Right, Top: 1}
	if highlightLoss && v.IsNegative() {
		p.Color = colorLoss
	}
	return col.New(size).Add(text.New(money(v), p))
}

func money(v decimal.Decimal) string {
	return v.StringFixed(2)
}
