// seed genera el script SQL que puebla la tabla orders a partir del JSON de órdenes,
// para usar la fuente PostgreSQL (DATASET_SOURCE=postgres) con los mismos datos.
//
// Uso: go run ./cmd/seed [ruta/orders.json] [utf-8|iso-8859-1]
// Por defecto lee data/orders.json en UTF-8.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_orders.sql
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/dataset"
)

func main() {
	jsonPath := filepath.Join("data", "orders.json")
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}
	encoding := dataset.EncodingUTF8
	if len(os.Args) > 2 {
		encoding = os.Args[2]
	}

	f, err := os.Open(jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir JSON: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// ISO-8859-1 → UTF-8 con golang.org/x/text/encoding/charmap
	raw, err := io.ReadAll(dataset.NewReader(f, encoding))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer JSON: %v\n", err)
		os.Exit(1)
	}
	ds, err := dataset.Decode(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar JSON: %v\n", err)
		os.Exit(1)
	}
	decimal.MarshalJSONWithoutQuotes = true
	for _, is := range ds.Issues {
		fmt.Fprintf(os.Stderr, "Aviso: orden %s, campo %s: %v\n", is.OrderID, is.Field, is.Err)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_orders.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := writeSeedSQL(w, jsonPath, ds.Orders); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d órdenes\n", outPath, len(ds.Orders))
}

// writeSeedSQL un INSERT ... ON CONFLICT por orden; customer y products van
// normalizados como JSON estructurado.
func writeSeedSQL(w io.Writer, source string, orders []entity.Order) error {
	fmt.Fprintf(w, "-- Órdenes de ejemplo\n-- Generado desde %s\n\n", filepath.Base(source))
	for _, o := range orders {
		if sqlBigint(o.ID) == "NULL" {
			fmt.Fprintf(w, "-- orden %q omitida: order_id no numérico\n", o.ID)
			continue
		}
		customer, err := json.Marshal(customerDoc{ID: o.Customer.ID, CompanyName: o.Customer.CompanyName})
		if err != nil {
			return fmt.Errorf("orden %s: customer: %w", o.ID, err)
		}
		products, err := json.Marshal(productDocs(o.Products))
		if err != nil {
			return fmt.Errorf("orden %s: products: %w", o.ID, err)
		}

		fmt.Fprintln(w, "INSERT INTO orders (order_id, order_number, order_date, invoice_number, customer_id, customer,")
		fmt.Fprintln(w, "    subtotal, total_with_tax, primary_rate, secondary_rate, products)")
		_, err = fmt.Fprintf(w, "VALUES (%s, '%s', %s, '%s', %s, '%s'::JSONB, %s, %s, %s, %s, '%s'::JSONB)\n",
			o.ID, escapeSQL(o.Number), sqlText(o.Date), escapeSQL(o.InvoiceNumber), sqlBigint(o.Customer.ID),
			escapeSQL(string(customer)),
			o.Subtotal.String(), o.TotalWithTax.String(), o.PrimaryRate.String(), o.SecondaryRate.String(),
			escapeSQL(string(products)))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ON CONFLICT (order_id) DO NOTHING;")
	}
	return nil
}

// ── Documentos JSONB (mismas claves que lee el decoder) ───────────────────────

type customerDoc struct {
	ID          string `json:"id,omitempty"`
	CompanyName string `json:"companyname"`
}

type stockLogDoc struct {
	Quantity     decimal.Decimal `json:"stock_quantity"`
	StockCost    decimal.Decimal `json:"stock_cost"`
	ShipmentCost decimal.Decimal `json:"shipment_cost"`
	CreditCost   decimal.Decimal `json:"credit_cost"`
}

type productDoc struct {
	Name       string          `json:"product_name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"product_unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Attributes any             `json:"attributes"`
	StockLogs  []stockLogDoc   `json:"stocklogs"`
}

func productDocs(products []entity.Product) []productDoc {
	docs := make([]productDoc, 0, len(products))
	for _, p := range products {
		logs := make([]stockLogDoc, 0, len(p.StockLogs))
		for _, m := range p.StockLogs {
			logs = append(logs, stockLogDoc{
				Quantity: m.Quantity, StockCost: m.StockCost,
				ShipmentCost: m.ShipmentCost, CreditCost: m.CreditCost,
			})
		}
		attrs := p.Attributes
		if attrs == nil {
			attrs = map[string]any{}
		}
		docs = append(docs, productDoc{
			Name: p.Name, Quantity: p.Quantity, Unit: p.Unit,
			UnitPrice: p.UnitPrice, TotalPrice: p.TotalPrice,
			Attributes: attrs, StockLogs: logs,
		})
	}
	return docs
}

// ── Helpers SQL ───────────────────────────────────────────────────────────────

// sqlText literal de texto sin transformar; vacío queda NULL.
func sqlText(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func sqlBigint(s string) string {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return "NULL"
	}
	return s
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
