package dataset_test

import (
	"os"
	"testing"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/dataset"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDecode_ArchivoDePrueba(t *testing.T) {
	raw, err := os.ReadFile("testdata/orders.json")
	require.NoError(t, err)

	ds, err := dataset.Decode(raw)
	require.NoError(t, err)
	require.Len(t, ds.Orders, 3, "la orden malformada no debe eliminar a sus hermanas")

	// Orden 1: campos anidados serializados como string
	o1 := ds.Orders[0]
	assert.Equal(t, "1", o1.ID)
	assert.Equal(t, "SO-0001", o1.Number)
	assert.Equal(t, "Acme Ltd", o1.Customer.CompanyName)
	assert.Equal(t, "10", o1.Customer.ID, "customer_id de la orden como respaldo")
	require.Len(t, o1.Products, 1)
	p := o1.Products[0]
	assert.Equal(t, "Steel bolt", p.Name)
	assert.Equal(t, "pcs", p.Unit)
	assert.Equal(t, map[string]any{"color": "grey"}, p.Attributes)
	require.Len(t, p.StockLogs, 1)
	assert.True(t, dec("80").Equal(p.StockLogs[0].UnitCost()))

	// Orden 2: campos ya estructurados, subtotal como string, costos ausentes
	o2 := ds.Orders[1]
	assert.Equal(t, "Globex", o2.Customer.CompanyName)
	assert.True(t, dec("500.5").Equal(o2.Subtotal))
	require.Len(t, o2.Products, 1)
	m := o2.Products[0].StockLogs[0]
	assert.True(t, m.ShipmentCost.IsZero(), "shipment_cost ausente vale cero")
	assert.True(t, m.CreditCost.IsZero(), "credit_cost ausente vale cero")

	// Orden 3: customer y products ilegibles → valores vacíos + issues
	o3 := ds.Orders[2]
	assert.Empty(t, o3.Customer.CompanyName)
	assert.NotNil(t, o3.Products)
	assert.Empty(t, o3.Products)

	fields := map[string]bool{}
	for _, is := range ds.Issues {
		assert.Equal(t, "3", is.OrderID)
		assert.ErrorIs(t, is.Err, domain.ErrDecode)
		fields[is.Field] = true
	}
	assert.True(t, fields["customer"])
	assert.True(t, fields["products"])
}

func TestDecode_DocumentoIlegibleEsFatal(t *testing.T) {
	_, err := dataset.Decode([]byte(`{"orders": [`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestDecode_ElementoQueNoEsObjetoSeOmite(t *testing.T) {
	ds, err := dataset.Decode([]byte(`{"orders": [42, {"order_id": "A-1", "subtotal": 10, "primary_rate": 1}]}`))
	require.NoError(t, err)
	require.Len(t, ds.Orders, 1)
	assert.Equal(t, "A-1", ds.Orders[0].ID)
	require.Len(t, ds.Issues, 1)
	assert.Equal(t, "order", ds.Issues[0].Field)
}

func TestDecode_NumericosInvalidosValenCero(t *testing.T) {
	doc := `{"orders": [{
		"order_id": 7,
		"subtotal": "abc",
		"primary_rate": null,
		"products": [{"product_name": "X", "quantity": true, "stocklogs": "[{\"stock_quantity\": 2, \"stock_cost\": \"\"}]"}]
	}]}`
	ds, err := dataset.Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ds.Orders, 1)

	o := ds.Orders[0]
	assert.True(t, o.Subtotal.IsZero())
	assert.True(t, o.PrimaryRate.IsZero(), "null se resuelve a cero sin issue")
	assert.True(t, o.Products[0].Quantity.IsZero())
	assert.True(t, o.Products[0].StockLogs[0].StockCost.IsZero(), "string vacío vale cero")

	fields := []string{}
	for _, is := range ds.Issues {
		fields = append(fields, is.Field)
	}
	assert.ElementsMatch(t, []string{"subtotal", "products[0].quantity"}, fields)
}

func TestDecode_StocklogIlegibleCuestaCero(t *testing.T) {
	doc := `{"orders": [{"order_id": 1, "products": [{"product_name": "X", "stocklogs": "not-json", "attributes": "[1,2]"}]}]}`
	ds, err := dataset.Decode([]byte(doc))
	require.NoError(t, err)

	p := ds.Orders[0].Products[0]
	assert.Empty(t, p.StockLogs)
	assert.Equal(t, []any{float64(1), float64(2)}, p.Attributes, "una lista también se conserva")
	require.Len(t, ds.Issues, 1)
	assert.Equal(t, "products[0].stocklogs", ds.Issues[0].Field)
}

func TestDecode_SinOrdenes(t *testing.T) {
	ds, err := dataset.Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, ds.Orders)
	assert.Empty(t, ds.Orders)
}

func TestDecode_ProductoIlegibleNoDescartaHermanos(t *testing.T) {
	doc := `{"orders": [{
		"order_id": 5, "subtotal": 1000, "primary_rate": 1,
		"products": [
			{"product_name": "Bueno", "quantity": 10,
			 "stocklogs": [{"stock_quantity": 10, "stock_cost": 50}, "junk", null]},
			"junk"
		]
	}]}`
	ds, err := dataset.Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, ds.Orders, 1)

	products := ds.Orders[0].Products
	require.Len(t, products, 1, "el elemento ilegible se omite, el válido se conserva")
	assert.Equal(t, "Bueno", products[0].Name)
	require.Len(t, products[0].StockLogs, 1, "el movimiento válido sigue sumando")
	assert.True(t, dec("500").Equal(products[0].StockLogs[0].TotalCost()))

	fields := []string{}
	for _, is := range ds.Issues {
		assert.ErrorIs(t, is.Err, domain.ErrDecode)
		fields = append(fields, is.Field)
	}
	assert.ElementsMatch(t, []string{
		"products[0].stocklogs[1]",
		"products[0].stocklogs[2]",
		"products[1]",
	}, fields)
}

func TestDecode_CompanyNameNumerico(t *testing.T) {
	ds, err := dataset.Decode([]byte(`{"orders": [{"order_id": 1, "customer": {"id": 9, "companyname": 12345}}]}`))
	require.NoError(t, err)

	c := ds.Orders[0].Customer
	assert.Equal(t, "12345", c.CompanyName)
	assert.Equal(t, "9", c.ID)
	assert.Empty(t, ds.Issues)
}

func TestDecode_AtributosSeConservanTalCual(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{"objeto", `{"color": "red"}`, map[string]any{"color": "red"}},
		{"lista", `["a", "b"]`, []any{"a", "b"}},
		{"escalar", `7`, float64(7)},
		{"string con JSON", `"{\"size\": \"L\"}"`, map[string]any{"size": "L"}},
		{"string sin JSON", `"rojo"`, "rojo"},
		{"ausente", `null`, map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"orders": [{"order_id": 1, "products": [{"product_name": "X", "attributes": ` + tt.raw + `}]}]}`
			ds, err := dataset.Decode([]byte(doc))
			require.NoError(t, err)
			require.Len(t, ds.Orders[0].Products, 1)
			assert.Equal(t, tt.want, ds.Orders[0].Products[0].Attributes)
		})
	}
}
