package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/application/report"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	domainprofit "github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/dataset"
	apphttp "github.com/jhoicas/Rentabilidad-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// Una orden: ingreso 1000, costo 10 × (50+20+10) = 800, utilidad 200, neta 75.
const testDocument = `{"orders": [{
	"order_id": 1, "order_number": "SO-1", "invoice_number": "INV-1",
	"customer": "{\"companyname\": \"Acme Ltd\"}",
	"subtotal": 1000, "primary_rate": 1, "secondary_rate": 2,
	"products": [{
		"product_name": "Steel bolt", "quantity": 10, "total_price": 1000,
		"stocklogs": [{"stock_quantity": 10, "stock_cost": 50, "shipment_cost": 20, "credit_cost": 10}]
	}]
}]}`

type fakeRepo struct {
	ds  *entity.Dataset
	err error
}

func (r *fakeRepo) Snapshot(context.Context) (*entity.Dataset, error) { return r.ds, r.err }

type stubGenerator struct{}

func (stubGenerator) GenerateProfitabilityPDF(context.Context, report.ReportData) ([]byte, error) {
	return []byte("%PDF-1.3 test"), nil
}

func buildTestApp(t *testing.T, repo *fakeRepo) *fiber.App {
	t.Helper()
	profitUC := profitability.NewUseCase(repo, domainprofit.DefaultPolicy(), zerolog.Nop())
	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Use(apphttp.AccessLog(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		ProfitabilityUC: profitUC,
		ReportUC:        report.NewUseCase(profitUC, stubGenerator{}),
	})
	return app
}

func okRepo(t *testing.T) *fakeRepo {
	t.Helper()
	ds, err := dataset.Decode([]byte(testDocument))
	require.NoError(t, err)
	return &fakeRepo{ds: ds}
}

func doGet(t *testing.T, app *fiber.App, target string) (int, []byte, map[string]string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	headers := map[string]string{
		fiber.HeaderContentType:        resp.Header.Get(fiber.HeaderContentType),
		fiber.HeaderContentDisposition: resp.Header.Get(fiber.HeaderContentDisposition),
		apphttp.HeaderRequestID:        resp.Header.Get(apphttp.HeaderRequestID),
	}
	return resp.StatusCode, body, headers
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rentabilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_MonedaPorDefecto(t *testing.T) {
	app := buildTestApp(t, okRepo(t))

	status, body, headers := doGet(t, app, "/api/profitability/orders")
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, headers[apphttp.HeaderRequestID], "debe devolver X-Request-ID")

	var rows []dto.OrderProfitabilityDTO
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Ltd", rows[0].Customer)
	assert.Equal(t, "USD", rows[0].Currency)
	assertDecimal(t, "1000", rows[0].Revenue)
	assertDecimal(t, "800", rows[0].Cost)
	assertDecimal(t, "200", rows[0].Profit)
	assertDecimal(t, "75", rows[0].NetProfit)
}

func TestOrders_ConversionTL(t *testing.T) {
	app := buildTestApp(t, okRepo(t))

	status, body, _ := doGet(t, app, "/api/profitability/orders?currency=tl")
	require.Equal(t, fiber.StatusOK, status)

	var rows []dto.OrderProfitabilityDTO
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "TL", rows[0].Currency)
	assertDecimal(t, "2000", rows[0].Revenue)
	assertDecimal(t, "400", rows[0].Profit)
	assertDecimal(t, "150", rows[0].NetProfit)
}

func TestOrders_BusquedaSinResultadosDevuelveListaVacia(t *testing.T) {
	app := buildTestApp(t, okRepo(t))

	status, body, _ := doGet(t, app, "/api/profitability/orders?search=inexistente")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestProducts(t *testing.T) {
	app := buildTestApp(t, okRepo(t))

	status, body, _ := doGet(t, app, "/api/profitability/products?currency=USD")
	require.Equal(t, fiber.StatusOK, status)

	var rows []dto.ProductProfitabilityDTO
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Steel bolt", rows[0].ProductName)
	assertDecimal(t, "10", rows[0].Quantity)
	assertDecimal(t, "200", rows[0].Profit)
}

func TestCashBalance(t *testing.T) {
	app := buildTestApp(t, okRepo(t))

	tests := []struct {
		query    string
		currency string
		balance  string
	}{
		{"", "USD", "100200"},
		{"?currency=USD", "USD", "100200"},
		{"?currency=TL", "TL", "100400"},
	}
	for _, tt := range tests {
		t.Run(tt.currency+tt.query, func(t *testing.T) {
			status, body, _ := doGet(t, app, "/api/cash-balance"+tt.query)
			require.Equal(t, fiber.StatusOK, status)

			var got dto.CashBalanceDTO
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.currency, got.Currency)
			assertDecimal(t, tt.balance, got.Balance)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestErrores(t *testing.T) {
	unavailable := &fakeRepo{err: fmt.Errorf("leer archivo: %w", domain.ErrDatasetUnavailable)}
	broken := &fakeRepo{err: errors.New("fallo inesperado")}

	tests := []struct {
		name   string
		repo   *fakeRepo
		target string
		status int
		code   string
	}{
		{"moneda no soportada", okRepo(t), "/api/profitability/orders?currency=EUR", fiber.StatusBadRequest, "INVALID_CURRENCY"},
		{"moneda no soportada en saldo", okRepo(t), "/api/cash-balance?currency=JPY", fiber.StatusBadRequest, "INVALID_CURRENCY"},
		{"dataset no disponible", unavailable, "/api/profitability/products", fiber.StatusServiceUnavailable, "DATASET_UNAVAILABLE"},
		{"dataset no disponible en saldo", unavailable, "/api/cash-balance", fiber.StatusServiceUnavailable, "DATASET_UNAVAILABLE"},
		{"error interno", broken, "/api/profitability/orders", fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := buildTestApp(t, tt.repo)
			status, body, _ := doGet(t, app, tt.target)
			assert.Equal(t, tt.status, status)

			var e dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, tt.code, e.Code)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestOrdersPDF(t *testing.T) {
	app := buildTestApp(t, okRepo(t))

	status, body, headers := doGet(t, app, "/api/profitability/orders/report?currency=TL")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "application/pdf", headers[fiber.HeaderContentType])
	assert.Contains(t, headers[fiber.HeaderContentDisposition], `attachment; filename="rentabilidad_ordenes_TL_`)
	assert.Equal(t, "%PDF-1.3 test", string(body))
}

func TestOrdersPDF_MonedaInvalida(t *testing.T) {
	app := buildTestApp(t, okRepo(t))

	status, _, _ := doGet(t, app, "/api/profitability/orders/report?currency=XXX")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Middleware
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestID_ReutilizaCabeceraEntrante(t *testing.T) {
	app := buildTestApp(t, okRepo(t))

	req := httptest.NewRequest(fiber.MethodGet, "/api/cash-balance", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}
