package dataset_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOrderRepository_Snapshot(t *testing.T) {
	repo := dataset.NewFileOrderRepository("testdata/orders.json", "")
	ds, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Orders, 3)
}

func TestFileOrderRepository_ArchivoInexistente(t *testing.T) {
	repo := dataset.NewFileOrderRepository(filepath.Join(t.TempDir(), "no-existe.json"), "")
	_, err := repo.Snapshot(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestFileOrderRepository_Latin1(t *testing.T) {
	// "Comercial Ñandú" en ISO-8859-1: Ñ = 0xD1, ú = 0xFA
	doc := []byte(`{"orders": [{"order_id": 1, "customer": {"companyname": "Comercial ` + "\xd1and\xfa" + `"}}]}`)
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	repo := dataset.NewFileOrderRepository(path, "ISO-8859-1")
	ds, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Orders, 1)
	assert.Equal(t, "Comercial Ñandú", ds.Orders[0].Customer.CompanyName)
}

func TestNewReader_UTF8SinCambios(t *testing.T) {
	out, err := io.ReadAll(dataset.NewReader(strings.NewReader("día"), dataset.EncodingUTF8))
	require.NoError(t, err)
	assert.Equal(t, "día", string(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// CachedOrderRepository
// ──────────────────────────────────────────────────────────────────────────────

type countingRepo struct {
	calls atomic.Int32
	err   error
}

func (r *countingRepo) Snapshot(_ context.Context) (*entity.Dataset, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &entity.Dataset{Orders: []entity.Order{{ID: "1"}}}, nil
}

func TestCachedOrderRepository_MemoizaDuranteTTL(t *testing.T) {
	inner := &countingRepo{}
	repo := dataset.NewCachedOrderRepository(inner, time.Hour)

	first, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	second, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second, "dentro del TTL se reutiliza la misma instantánea")
	assert.Equal(t, int32(1), inner.calls.Load())

	repo.Invalidate()
	_, err = repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), inner.calls.Load(), "Invalidate fuerza recarga")
}

func TestCachedOrderRepository_SinTTLDelegaSiempre(t *testing.T) {
	inner := &countingRepo{}
	repo := dataset.NewCachedOrderRepository(inner, 0)
	for i := 0; i < 3; i++ {
		_, err := repo.Snapshot(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), inner.calls.Load())
}

func TestCachedOrderRepository_NoMemoizaErrores(t *testing.T) {
	inner := &countingRepo{err: errors.New("disco lleno")}
	repo := dataset.NewCachedOrderRepository(inner, time.Hour)

	_, err := repo.Snapshot(context.Background())
	require.Error(t, err)
	_, err = repo.Snapshot(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), inner.calls.Load())
}
