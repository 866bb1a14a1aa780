package repository

import (
	"context"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// OrderRepository fuente de solo lectura del dataset de órdenes.
// Cada llamada devuelve una instantánea inmutable; si el origen no se puede leer
// la implementación devuelve un error que envuelve domain.ErrDatasetUnavailable.
type OrderRepository interface {
	Snapshot(ctx context.Context) (*entity.Dataset, error)
}
