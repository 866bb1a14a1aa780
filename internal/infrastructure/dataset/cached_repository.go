package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*CachedOrderRepository)(nil)

// CachedOrderRepository memoiza la última instantánea durante ttl.
// La instantánea es inmutable, así que se comparte entre peticiones sin copiarla.
// Los errores no se memoizan: la siguiente llamada vuelve a intentar la carga.
type CachedOrderRepository struct {
	next repository.OrderRepository
	ttl  time.Duration
	now  func() time.Time

	mu       sync.RWMutex
	snapshot *entity.Dataset
	loadedAt time.Time
}

// NewCachedOrderRepository envuelve next. Con ttl <= 0 no hay caché y se delega siempre.
func NewCachedOrderRepository(next repository.OrderRepository, ttl time.Duration) *CachedOrderRepository {
	return &CachedOrderRepository{next: next, ttl: ttl, now: time.Now}
}

// Snapshot devuelve la instantánea vigente o recarga si expiró.
func (r *CachedOrderRepository) Snapshot(ctx context.Context) (*entity.Dataset, error) {
	if r.ttl <= 0 {
		return r.next.Snapshot(ctx)
	}

	r.mu.RLock()
	if r.snapshot != nil && r.now().Sub(r.loadedAt) < r.ttl {
		ds := r.snapshot
		r.mu.RUnlock()
		return ds, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	// Otra goroutine pudo recargar mientras esperábamos el lock
	if r.snapshot != nil && r.now().Sub(r.loadedAt) < r.ttl {
		return r.snapshot, nil
	}
	ds, err := r.next.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	r.snapshot = ds
	r.loadedAt = r.now()
	return ds, nil
}

// Invalidate descarta la instantánea memoizada.
func (r *CachedOrderRepository) Invalidate() {
	r.mu.Lock()
	r.snapshot = nil
	r.mu.Unlock()
}
