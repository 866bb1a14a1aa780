package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/dataset"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo fuente del dataset sobre PostgreSQL (solo lectura, usable con pool o tx).
// customer y products se guardan como JSONB o TEXT y pasan por el mismo
// decodificador que el archivo JSON, así ambas fuentes se comportan igual.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const snapshotQuery = `
	SELECT order_id::TEXT, order_number, COALESCE(order_date, ''), invoice_number,
	       COALESCE(customer_id::TEXT, ''), customer::TEXT,
	       COALESCE(subtotal, 0), COALESCE(total_with_tax, 0),
	       COALESCE(primary_rate, 0), COALESCE(secondary_rate, 0),
	       products::TEXT
	FROM orders
	ORDER BY order_id`

// Snapshot lee todas las órdenes en una única consulta.
// Un fallo de consulta o de lectura de filas es fatal (ErrDatasetUnavailable).
func (r *OrderRepo) Snapshot(ctx context.Context) (*entity.Dataset, error) {
	rows, err := r.q.Query(ctx, snapshotQuery)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("%w: tabla orders inexistente, ejecute migrations/001_orders.sql", domain.ErrDatasetUnavailable)
		}
		return nil, fmt.Errorf("%w: orders.Snapshot: %v", domain.ErrDatasetUnavailable, err)
	}
	defer rows.Close()

	dec := dataset.NewDecoder()
	orders := []entity.Order{}
	for rows.Next() {
		o, err := scanOrder(rows, dec)
		if err != nil {
			return nil, fmt.Errorf("%w: scan order: %v", domain.ErrDatasetUnavailable, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: orders.Snapshot: %v", domain.ErrDatasetUnavailable, err)
	}
	return &entity.Dataset{Orders: orders, Issues: dec.Issues()}, nil
}

// scanOrder columnas NUMERIC → decimal.Decimal vía el codec registrado en NewPool.
func scanOrder(rows pgx.Rows, dec *dataset.Decoder) (entity.Order, error) {
	var (
		o                  entity.Order
		customer, products *string
	)
	if err := rows.Scan(
		&o.ID, &o.Number, &o.Date, &o.InvoiceNumber,
		&o.Customer.ID, &customer,
		&o.Subtotal, &o.TotalWithTax,
		&o.PrimaryRate, &o.SecondaryRate,
		&products,
	); err != nil {
		return entity.Order{}, err
	}
	customerID := o.Customer.ID
	o.Customer = dec.Customer(o.ID, rawJSON(customer))
	if o.Customer.ID == "" {
		o.Customer.ID = customerID
	}
	o.Products = dec.Products(o.ID, rawJSON(products))
	return o, nil
}

func rawJSON(s *string) []byte {
	if s == nil {
		return nil
	}
	return []byte(*s)
}
