// Package dataset decodifica el documento de órdenes en las entidades tipadas.
//
// Los campos anidados (customer, products, attributes, stocklogs) pueden llegar
// como JSON estructurado o como un string con JSON dentro. Se resuelven aquí una
// sola vez; del decodificador hacia adentro todo es tipado y los numéricos
// ausentes ya valen cero.
package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

type rawDocument struct {
	Orders []json.RawMessage `json:"orders"`
}

type rawOrder struct {
	OrderID       json.RawMessage `json:"order_id"`
	OrderNumber   json.RawMessage `json:"order_number"`
	OrderDate     json.RawMessage `json:"order_date"`
	InvoiceNumber json.RawMessage `json:"invoice_number"`
	CustomerID    json.RawMessage `json:"customer_id"`
	Customer      json.RawMessage `json:"customer"`
	Subtotal      json.RawMessage `json:"subtotal"`
	TotalWithTax  json.RawMessage `json:"total_with_tax"`
	PrimaryRate   json.RawMessage `json:"primary_rate"`
	SecondaryRate json.RawMessage `json:"secondary_rate"`
	Products      json.RawMessage `json:"products"`
}

type rawCustomer struct {
	ID          json.RawMessage `json:"id"`
	CompanyName json.RawMessage `json:"companyname"`
}

type rawProduct struct {
	ProductName json.RawMessage `json:"product_name"`
	Quantity    json.RawMessage `json:"quantity"`
	Unit        json.RawMessage `json:"product_unit"`
	UnitPrice   json.RawMessage `json:"unit_price"`
	TotalPrice  json.RawMessage `json:"total_price"`
	Attributes  json.RawMessage `json:"attributes"`
	StockLogs   json.RawMessage `json:"stocklogs"`
}

type rawStockLog struct {
	StockQuantity json.RawMessage `json:"stock_quantity"`
	StockCost     json.RawMessage `json:"stock_cost"`
	ShipmentCost  json.RawMessage `json:"shipment_cost"`
	CreditCost    json.RawMessage `json:"credit_cost"`
}

// Decode convierte el documento completo {"orders": [...]} en un Dataset.
// Solo un documento ilegible es fatal (ErrDatasetUnavailable); cualquier otro
// problema queda registrado en Dataset.Issues y se sustituye por su valor vacío.
func Decode(raw []byte) (*entity.Dataset, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetUnavailable, err)
	}
	dec := NewDecoder()
	orders := make([]entity.Order, 0, len(doc.Orders))
	for i, r := range doc.Orders {
		if o, ok := dec.Order(i, r); ok {
			orders = append(orders, o)
		}
	}
	return &entity.Dataset{Orders: orders, Issues: dec.Issues()}, nil
}

// Decoder acumula los DecodeIssue encontrados mientras decodifica.
// No es seguro para uso concurrente; se crea uno por carga.
type Decoder struct {
	issues []entity.DecodeIssue
}

// NewDecoder construye un decodificador vacío.
func NewDecoder() *Decoder { return &Decoder{} }

// Issues problemas recuperados hasta el momento.
func (d *Decoder) Issues() []entity.DecodeIssue { return d.issues }

func (d *Decoder) issue(orderID, field string, err error) {
	d.issues = append(d.issues, entity.DecodeIssue{
		OrderID: orderID,
		Field:   field,
		Err:     fmt.Errorf("%w: %v", domain.ErrDecode, err),
	})
}

// number decodifica un numérico opcional; si es inválido lo registra y usa cero.
func (d *Decoder) number(orderID, field string, raw json.RawMessage) decimal.Decimal {
	v, err := flexDecimal(raw)
	if err != nil {
		d.issue(orderID, field, err)
		return decimal.Zero
	}
	return v
}

// Order decodifica una orden. Devuelve false solo si el elemento no es un objeto;
// en ese caso la orden se omite y sus hermanas siguen procesándose.
func (d *Decoder) Order(index int, raw json.RawMessage) (entity.Order, bool) {
	var r rawOrder
	if err := json.Unmarshal(raw, &r); err != nil {
		d.issue(fmt.Sprintf("#%d", index), "order", err)
		return entity.Order{}, false
	}
	id := flexString(r.OrderID)
	o := entity.Order{
		ID:            id,
		Number:        flexString(r.OrderNumber),
		InvoiceNumber: flexString(r.InvoiceNumber),
		Date:          flexString(r.OrderDate),
		Subtotal:      d.number(id, "subtotal", r.Subtotal),
		TotalWithTax:  d.number(id, "total_with_tax", r.TotalWithTax),
		PrimaryRate:   d.number(id, "primary_rate", r.PrimaryRate),
		SecondaryRate: d.number(id, "secondary_rate", r.SecondaryRate),
	}
	o.Customer = d.Customer(id, r.Customer)
	if o.Customer.ID == "" {
		o.Customer.ID = flexString(r.CustomerID)
	}
	o.Products = d.Products(id, r.Products)
	return o, true
}

// Customer decodifica la referencia al cliente; ilegible → cliente vacío.
func (d *Decoder) Customer(orderID string, raw json.RawMessage) entity.Customer {
	var rc rawCustomer
	if _, err := decodeNested(raw, &rc); err != nil {
		d.issue(orderID, "customer", err)
		return entity.Customer{}
	}
	return entity.Customer{ID: flexString(rc.ID), CompanyName: flexString(rc.CompanyName)}
}

// Products decodifica las líneas de la orden; una lista ilegible se reemplaza por
// una lista vacía (la orden queda con costo cero). Un elemento ilegible se omite
// sin afectar a sus hermanos.
func (d *Decoder) Products(orderID string, raw json.RawMessage) []entity.Product {
	var elems []json.RawMessage
	if _, err := decodeNested(raw, &elems); err != nil {
		d.issue(orderID, "products", err)
		return []entity.Product{}
	}
	products := make([]entity.Product, 0, len(elems))
	for i, elem := range elems {
		field := fmt.Sprintf("products[%d]", i)
		var rp rawProduct
		if err := unmarshalObject(elem, &rp); err != nil {
			d.issue(orderID, field, err)
			continue
		}
		products = append(products, entity.Product{
			Name:       flexString(rp.ProductName),
			Quantity:   d.number(orderID, field+".quantity", rp.Quantity),
			Unit:       flexString(rp.Unit),
			UnitPrice:  d.number(orderID, field+".unit_price", rp.UnitPrice),
			TotalPrice: d.number(orderID, field+".total_price", rp.TotalPrice),
			Attributes: d.attributes(orderID, field+".attributes", rp.Attributes),
			StockLogs:  d.stockLogs(orderID, field+".stocklogs", rp.StockLogs),
		})
	}
	return products
}

// attributes se devuelve tal cual venga (objeto, lista o escalar). Un string con
// JSON se decodifica; si no es JSON válido se conserva el string original.
// Ausente → objeto vacío.
func (d *Decoder) attributes(orderID, field string, raw json.RawMessage) any {
	var attrs any
	ok, err := decodeNested(raw, &attrs)
	if err != nil {
		d.issue(orderID, field, err)
		return flexString(raw)
	}
	if !ok {
		return map[string]any{}
	}
	return attrs
}

// stockLogs decodifica el historial de stock; ilegible → historial vacío (costo 0).
// Un movimiento ilegible se omite y el resto sigue sumando.
func (d *Decoder) stockLogs(orderID, field string, raw json.RawMessage) []entity.StockMovement {
	var elems []json.RawMessage
	if _, err := decodeNested(raw, &elems); err != nil {
		d.issue(orderID, field, err)
		return nil
	}
	logs := make([]entity.StockMovement, 0, len(elems))
	for i, elem := range elems {
		f := fmt.Sprintf("%s[%d]", field, i)
		var rl rawStockLog
		if err := unmarshalObject(elem, &rl); err != nil {
			d.issue(orderID, f, err)
			continue
		}
		logs = append(logs, entity.StockMovement{
			Quantity:     d.number(orderID, f+".stock_quantity", rl.StockQuantity),
			StockCost:    d.number(orderID, f+".stock_cost", rl.StockCost),
			ShipmentCost: d.number(orderID, f+".shipment_cost", rl.ShipmentCost),
			CreditCost:   d.number(orderID, f+".credit_cost", rl.CreditCost),
		})
	}
	return logs
}
