package entity

// Customer referencia al cliente de una orden.
type Customer struct {
	ID          string
	CompanyName string
}
