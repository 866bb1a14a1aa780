package entity

// DecodeIssue registra un campo anidado que no se pudo decodificar y fue
// reemplazado por su valor vacío.
type DecodeIssue struct {
	OrderID string
	Field   string // ej: "products", "products[2].stocklogs"
	Err     error
}

// Dataset instantánea inmutable de órdenes. Se construye una vez por carga y se
// pasa explícitamente a la capa de cálculo; nadie la modifica después.
type Dataset struct {
	Orders []Order
	Issues []DecodeIssue
}
