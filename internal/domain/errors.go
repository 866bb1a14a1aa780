package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnsupportedCurrency = errors.New("moneda no soportada")
	ErrDatasetUnavailable  = errors.New("dataset de órdenes no disponible")
	ErrDecode              = errors.New("campo codificado ilegible")
)
