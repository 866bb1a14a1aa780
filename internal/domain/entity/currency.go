package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
)

// Currency código de moneda de presentación.
type Currency string

// Monedas soportadas. USD es la moneda base de todos los montos del dataset.
const (
	CurrencyUSD Currency = "USD"
	CurrencyTL  Currency = "TL"
)

// BaseCurrency moneda en la que se expresan subtotales y costos tras aplicar primary_rate.
const BaseCurrency = CurrencyUSD

// SupportedCurrencies lista cerrada de monedas aceptadas por las consultas.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyTL}

// ParseCurrency normaliza el código recibido. Vacío equivale a la moneda base;
// cualquier otro valor fuera de SupportedCurrencies devuelve domain.ErrUnsupportedCurrency.
func ParseCurrency(s string) (Currency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BaseCurrency, nil
	}
	for _, c := range SupportedCurrencies {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, s)
}

// IsBase indica si la moneda es la moneda base (conversión identidad).
func (c Currency) IsBase() bool { return c == BaseCurrency }

func (c Currency) String() string { return string(c) }
