package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// isNull verdadero para campos ausentes o null.
func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// unwrapEncoded devuelve el JSON real de un campo que puede llegar ya estructurado
// o serializado como string ("[{...}]"). Un string vacío equivale a ausente.
func unwrapEncoded(raw json.RawMessage) (json.RawMessage, error) {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || t[0] != '"' {
		return t, nil
	}
	var s string
	if err := json.Unmarshal(t, &s); err != nil {
		return nil, err
	}
	return json.RawMessage(strings.TrimSpace(s)), nil
}

// decodeNested decodifica un campo "string o estructura" en dst.
// Devuelve false sin error cuando el campo está ausente.
func decodeNested(raw json.RawMessage, dst any) (bool, error) {
	if isNull(raw) {
		return false, nil
	}
	inner, err := unwrapEncoded(raw)
	if err != nil {
		return false, err
	}
	if isNull(inner) {
		return false, nil
	}
	if err := json.Unmarshal(inner, dst); err != nil {
		return false, err
	}
	return true, nil
}

// unmarshalObject decodifica un elemento de lista que debe ser un objeto;
// null cuenta como ilegible.
func unmarshalObject(raw json.RawMessage, dst any) error {
	if isNull(raw) {
		return fmt.Errorf("elemento nulo")
	}
	return json.Unmarshal(raw, dst)
}

// flexDecimal acepta número JSON, string numérico, null o ausencia (cero).
func flexDecimal(raw json.RawMessage) (decimal.Decimal, error) {
	t := bytes.TrimSpace(raw)
	if isNull(t) {
		return decimal.Zero, nil
	}
	s := string(t)
	if t[0] == '"' {
		if err := json.Unmarshal(t, &s); err != nil {
			return decimal.Zero, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Zero, nil
		}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("número inválido %s", t)
	}
	return v, nil
}

// flexString acepta string o número (ids numéricos) y devuelve su texto.
func flexString(raw json.RawMessage) string {
	t := bytes.TrimSpace(raw)
	if isNull(t) {
		return ""
	}
	if t[0] == '"' {
		var s string
		if err := json.Unmarshal(t, &s); err == nil {
			return s
		}
	}
	return string(t)
}
