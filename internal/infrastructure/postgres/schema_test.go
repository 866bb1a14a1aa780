package postgres

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// order_date se guarda como texto para devolver la misma cadena que la fuente archivo.
func TestOrderDateSeConservaComoTexto(t *testing.T) {
	schema, err := os.ReadFile("migrations/001_orders.sql")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*order_date\s+TEXT\b`), string(schema))
	assert.Contains(t, snapshotQuery, "COALESCE(order_date, '')")
	assert.NotContains(t, snapshotQuery, "order_date::")
}
