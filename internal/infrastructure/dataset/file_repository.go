package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var _ repository.OrderRepository = (*FileOrderRepository)(nil)

// Codificaciones de archivo soportadas.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "iso-8859-1"
)

// FileOrderRepository lee el dataset desde un archivo JSON en cada llamada.
type FileOrderRepository struct {
	path     string
	encoding string
}

// NewFileOrderRepository construye el repositorio. encoding vacío equivale a UTF-8.
func NewFileOrderRepository(path, encoding string) *FileOrderRepository {
	return &FileOrderRepository{path: path, encoding: strings.ToLower(strings.TrimSpace(encoding))}
}

// Snapshot lee y decodifica el archivo completo.
func (r *FileOrderRepository) Snapshot(ctx context.Context) (*entity.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir %s: %v", domain.ErrDatasetUnavailable, r.path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(NewReader(f, r.encoding))
	if err != nil {
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrDatasetUnavailable, r.path, err)
	}
	return Decode(raw)
}

// NewReader envuelve input para transcodificar ISO-8859-1 a UTF-8 cuando se indica.
func NewReader(input io.Reader, encoding string) io.Reader {
	switch strings.ToLower(encoding) {
	case EncodingLatin1, "iso8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder())
	default:
		return input
	}
}
