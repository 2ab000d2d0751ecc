package repository

import (
	"context"

	"github.com/jcastellanos/almacen-api/internal/domain/entity"
)

// SearchRepository define la búsqueda global por subcadena (case-insensitive).
type SearchRepository interface {
	// SearchProducts busca por nombre, código interno o código de fabricante.
	SearchProducts(ctx context.Context, q string, limit int) ([]*entity.Product, error)
	// SearchBatches busca por número de lote.
	SearchBatches(ctx context.Context, q string, limit int) ([]*entity.Batch, error)
	// SearchShelfLocations busca por código de ubicación.
	SearchShelfLocations(ctx context.Context, q string, limit int) ([]*entity.ShelfLocation, error)
}
