package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

const searchLimitPerKind = 25 // resultados máximos por tipo de entidad

// SearchUseCase búsqueda global por subcadena (case-insensitive) sobre
// productos, lotes y estanterías.
type SearchUseCase struct {
	repo repository.SearchRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(repo repository.SearchRepository) *SearchUseCase {
	return &SearchUseCase{repo: repo}
}

// Search lanza las tres consultas en paralelo y arma el resultado.
// Una consulta vacía devuelve un resultado vacío sin tocar la DB.
func (uc *SearchUseCase) Search(ctx context.Context, q string) (*dto.SearchResultDTO, error) {
	q = strings.TrimSpace(q)
	out := &dto.SearchResultDTO{
		Query:          q,
		Products:       []dto.ProductResponse{},
		Batches:        []dto.BatchResponse{},
		ShelfLocations: []dto.ShelfLocationResponse{},
	}
	if q == "" {
		return out, nil
	}

	type result struct {
		kind string
		err  error
	}
	ch := make(chan result, 3)

	go func() {
		products, err := uc.repo.SearchProducts(ctx, q, searchLimitPerKind)
		if err == nil {
			for _, p := range products {
				out.Products = append(out.Products, dto.ProductResponse{
					ID:               p.ID,
					Name:             p.Name,
					Description:      p.Description,
					ManufacturerCode: p.ManufacturerCode,
					InternalCode:     p.InternalCode,
					CategoryID:       p.CategoryID,
					MinimumStock:     p.MinimumStock,
					IsActive:         p.IsActive,
					CreatedAt:        p.CreatedAt,
					UpdatedAt:        p.UpdatedAt,
				})
			}
		}
		ch <- result{"productos", err}
	}()
	go func() {
		batches, err := uc.repo.SearchBatches(ctx, q, searchLimitPerKind)
		if err == nil {
			for _, b := range batches {
				out.Batches = append(out.Batches, dto.BatchResponse{
					ID:           b.ID,
					ProductID:    b.ProductID,
					BatchNumber:  b.BatchNumber,
					ReceivedDate: b.ReceivedDate,
					Notes:        b.Notes,
					CreatedAt:    b.CreatedAt,
					UpdatedAt:    b.UpdatedAt,
				})
			}
		}
		ch <- result{"lotes", err}
	}()
	go func() {
		locations, err := uc.repo.SearchShelfLocations(ctx, q, searchLimitPerKind)
		if err == nil {
			for _, l := range locations {
				out.ShelfLocations = append(out.ShelfLocations, dto.ShelfLocationResponse{
					ID:           l.ID,
					LocationCode: l.LocationCode,
					AreaID:       l.AreaID,
					Description:  l.Description,
					IsActive:     l.IsActive,
					CreatedAt:    l.CreatedAt,
					UpdatedAt:    l.UpdatedAt,
				})
			}
		}
		ch <- result{"ubicaciones", err}
	}()

	for i := 0; i < 3; i++ {
		r := <-ch
		if r.err != nil {
			return nil, fmt.Errorf("búsqueda de %s: %w", r.kind, r.err)
		}
	}
	return out, nil
}
