// Package analytics contiene los casos de uso de lectura: el dashboard de
// inventario y la búsqueda global.
package analytics

import (
	"context"
	"fmt"

	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const dashboardRecentBatches = 5 // lotes en el widget de recibidos recientes

// DashboardUseCase genera el resumen general del inventario.
//
// Fuente de datos: DashboardRepository (consultas read-only) más los
// repositorios de lotes y áreas para los widgets de listado.
type DashboardUseCase struct {
	dashRepo  repository.DashboardRepository
	batchRepo repository.BatchRepository
	areaRepo  repository.WarehouseAreaRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	dashRepo repository.DashboardRepository,
	batchRepo repository.BatchRepository,
	areaRepo repository.WarehouseAreaRepository,
) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, batchRepo: batchRepo, areaRepo: areaRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco consultas independientes lanzadas en paralelo:
//  1. CountProducts            → TotalProducts
//  2. TotalInventory           → TotalInventory
//  3. ListLowStock             → LowStock
//  4. ListRecent(5)            → RecentBatches
//  5. ListAll áreas            → WarehouseAreas
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	type lowStockResult struct {
		items []repository.LowStockItem
		err   error
	}
	type batchesResult struct {
		batches []*entity.Batch
		err     error
	}
	type areasResult struct {
		areas []*entity.WarehouseArea
		err   error
	}

	countCh := make(chan countResult, 1)
	totalCh := make(chan totalResult, 1)
	lowCh := make(chan lowStockResult, 1)
	batchCh := make(chan batchesResult, 1)
	areaCh := make(chan areasResult, 1)

	go func() {
		n, err := uc.dashRepo.CountProducts(ctx)
		countCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.dashRepo.TotalInventory(ctx)
		totalCh <- totalResult{total, err}
	}()
	go func() {
		items, err := uc.dashRepo.ListLowStock(ctx)
		lowCh <- lowStockResult{items, err}
	}()
	go func() {
		batches, err := uc.batchRepo.ListRecent(dashboardRecentBatches)
		batchCh <- batchesResult{batches, err}
	}()
	go func() {
		areas, err := uc.areaRepo.ListAll()
		areaCh <- areasResult{areas, err}
	}()

	count := <-countCh
	total := <-totalCh
	low := <-lowCh
	batches := <-batchCh
	areas := <-areaCh

	if count.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", count.err)
	}
	if total.err != nil {
		return nil, fmt.Errorf("dashboard: inventario total: %w", total.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if batches.err != nil {
		return nil, fmt.Errorf("dashboard: lotes recientes: %w", batches.err)
	}
	if areas.err != nil {
		return nil, fmt.Errorf("dashboard: áreas: %w", areas.err)
	}

	lowStock := make([]dto.LowStockProductDTO, 0, len(low.items))
	for _, it := range low.items {
		lowStock = append(lowStock, dto.LowStockProductDTO{
			ProductID:    it.ProductID,
			InternalCode: it.InternalCode,
			Name:         it.ProductName,
			TotalStock:   it.TotalStock,
			MinimumStock: it.MinimumStock,
		})
	}

	recent := make([]dto.BatchResponse, 0, len(batches.batches))
	for _, b := range batches.batches {
		recent = append(recent, dto.BatchResponse{
			ID:           b.ID,
			ProductID:    b.ProductID,
			BatchNumber:  b.BatchNumber,
			ReceivedDate: b.ReceivedDate,
			Notes:        b.Notes,
			CreatedAt:    b.CreatedAt,
			UpdatedAt:    b.UpdatedAt,
		})
	}

	areaDTOs := make([]dto.AreaResponse, 0, len(areas.areas))
	for _, a := range areas.areas {
		areaDTOs = append(areaDTOs, dto.AreaResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:  count.n,
		TotalInventory: total.total,
		LowStock:       lowStock,
		RecentBatches:  recent,
		WarehouseAreas: areaDTOs,
	}, nil
}
