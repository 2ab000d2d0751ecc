package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/domain"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para áreas del almacén y sus estanterías.
type WarehouseUseCase struct {
	areaRepo  repository.WarehouseAreaRepository
	shelfRepo repository.ShelfLocationRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(areaRepo repository.WarehouseAreaRepository, shelfRepo repository.ShelfLocationRepository) *WarehouseUseCase {
	return &WarehouseUseCase{areaRepo: areaRepo, shelfRepo: shelfRepo}
}

// CreateArea crea un área. El nombre es único (ErrDuplicate si choca).
func (uc *WarehouseUseCase) CreateArea(userID string, in dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	area := &entity.WarehouseArea{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}
	area.Stamp(userID, time.Now())
	if err := uc.areaRepo.Create(area); err != nil {
		return nil, err
	}
	return toAreaResponse(area), nil
}

// GetArea obtiene un área por ID.
func (uc *WarehouseUseCase) GetArea(id string) (*dto.AreaResponse, error) {
	area, err := uc.areaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, nil
	}
	return toAreaResponse(area), nil
}

// ListAreas lista áreas con paginación.
func (uc *WarehouseUseCase) ListAreas(limit, offset int) ([]dto.AreaResponse, error) {
	list, err := uc.areaRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AreaResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAreaResponse(a))
	}
	return items, nil
}

// UpdateArea actualiza nombre y descripción de un área.
func (uc *WarehouseUseCase) UpdateArea(id, userID string, in dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	area, err := uc.areaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, nil
	}
	area.Name = in.Name
	area.Description = in.Description
	area.Touch(userID, time.Now())
	if err := uc.areaRepo.Update(area); err != nil {
		return nil, err
	}
	return toAreaResponse(area), nil
}

// CreateShelfLocation crea una estantería dentro de un área existente.
func (uc *WarehouseUseCase) CreateShelfLocation(userID string, in dto.CreateShelfLocationRequest) (*dto.ShelfLocationResponse, error) {
	if len(in.Validate()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	area, err := uc.areaRepo.GetByID(in.AreaID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	loc := &entity.ShelfLocation{
		ID:           uuid.New().String(),
		LocationCode: in.LocationCode,
		AreaID:       in.AreaID,
		Description:  in.Description,
		IsActive:     true,
	}
	loc.Stamp(userID, time.Now())
	if err := uc.shelfRepo.Create(loc); err != nil {
		return nil, err
	}
	return toShelfLocationResponse(loc), nil
}

// GetShelfLocation obtiene una estantería por ID.
func (uc *WarehouseUseCase) GetShelfLocation(id string) (*dto.ShelfLocationResponse, error) {
	loc, err := uc.shelfRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	return toShelfLocationResponse(loc), nil
}

// UpdateShelfLocation actualiza la descripción de una estantería. El código y
// el área son inmutables: los movimientos registrados referencian la ubicación.
func (uc *WarehouseUseCase) UpdateShelfLocation(id, userID string, description string) (*dto.ShelfLocationResponse, error) {
	loc, err := uc.shelfRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	loc.Description = description
	loc.Touch(userID, time.Now())
	if err := uc.shelfRepo.Update(loc); err != nil {
		return nil, err
	}
	return toShelfLocationResponse(loc), nil
}

// ListShelfLocations lista estanterías, opcionalmente filtradas por área.
func (uc *WarehouseUseCase) ListShelfLocations(areaID string, limit, offset int) ([]dto.ShelfLocationResponse, error) {
	var list []*entity.ShelfLocation
	var err error
	if areaID != "" {
		list, err = uc.shelfRepo.ListByArea(areaID, limit, offset)
	} else {
		list, err = uc.shelfRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShelfLocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toShelfLocationResponse(l))
	}
	return items, nil
}

// DeactivateShelfLocation retira la estantería (is_active = false).
func (uc *WarehouseUseCase) DeactivateShelfLocation(id, userID string) error {
	loc, err := uc.shelfRepo.GetByID(id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return uc.shelfRepo.Deactivate(id, userID)
}

func toAreaResponse(a *entity.WarehouseArea) *dto.AreaResponse {
	if a == nil {
		return nil
	}
	return &dto.AreaResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toShelfLocationResponse(l *entity.ShelfLocation) *dto.ShelfLocationResponse {
	if l == nil {
		return nil
	}
	return &dto.ShelfLocationResponse{
		ID:           l.ID,
		LocationCode: l.LocationCode,
		AreaID:       l.AreaID,
		Description:  l.Description,
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
