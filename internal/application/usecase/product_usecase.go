package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/domain"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se maneja por
// lote y estantería vía movimientos, nunca editando el producto.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un nuevo producto. InternalCode es único (ErrDuplicate si choca).
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if len(in.Validate()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Description:      in.Description,
		ManufacturerCode: in.ManufacturerCode,
		InternalCode:     in.InternalCode,
		CategoryID:       in.CategoryID,
		MinimumStock:     in.MinimumStock,
		IsActive:         true,
	}
	product.Stamp(userID, time.Now())
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza el dato maestro. InternalCode no se modifica.
func (uc *ProductUseCase) Update(id, userID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	product.Description = in.Description
	product.ManufacturerCode = in.ManufacturerCode
	if in.CategoryID != "" {
		product.CategoryID = in.CategoryID
	}
	if !in.MinimumStock.IsNegative() {
		product.MinimumStock = in.MinimumStock
	}
	product.Touch(userID, time.Now())
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Deactivate retira el producto (is_active = false); nunca se borra la fila.
func (uc *ProductUseCase) Deactivate(id, userID string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id, userID)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
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
	}
}
