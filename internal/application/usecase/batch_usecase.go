package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/domain"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

// BatchUseCase casos de uso CRUD para lotes recibidos.
type BatchUseCase struct {
	repo        repository.BatchRepository
	productRepo repository.ProductRepository
	blRepo      repository.BatchLocationRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(repo repository.BatchRepository, productRepo repository.ProductRepository, blRepo repository.BatchLocationRepository) *BatchUseCase {
	return &BatchUseCase{repo: repo, productRepo: productRepo, blRepo: blRepo}
}

// Create registra un lote recibido. El par (batch_number, product_id) es
// único: mismo número con otro producto es válido, con el mismo producto no.
func (uc *BatchUseCase) Create(userID string, in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	if len(in.Validate()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	received := time.Now()
	if in.ReceivedDate != nil {
		received = *in.ReceivedDate
	}
	batch := &entity.Batch{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		BatchNumber:  in.BatchNumber,
		ReceivedDate: received,
		Notes:        in.Notes,
	}
	batch.Stamp(userID, time.Now())
	if err := uc.repo.Create(batch); err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// GetByID obtiene un lote por ID.
func (uc *BatchUseCase) GetByID(id string) (*dto.BatchResponse, error) {
	batch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, nil
	}
	return toBatchResponse(batch), nil
}

// Update actualiza las notas del lote. El número de lote y el producto son
// inmutables: el historial de movimientos depende de ellos.
func (uc *BatchUseCase) Update(id, userID string, notes string) (*dto.BatchResponse, error) {
	batch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, nil
	}
	batch.Notes = notes
	batch.Touch(userID, time.Now())
	if err := uc.repo.Update(batch); err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// List lista lotes, opcionalmente filtrados por producto.
func (uc *BatchUseCase) List(productID string, limit, offset int) ([]dto.BatchResponse, error) {
	var list []*entity.Batch
	var err error
	if productID != "" {
		list, err = uc.repo.ListByProduct(productID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBatchResponse(b))
	}
	return items, nil
}

// Locations devuelve dónde está el lote y en qué cantidad.
func (uc *BatchUseCase) Locations(batchID string) ([]dto.BatchLocationResponse, error) {
	batch, err := uc.repo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.blRepo.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BatchLocationResponse, 0, len(list))
	for _, bl := range list {
		items = append(items, dto.BatchLocationResponse{
			ID:              bl.ID,
			BatchID:         bl.BatchID,
			ShelfLocationID: bl.ShelfLocationID,
			Quantity:        bl.Quantity,
			UpdatedAt:       bl.UpdatedAt,
		})
	}
	return items, nil
}

func toBatchResponse(b *entity.Batch) *dto.BatchResponse {
	if b == nil {
		return nil
	}
	return &dto.BatchResponse{
		ID:           b.ID,
		ProductID:    b.ProductID,
		BatchNumber:  b.BatchNumber,
		ReceivedDate: b.ReceivedDate,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
