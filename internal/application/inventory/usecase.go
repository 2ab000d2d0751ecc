package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/domain"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

// MoveInventoryUseCase registra movimientos de inventario de forma
// transaccional (IN, OUT, TRANSFER) con bloqueo de fila (SELECT FOR UPDATE)
// sobre batch_locations y Commit/Rollback.
type MoveInventoryUseCase struct {
	txRunner  TxRunner
	blRepo    repository.BatchLocationRepository
	batchRepo repository.BatchRepository
	shelfRepo repository.ShelfLocationRepository
	movRepo   repository.InventoryMovementRepository // lecturas fuera de tx
}

// NewMoveInventoryUseCase construye el caso de uso.
func NewMoveInventoryUseCase(
	txRunner TxRunner,
	blRepo repository.BatchLocationRepository,
	batchRepo repository.BatchRepository,
	shelfRepo repository.ShelfLocationRepository,
	movRepo repository.InventoryMovementRepository,
) *MoveInventoryUseCase {
	return &MoveInventoryUseCase{
		txRunner:  txRunner,
		blRepo:    blRepo,
		batchRepo: batchRepo,
		shelfRepo: shelfRepo,
		movRepo:   movRepo,
	}
}

// Register valida el movimiento, resuelve el origen (batch_location_id o par
// batch_id + shelf_location_id), inicia una transacción, bloquea las filas
// afectadas y aplica la lógica según tipo. Cualquier fallo hace Rollback sin
// estado parcial observable.
func (uc *MoveInventoryUseCase) Register(ctx context.Context, userID string, in dto.MoveInventoryRequest) (*dto.MovementResponse, error) {
	if len(in.Validate()) > 0 {
		return nil, domain.ErrInvalidInput
	}

	// Resolver coordenadas del origen fuera de la tx (solo lecturas de catálogo).
	batchID, locationID := in.BatchID, in.ShelfLocationID
	if in.BatchLocationID != "" {
		bl, err := uc.blRepo.GetByID(in.BatchLocationID)
		if err != nil {
			return nil, err
		}
		if bl == nil {
			return nil, domain.ErrNotFound
		}
		batchID, locationID = bl.BatchID, bl.ShelfLocationID
	} else {
		batch, err := uc.batchRepo.GetByID(batchID)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			return nil, domain.ErrNotFound
		}
		loc, err := uc.shelfRepo.GetByID(locationID)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.ErrNotFound
		}
		if !loc.IsActive {
			return nil, domain.ErrInvalidInput
		}
	}

	if in.MovementType == entity.MovementTypeTRANSFER {
		if in.DestinationLocationID == locationID {
			return nil, domain.ErrInvalidInput
		}
		dest, err := uc.shelfRepo.GetByID(in.DestinationLocationID)
		if err != nil {
			return nil, err
		}
		if dest == nil {
			return nil, domain.ErrNotFound
		}
		if !dest.IsActive {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	var applied *entity.InventoryMovement

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace).
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		blRepo repository.BatchLocationRepository,
	) error {
		mov, err := uc.apply(movRepo, blRepo, batchID, locationID, userID, in, now)
		if err != nil {
			return err
		}
		applied = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(applied), nil
}

// apply ejecuta las patas del movimiento con los repos de la transacción.
func (uc *MoveInventoryUseCase) apply(
	movRepo repository.InventoryMovementRepository,
	blRepo repository.BatchLocationRepository,
	batchID, locationID, userID string,
	in dto.MoveInventoryRequest,
	now time.Time,
) (*entity.InventoryMovement, error) {
	// Bloquea la fila origen (SELECT FOR UPDATE) para que dos movimientos
	// concurrentes no pasen ambos el chequeo de stock.
	src, err := blRepo.GetForUpdate(batchID, locationID)
	if err != nil {
		return nil, err
	}

	// El ajuste se aplica como delta relativo: sobre una fila bloqueada da lo
	// mismo que el valor absoluto, y sobre un par recién creado (donde el FOR
	// UPDATE no bloqueó nada) el Upsert acumula en vez de pisar.
	delta := in.Quantity
	switch in.MovementType {
	case entity.MovementTypeOUT, entity.MovementTypeTRANSFER:
		if src.Quantity.LessThan(in.Quantity) {
			return nil, domain.ErrInsufficientStock
		}
		delta = in.Quantity.Neg()
	}
	src.Quantity = src.Quantity.Add(delta)

	if src.ID == "" {
		// Primera vez que el lote toca esta estantería: crear la fila.
		src.ID = uuid.New().String()
		src.Stamp(userID, now)
	} else {
		src.Touch(userID, now)
	}
	if err := blRepo.Upsert(src, delta); err != nil {
		return nil, err
	}

	if in.MovementType == entity.MovementTypeTRANSFER {
		// Pata destino: misma transacción, mismo lote, estantería destino.
		dest, err := blRepo.GetForUpdate(batchID, in.DestinationLocationID)
		if err != nil {
			return nil, err
		}
		dest.Quantity = dest.Quantity.Add(in.Quantity)
		if dest.ID == "" {
			dest.ID = uuid.New().String()
			dest.Stamp(userID, now)
		} else {
			dest.Touch(userID, now)
		}
		if err := blRepo.Upsert(dest, in.Quantity); err != nil {
			return nil, err
		}
	}

	// Una sola fila inmutable en el libro; para TRANSFER cuelga del origen
	// con la estantería destino anotada.
	mov := &entity.InventoryMovement{
		ID:                    uuid.New().String(),
		BatchLocationID:       src.ID,
		MovementType:          in.MovementType,
		Quantity:              in.Quantity,
		Reference:             in.Reference,
		Notes:                 in.Notes,
		DestinationLocationID: in.DestinationLocationID,
	}
	mov.Stamp(userID, now)
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// ListMovements devuelve el libro de una batch-location (paginado).
func (uc *MoveInventoryUseCase) ListMovements(batchLocationID string, from, to *time.Time, limit, offset int) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.ListByBatchLocation(batchLocationID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:                    m.ID,
		BatchLocationID:       m.BatchLocationID,
		MovementType:          m.MovementType,
		Quantity:              m.Quantity,
		Reference:             m.Reference,
		Notes:                 m.Notes,
		DestinationLocationID: m.DestinationLocationID,
		CreatedAt:             m.CreatedAt,
		CreatedBy:             m.CreatedBy,
	}
}
