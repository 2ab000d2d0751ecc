package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jcastellanos/almacen-api/internal/application/inventory"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/domain"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	dominv "github.com/jcastellanos/almacen-api/internal/domain/inventory"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID  = "00000000-0000-0000-0000-000000000001"
	testBatchID = "10000000-0000-0000-0000-000000000001"
	shelfA      = "20000000-0000-0000-0000-00000000000a"
	shelfB      = "20000000-0000-0000-0000-00000000000b"
	shelfC      = "20000000-0000-0000-0000-00000000000c"
)

// store estado compartido de los fakes: batch_locations y el libro de movimientos.
type store struct {
	locations map[string]*entity.BatchLocation // clave batchID|shelfID
	movements []*entity.InventoryMovement
}

func key(batchID, shelfID string) string { return batchID + "|" + shelfID }

func (s *store) clone() *store {
	c := &store{locations: map[string]*entity.BatchLocation{}}
	for k, v := range s.locations {
		cp := *v
		c.locations[k] = &cp
	}
	c.movements = append(c.movements, s.movements...)
	return c
}

// fakeBLRepo BatchLocationRepository sobre el store. failUpsertShelf permite
// simular un fallo de escritura en una estantería concreta (pata destino).
type fakeBLRepo struct {
	s               *store
	failUpsertShelf string
}

func (f *fakeBLRepo) GetByID(id string) (*entity.BatchLocation, error) {
	for _, bl := range f.s.locations {
		if bl.ID == id {
			cp := *bl
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBLRepo) Get(batchID, shelfID string) (*entity.BatchLocation, error) {
	if bl, ok := f.s.locations[key(batchID, shelfID)]; ok {
		cp := *bl
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBLRepo) GetForUpdate(batchID, shelfID string) (*entity.BatchLocation, error) {
	if bl, ok := f.s.locations[key(batchID, shelfID)]; ok {
		cp := *bl
		return &cp, nil
	}
	// Igual que el adaptador real: fila en cero con ID vacío si no existe.
	return &entity.BatchLocation{
		BatchID:         batchID,
		ShelfLocationID: shelfID,
		Quantity:        decimal.Zero,
	}, nil
}

// Upsert replica la semántica del adaptador real: si el par ya existe suma
// delta sobre lo almacenado (nunca sobreescribe) y devuelve en bl.ID el ID de
// la fila persistida, igual que el RETURNING de la consulta.
func (f *fakeBLRepo) Upsert(bl *entity.BatchLocation, delta decimal.Decimal) error {
	if f.failUpsertShelf != "" && bl.ShelfLocationID == f.failUpsertShelf {
		return errors.New("fallo simulado de escritura")
	}
	if existing, ok := f.s.locations[key(bl.BatchID, bl.ShelfLocationID)]; ok {
		existing.Quantity = existing.Quantity.Add(delta)
		existing.UpdatedAt = bl.UpdatedAt
		existing.UpdatedBy = bl.UpdatedBy
		bl.ID = existing.ID
		return nil
	}
	cp := *bl
	f.s.locations[key(bl.BatchID, bl.ShelfLocationID)] = &cp
	return nil
}

func (f *fakeBLRepo) ListByBatch(batchID string) ([]*entity.BatchLocation, error) {
	var out []*entity.BatchLocation
	for _, bl := range f.s.locations {
		if bl.BatchID == batchID {
			cp := *bl
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeMovRepo struct {
	s *store
}

func (f *fakeMovRepo) Create(m *entity.InventoryMovement) error {
	cp := *m
	f.s.movements = append(f.s.movements, &cp)
	return nil
}

func (f *fakeMovRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	for _, m := range f.s.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovRepo) ListByBatchLocation(blID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range f.s.movements {
		if m.BatchLocationID == blID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeBatchRepo struct {
	batches map[string]*entity.Batch
}

func (f *fakeBatchRepo) Create(*entity.Batch) error          { return nil }
func (f *fakeBatchRepo) Update(*entity.Batch) error          { return nil }
func (f *fakeBatchRepo) GetByID(id string) (*entity.Batch, error) {
	return f.batches[id], nil
}
func (f *fakeBatchRepo) ListByProduct(string, int, int) ([]*entity.Batch, error) { return nil, nil }
func (f *fakeBatchRepo) List(int, int) ([]*entity.Batch, error)                  { return nil, nil }
func (f *fakeBatchRepo) ListRecent(int) ([]*entity.Batch, error)                 { return nil, nil }

type fakeShelfRepo struct {
	shelves map[string]*entity.ShelfLocation
}

func (f *fakeShelfRepo) Create(*entity.ShelfLocation) error { return nil }
func (f *fakeShelfRepo) Update(*entity.ShelfLocation) error { return nil }
func (f *fakeShelfRepo) GetByID(id string) (*entity.ShelfLocation, error) {
	return f.shelves[id], nil
}
func (f *fakeShelfRepo) GetByCode(string) (*entity.ShelfLocation, error)            { return nil, nil }
func (f *fakeShelfRepo) ListByArea(string, int, int) ([]*entity.ShelfLocation, error) { return nil, nil }
func (f *fakeShelfRepo) List(int, int) ([]*entity.ShelfLocation, error)             { return nil, nil }
func (f *fakeShelfRepo) Deactivate(string, string) error                            { return nil }

// fakeTxRunner serializa las transacciones con un mutex (equivalente al
// bloqueo de fila en los tests) y aplica los cambios sobre una copia: si fn
// falla, la copia se descarta y el estado queda intacto (Rollback).
type fakeTxRunner struct {
	mu              sync.Mutex
	s               *store
	failUpsertShelf string
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.InventoryMovementRepository, repository.BatchLocationRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	staging := r.s.clone()
	err := fn(&fakeMovRepo{s: staging}, &fakeBLRepo{s: staging, failUpsertShelf: r.failUpsertShelf})
	if err != nil {
		return err
	}
	// Commit: la copia pasa a ser el estado.
	r.s.locations = staging.locations
	r.s.movements = staging.movements
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Arranque de cada test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	s  *store
	tx *fakeTxRunner
	uc *appinv.MoveInventoryUseCase
}

func newFixture() *fixture {
	s := &store{locations: map[string]*entity.BatchLocation{}}
	tx := &fakeTxRunner{s: s}
	batches := &fakeBatchRepo{batches: map[string]*entity.Batch{
		testBatchID: {ID: testBatchID, ProductID: "p1", BatchNumber: "L-001"},
	}}
	shelves := &fakeShelfRepo{shelves: map[string]*entity.ShelfLocation{
		shelfA: {ID: shelfA, LocationCode: "A-01", IsActive: true},
		shelfB: {ID: shelfB, LocationCode: "B-01", IsActive: true},
		shelfC: {ID: shelfC, LocationCode: "C-01", IsActive: false},
	}}
	uc := appinv.NewMoveInventoryUseCase(tx, &fakeBLRepo{s: s}, batches, shelves, &fakeMovRepo{s: s})
	return &fixture{s: s, tx: tx, uc: uc}
}

// seed crea una batch-location con stock inicial.
func (f *fixture) seed(shelfID string, qty int64) *entity.BatchLocation {
	bl := &entity.BatchLocation{
		ID:              "bl-" + shelfID,
		BatchID:         testBatchID,
		ShelfLocationID: shelfID,
		Quantity:        decimal.NewFromInt(qty),
	}
	bl.Stamp(testUserID, time.Now())
	f.s.locations[key(testBatchID, shelfID)] = bl
	return bl
}

func (f *fixture) quantity(shelfID string) decimal.Decimal {
	bl, ok := f.s.locations[key(testBatchID, shelfID)]
	if !ok {
		return decimal.Zero
	}
	return bl.Quantity
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// IN
// ──────────────────────────────────────────────────────────────────────────────

// Una entrada sobre una estantería que el lote nunca tocó crea la fila.
func TestRegister_IN_CreaFilaNueva(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchID:         testBatchID,
		ShelfLocationID: shelfA,
		MovementType:    entity.MovementTypeIN,
		Quantity:        qty(10),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, f.quantity(shelfA).Equal(qty(10)), "la fila nueva debe quedar en 10")
	require.Len(t, f.s.movements, 1, "una sola entrada en el libro")
	assert.Equal(t, entity.MovementTypeIN, f.s.movements[0].MovementType)
	assert.Equal(t, testUserID, f.s.movements[0].CreatedBy, "el movimiento lleva el usuario que lo registró")
}

// Entradas sucesivas sobre la misma fila acumulan cantidad.
func TestRegister_IN_AcumulaSobreFilaExistente(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 7)

	_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchLocationID: bl.ID,
		MovementType:    entity.MovementTypeIN,
		Quantity:        qty(5),
	})
	require.NoError(t, err)

	assert.True(t, f.quantity(shelfA).Equal(qty(12)))
}

// Dos primeras entradas sobre un par inexistente pueden leer cero a la vez:
// el FOR UPDATE no bloquea una fila que no existe. El Upsert debe acumular
// sobre lo que insertó la otra transacción, nunca pisarlo, y quedarse con el
// ID de la fila que ganó la carrera.
func TestUpsert_PrimerContactoConcurrente_AcumulaSinPisar(t *testing.T) {
	f := newFixture()
	repo := &fakeBLRepo{s: f.s}

	// Ambas transacciones leen antes de que ninguna escriba.
	r1, err := repo.GetForUpdate(testBatchID, shelfA)
	require.NoError(t, err)
	r2, err := repo.GetForUpdate(testBatchID, shelfA)
	require.NoError(t, err)
	require.Empty(t, r1.ID)
	require.Empty(t, r2.ID)

	r1.ID = "bl-tx1"
	r1.Quantity = qty(5)
	r1.Stamp(testUserID, time.Now())
	require.NoError(t, repo.Upsert(r1, qty(5)))

	r2.ID = "bl-tx2"
	r2.Quantity = qty(5)
	r2.Stamp(testUserID, time.Now())
	require.NoError(t, repo.Upsert(r2, qty(5)))

	assert.True(t, f.quantity(shelfA).Equal(qty(10)), "las dos entradas deben sumar 10, no pisarse en 5")
	assert.Equal(t, "bl-tx1", r2.ID, "la segunda escritura adopta el ID de la fila ya persistida")
}

// ──────────────────────────────────────────────────────────────────────────────
// OUT
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_OUT_DescuentaStock(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 10)

	_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchLocationID: bl.ID,
		MovementType:    entity.MovementTypeOUT,
		Quantity:        qty(4),
	})
	require.NoError(t, err)

	assert.True(t, f.quantity(shelfA).Equal(qty(6)))
	require.Len(t, f.s.movements, 1)
	assert.Equal(t, entity.MovementTypeOUT, f.s.movements[0].MovementType)
}

// Una salida mayor que el stock se rechaza sin dejar rastro: ni cambia la
// cantidad ni se escribe en el libro.
func TestRegister_OUT_StockInsuficiente_SinEfectos(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 5)

	_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchLocationID: bl.ID,
		MovementType:    entity.MovementTypeOUT,
		Quantity:        qty(6),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, f.quantity(shelfA).Equal(qty(5)), "la cantidad no debe cambiar")
	assert.Empty(t, f.s.movements, "no debe escribirse en el libro")
}

// Dos salidas concurrentes de 6 sobre stock 10: exactamente una debe fallar.
func TestRegister_OUT_Concurrente_SoloUnaPasa(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 10)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
				BatchLocationID: bl.ID,
				MovementType:    entity.MovementTypeOUT,
				Quantity:        qty(6),
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var failures int
	for err := range results {
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			failures++
		}
	}
	assert.Equal(t, 1, failures, "exactamente una salida debe ser rechazada")
	assert.True(t, f.quantity(shelfA).Equal(qty(4)), "queda 10 - 6 = 4")
	assert.Len(t, f.s.movements, 1, "solo la salida aceptada entra al libro")
}

// ──────────────────────────────────────────────────────────────────────────────
// TRANSFER
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_TRANSFER_MueveEntreEstanterias(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 10)

	out, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchLocationID:       bl.ID,
		MovementType:          entity.MovementTypeTRANSFER,
		Quantity:              qty(4),
		DestinationLocationID: shelfB,
	})
	require.NoError(t, err)

	assert.True(t, f.quantity(shelfA).Equal(qty(6)), "origen descontado")
	assert.True(t, f.quantity(shelfB).Equal(qty(4)), "destino incrementado")

	// Una sola fila en el libro, colgada del origen y con el destino anotado.
	require.Len(t, f.s.movements, 1)
	mov := f.s.movements[0]
	assert.Equal(t, entity.MovementTypeTRANSFER, mov.MovementType)
	assert.Equal(t, bl.ID, mov.BatchLocationID)
	assert.Equal(t, shelfB, mov.DestinationLocationID)
	assert.Equal(t, shelfB, out.DestinationLocationID)
}

// Si la pata destino falla, la transacción entera se revierte: el origen
// recupera su cantidad y el libro queda intacto.
func TestRegister_TRANSFER_FalloEnDestino_RevierteTodo(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 10)
	f.tx.failUpsertShelf = shelfB

	_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchLocationID:       bl.ID,
		MovementType:          entity.MovementTypeTRANSFER,
		Quantity:              qty(4),
		DestinationLocationID: shelfB,
	})
	require.Error(t, err)

	assert.True(t, f.quantity(shelfA).Equal(qty(10)), "el origen no debe cambiar")
	assert.True(t, f.quantity(shelfB).Equal(qty(0)), "el destino no debe existir")
	assert.Empty(t, f.s.movements)
}

func TestRegister_TRANSFER_MismaEstanteria_Rechazado(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 10)

	_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchLocationID:       bl.ID,
		MovementType:          entity.MovementTypeTRANSFER,
		Quantity:              qty(4),
		DestinationLocationID: shelfA,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_TRANSFER_DestinoInactivo_Rechazado(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 10)

	_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchLocationID:       bl.ID,
		MovementType:          entity.MovementTypeTRANSFER,
		Quantity:              qty(4),
		DestinationLocationID: shelfC,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TRANSFER con más cantidad que el stock del origen también es stock insuficiente.
func TestRegister_TRANSFER_StockInsuficiente(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 3)

	_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchLocationID:       bl.ID,
		MovementType:          entity.MovementTypeTRANSFER,
		Quantity:              qty(4),
		DestinationLocationID: shelfB,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.quantity(shelfA).Equal(qty(3)))
	assert.True(t, f.quantity(shelfB).Equal(qty(0)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones y orígenes inexistentes
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CantidadInvalida(t *testing.T) {
	f := newFixture()
	bl := f.seed(shelfA, 10)

	for _, q := range []decimal.Decimal{decimal.Zero, qty(-3), decimal.NewFromFloat(2.5)} {
		_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
			BatchLocationID: bl.ID,
			MovementType:    entity.MovementTypeOUT,
			Quantity:        q,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %s debe rechazarse", q)
	}
}

func TestRegister_LoteInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchID:         "no-existe",
		ShelfLocationID: shelfA,
		MovementType:    entity.MovementTypeIN,
		Quantity:        qty(1),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EstanteriaInactiva_EnEntrada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Register(context.Background(), testUserID, dto.MoveInventoryRequest{
		BatchID:         testBatchID,
		ShelfLocationID: shelfC,
		MovementType:    entity.MovementTypeIN,
		Quantity:        qty(1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// El libro como fuente de verdad
// ──────────────────────────────────────────────────────────────────────────────

// ledgerEntries construye el libro anotando las coordenadas del origen de
// cada movimiento registrado en el store.
func ledgerEntries(f *fixture) []dominv.LedgerEntry {
	var entries []dominv.LedgerEntry
	for _, m := range f.s.movements {
		var srcShelf string
		for _, bl := range f.s.locations {
			if bl.ID == m.BatchLocationID {
				srcShelf = bl.ShelfLocationID
			}
		}
		entries = append(entries, dominv.LedgerEntry{Movement: m, BatchID: testBatchID, SourceLocationID: srcShelf})
	}
	return entries
}

// Tras una secuencia de movimientos, reproducir el libro da exactamente las
// cantidades materializadas en cada batch-location.
func TestRegister_ReplayDelLibroCoincideConCantidades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	steps := []dto.MoveInventoryRequest{
		{BatchID: testBatchID, ShelfLocationID: shelfA, MovementType: entity.MovementTypeIN, Quantity: qty(10)},
		{BatchID: testBatchID, ShelfLocationID: shelfA, MovementType: entity.MovementTypeOUT, Quantity: qty(3)},
		{BatchID: testBatchID, ShelfLocationID: shelfA, MovementType: entity.MovementTypeTRANSFER, Quantity: qty(4), DestinationLocationID: shelfB},
		{BatchID: testBatchID, ShelfLocationID: shelfB, MovementType: entity.MovementTypeIN, Quantity: qty(2)},
	}
	for _, in := range steps {
		_, err := f.uc.Register(ctx, testUserID, in)
		require.NoError(t, err)
	}

	entries := ledgerEntries(f)
	replayA := dominv.Replay(entries, testBatchID, shelfA)
	replayB := dominv.Replay(entries, testBatchID, shelfB)
	assert.True(t, replayA.Equal(f.quantity(shelfA)), "replay A=%s materializado=%s", replayA, f.quantity(shelfA))
	assert.True(t, replayB.Equal(f.quantity(shelfB)), "replay B=%s materializado=%s", replayB, f.quantity(shelfB))
	assert.True(t, f.quantity(shelfA).Equal(qty(3)))
	assert.True(t, f.quantity(shelfB).Equal(qty(6)))
}

// Un producto bajo su mínimo sale de la lista de bajo stock cuando una
// entrada lo repone; un TRANSFER no cambia su total y no afecta la membresía.
func TestRegister_BajoStock_EntradaCambiaMembresia(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	minimum := qty(5)
	batches := []string{testBatchID}

	_, err := f.uc.Register(ctx, testUserID, dto.MoveInventoryRequest{
		BatchID: testBatchID, ShelfLocationID: shelfA,
		MovementType: entity.MovementTypeIN, Quantity: qty(3),
	})
	require.NoError(t, err)

	total := dominv.ProductTotal(ledgerEntries(f), batches)
	assert.True(t, total.Equal(qty(3)))
	assert.True(t, dominv.BelowMinimum(total, minimum), "con 3 de 5 el producto está bajo stock")

	// Mover stock entre estanterías no repone nada.
	_, err = f.uc.Register(ctx, testUserID, dto.MoveInventoryRequest{
		BatchID: testBatchID, ShelfLocationID: shelfA,
		MovementType: entity.MovementTypeTRANSFER, Quantity: qty(2), DestinationLocationID: shelfB,
	})
	require.NoError(t, err)
	total = dominv.ProductTotal(ledgerEntries(f), batches)
	assert.True(t, dominv.BelowMinimum(total, minimum), "un TRANSFER no cambia el total del producto")

	_, err = f.uc.Register(ctx, testUserID, dto.MoveInventoryRequest{
		BatchID: testBatchID, ShelfLocationID: shelfA,
		MovementType: entity.MovementTypeIN, Quantity: qty(4),
	})
	require.NoError(t, err)

	total = dominv.ProductTotal(ledgerEntries(f), batches)
	assert.True(t, total.Equal(qty(7)))
	assert.False(t, dominv.BelowMinimum(total, minimum), "con 7 de 5 el producto ya no está bajo stock")

	// En el límite exacto tampoco: el criterio es estrictamente menor.
	assert.False(t, dominv.BelowMinimum(minimum, minimum))
}
