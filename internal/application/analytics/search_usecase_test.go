package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/almacen-api/internal/application/analytics"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
)

type fakeSearchRepo struct {
	products  []*entity.Product
	batches   []*entity.Batch
	shelves   []*entity.ShelfLocation
	lastQuery string
	err       error
}

func (f *fakeSearchRepo) SearchProducts(_ context.Context, q string, _ int) ([]*entity.Product, error) {
	f.lastQuery = q
	return f.products, f.err
}

func (f *fakeSearchRepo) SearchBatches(_ context.Context, q string, _ int) ([]*entity.Batch, error) {
	return f.batches, f.err
}

func (f *fakeSearchRepo) SearchShelfLocations(_ context.Context, q string, _ int) ([]*entity.ShelfLocation, error) {
	return f.shelves, f.err
}

func TestSearch_AgrupaPorTipo(t *testing.T) {
	repo := &fakeSearchRepo{
		products: []*entity.Product{{ID: "p-1", Name: "Tornillo M4", InternalCode: "INT-001"}},
		batches:  []*entity.Batch{{ID: "b-1", BatchNumber: "L-TOR-01"}},
		shelves:  []*entity.ShelfLocation{{ID: "s-1", LocationCode: "A-01", IsActive: true}},
	}
	uc := analytics.NewSearchUseCase(repo)

	out, err := uc.Search(context.Background(), "tor")
	require.NoError(t, err)

	assert.Equal(t, "tor", out.Query)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Tornillo M4", out.Products[0].Name)
	require.Len(t, out.Batches, 1)
	assert.Equal(t, "L-TOR-01", out.Batches[0].BatchNumber)
	require.Len(t, out.ShelfLocations, 1)
	assert.Equal(t, "A-01", out.ShelfLocations[0].LocationCode)
}

// Consulta vacía (o solo espacios): listas vacías sin consultar la DB.
func TestSearch_ConsultaVacia_NoTocaLaDB(t *testing.T) {
	repo := &fakeSearchRepo{err: errors.New("no debería llamarse")}
	uc := analytics.NewSearchUseCase(repo)

	for _, q := range []string{"", "   "} {
		out, err := uc.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, out.Products)
		assert.Empty(t, out.Batches)
		assert.Empty(t, out.ShelfLocations)
		assert.Empty(t, repo.lastQuery, "la consulta vacía no debe llegar al repositorio")
	}
}

func TestSearch_RecortaEspacios(t *testing.T) {
	repo := &fakeSearchRepo{}
	uc := analytics.NewSearchUseCase(repo)

	out, err := uc.Search(context.Background(), "  tornillo  ")
	require.NoError(t, err)
	assert.Equal(t, "tornillo", out.Query)
	assert.Equal(t, "tornillo", repo.lastQuery)
}

func TestSearch_ErrorSePropaga(t *testing.T) {
	repo := &fakeSearchRepo{err: errors.New("conexión perdida")}
	uc := analytics.NewSearchUseCase(repo)

	_, err := uc.Search(context.Background(), "algo")
	require.Error(t, err)
}
