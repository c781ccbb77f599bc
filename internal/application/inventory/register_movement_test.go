package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/inventory"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// Fakes mínimos: solo lo que Record ejercita dentro de la transacción.

type fakeProducts struct {
	byID map[string]*entity.Product
}

func (f *fakeProducts) Create(p *entity.Product) error              { return nil }
func (f *fakeProducts) GetByID(id string) (*entity.Product, error)  { return f.byID[id], nil }
func (f *fakeProducts) Update(p *entity.Product) error              { return nil }
func (f *fakeProducts) UpdateStock(id string, stock int) error {
	if p, ok := f.byID[id]; ok {
		p.StockQuantity = stock
	}
	return nil
}
func (f *fakeProducts) List(_, _ string, _, _ int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProducts) Count(_, _ string) (int, error)                        { return 0, nil }
func (f *fakeProducts) LowStock() ([]*entity.Product, error)                  { return nil, nil }
func (f *fakeProducts) Delete(_ string) error                                 { return nil }

type fakeStockItems struct {
	synced map[string]int // product_code → último stock sincronizado
}

func (f *fakeStockItems) Create(_ *entity.StockItem) error { return nil }
func (f *fakeStockItems) SyncByProductCode(code, _ string, stock int, _ time.Time) error {
	f.synced[code] = stock
	return nil
}
func (f *fakeStockItems) DeleteByProductCode(_ string) error { return nil }
func (f *fakeStockItems) List(_ string, _, _ int) ([]*entity.StockItem, error) {
	return nil, nil
}
func (f *fakeStockItems) Count(_ string) (int, error) { return 0, nil }

type fakeMovements struct {
	created []*entity.StockMovement
}

func (f *fakeMovements) Create(m *entity.StockMovement) error {
	f.created = append(f.created, m)
	return nil
}
func (f *fakeMovements) List(_, _ string, _, _ int) ([]*entity.StockMovement, error) {
	return f.created, nil
}
func (f *fakeMovements) Count(_, _ string) (int, error) { return len(f.created), nil }

type fakeRunner struct {
	products  *fakeProducts
	items     *fakeStockItems
	movements *fakeMovements
}

func (f *fakeRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockItemRepository,
	repository.StockMovementRepository,
	repository.ManufacturingOrderRepository,
) error) error {
	return fn(f.products, f.items, f.movements, nil)
}

func buildRecorder(stock int) (*inventory.RegisterMovementUseCase, *fakeRunner) {
	runner := &fakeRunner{
		products: &fakeProducts{byID: map[string]*entity.Product{
			"prod-1": {ID: "prod-1", Name: "Tornillo M8", StockQuantity: stock},
		}},
		items:     &fakeStockItems{synced: make(map[string]int)},
		movements: &fakeMovements{},
	}
	return inventory.NewRegisterMovementUseCase(runner), runner
}

func TestRecord_EntradaSumaYSincroniza(t *testing.T) {
	uc, runner := buildRecorder(10)

	out, err := uc.Record(context.Background(), dto.RecordMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementTypeIn,
		Quantity:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeIn, out.Type)
	assert.Equal(t, 15, runner.products.byID["prod-1"].StockQuantity)
	assert.Equal(t, 15, runner.items.synced[entity.StockItemCode("prod-1")],
		"el espejo debe quedar con el stock resultante")
	assert.Len(t, runner.movements.created, 1)
}

// Una salida mayor al stock disponible no falla: el stock queda en 0.
func TestRecord_SalidaMayorAlStockRecortaACero(t *testing.T) {
	uc, runner := buildRecorder(10)

	_, err := uc.Record(context.Background(), dto.RecordMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementTypeOut,
		Quantity:  15,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, runner.products.byID["prod-1"].StockQuantity)
	assert.Equal(t, 0, runner.items.synced[entity.StockItemCode("prod-1")])

	// El movimiento registra la cantidad pedida, no la aplicada.
	require.Len(t, runner.movements.created, 1)
	assert.Equal(t, 15, runner.movements.created[0].Quantity)
}

func TestRecord_TipoInvalido(t *testing.T) {
	uc, _ := buildRecorder(10)
	_, err := uc.Record(context.Background(), dto.RecordMovementRequest{
		ProductID: "prod-1",
		Type:      "TRANSFER",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_CantidadNoPositiva(t *testing.T) {
	uc, _ := buildRecorder(10)
	_, err := uc.Record(context.Background(), dto.RecordMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementTypeIn,
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_ProductoInexistente(t *testing.T) {
	uc, runner := buildRecorder(10)
	_, err := uc.Record(context.Background(), dto.RecordMovementRequest{
		ProductID: "no-existe",
		Type:      entity.MovementTypeIn,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, runner.movements.created)
}
