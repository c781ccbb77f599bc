package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
)

func buildBOMUseCase(products ...*entity.Product) (*usecase.BOMUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{
		productRepo: newFakeProductRepo(products...),
		bomRepo:     newFakeBOMRepo(),
	}
	return usecase.NewBOMUseCase(tx, tx.bomRepo, tx.productRepo), tx
}

func bomProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "mesa", Name: "Mesa de trabajo", UnitPrice: decimal.NewFromInt(300)},
		{ID: "tabla", Name: "Tabla de pino", UnitPrice: decimal.NewFromFloat(25.50)},
		{ID: "tornillo", Name: "Tornillo M8", UnitPrice: decimal.NewFromFloat(0.40)},
	}
}

// El total del BOM es la suma de cost×quantity, con el costo tomado del
// unitPrice de cada materia prima.
func TestBOMCreate_CalculaTotal(t *testing.T) {
	uc, _ := buildBOMUseCase(bomProducts()...)

	out, err := uc.Create(context.Background(), dto.CreateBOMRequest{
		ProductID: "mesa",
		Components: []dto.CreateBOMComponentRequest{
			{ProductID: "tabla", Quantity: decimal.NewFromInt(2)},
			{ProductID: "tornillo", Quantity: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	// 2×25.50 + 10×0.40 = 55
	assert.True(t, decimal.NewFromInt(55).Equal(out.TotalCost),
		"totalCost debe ser 55, fue %s", out.TotalCost)
	assert.Equal(t, "Mesa de trabajo", out.ProductName)
	require.Len(t, out.Components, 2)
	assert.Equal(t, "Tabla de pino", out.Components[0].Name)
	assert.Equal(t, entity.DefaultStockUnit, out.Components[0].Unit, "unit vacío toma el default")
}

func TestBOMCreate_ProductoPadreInexistente(t *testing.T) {
	uc, _ := buildBOMUseCase(bomProducts()...)
	_, err := uc.Create(context.Background(), dto.CreateBOMRequest{ProductID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un producto solo puede tener un BOM.
func TestBOMCreate_DuplicadoPorProducto(t *testing.T) {
	uc, _ := buildBOMUseCase(bomProducts()...)
	_, err := uc.Create(context.Background(), dto.CreateBOMRequest{ProductID: "mesa"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateBOMRequest{ProductID: "mesa"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestBOMCreate_CantidadNoPositiva(t *testing.T) {
	uc, _ := buildBOMUseCase(bomProducts()...)
	_, err := uc.Create(context.Background(), dto.CreateBOMRequest{
		ProductID: "mesa",
		Components: []dto.CreateBOMComponentRequest{
			{ProductID: "tabla", Quantity: decimal.Zero},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Agregar un componente recalcula el total sobre la lista completa.
func TestBOMAddComponent_RecalculaTotal(t *testing.T) {
	uc, tx := buildBOMUseCase(bomProducts()...)
	created, err := uc.Create(context.Background(), dto.CreateBOMRequest{
		ProductID: "mesa",
		Components: []dto.CreateBOMComponentRequest{
			{ProductID: "tabla", Quantity: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	out, err := uc.AddComponent(context.Background(), created.ID, dto.CreateBOMComponentRequest{
		ProductID: "tornillo",
		Quantity:  decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// 2×25.50 + 10×0.40 = 55
	assert.True(t, decimal.NewFromInt(55).Equal(out.TotalCost))
	assert.Len(t, out.Components, 2)

	stored := tx.bomRepo.boms[created.ID]
	assert.True(t, decimal.NewFromInt(55).Equal(stored.TotalCost),
		"el total persistido debe coincidir con el recalculado")
}

func TestBOMAddComponent_MateriaPrimaInexistente(t *testing.T) {
	uc, _ := buildBOMUseCase(bomProducts()...)
	created, err := uc.Create(context.Background(), dto.CreateBOMRequest{ProductID: "mesa"})
	require.NoError(t, err)

	_, err = uc.AddComponent(context.Background(), created.ID, dto.CreateBOMComponentRequest{
		ProductID: "no-existe",
		Quantity:  decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
