package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
)

func buildWorkOrderUseCase() (*usecase.WorkOrderUseCase, *fakeOrderRepo, *fakeWorkOrderRepo) {
	orderRepo := newFakeOrderRepo()
	workOrderRepo := newFakeWorkOrderRepo()
	return usecase.NewWorkOrderUseCase(workOrderRepo, orderRepo), orderRepo, workOrderRepo
}

func TestWorkOrderCreate_PadreInexistente(t *testing.T) {
	uc, _, _ := buildWorkOrderUseCase()
	_, err := uc.Create(dto.CreateWorkOrderRequest{
		ManufacturingOrderID: "no-existe",
		Item:                 "Silla",
		Operation:            "Ensamble",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkOrderCreate_NumeracionYDefaults(t *testing.T) {
	uc, orderRepo, _ := buildWorkOrderUseCase()
	orderRepo.orders["mo-1"] = &entity.ManufacturingOrder{ID: "mo-1", OrderNumber: "MO-20250315-0001"}

	first, err := uc.Create(dto.CreateWorkOrderRequest{
		ManufacturingOrderID: "mo-1",
		Item:                 "Silla",
		Operation:            "Corte",
		EstimatedHours:       decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "WO-0001", first.OrderNumber)
	assert.Equal(t, entity.WorkOrderStatusNotStarted, first.Status)
	assert.True(t, decimal.Zero.Equal(first.ActualHours), "las horas reales inician en cero")

	second, err := uc.Create(dto.CreateWorkOrderRequest{
		ManufacturingOrderID: "mo-1",
		Item:                 "Silla",
		Operation:            "Ensamble",
	})
	require.NoError(t, err)
	assert.Equal(t, "WO-0002", second.OrderNumber, "la numeración es global y consecutiva")
}

// Borrar una orden de trabajo no hace retroceder el contador: el siguiente
// número sale del máximo emitido, así que una creación válida tras un borrado
// nunca choca contra un número todavía vivo.
func TestWorkOrderCreate_NumeracionNoRetrocedeTrasBorrado(t *testing.T) {
	uc, orderRepo, _ := buildWorkOrderUseCase()
	orderRepo.orders["mo-1"] = &entity.ManufacturingOrder{ID: "mo-1"}

	first, err := uc.Create(dto.CreateWorkOrderRequest{
		ManufacturingOrderID: "mo-1", Item: "Silla", Operation: "Corte",
	})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateWorkOrderRequest{
		ManufacturingOrderID: "mo-1", Item: "Silla", Operation: "Lijado",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(first.ID))

	third, err := uc.Create(dto.CreateWorkOrderRequest{
		ManufacturingOrderID: "mo-1", Item: "Silla", Operation: "Ensamble",
	})
	require.NoError(t, err, "una creación válida tras un borrado no debería fallar")
	assert.Equal(t, "WO-0003", third.OrderNumber)
}

// Dos creaciones concurrentes pueden calcular el mismo número; el índice
// único rechaza la segunda y el caso de uso reintenta con el número recalculado.
func TestWorkOrderCreate_ReintentaTrasNumeroDuplicado(t *testing.T) {
	uc, orderRepo, workOrderRepo := buildWorkOrderUseCase()
	orderRepo.orders["mo-1"] = &entity.ManufacturingOrder{ID: "mo-1"}
	workOrderRepo.createErrs = []error{domain.ErrDuplicate}

	out, err := uc.Create(dto.CreateWorkOrderRequest{
		ManufacturingOrderID: "mo-1", Item: "Silla", Operation: "Corte",
	})
	require.NoError(t, err)
	assert.Equal(t, "WO-0001", out.OrderNumber)
	assert.Equal(t, 2, workOrderRepo.createCalls, "un duplicado provoca exactamente un reintento")
}

func TestWorkOrderUpdate_EstadoInvalido(t *testing.T) {
	uc, orderRepo, _ := buildWorkOrderUseCase()
	orderRepo.orders["mo-1"] = &entity.ManufacturingOrder{ID: "mo-1"}
	created, err := uc.Create(dto.CreateWorkOrderRequest{
		ManufacturingOrderID: "mo-1", Item: "Silla", Operation: "Corte",
	})
	require.NoError(t, err)

	bad := "PAUSADA"
	_, err = uc.Update(created.ID, dto.UpdateWorkOrderRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWorkOrderUpdate_RegistraHorasReales(t *testing.T) {
	uc, orderRepo, _ := buildWorkOrderUseCase()
	orderRepo.orders["mo-1"] = &entity.ManufacturingOrder{ID: "mo-1"}
	created, err := uc.Create(dto.CreateWorkOrderRequest{
		ManufacturingOrderID: "mo-1", Item: "Silla", Operation: "Corte",
	})
	require.NoError(t, err)

	hours := decimal.NewFromFloat(3.5)
	status := entity.WorkOrderStatusCompleted
	out, err := uc.Update(created.ID, dto.UpdateWorkOrderRequest{
		ActualHours: &hours,
		Status:      &status,
	})
	require.NoError(t, err)
	assert.True(t, hours.Equal(out.ActualHours))
	assert.Equal(t, entity.WorkOrderStatusCompleted, out.Status)
}

func TestWorkOrderDelete_NoExiste(t *testing.T) {
	uc, _, _ := buildWorkOrderUseCase()
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
