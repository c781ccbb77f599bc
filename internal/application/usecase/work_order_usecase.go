package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/manufacturing"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// WorkOrderUseCase CRUD de órdenes de trabajo, hijas de una orden de
// fabricación. La numeración WO-NNNN parte del número más alto emitido y
// comparte la misma advertencia leer-luego-escribir que la numeración MO:
// índice único más reintento.
type WorkOrderUseCase struct {
	workOrderRepo repository.WorkOrderRepository
	orderRepo     repository.ManufacturingOrderRepository
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(workOrderRepo repository.WorkOrderRepository, orderRepo repository.ManufacturingOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{workOrderRepo: workOrderRepo, orderRepo: orderRepo}
}

// Create valida que exista la orden padre (ErrNotFound si no) y persiste con
// estado NOT_STARTED, horas reales 0 y fecha de inicio hoy.
func (uc *WorkOrderUseCase) Create(in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	parent, err := uc.orderRepo.GetByID(in.ManufacturingOrderID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	order := &entity.WorkOrder{
		ID:                   uuid.New().String(),
		ManufacturingOrderID: in.ManufacturingOrderID,
		Item:                 in.Item,
		Operation:            in.Operation,
		AssignedTo:           in.AssignedTo,
		Status:               entity.WorkOrderStatusNotStarted,
		StartDate:            now,
		EstimatedHours:       in.EstimatedHours,
		ActualHours:          decimal.Zero,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	for attempt := 0; ; attempt++ {
		last, err := uc.workOrderRepo.LastOrderNumber()
		if err != nil {
			return nil, err
		}
		order.OrderNumber = manufacturing.NextWorkOrderNumber(last)

		err = uc.workOrderRepo.Create(order)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) || attempt >= orderNumberRetries {
			return nil, err
		}
	}
	return toWorkOrderResponse(order), nil
}

// GetByID obtiene una orden de trabajo por ID.
func (uc *WorkOrderUseCase) GetByID(id string) (*dto.WorkOrderResponse, error) {
	order, err := uc.workOrderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkOrderResponse(order), nil
}

// List lista órdenes de trabajo con búsqueda, filtro de estado y paginación.
func (uc *WorkOrderUseCase) List(q dto.WorkOrderListQuery) ([]dto.WorkOrderResponse, *dto.Pagination, error) {
	q.Normalize()
	if q.Status != "" && !entity.IsValidWorkOrderStatus(q.Status) {
		return nil, nil, domain.ErrInvalidInput
	}
	orders, err := uc.workOrderRepo.List(q.Search, q.Status, q.Limit, q.Offset())
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.workOrderRepo.Count(q.Search, q.Status)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toWorkOrderResponse(o))
	}
	return items, dto.NewPagination(q.Page, q.Limit, total), nil
}

// Update aplica los campos presentes.
func (uc *WorkOrderUseCase) Update(id string, in dto.UpdateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	order, err := uc.workOrderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Item != nil {
		order.Item = *in.Item
	}
	if in.Operation != nil {
		order.Operation = *in.Operation
	}
	if in.AssignedTo != nil {
		order.AssignedTo = *in.AssignedTo
	}
	if in.Status != nil {
		if !entity.IsValidWorkOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.EstimatedHours != nil {
		order.EstimatedHours = *in.EstimatedHours
	}
	if in.ActualHours != nil {
		order.ActualHours = *in.ActualHours
	}
	order.UpdatedAt = time.Now()
	if err := uc.workOrderRepo.Update(order); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(order), nil
}

// Delete elimina una orden de trabajo. ErrNotFound si no existe.
func (uc *WorkOrderUseCase) Delete(id string) error {
	order, err := uc.workOrderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.workOrderRepo.Delete(id)
}

func toWorkOrderResponse(o *entity.WorkOrder) *dto.WorkOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.WorkOrderResponse{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		ManufacturingOrderID: o.ManufacturingOrderID,
		Item:                 o.Item,
		Operation:            o.Operation,
		AssignedTo:           o.AssignedTo,
		Status:               o.Status,
		StartDate:            o.StartDate,
		EstimatedHours:       o.EstimatedHours,
		ActualHours:          o.ActualHours,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
