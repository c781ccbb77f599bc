package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/manufacturing"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// orderNumberRetries reintentos de creación cuando el índice único de
// order_number detecta que otra petición tomó el mismo consecutivo.
const orderNumberRetries = 2

// OrderUseCase ciclo de vida de órdenes de fabricación: numeración consecutiva
// por día, estados y progreso.
//
// La numeración es leer-luego-escribir: se consulta el último número del día y
// se incrementa su sufijo. Dos creaciones concurrentes pueden calcular el mismo
// número; el índice único sobre order_number convierte la colisión en
// ErrDuplicate y aquí se reintenta con el número recalculado.
type OrderUseCase struct {
	orderRepo     repository.ManufacturingOrderRepository
	productRepo   repository.ProductRepository
	workOrderRepo repository.WorkOrderRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.ManufacturingOrderRepository,
	productRepo repository.ProductRepository,
	workOrderRepo repository.WorkOrderRepository,
	analyticsRepo repository.AnalyticsRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		workOrderRepo: workOrderRepo,
		analyticsRepo: analyticsRepo,
	}
}

// Create valida que el producto exista (ErrNotFound si no), genera el número
// MO-YYYYMMDD-NNNN y persiste la orden con estado DRAFT y progreso 0.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	deadline, err := parseDate(in.Deadline)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.ManufacturingOrder{
		ID:        uuid.New().String(),
		Item:      in.Item,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Status:    entity.OrderStatusDraft,
		Deadline:  deadline,
		Progress:  0,
		Assignee:  in.Assignee,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for attempt := 0; ; attempt++ {
		last, err := uc.orderRepo.LastOrderNumberFor(manufacturing.OrderNumberPrefix(now))
		if err != nil {
			return nil, err
		}
		order.OrderNumber = manufacturing.NextOrderNumber(last, now)

		err = uc.orderRepo.Create(order)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) || attempt >= orderNumberRetries {
			return nil, err
		}
	}
	return uc.toOrderResponse(order, nil), nil
}

// GetByID obtiene una orden con sus órdenes de trabajo asociadas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	workOrders, err := uc.workOrderRepo.ListByManufacturingOrder(id)
	if err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order, workOrders), nil
}

// List lista órdenes con búsqueda insensible sobre número e item, filtro de
// estado y paginación.
func (uc *OrderUseCase) List(q dto.OrderListQuery) ([]dto.OrderResponse, *dto.Pagination, error) {
	q.Normalize()
	if q.Status != "" && !entity.IsValidOrderStatus(q.Status) {
		return nil, nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.List(q.Search, q.Status, q.Limit, q.Offset())
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.orderRepo.Count(q.Search, q.Status)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *uc.toOrderResponse(o, nil))
	}
	return items, dto.NewPagination(q.Page, q.Limit, total), nil
}

// Update aplica los campos presentes. Status y Progress son independientes:
// se aceptan por separado sin acoplar progreso 100 con estado DONE.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Item != nil {
		order.Item = *in.Item
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		order.Quantity = *in.Quantity
	}
	if in.Status != nil {
		if !entity.IsValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.Deadline != nil {
		deadline, err := parseDate(*in.Deadline)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		order.Deadline = deadline
	}
	if in.Progress != nil {
		if *in.Progress < 0 || *in.Progress > 100 {
			return nil, domain.ErrInvalidInput
		}
		order.Progress = *in.Progress
	}
	if in.Assignee != nil {
		order.Assignee = *in.Assignee
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order, nil), nil
}

// Delete elimina la orden (sin soft-delete). ErrNotFound si no existe.
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

// Stats devuelve los conteos por estado.
func (uc *OrderUseCase) Stats(ctx context.Context) (*dto.OrderStatsResponse, error) {
	stats, err := uc.analyticsRepo.OrderStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OrderStatsResponse{
		Total:      stats.Total,
		Planned:    stats.Planned,
		InProgress: stats.InProgress,
		Done:       stats.Done,
		Canceled:   stats.Canceled,
	}, nil
}

func (uc *OrderUseCase) toOrderResponse(o *entity.ManufacturingOrder, workOrders []*entity.WorkOrder) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Item:        o.Item,
		ProductID:   o.ProductID,
		Quantity:    o.Quantity,
		Status:      o.Status,
		Deadline:    o.Deadline,
		Progress:    o.Progress,
		Assignee:    o.Assignee,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	for _, wo := range workOrders {
		resp.WorkOrders = append(resp.WorkOrders, *toWorkOrderResponse(wo))
	}
	return resp
}

// parseDate acepta fecha simple (YYYY-MM-DD) o RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
