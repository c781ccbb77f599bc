package repository

import "github.com/tu-usuario/mes-pro/internal/domain/entity"

// WorkOrderRepository define el puerto de persistencia para WorkOrder.
type WorkOrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	LastOrderNumber() (string, error)
	List(search, status string, limit, offset int) ([]*entity.WorkOrder, error)
	Count(search, status string) (int, error)
	ListByManufacturingOrder(manufacturingOrderID string) ([]*entity.WorkOrder, error)
	Update(order *entity.WorkOrder) error
	Delete(id string) error
}
