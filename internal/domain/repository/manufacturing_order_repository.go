package repository

import "github.com/tu-usuario/mes-pro/internal/domain/entity"

// ManufacturingOrderRepository define el puerto de persistencia para
// ManufacturingOrder.
type ManufacturingOrderRepository interface {
	Create(order *entity.ManufacturingOrder) error
	GetByID(id string) (*entity.ManufacturingOrder, error)
	// LastOrderNumberFor devuelve el número de la orden más reciente cuyo
	// order_number empieza con el prefijo dado, o cadena vacía si no hay ninguna.
	LastOrderNumberFor(prefix string) (string, error)
	List(search, status string, limit, offset int) ([]*entity.ManufacturingOrder, error)
	Count(search, status string) (int, error)
	CountByProduct(productID string) (int, error)
	Update(order *entity.ManufacturingOrder) error
	Delete(id string) error
}
