package repository

import (
	"time"

	"github.com/tu-usuario/mes-pro/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para el espejo de stock.
// Las escrituras siempre llegan desde el servicio de inventario, nunca de un
// endpoint de edición directa.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	// SyncByProductCode propaga nombre y stock del producto al espejo.
	SyncByProductCode(productCode, productName string, currentStock int, at time.Time) error
	DeleteByProductCode(productCode string) error
	List(search string, limit, offset int) ([]*entity.StockItem, error)
	Count(search string) (int, error)
}

// StockMovementRepository define el puerto del libro de movimientos (append-only:
// solo inserción y lectura, sin update ni delete).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(productID, movementType string, limit, offset int) ([]*entity.StockMovement, error)
	Count(productID, movementType string) (int, error)
}
