package inventory

import (
	"context"

	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos de inventario
// atados a ella. Toda operación que toca Product y StockItem (alta, edición,
// baja, movimiento) pasa por aquí para que espejo y fuente no queden
// transitoriamente inconsistentes ante un fallo parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockItemRepository,
		movementRepo repository.StockMovementRepository,
		orderRepo repository.ManufacturingOrderRepository,
	) error) error
}
