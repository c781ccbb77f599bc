// Package inventory contiene los casos de uso del servicio de inventario:
// registro de movimientos y consultas del libro de stock.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	domaininv "github.com/tu-usuario/mes-pro/internal/domain/inventory"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional:
// aplica el delta al producto (recortado a 0), propaga al StockItem espejo y
// agrega la entrada inmutable al libro de movimientos.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// Record valida la entrada y ejecuta el movimiento dentro de una transacción.
// Producto inexistente → ErrNotFound. Una salida mayor al stock disponible no
// falla: el stock resultante se recorta a 0.
func (uc *RegisterMovementUseCase) Record(ctx context.Context, in dto.RecordMovementRequest) (*dto.StockMovementResponse, error) {
	if !entity.IsValidMovementType(in.Type) || in.Quantity <= 0 || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var movement *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockItemRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.ManufacturingOrderRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := domaininv.ApplyMovement(product.StockQuantity, in.Type, in.Quantity)
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		if err := stockRepo.SyncByProductCode(product.ProductCode(), product.Name, newStock, now); err != nil {
			return err
		}

		movement = &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        in.Type,
			Quantity:    in.Quantity,
			Reference:   in.Reference,
			Notes:       in.Notes,
			CreatedAt:   now,
		}
		return movementRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

func toMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	if m == nil {
		return nil
	}
	return &dto.StockMovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reference:   m.Reference,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}
