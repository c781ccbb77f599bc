package inventory

import (
	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// LedgerUseCase consultas read-only del libro de stock: items espejo y
// movimientos históricos.
type LedgerUseCase struct {
	stockRepo    repository.StockItemRepository
	movementRepo repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(stockRepo repository.StockItemRepository, movementRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{stockRepo: stockRepo, movementRepo: movementRepo}
}

// ListStockItems lista el libro de stock con búsqueda y paginación.
func (uc *LedgerUseCase) ListStockItems(q dto.StockItemListQuery) ([]dto.StockItemResponse, *dto.Pagination, error) {
	q.Normalize()
	items, err := uc.stockRepo.List(q.Search, q.Limit, q.Offset())
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.stockRepo.Count(q.Search)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockItemResponse{
			ID:           it.ID,
			ProductName:  it.ProductName,
			ProductCode:  it.ProductCode,
			CurrentStock: it.CurrentStock,
			Unit:         it.Unit,
			Location:     it.Location,
			LastUpdated:  it.LastUpdated,
		})
	}
	return out, dto.NewPagination(q.Page, q.Limit, total), nil
}

// ListMovements lista el libro de movimientos, opcionalmente filtrado por
// producto y tipo.
func (uc *LedgerUseCase) ListMovements(q dto.StockMovementListQuery) ([]dto.StockMovementResponse, *dto.Pagination, error) {
	q.Normalize()
	if q.Type != "" && !entity.IsValidMovementType(q.Type) {
		return nil, nil, domain.ErrInvalidInput
	}
	movements, err := uc.movementRepo.List(q.ProductID, q.Type, q.Limit, q.Offset())
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.movementRepo.Count(q.ProductID, q.Type)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m))
	}
	return out, dto.NewPagination(q.Page, q.Limit, total), nil
}
