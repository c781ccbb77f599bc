package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mes-pro/internal/domain/entity"
)

// BOMRepository define el puerto de persistencia para BOM y sus componentes.
// AddComponent y UpdateTotalCost se invocan juntos dentro de una transacción
// para mantener el invariante totalCost = Σ (cost × quantity).
type BOMRepository interface {
	Create(bom *entity.BOM) error
	GetByID(id string) (*entity.BOM, error)
	GetByProduct(productID string) (*entity.BOM, error)
	List(search string, limit, offset int) ([]*entity.BOM, error)
	Count(search string) (int, error)
	AddComponent(component *entity.BOMComponent) error
	ListComponents(bomID string) ([]entity.BOMComponent, error)
	UpdateTotalCost(bomID string, totalCost decimal.Decimal) error
	Delete(id string) error
}
