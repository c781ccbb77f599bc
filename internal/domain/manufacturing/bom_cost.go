package manufacturing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mes-pro/internal/domain/entity"
)

// BOMTotalCost calcula el costo total de un BOM: Σ (cost × quantity) de sus
// componentes. Se invoca dentro de la misma transacción que agrega el
// componente para mantener el invariante del total.
func BOMTotalCost(components []entity.BOMComponent) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		total = total.Add(c.Cost.Mul(c.Quantity))
	}
	return total
}
