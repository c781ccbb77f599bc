package usecase

import (
	"context"

	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// BOMTxRunner ejecuta fn dentro de una transacción con el repo de BOM atado a
// ella. Agregar un componente y recalcular totalCost deben confirmarse juntos.
type BOMTxRunner interface {
	RunBOM(ctx context.Context, fn func(bomRepo repository.BOMRepository) error) error
}
