package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOM representa la lista de materiales de un producto terminado.
// TotalCost es derivado: Σ (cost × quantity) de sus componentes, y se recalcula
// en la misma transacción cada vez que se agrega un componente.
type BOM struct {
	ID          string
	ProductID   string
	ProductName string
	ProductCode string
	TotalCost   decimal.Decimal
	Components  []BOMComponent
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BOMComponent es una línea del BOM: una materia prima con su cantidad,
// unidad, costo unitario y operación en la que se consume.
type BOMComponent struct {
	ID        string
	BOMID     string
	ProductID string // materia prima referenciada
	Name      string
	Quantity  decimal.Decimal
	Unit      string // por defecto "pcs"
	Cost      decimal.Decimal
	Operation string
	CreatedAt time.Time
}
