package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "IN"  // entrada: suma al stock
	MovementTypeOut = "OUT" // salida: resta del stock (recortado a 0)
)

// IsValidMovementType indica si t es IN u OUT.
func IsValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// StockMovement es una entrada del libro de movimientos: registra un delta de
// cantidad contra un producto. Es append-only, nunca se modifica después de creada.
type StockMovement struct {
	ID          string
	ProductID   string
	ProductName string
	Type        string // IN, OUT
	Quantity    int    // siempre positivo; el signo lo da Type
	Reference   string // orden, factura, nota de ajuste, etc.
	Notes       string
	CreatedAt   time.Time
}
