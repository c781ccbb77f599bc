// Package inventory contiene la lógica de dominio de stock: aplicación de
// movimientos con recorte a cero.
package inventory

import "github.com/tu-usuario/mes-pro/internal/domain/entity"

// ApplyMovement aplica un movimiento al stock actual: IN suma, OUT resta.
// El resultado nunca baja de cero (una salida mayor al stock deja 0, no negativo).
func ApplyMovement(current int, movementType string, quantity int) int {
	next := current
	switch movementType {
	case entity.MovementTypeIn:
		next = current + quantity
	case entity.MovementTypeOut:
		next = current - quantity
	}
	if next < 0 {
		return 0
	}
	return next
}

// IsLowStock indica si un producto está en o por debajo de su propio mínimo.
// La consulta SQL hace la misma comparación columna-a-columna; esta versión
// existe para la lógica en memoria y los tests.
func IsLowStock(p *entity.Product) bool {
	return p.StockQuantity <= p.MinStockLevel
}
