package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del maestro de productos.
// StockQuantity es la fuente de verdad del stock; el StockItem asociado
// es una copia derivada que mantiene sincronizada el servicio de inventario.
type Product struct {
	ID            string
	Name          string
	Category      string
	Description   string
	UnitPrice     decimal.Decimal // precio unitario de venta
	StockQuantity int             // nunca negativo (se recorta a 0 en salidas)
	MinStockLevel int             // umbral para la consulta de stock bajo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductCode devuelve el código derivado que enlaza el producto con su StockItem.
func (p *Product) ProductCode() string {
	return StockItemCode(p.ID)
}
