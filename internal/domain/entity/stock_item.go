package entity

import "time"

// Valores por defecto del espejo de stock creado junto con cada producto.
const (
	DefaultStockUnit     = "pcs"
	DefaultStockLocation = "Main Warehouse"
)

// StockItemCode deriva el código de stock a partir del ID del producto.
// Es la clave que enlaza Product con su StockItem espejo.
func StockItemCode(productID string) string {
	return "PROD-CODE-" + productID
}

// StockItem es la vista desnormalizada del stock de un producto, usada por el
// libro de stock y el dashboard. No se edita directamente: el servicio de
// inventario la sincroniza en cada alta, edición, baja y movimiento del producto.
type StockItem struct {
	ID           string
	ProductName  string
	ProductCode  string // PROD-CODE-{productID}
	CurrentStock int
	Unit         string
	Location     string
	LastUpdated  time.Time
}
