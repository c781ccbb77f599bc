package repository

import "github.com/tu-usuario/mes-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// La sincronización con StockItem la orquesta el caso de uso vía TxRunner.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stockQuantity int) error
	List(search, category string, limit, offset int) ([]*entity.Product, error)
	Count(search, category string) (int, error)
	// LowStock devuelve los productos con stock_quantity <= min_stock_level
	// (comparación columna-a-columna), ordenados ascendente por stock_quantity.
	LowStock() ([]*entity.Product, error)
	Delete(id string) error
}
