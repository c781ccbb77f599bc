package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación del puerto StockItemRepository sobre PostgreSQL
// (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de persistencia del espejo de stock.
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create persiste el espejo de stock de un producto recién creado.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, product_name, product_code, current_stock, unit, location, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductName, item.ProductCode, item.CurrentStock,
		item.Unit, item.Location, item.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// SyncByProductCode propaga nombre y stock del producto al espejo.
func (r *StockItemRepo) SyncByProductCode(productCode, productName string, currentStock int, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET product_name = $2, current_stock = $3, last_updated = $4 WHERE product_code = $1`,
		productCode, productName, currentStock, at,
	)
	if err != nil {
		return fmt.Errorf("sync stock item: %w", err)
	}
	return nil
}

// DeleteByProductCode elimina el espejo al borrar el producto.
func (r *StockItemRepo) DeleteByProductCode(productCode string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_items WHERE product_code = $1`, productCode,
	)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

// List lista el libro de stock con búsqueda por nombre o código.
func (r *StockItemRepo) List(search string, limit, offset int) ([]*entity.StockItem, error) {
	query := `
		SELECT id, product_name, product_code, current_stock, unit, location, last_updated
		FROM stock_items WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (product_name ILIKE $%d OR product_code ILIKE $%d)", pos, pos)
		args = append(args, likePattern(search))
		pos++
	}
	query += fmt.Sprintf(" ORDER BY last_updated DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(&s.ID, &s.ProductName, &s.ProductCode, &s.CurrentStock,
			&s.Unit, &s.Location, &s.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Count cuenta entradas del libro de stock aplicando el mismo filtro que List.
func (r *StockItemRepo) Count(search string) (int, error) {
	query := `SELECT COUNT(*) FROM stock_items WHERE 1=1`
	var args []any
	if search != "" {
		query += " AND (product_name ILIKE $1 OR product_code ILIKE $1)"
		args = append(args, likePattern(search))
	}
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock items: %w", err)
	}
	return n, nil
}
