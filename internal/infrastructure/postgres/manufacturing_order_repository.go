package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

var _ repository.ManufacturingOrderRepository = (*ManufacturingOrderRepo)(nil)

// ManufacturingOrderRepo implementación del puerto ManufacturingOrderRepository
// sobre PostgreSQL (usable con pool o tx).
type ManufacturingOrderRepo struct {
	q Querier
}

// NewManufacturingOrderRepository construye el adaptador de persistencia para
// órdenes de fabricación. Pasar pool o tx (Querier).
func NewManufacturingOrderRepository(q Querier) *ManufacturingOrderRepo {
	return &ManufacturingOrderRepo{q: q}
}

const orderColumns = `id, order_number, item, product_id, quantity, status, deadline, progress, assignee, notes, created_at, updated_at`

// Create persiste una nueva orden. El índice único de order_number convierte
// una colisión de numeración en domain.ErrDuplicate, que el caso de uso reintenta.
func (r *ManufacturingOrderRepo) Create(order *entity.ManufacturingOrder) error {
	query := `
		INSERT INTO manufacturing_orders (id, order_number, item, product_id, quantity, status, deadline, progress, assignee, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.Item, order.ProductID, order.Quantity,
		order.Status, order.Deadline, order.Progress, order.Assignee, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert manufacturing order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *ManufacturingOrderRepo) GetByID(id string) (*entity.ManufacturingOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM manufacturing_orders WHERE id = $1`
	var o entity.ManufacturingOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderNumber, &o.Item, &o.ProductID, &o.Quantity, &o.Status,
		&o.Deadline, &o.Progress, &o.Assignee, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturing order: %w", err)
	}
	return &o, nil
}

// LastOrderNumberFor devuelve el order_number de la orden más reciente del
// prefijo dado (MO-YYYYMMDD), o cadena vacía si aún no hay órdenes ese día.
func (r *ManufacturingOrderRepo) LastOrderNumberFor(prefix string) (string, error) {
	query := `
		SELECT order_number FROM manufacturing_orders
		WHERE order_number LIKE $1 || '%'
		ORDER BY created_at DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query, prefix).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get last order number: %w", err)
	}
	return number, nil
}

// List lista órdenes con búsqueda por order_number/item y filtro de estado.
func (r *ManufacturingOrderRepo) List(search, status string, limit, offset int) ([]*entity.ManufacturingOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM manufacturing_orders WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (order_number ILIKE $%d OR item ILIKE $%d)", pos, pos)
		args = append(args, likePattern(search))
		pos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list manufacturing orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.ManufacturingOrder
	for rows.Next() {
		var o entity.ManufacturingOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.Item, &o.ProductID, &o.Quantity, &o.Status,
			&o.Deadline, &o.Progress, &o.Assignee, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan manufacturing order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Count cuenta órdenes aplicando los mismos filtros que List.
func (r *ManufacturingOrderRepo) Count(search, status string) (int, error) {
	query := `SELECT COUNT(*) FROM manufacturing_orders WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (order_number ILIKE $%d OR item ILIKE $%d)", pos, pos)
		args = append(args, likePattern(search))
		pos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
	}
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count manufacturing orders: %w", err)
	}
	return n, nil
}

// CountByProduct cuenta las órdenes que referencian un producto (bloqueo de borrado).
func (r *ManufacturingOrderRepo) CountByProduct(productID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM manufacturing_orders WHERE product_id = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders by product: %w", err)
	}
	return n, nil
}

// Update actualiza una orden existente. El order_number nunca se reescribe.
func (r *ManufacturingOrderRepo) Update(order *entity.ManufacturingOrder) error {
	query := `
		UPDATE manufacturing_orders SET item = $2, quantity = $3, status = $4, deadline = $5,
			progress = $6, assignee = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Item, order.Quantity, order.Status, order.Deadline,
		order.Progress, order.Assignee, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update manufacturing order: %w", err)
	}
	return nil
}

// Delete elimina una orden y, por cascada del esquema, sus órdenes de trabajo.
func (r *ManufacturingOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM manufacturing_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete manufacturing order: %w", err)
	}
	return nil
}
