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

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación del puerto WorkOrderRepository sobre PostgreSQL
// (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador de persistencia para órdenes de trabajo.
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `id, order_number, manufacturing_order_id, item, operation, assigned_to, status, start_date, estimated_hours, actual_hours, created_at, updated_at`

// Create persiste una nueva orden de trabajo.
func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (id, order_number, manufacturing_order_id, item, operation, assigned_to, status, start_date, estimated_hours, actual_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.ManufacturingOrderID, order.Item,
		order.Operation, order.AssignedTo, order.Status, order.StartDate,
		order.EstimatedHours, order.ActualHours, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de trabajo por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	var o entity.WorkOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderNumber, &o.ManufacturingOrderID, &o.Item, &o.Operation,
		&o.AssignedTo, &o.Status, &o.StartDate, &o.EstimatedHours, &o.ActualHours,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &o, nil
}

// LastOrderNumber devuelve el order_number más alto emitido (base de la
// numeración WO-NNNN), o cadena vacía si aún no hay órdenes de trabajo.
// Con ancho fijo de 4 dígitos el orden lexicográfico coincide con el numérico.
func (r *WorkOrderRepo) LastOrderNumber() (string, error) {
	query := `SELECT order_number FROM work_orders ORDER BY order_number DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get last work order number: %w", err)
	}
	return number, nil
}

// List lista órdenes de trabajo con búsqueda por order_number/item/operation y filtro de estado.
func (r *WorkOrderRepo) List(search, status string, limit, offset int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (order_number ILIKE $%d OR item ILIKE $%d OR operation ILIKE $%d)", pos, pos, pos)
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
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	return scanWorkOrders(rows)
}

// Count cuenta órdenes de trabajo aplicando los mismos filtros que List.
func (r *WorkOrderRepo) Count(search, status string) (int, error) {
	query := `SELECT COUNT(*) FROM work_orders WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (order_number ILIKE $%d OR item ILIKE $%d OR operation ILIKE $%d)", pos, pos, pos)
		args = append(args, likePattern(search))
		pos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
	}
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count work orders: %w", err)
	}
	return n, nil
}

// ListByManufacturingOrder lista las órdenes de trabajo de una orden de fabricación.
func (r *WorkOrderRepo) ListByManufacturingOrder(manufacturingOrderID string) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + `
		FROM work_orders WHERE manufacturing_order_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, manufacturingOrderID)
	if err != nil {
		return nil, fmt.Errorf("list work orders by manufacturing order: %w", err)
	}
	defer rows.Close()
	return scanWorkOrders(rows)
}

// Update actualiza una orden de trabajo existente. El order_number nunca se reescribe.
func (r *WorkOrderRepo) Update(order *entity.WorkOrder) error {
	query := `
		UPDATE work_orders SET item = $2, operation = $3, assigned_to = $4, status = $5,
			start_date = $6, estimated_hours = $7, actual_hours = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Item, order.Operation, order.AssignedTo, order.Status,
		order.StartDate, order.EstimatedHours, order.ActualHours, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	return nil
}

// Delete elimina una orden de trabajo.
func (r *WorkOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM work_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work order: %w", err)
	}
	return nil
}

func scanWorkOrders(rows pgx.Rows) ([]*entity.WorkOrder, error) {
	var list []*entity.WorkOrder
	for rows.Next() {
		var o entity.WorkOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.ManufacturingOrderID, &o.Item, &o.Operation,
			&o.AssignedTo, &o.Status, &o.StartDate, &o.EstimatedHours, &o.ActualHours,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
