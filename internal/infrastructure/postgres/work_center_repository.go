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

var _ repository.WorkCenterRepository = (*WorkCenterRepo)(nil)

// WorkCenterRepo implementación del puerto WorkCenterRepository sobre PostgreSQL.
type WorkCenterRepo struct {
	q Querier
}

// NewWorkCenterRepository construye el adaptador de persistencia para centros de trabajo.
func NewWorkCenterRepository(q Querier) *WorkCenterRepo {
	return &WorkCenterRepo{q: q}
}

const workCenterColumns = `id, name, location, description, cost_per_hour, capacity, utilization, status, created_at, updated_at`

// Create persiste un nuevo centro de trabajo.
func (r *WorkCenterRepo) Create(center *entity.WorkCenter) error {
	query := `
		INSERT INTO work_centers (id, name, location, description, cost_per_hour, capacity, utilization, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		center.ID, center.Name, center.Location, center.Description, center.CostPerHour,
		center.Capacity, center.Utilization, center.Status, center.CreatedAt, center.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert work center: %w", err)
	}
	return nil
}

// GetByID obtiene un centro de trabajo por ID.
func (r *WorkCenterRepo) GetByID(id string) (*entity.WorkCenter, error) {
	query := `SELECT ` + workCenterColumns + ` FROM work_centers WHERE id = $1`
	var c entity.WorkCenter
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Location, &c.Description, &c.CostPerHour,
		&c.Capacity, &c.Utilization, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work center: %w", err)
	}
	return &c, nil
}

// List lista centros de trabajo con búsqueda por nombre/ubicación y filtro de estado.
func (r *WorkCenterRepo) List(search, status string, limit, offset int) ([]*entity.WorkCenter, error) {
	query := `SELECT ` + workCenterColumns + ` FROM work_centers WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR location ILIKE $%d)", pos, pos)
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
		return nil, fmt.Errorf("list work centers: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkCenter
	for rows.Next() {
		var c entity.WorkCenter
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Description, &c.CostPerHour,
			&c.Capacity, &c.Utilization, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work center: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count cuenta centros de trabajo aplicando los mismos filtros que List.
func (r *WorkCenterRepo) Count(search, status string) (int, error) {
	query := `SELECT COUNT(*) FROM work_centers WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR location ILIKE $%d)", pos, pos)
		args = append(args, likePattern(search))
		pos++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
	}
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count work centers: %w", err)
	}
	return n, nil
}

// Update actualiza un centro de trabajo existente.
func (r *WorkCenterRepo) Update(center *entity.WorkCenter) error {
	query := `
		UPDATE work_centers SET name = $2, location = $3, description = $4, cost_per_hour = $5,
			capacity = $6, utilization = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		center.ID, center.Name, center.Location, center.Description, center.CostPerHour,
		center.Capacity, center.Utilization, center.Status, center.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work center: %w", err)
	}
	return nil
}

// Delete elimina un centro de trabajo.
func (r *WorkCenterRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM work_centers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work center: %w", err)
	}
	return nil
}
