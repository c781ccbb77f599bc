package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación del puerto BOMRepository sobre PostgreSQL (usable con pool o tx).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador de persistencia para listas de materiales.
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// Create persiste la cabecera de un BOM. La restricción única de product_id
// convierte un segundo BOM para el mismo producto en domain.ErrDuplicate.
func (r *BOMRepo) Create(bom *entity.BOM) error {
	query := `
		INSERT INTO boms (id, product_id, product_name, product_code, total_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		bom.ID, bom.ProductID, bom.ProductName, bom.ProductCode, bom.TotalCost,
		bom.CreatedAt, bom.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bom: %w", err)
	}
	return nil
}

// GetByID obtiene un BOM con sus componentes.
func (r *BOMRepo) GetByID(id string) (*entity.BOM, error) {
	query := `
		SELECT id, product_id, product_name, product_code, total_cost, created_at, updated_at
		FROM boms WHERE id = $1`
	var b entity.BOM
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.ProductID, &b.ProductName, &b.ProductCode, &b.TotalCost,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom: %w", err)
	}
	components, err := r.ListComponents(b.ID)
	if err != nil {
		return nil, err
	}
	b.Components = components
	return &b, nil
}

// GetByProduct obtiene el BOM de un producto, o nil si no tiene.
func (r *BOMRepo) GetByProduct(productID string) (*entity.BOM, error) {
	query := `
		SELECT id, product_id, product_name, product_code, total_cost, created_at, updated_at
		FROM boms WHERE product_id = $1`
	var b entity.BOM
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&b.ID, &b.ProductID, &b.ProductName, &b.ProductCode, &b.TotalCost,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom by product: %w", err)
	}
	components, err := r.ListComponents(b.ID)
	if err != nil {
		return nil, err
	}
	b.Components = components
	return &b, nil
}

// List lista BOMs (sin componentes) con búsqueda por nombre o código de producto.
func (r *BOMRepo) List(search string, limit, offset int) ([]*entity.BOM, error) {
	query := `
		SELECT id, product_id, product_name, product_code, total_cost, created_at, updated_at
		FROM boms WHERE 1=1`
	var args []any
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" AND (product_name ILIKE $%d OR product_code ILIKE $%d)", pos, pos)
		args = append(args, likePattern(search))
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list boms: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOM
	for rows.Next() {
		var b entity.BOM
		if err := rows.Scan(&b.ID, &b.ProductID, &b.ProductName, &b.ProductCode,
			&b.TotalCost, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bom: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Count cuenta BOMs aplicando el mismo filtro que List.
func (r *BOMRepo) Count(search string) (int, error) {
	query := `SELECT COUNT(*) FROM boms WHERE 1=1`
	var args []any
	if search != "" {
		query += " AND (product_name ILIKE $1 OR product_code ILIKE $1)"
		args = append(args, likePattern(search))
	}
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count boms: %w", err)
	}
	return n, nil
}

// AddComponent persiste una línea del BOM.
func (r *BOMRepo) AddComponent(component *entity.BOMComponent) error {
	query := `
		INSERT INTO bom_components (id, bom_id, product_id, name, quantity, unit, cost, operation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		component.ID, component.BOMID, component.ProductID, component.Name,
		component.Quantity, component.Unit, component.Cost, component.Operation,
		component.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bom component: %w", err)
	}
	return nil
}

// ListComponents lista las líneas de un BOM en orden de inserción.
func (r *BOMRepo) ListComponents(bomID string) ([]entity.BOMComponent, error) {
	query := `
		SELECT id, bom_id, product_id, name, quantity, unit, cost, operation, created_at
		FROM bom_components WHERE bom_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, bomID)
	if err != nil {
		return nil, fmt.Errorf("list bom components: %w", err)
	}
	defer rows.Close()
	var list []entity.BOMComponent
	for rows.Next() {
		var c entity.BOMComponent
		if err := rows.Scan(&c.ID, &c.BOMID, &c.ProductID, &c.Name, &c.Quantity,
			&c.Unit, &c.Cost, &c.Operation, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom component: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpdateTotalCost reescribe el costo total derivado del BOM.
func (r *BOMRepo) UpdateTotalCost(bomID string, totalCost decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE boms SET total_cost = $2, updated_at = now() WHERE id = $1`,
		bomID, totalCost,
	)
	if err != nil {
		return fmt.Errorf("update bom total cost: %w", err)
	}
	return nil
}

// Delete elimina un BOM y, por cascada del esquema, sus componentes.
func (r *BOMRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM boms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bom: %w", err)
	}
	return nil
}
