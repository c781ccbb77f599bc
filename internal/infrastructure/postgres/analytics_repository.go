package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implementación del puerto AnalyticsRepository sobre PostgreSQL.
// Todas las consultas son agregaciones read-only; recibe ctx porque el dashboard
// las lanza en paralelo y puede cancelarlas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas de agregación.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountOrders cuenta todas las órdenes de fabricación.
func (r *AnalyticsRepo) CountOrders(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM manufacturing_orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// CountOrdersInStatuses cuenta órdenes cuyo estado está en la lista dada.
func (r *AnalyticsRepo) CountOrdersInStatuses(ctx context.Context, statuses []string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM manufacturing_orders WHERE status = ANY($1)`, statuses,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders in statuses: %w", err)
	}
	return n, nil
}

// CountOrdersByStatus cuenta órdenes de un estado concreto.
func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM manufacturing_orders WHERE status = $1`, status,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return n, nil
}

// CountOrdersExcludingStatus cuenta órdenes cuyo estado NO es el dado.
func (r *AnalyticsRepo) CountOrdersExcludingStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM manufacturing_orders WHERE status <> $1`, status,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders excluding status: %w", err)
	}
	return n, nil
}

// SumStockItems suma current_stock de todo el libro de stock (cero sin filas).
func (r *AnalyticsRepo) SumStockItems(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(current_stock), 0) FROM stock_items`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("sum stock items: %w", err)
	}
	return n, nil
}

// OrderStats calcula los conteos por estado del endpoint de estadísticas en una consulta.
func (r *AnalyticsRepo) OrderStats(ctx context.Context) (*repository.OrderStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PLANNED'),
			COUNT(*) FILTER (WHERE status = 'IN_PROGRESS'),
			COUNT(*) FILTER (WHERE status = 'DONE'),
			COUNT(*) FILTER (WHERE status = 'CANCELED')
		FROM manufacturing_orders`
	var s repository.OrderStats
	err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.Planned, &s.InProgress, &s.Done, &s.Canceled)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	return &s, nil
}
