package repository

import "context"

// OrderStats conteos de órdenes por estado para el endpoint de estadísticas.
type OrderStats struct {
	Total      int
	Planned    int
	InProgress int
	Done       int
	Canceled   int
}

// AnalyticsRepository consultas read-only de agregación para el dashboard y
// las estadísticas de órdenes. Todo se calcula fresco por petición: no hay
// snapshots históricos ni mantenimiento incremental.
type AnalyticsRepository interface {
	CountOrders(ctx context.Context) (int, error)
	CountOrdersInStatuses(ctx context.Context, statuses []string) (int, error)
	CountOrdersByStatus(ctx context.Context, status string) (int, error)
	CountOrdersExcludingStatus(ctx context.Context, status string) (int, error)
	// SumStockItems suma current_stock de todos los StockItem (cero si no hay filas).
	SumStockItems(ctx context.Context) (int, error)
	OrderStats(ctx context.Context) (*OrderStats, error)
}
