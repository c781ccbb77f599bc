// Package analytics contiene el caso de uso del dashboard de KPIs de
// producción.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/manufacturing"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// DashboardUseCase calcula los cuatro KPIs del dashboard desde el estado
// actual, frescos en cada petición (sin caché ni snapshots).
//
// Fuente de datos: AnalyticsRepository (consultas read-only sobre órdenes y
// libro de stock).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetKPIs lanza las consultas de conteo en paralelo y arma el DTO:
//
//  1. total de órdenes
//  2. órdenes pendientes (DRAFT, CONFIRMED, PLANNED, IN_PROGRESS)
//  3. suma de stock actual de todos los StockItem
//  4. eficiencia = round(100 × DONE / no-canceladas), 0 si no hay no-canceladas
func (uc *DashboardUseCase) GetKPIs(ctx context.Context) (*dto.DashboardKPIs, error) {
	type countResult struct {
		n   int
		err error
	}

	totalCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	stockCh := make(chan countResult, 1)
	doneCh := make(chan countResult, 1)
	nonCanceledCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountOrders(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOrdersInStatuses(ctx, entity.PendingOrderStatuses)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.SumStockItems(ctx)
		stockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOrdersByStatus(ctx, entity.OrderStatusDone)
		doneCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOrdersExcludingStatus(ctx, entity.OrderStatusCanceled)
		nonCanceledCh <- countResult{n, err}
	}()

	total := <-totalCh
	pending := <-pendingCh
	stock := <-stockCh
	done := <-doneCh
	nonCanceled := <-nonCanceledCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de órdenes: %w", total.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes pendientes: %w", pending.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: niveles de stock: %w", stock.err)
	}
	if done.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes completadas: %w", done.err)
	}
	if nonCanceled.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes no canceladas: %w", nonCanceled.err)
	}

	return &dto.DashboardKPIs{
		TotalOrders:          total.n,
		PendingOrders:        pending.n,
		StockLevels:          stock.n,
		ProductionEfficiency: manufacturing.ProductionEfficiency(done.n, nonCanceled.n),
	}, nil
}
