package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/mes-pro/internal/application/inventory"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner y usecase.BOMTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ usecase.BOMTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos de inventario atados a
// la tx y hace Commit o Rollback. Cubre las operaciones que tocan Product y
// StockItem juntos (altas, ediciones, bajas y movimientos).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockItemRepository,
	movementRepo repository.StockMovementRepository,
	orderRepo repository.ManufacturingOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewProductRepository(tx),
		NewStockItemRepository(tx),
		NewStockMovementRepository(tx),
		NewManufacturingOrderRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBOM inicia una transacción con el repo de BOM (alta de componentes +
// recálculo de totalCost).
func (r *TxRunner) RunBOM(ctx context.Context, fn func(bomRepo repository.BOMRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBOMRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
