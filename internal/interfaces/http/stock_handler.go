package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/inventory"
)

// StockHandler maneja el libro de stock y los movimientos (protegido).
type StockHandler struct {
	movements *inventory.RegisterMovementUseCase
	ledger    *inventory.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(movements *inventory.RegisterMovementUseCase, ledger *inventory.LedgerUseCase) *StockHandler {
	return &StockHandler{movements: movements, ledger: ledger}
}

// ListItems lista el libro de stock (espejos de producto).
func (h *StockHandler) ListItems(c *fiber.Ctx) error {
	var q dto.StockItemListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	items, pagination, err := h.ledger.ListStockItems(q)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, "libro de stock", items, pagination)
}

// ListMovements lista el historial de movimientos.
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var q dto.StockMovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	items, pagination, err := h.ledger.ListMovements(q)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, "movimientos de stock", items, pagination)
}

// RecordMovement registra una entrada o salida de stock en una transacción
// que actualiza producto, espejo y libro de movimientos.
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.movements.Record(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "movimiento registrado", out)
}
