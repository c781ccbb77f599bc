package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para ManufacturingOrder (protegido).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create crea una orden de fabricación con numeración MO-YYYYMMDD-NNNN.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var details []dto.FieldError
	if in.Item == "" {
		details = append(details, dto.FieldError{Field: "item", Message: "requerido"})
	}
	if in.ProductID == "" {
		details = append(details, dto.FieldError{Field: "productId", Message: "requerido"})
	}
	if in.Deadline == "" {
		details = append(details, dto.FieldError{Field: "deadline", Message: "requerido"})
	}
	if len(details) > 0 {
		return badRequest(c, "datos de la orden inválidos", details...)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "orden creada", out)
}

// GetByID obtiene una orden con sus órdenes de trabajo.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "orden", out)
}

// List lista órdenes con búsqueda, filtro de estado y paginación.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var q dto.OrderListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	items, pagination, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, "órdenes", items, pagination)
}

// Stats devuelve los conteos de órdenes por estado.
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "estadísticas de órdenes", out)
}

// Update actualiza una orden (estado y progreso independientes).
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "orden actualizada", out)
}

// Delete elimina una orden.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "orden eliminada")
}
