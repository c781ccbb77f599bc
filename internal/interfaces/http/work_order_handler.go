package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
)

// WorkOrderHandler maneja las peticiones HTTP para WorkOrder (protegido).
type WorkOrderHandler struct {
	uc *usecase.WorkOrderUseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *usecase.WorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// Create crea una orden de trabajo bajo una orden de fabricación existente.
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var details []dto.FieldError
	if in.ManufacturingOrderID == "" {
		details = append(details, dto.FieldError{Field: "manufacturingOrderId", Message: "requerido"})
	}
	if in.Item == "" {
		details = append(details, dto.FieldError{Field: "item", Message: "requerido"})
	}
	if in.Operation == "" {
		details = append(details, dto.FieldError{Field: "operation", Message: "requerido"})
	}
	if len(details) > 0 {
		return badRequest(c, "datos de la orden de trabajo inválidos", details...)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "orden de trabajo creada", out)
}

// GetByID obtiene una orden de trabajo por ID.
func (h *WorkOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "orden de trabajo", out)
}

// List lista órdenes de trabajo con búsqueda, filtro de estado y paginación.
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	var q dto.WorkOrderListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	items, pagination, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, "órdenes de trabajo", items, pagination)
}

// Update actualiza una orden de trabajo.
func (h *WorkOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "orden de trabajo actualizada", out)
}

// Delete elimina una orden de trabajo.
func (h *WorkOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "orden de trabajo eliminada")
}
