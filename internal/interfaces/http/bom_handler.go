package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
)

// BOMHandler maneja las peticiones HTTP para BOM (protegido).
type BOMHandler struct {
	uc *usecase.BOMUseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(uc *usecase.BOMUseCase) *BOMHandler {
	return &BOMHandler{uc: uc}
}

// Create crea un BOM con sus componentes iniciales en una transacción.
func (h *BOMHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBOMRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.ProductID == "" {
		return badRequest(c, "productId es requerido", dto.FieldError{Field: "productId", Message: "requerido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "BOM creado", out)
}

// AddComponent agrega un componente y recalcula el costo total en una transacción.
func (h *BOMHandler) AddComponent(c *fiber.Ctx) error {
	var in dto.CreateBOMComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.ProductID == "" {
		return badRequest(c, "productId es requerido", dto.FieldError{Field: "productId", Message: "requerido"})
	}
	out, err := h.uc.AddComponent(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "componente agregado", out)
}

// GetByID obtiene un BOM con sus componentes.
func (h *BOMHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "BOM", out)
}

// List lista BOMs con búsqueda y paginación.
func (h *BOMHandler) List(c *fiber.Ctx) error {
	var q dto.BOMListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	items, pagination, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, "BOMs", items, pagination)
}

// Delete elimina un BOM y sus componentes.
func (h *BOMHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "BOM eliminado")
}
