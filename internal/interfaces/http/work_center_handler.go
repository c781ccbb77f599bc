package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
)

// WorkCenterHandler maneja las peticiones HTTP para WorkCenter (protegido).
type WorkCenterHandler struct {
	uc *usecase.WorkCenterUseCase
}

// NewWorkCenterHandler construye el handler.
func NewWorkCenterHandler(uc *usecase.WorkCenterUseCase) *WorkCenterHandler {
	return &WorkCenterHandler{uc: uc}
}

// Create crea un centro de trabajo (estado inicial ACTIVE, utilización 0).
func (h *WorkCenterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido", dto.FieldError{Field: "name", Message: "requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "centro de trabajo creado", out)
}

// GetByID obtiene un centro de trabajo por ID.
func (h *WorkCenterHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "centro de trabajo", out)
}

// List lista centros de trabajo con búsqueda, filtro de estado y paginación.
func (h *WorkCenterHandler) List(c *fiber.Ctx) error {
	var q dto.WorkCenterListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	items, pagination, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, "centros de trabajo", items, pagination)
}

// Update actualiza un centro de trabajo.
func (h *WorkCenterHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "centro de trabajo actualizado", out)
}

// Delete elimina un centro de trabajo.
func (h *WorkCenterHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "centro de trabajo eliminado")
}
