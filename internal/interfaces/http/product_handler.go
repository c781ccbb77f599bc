package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create crea un producto y su espejo de stock en una transacción.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido", dto.FieldError{Field: "name", Message: "requerido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "producto creado", out)
}

// GetByID obtiene un producto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "producto", out)
}

// List lista productos con búsqueda, filtro de categoría y paginación.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	items, pagination, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, "productos", items, pagination)
}

// LowStock lista productos en o bajo su nivel mínimo de stock.
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "productos con stock bajo", items)
}

// Update actualiza un producto y sincroniza el espejo de stock.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "producto actualizado", out)
}

// Delete elimina un producto si ninguna orden lo referencia.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "producto eliminado")
}
