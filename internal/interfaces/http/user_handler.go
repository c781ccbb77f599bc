package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios (protegido, solo ADMIN/MANAGER).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create alta administrativa de un usuario (el rol es obligatorio).
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var details []dto.FieldError
	if len(in.LoginID) < 3 {
		details = append(details, dto.FieldError{Field: "loginId", Message: "mínimo 3 caracteres"})
	}
	if in.Email == "" {
		details = append(details, dto.FieldError{Field: "email", Message: "requerido"})
	}
	if len(in.Password) < 6 {
		details = append(details, dto.FieldError{Field: "password", Message: "mínimo 6 caracteres"})
	}
	if in.Role == "" {
		details = append(details, dto.FieldError{Field: "role", Message: "requerido"})
	}
	if len(details) > 0 {
		return badRequest(c, "datos del usuario inválidos", details...)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "usuario creado", out)
}

// GetByID obtiene un usuario por ID.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "usuario", out)
}

// List lista usuarios con búsqueda, filtros de rol/estado y paginación.
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	items, pagination, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, "usuarios", items, pagination)
}

// Update actualización administrativa (incluye rol y estado).
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "usuario actualizado", out)
}

// Delete elimina un usuario.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "usuario eliminado")
}
