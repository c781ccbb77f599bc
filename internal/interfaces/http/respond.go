package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
)

// respondData envía el envelope de éxito con datos.
func respondData(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Response{Success: true, Message: message, Data: data})
}

// respondPage envía el envelope de éxito con datos paginados.
func respondPage(c *fiber.Ctx, message string, data any, pagination *dto.Pagination) error {
	return c.JSON(dto.Response{Success: true, Message: message, Data: data, Pagination: pagination})
}

// respondMessage envía el envelope de éxito sin datos.
func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.Response{Success: true, Message: message})
}

// badRequest envía un 400 con mensaje y detalles de validación opcionales.
func badRequest(c *fiber.Ctx, message string, details ...dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false, Message: message, Error: "VALIDATION", Details: details,
	})
}

// respondError traduce un error de dominio al envelope con su código de estado.
// Los errores no mapeados salen como 500 genérico sin filtrar internals.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrWrongPassword):
		return fail(c, fiber.StatusBadRequest, "WRONG_PASSWORD", err.Error())
	case errors.Is(err, domain.ErrProductInUse):
		return fail(c, fiber.StatusBadRequest, "PRODUCT_IN_USE", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, domain.ErrSuspendedAccount):
		return fail(c, fiber.StatusUnauthorized, "SUSPENDED", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return fail(c, fiber.StatusConflict, "USER_EXISTS", err.Error())
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
	}
}

func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.Response{Success: false, Message: message, Error: code})
}
