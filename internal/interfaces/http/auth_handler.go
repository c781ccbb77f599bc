package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/auth"
	"github.com/tu-usuario/mes-pro/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP de autenticación.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup registra un usuario nuevo y devuelve el par de tokens.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
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
	if len(details) > 0 {
		return badRequest(c, "datos de registro inválidos", details...)
	}
	out, err := h.uc.Signup(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "usuario registrado", out)
}

// Login autentica por loginId y contraseña.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.LoginID == "" || in.Password == "" {
		return badRequest(c, "loginId y password son requeridos")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "login exitoso", out)
}

// Refresh emite un nuevo token de acceso a partir del refresh token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.RefreshToken == "" {
		return badRequest(c, "refreshToken es requerido")
	}
	out, err := h.uc.Refresh(in.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "token renovado", out)
}

// Profile devuelve el perfil del usuario autenticado.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "perfil", out)
}

// ChangePassword cambia la contraseña del usuario autenticado.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.CurrentPassword == "" || len(in.NewPassword) < 6 {
		return badRequest(c, "currentPassword es requerido y newPassword debe tener mínimo 6 caracteres")
	}
	if err := h.uc.ChangePassword(GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "contraseña actualizada")
}

// Logout es un no-op del lado servidor: el cliente descarta sus tokens.
// No hay lista de revocación, los tokens emitidos siguen vigentes hasta expirar.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return respondMessage(c, "sesión cerrada")
}
