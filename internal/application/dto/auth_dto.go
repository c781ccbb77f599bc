package dto

import "time"

// SignupRequest entrada para el registro de usuarios.
type SignupRequest struct {
	LoginID    string `json:"loginId" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name"`
	Role       string `json:"role"` // ADMIN, MANAGER, OPERATOR, INVENTORY (default OPERATOR)
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

// LoginRequest entrada para el login.
type LoginRequest struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest entrada para renovar el token de acceso.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ChangePasswordRequest entrada para cambiar la contraseña propia.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// UserResponse salida de un usuario (nunca incluye el hash de contraseña).
type UserResponse struct {
	ID         string    `json:"id"`
	LoginID    string    `json:"loginId"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AuthResponse salida de signup/login: usuario más el par de tokens.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshResponse salida de refresh-token: solo el nuevo token de acceso.
type RefreshResponse struct {
	Token string `json:"token"`
}
