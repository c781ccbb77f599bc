// Package auth contiene los casos de uso de credenciales y sesión: registro,
// login, renovación de token y cambio de contraseña.
//
// Limitación aceptada: no hay lista de revocación de tokens en el servidor.
// El logout es un no-op del lado del cliente y el token sigue siendo válido
// hasta su expiración natural.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
	"github.com/tu-usuario/mes-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret            string
	AccessExpMinutes  int
	RefreshExpMinutes int
	Issuer            string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtCfg     JWTConfig
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, bcryptCost int) *AuthUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, bcryptCost: bcryptCost}
}

// Signup crea un usuario: hashea password con bcrypt y persiste con estado ACTIVE.
// Devuelve ErrUserAlreadyExists si el loginId o el email ya están registrados.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByLoginIDOrEmail(in.LoginID, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	role := in.Role
	if role == "" {
		role = entity.RoleOperator
	}
	if !entity.IsValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}

	name := in.Name
	if name == "" {
		name = in.LoginID
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		LoginID:      in.LoginID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Department:   in.Department,
		Status:       entity.UserStatusActive,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Login verifica loginId/password y retorna el par de tokens.
// Usuario inexistente o contraseña incorrecta devuelven el mismo
// ErrInvalidCredentials; una cuenta SUSPENDED devuelve ErrSuspendedAccount
// aunque la contraseña sea correcta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByLoginID(in.LoginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status == entity.UserStatusSuspended {
		return nil, domain.ErrSuspendedAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.authResponse(user)
}

// Refresh valida un refresh token y emite un nuevo token de acceso.
// Token inválido/expirado, usuario inexistente o SUSPENDED → ErrUnauthorized.
func (uc *AuthUseCase) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := jwt.ParseOfType(uc.jwtCfg.Secret, refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status == entity.UserStatusSuspended {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.GenerateAccess(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Token: token}, nil
}

// Profile devuelve el usuario autenticado.
func (uc *AuthUseCase) Profile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return ToUserResponse(user), nil
}

// ChangePassword exige verificar la contraseña actual antes de rehashear y
// persistir la nueva.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), uc.bcryptCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(userID, string(hash))
}

func (uc *AuthUseCase) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.GenerateAccess(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: *ToUserResponse(user), Token: token, RefreshToken: refresh}, nil
}

// ToUserResponse mapea la entidad al DTO de salida, sin el hash de contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		LoginID:    u.LoginID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
		Status:     u.Status,
		Phone:      u.Phone,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
