package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/mes-pro/internal/application/auth"
	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// UserUseCase alta y gestión administrativa de usuarios (rutas solo ADMIN).
type UserUseCase struct {
	repo       repository.UserRepository
	bcryptCost int
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, bcryptCost int) *UserUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{repo: repo, bcryptCost: bcryptCost}
}

// Create aprovisiona un usuario; a diferencia del signup, el rol es obligatorio.
// ErrUserAlreadyExists si loginId o email ya están tomados.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByLoginIDOrEmail(in.LoginID, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
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
		Role:         in.Role,
		Department:   in.Department,
		Status:       entity.UserStatusActive,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con búsqueda sobre login, email y nombre, filtros de rol
// y estado, y paginación.
func (uc *UserUseCase) List(q dto.UserListQuery) ([]dto.UserResponse, *dto.Pagination, error) {
	q.Normalize()
	if q.Role != "" && !entity.IsValidRole(q.Role) {
		return nil, nil, domain.ErrInvalidInput
	}
	if q.Status != "" && !entity.IsValidUserStatus(q.Status) {
		return nil, nil, domain.ErrInvalidInput
	}
	users, err := uc.repo.List(q.Search, q.Role, q.Status, q.Limit, q.Offset())
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.repo.Count(q.Search, q.Role, q.Status)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, dto.NewPagination(q.Page, q.Limit, total), nil
}

// Update aplica los campos presentes, incluidos rol y estado.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.LoginID != nil {
		user.LoginID = *in.LoginID
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.IsValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Department != nil {
		user.Department = *in.Department
	}
	if in.Status != nil {
		if !entity.IsValidUserStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. ErrNotFound si no existe.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
