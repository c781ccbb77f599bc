package repository

import "github.com/tu-usuario/mes-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByLoginID(loginID string) (*entity.User, error)
	// GetByLoginIDOrEmail se usa en el registro para detectar duplicados
	// contra ambas columnas únicas en una sola consulta.
	GetByLoginIDOrEmail(loginID, email string) (*entity.User, error)
	List(search, role, status string, limit, offset int) ([]*entity.User, error)
	Count(search, role, status string) (int, error)
	Update(user *entity.User) error
	UpdatePassword(userID, passwordHash string) error
	Delete(id string) error
}
