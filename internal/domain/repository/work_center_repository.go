package repository

import "github.com/tu-usuario/mes-pro/internal/domain/entity"

// WorkCenterRepository define el puerto de persistencia para WorkCenter.
type WorkCenterRepository interface {
	Create(center *entity.WorkCenter) error
	GetByID(id string) (*entity.WorkCenter, error)
	List(search, status string, limit, offset int) ([]*entity.WorkCenter, error)
	Count(search, status string) (int, error)
	Update(center *entity.WorkCenter) error
	Delete(id string) error
}
