package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// WorkCenterUseCase CRUD de centros de trabajo.
type WorkCenterUseCase struct {
	repo repository.WorkCenterRepository
}

// NewWorkCenterUseCase construye el caso de uso.
func NewWorkCenterUseCase(repo repository.WorkCenterRepository) *WorkCenterUseCase {
	return &WorkCenterUseCase{repo: repo}
}

// Create persiste un centro nuevo con estado ACTIVE y utilización 0.
func (uc *WorkCenterUseCase) Create(in dto.CreateWorkCenterRequest) (*dto.WorkCenterResponse, error) {
	if in.Capacity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	center := &entity.WorkCenter{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Location:    in.Location,
		Description: in.Description,
		CostPerHour: in.CostPerHour,
		Capacity:    in.Capacity,
		Utilization: 0,
		Status:      entity.WorkCenterStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(center); err != nil {
		return nil, err
	}
	return toWorkCenterResponse(center), nil
}

// GetByID obtiene un centro por ID.
func (uc *WorkCenterUseCase) GetByID(id string) (*dto.WorkCenterResponse, error) {
	center, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkCenterResponse(center), nil
}

// List lista centros con búsqueda, filtro de estado y paginación.
func (uc *WorkCenterUseCase) List(q dto.WorkCenterListQuery) ([]dto.WorkCenterResponse, *dto.Pagination, error) {
	q.Normalize()
	if q.Status != "" && !entity.IsValidWorkCenterStatus(q.Status) {
		return nil, nil, domain.ErrInvalidInput
	}
	centers, err := uc.repo.List(q.Search, q.Status, q.Limit, q.Offset())
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.repo.Count(q.Search, q.Status)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.WorkCenterResponse, 0, len(centers))
	for _, c := range centers {
		items = append(items, *toWorkCenterResponse(c))
	}
	return items, dto.NewPagination(q.Page, q.Limit, total), nil
}

// Update aplica los campos presentes.
func (uc *WorkCenterUseCase) Update(id string, in dto.UpdateWorkCenterRequest) (*dto.WorkCenterResponse, error) {
	center, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		center.Name = *in.Name
	}
	if in.Location != nil {
		center.Location = *in.Location
	}
	if in.Description != nil {
		center.Description = *in.Description
	}
	if in.CostPerHour != nil {
		center.CostPerHour = *in.CostPerHour
	}
	if in.Capacity != nil {
		if *in.Capacity < 0 {
			return nil, domain.ErrInvalidInput
		}
		center.Capacity = *in.Capacity
	}
	if in.Utilization != nil {
		if *in.Utilization < 0 || *in.Utilization > 100 {
			return nil, domain.ErrInvalidInput
		}
		center.Utilization = *in.Utilization
	}
	if in.Status != nil {
		if !entity.IsValidWorkCenterStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		center.Status = *in.Status
	}
	center.UpdatedAt = time.Now()
	if err := uc.repo.Update(center); err != nil {
		return nil, err
	}
	return toWorkCenterResponse(center), nil
}

// Delete elimina un centro de trabajo. ErrNotFound si no existe.
func (uc *WorkCenterUseCase) Delete(id string) error {
	center, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if center == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toWorkCenterResponse(c *entity.WorkCenter) *dto.WorkCenterResponse {
	if c == nil {
		return nil
	}
	return &dto.WorkCenterResponse{
		ID:          c.ID,
		Name:        c.Name,
		Location:    c.Location,
		Description: c.Description,
		CostPerHour: c.CostPerHour,
		Capacity:    c.Capacity,
		Utilization: c.Utilization,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
