package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkCenterRequest entrada para crear un centro de trabajo.
// Estado inicial ACTIVE y utilización 0 los fija el servidor.
type CreateWorkCenterRequest struct {
	Name        string          `json:"name" validate:"required"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	CostPerHour decimal.Decimal `json:"costPerHour"`
	Capacity    int             `json:"capacity" validate:"min=0"`
}

// UpdateWorkCenterRequest entrada para actualizar un centro de trabajo.
type UpdateWorkCenterRequest struct {
	Name        *string          `json:"name"`
	Location    *string          `json:"location"`
	Description *string          `json:"description"`
	CostPerHour *decimal.Decimal `json:"costPerHour"`
	Capacity    *int             `json:"capacity" validate:"omitempty,min=0"`
	Utilization *int             `json:"utilization" validate:"omitempty,min=0,max=100"`
	Status      *string          `json:"status"`
}

// WorkCenterResponse salida de un centro de trabajo.
type WorkCenterResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	CostPerHour decimal.Decimal `json:"costPerHour"`
	Capacity    int             `json:"capacity"`
	Utilization int             `json:"utilization"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// WorkCenterListQuery filtros del listado de centros de trabajo.
type WorkCenterListQuery struct {
	PageQuery
	Search string `query:"search"`
	Status string `query:"status"`
}
