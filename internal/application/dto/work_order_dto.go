package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest entrada para crear una orden de trabajo.
type CreateWorkOrderRequest struct {
	ManufacturingOrderID string          `json:"manufacturingOrderId" validate:"required"`
	Item                 string          `json:"item" validate:"required"`
	Operation            string          `json:"operation" validate:"required"`
	AssignedTo           string          `json:"assignedTo"`
	EstimatedHours       decimal.Decimal `json:"estimatedHours"`
}

// UpdateWorkOrderRequest entrada para actualizar una orden de trabajo.
type UpdateWorkOrderRequest struct {
	Item           *string          `json:"item"`
	Operation      *string          `json:"operation"`
	AssignedTo     *string          `json:"assignedTo"`
	Status         *string          `json:"status"`
	EstimatedHours *decimal.Decimal `json:"estimatedHours"`
	ActualHours    *decimal.Decimal `json:"actualHours"`
}

// WorkOrderResponse salida de una orden de trabajo.
type WorkOrderResponse struct {
	ID                   string          `json:"id"`
	OrderNumber          string          `json:"orderNumber"`
	ManufacturingOrderID string          `json:"manufacturingOrderId"`
	Item                 string          `json:"item"`
	Operation            string          `json:"operation"`
	AssignedTo           string          `json:"assignedTo"`
	Status               string          `json:"status"`
	StartDate            time.Time       `json:"startDate"`
	EstimatedHours       decimal.Decimal `json:"estimatedHours"`
	ActualHours          decimal.Decimal `json:"actualHours"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// WorkOrderListQuery filtros del listado de órdenes de trabajo.
type WorkOrderListQuery struct {
	PageQuery
	Search string `query:"search"`
	Status string `query:"status"`
}
