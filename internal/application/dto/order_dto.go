package dto

import "time"

// CreateOrderRequest entrada para crear una orden de fabricación.
// El número de orden y el estado inicial (DRAFT, progreso 0) los fija el servidor.
type CreateOrderRequest struct {
	Item      string `json:"item" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Deadline  string `json:"deadline" validate:"required"` // YYYY-MM-DD o RFC 3339
	Assignee  string `json:"assignee"`
	Notes     string `json:"notes"`
}

// UpdateOrderRequest entrada para actualizar una orden (campos opcionales).
// Status y Progress se aceptan de forma independiente: no se fuerza
// progress=100 al pasar a DONE ni viceversa.
type UpdateOrderRequest struct {
	Item     *string `json:"item"`
	Quantity *int    `json:"quantity" validate:"omitempty,gt=0"`
	Status   *string `json:"status"`
	Deadline *string `json:"deadline"`
	Progress *int    `json:"progress" validate:"omitempty,min=0,max=100"`
	Assignee *string `json:"assignee"`
	Notes    *string `json:"notes"`
}

// OrderResponse salida de una orden de fabricación.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"orderNumber"`
	Item        string              `json:"item"`
	ProductID   string              `json:"productId"`
	Quantity    int                 `json:"quantity"`
	Status      string              `json:"status"`
	Deadline    time.Time           `json:"deadline"`
	Progress    int                 `json:"progress"`
	Assignee    string              `json:"assignee"`
	Notes       string              `json:"notes,omitempty"`
	WorkOrders  []WorkOrderResponse `json:"workOrders,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// OrderListQuery filtros del listado de órdenes.
type OrderListQuery struct {
	PageQuery
	Search string `query:"search"`
	Status string `query:"status"`
}

// OrderStatsResponse conteos por estado para el endpoint de estadísticas.
type OrderStatsResponse struct {
	Total      int `json:"total"`
	Planned    int `json:"planned"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
	Canceled   int `json:"canceled"`
}
