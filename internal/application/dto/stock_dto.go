package dto

import "time"

// RecordMovementRequest entrada para registrar un movimiento de stock.
type RecordMovementRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Type      string `json:"type" validate:"required"` // IN, OUT
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

// StockMovementResponse salida de un movimiento registrado.
type StockMovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reference   string    `json:"reference"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StockItemResponse salida de una fila del libro de stock.
type StockItemResponse struct {
	ID           string    `json:"id"`
	ProductName  string    `json:"productName"`
	ProductCode  string    `json:"productCode"`
	CurrentStock int       `json:"currentStock"`
	Unit         string    `json:"unit"`
	Location     string    `json:"location"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// StockItemListQuery filtros del libro de stock.
type StockItemListQuery struct {
	PageQuery
	Search string `query:"search"`
}

// StockMovementListQuery filtros del listado de movimientos.
type StockMovementListQuery struct {
	PageQuery
	ProductID string `query:"productId"`
	Type      string `query:"type"`
}
