package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBOMRequest entrada para crear un BOM con sus componentes iniciales.
type CreateBOMRequest struct {
	ProductID  string                      `json:"productId" validate:"required"`
	Components []CreateBOMComponentRequest `json:"components"`
}

// CreateBOMComponentRequest línea de componente: la materia prima referenciada
// aporta nombre y costo (su unitPrice); unit por defecto "pcs".
type CreateBOMComponentRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	Unit      string          `json:"unit"`
	Operation string          `json:"operation"`
}

// BOMComponentResponse salida de un componente.
type BOMComponentResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	Cost      decimal.Decimal `json:"cost"`
	Operation string          `json:"operation"`
}

// BOMResponse salida de un BOM completo.
type BOMResponse struct {
	ID          string                 `json:"id"`
	ProductID   string                 `json:"productId"`
	ProductName string                 `json:"productName"`
	ProductCode string                 `json:"productCode"`
	TotalCost   decimal.Decimal        `json:"totalCost"`
	Components  []BOMComponentResponse `json:"components"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// BOMListQuery filtros del listado de BOMs.
type BOMListQuery struct {
	PageQuery
	Search string `query:"search"`
}
