package entity

import "time"

// Estados válidos para ManufacturingOrder.
const (
	OrderStatusDraft      = "DRAFT"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusPlanned    = "PLANNED"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusDone       = "DONE"
	OrderStatusCanceled   = "CANCELED"
)

// PendingOrderStatuses son los estados que cuentan como "pendientes" en el dashboard.
var PendingOrderStatuses = []string{
	OrderStatusDraft, OrderStatusConfirmed, OrderStatusPlanned, OrderStatusInProgress,
}

// IsValidOrderStatus indica si s es uno de los estados enumerados.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusPlanned,
		OrderStatusInProgress, OrderStatusDone, OrderStatusCanceled:
		return true
	}
	return false
}

// ManufacturingOrder representa una orden de fabricación.
// OrderNumber tiene formato MO-YYYYMMDD-NNNN, único y creciente dentro del día.
// Progress (0–100) se actualiza de forma independiente del estado.
type ManufacturingOrder struct {
	ID          string
	OrderNumber string
	Item        string
	ProductID   string
	Quantity    int // siempre positivo
	Status      string
	Deadline    time.Time
	Progress    int // 0..100
	Assignee    string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
