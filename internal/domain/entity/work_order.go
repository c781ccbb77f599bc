package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para WorkOrder.
const (
	WorkOrderStatusNotStarted = "NOT_STARTED"
	WorkOrderStatusInProgress = "IN_PROGRESS"
	WorkOrderStatusCompleted  = "COMPLETED"
	WorkOrderStatusOnHold     = "ON_HOLD"
)

// IsValidWorkOrderStatus indica si s es uno de los estados enumerados.
func IsValidWorkOrderStatus(s string) bool {
	switch s {
	case WorkOrderStatusNotStarted, WorkOrderStatusInProgress,
		WorkOrderStatusCompleted, WorkOrderStatusOnHold:
		return true
	}
	return false
}

// WorkOrder representa una tarea operativa (soldadura, ensamble, etc.)
// asociada a una orden de fabricación. Pertenece lógicamente al ciclo de vida
// de su ManufacturingOrder pero se crea y actualiza de forma independiente.
type WorkOrder struct {
	ID                   string
	OrderNumber          string // WO-NNNN
	ManufacturingOrderID string
	Item                 string
	Operation            string
	AssignedTo           string
	Status               string
	StartDate            time.Time
	EstimatedHours       decimal.Decimal
	ActualHours          decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
