package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para WorkCenter.
const (
	WorkCenterStatusActive      = "ACTIVE"
	WorkCenterStatusMaintenance = "MAINTENANCE"
	WorkCenterStatusInactive    = "INACTIVE"
)

// IsValidWorkCenterStatus indica si s es uno de los estados enumerados.
func IsValidWorkCenterStatus(s string) bool {
	switch s {
	case WorkCenterStatusActive, WorkCenterStatusMaintenance, WorkCenterStatusInactive:
		return true
	}
	return false
}

// WorkCenter representa un centro de trabajo de planta.
type WorkCenter struct {
	ID          string
	Name        string
	Location    string
	Description string
	CostPerHour decimal.Decimal
	Capacity    int // horas por día
	Utilization int // 0..100
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
