package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "ADMIN"
	RoleManager   = "MANAGER"
	RoleOperator  = "OPERATOR"
	RoleInventory = "INVENTORY"
)

// Estados válidos para User. Un usuario SUSPENDED no puede autenticarse.
const (
	UserStatusActive    = "ACTIVE"
	UserStatusInactive  = "INACTIVE"
	UserStatusSuspended = "SUSPENDED"
)

// IsValidRole indica si r es uno de los roles enumerados.
func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator, RoleInventory:
		return true
	}
	return false
}

// IsValidUserStatus indica si s es uno de los estados enumerados.
func IsValidUserStatus(s string) bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	LoginID      string // identificador de acceso, único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string
	Department   string
	Status       string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
