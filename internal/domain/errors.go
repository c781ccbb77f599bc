package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce
// al envelope uniforme con su código de estado correspondiente.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrSuspendedAccount   = errors.New("cuenta suspendida")
	ErrUserAlreadyExists  = errors.New("el login o email ya está registrado")
	ErrProductInUse       = errors.New("el producto está referenciado por órdenes de fabricación")
	ErrWrongPassword      = errors.New("la contraseña actual no coincide")
)
