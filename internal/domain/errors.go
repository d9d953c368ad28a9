package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	// ErrBusy: contención sobre la fila del producto (lock_timeout agotado).
	// El caller puede reintentar con backoff; ninguna mutación quedó aplicada.
	ErrBusy = errors.New("producto ocupado, reintentar")
)
