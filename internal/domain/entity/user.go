package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User operador del sistema (cajero o administrador). Es el actor que firma
// los eventos de compra/venta vía CreatedBy.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | vendedor
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
