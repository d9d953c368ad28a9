package entity

import "time"

// Supplier proveedor de productos (dato de referencia).
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
