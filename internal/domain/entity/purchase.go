package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseEvent registro inmutable de entrada de stock (compra a proveedor).
// Total se calcula una sola vez al commit; el registro nunca se actualiza ni borra.
type PurchaseEvent struct {
	ID         string
	ProductID  string
	SupplierID string // opcional: vacío si la compra no tiene proveedor
	Quantity   int64  // > 0
	UnitCost   decimal.Decimal
	Total      decimal.Decimal // Quantity × UnitCost
	Notes      string
	RecordedAt time.Time // timestamp asignado por el servidor al commit
	CreatedBy  string    // UserID del operador
}
