package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleEvent registro inmutable de salida de stock (venta en mostrador).
//
// Profit se calcula al commit con el PurchaseCost vigente en ese instante y
// queda almacenado: cambios posteriores del costo no lo recalculan.
// Puede ser negativo (venta bajo costo); eso es legal, no un error.
type SaleEvent struct {
	ID         string
	ProductID  string
	Quantity   int64 // > 0
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal // Quantity × UnitPrice
	Profit     decimal.Decimal // (UnitPrice − PurchaseCost al commit) × Quantity
	Notes      string
	RecordedAt time.Time
	CreatedBy  string
}
