package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuantityMinimumDefault umbral de stock bajo cuando el producto no define uno.
const QuantityMinimumDefault = 10

// Product representa un producto de farmacia en inventario.
// Quantity es la única fuente de verdad del stock disponible y solo la muta
// el motor de ledger (RecordPurchase/RecordSale); el resto de campos los
// administra el CRUD de datos de referencia.
type Product struct {
	ID              string
	Code            string // código único legible (ej. ACET-500)
	Name            string
	Description     string
	Quantity        int64 // invariante: >= 0 siempre
	QuantityMinimum int64
	PurchaseCost    decimal.Decimal // costo de compra vigente
	SalePrice       decimal.Decimal // precio de venta al público
	ExpiryDate      time.Time       // fecha de vencimiento, sin componente horario
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Snapshot vista puntual de solo lectura para el clasificador de alertas
// y para GetProductSnapshot. No se cachea; se deriva siempre del estado actual.
type Snapshot struct {
	ProductID       string
	Code            string
	Name            string
	Quantity        int64
	QuantityMinimum int64
	PurchaseCost    decimal.Decimal
	SalePrice       decimal.Decimal
	ExpiryDate      time.Time
}

// Snapshot construye la vista de solo lectura del producto.
func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		ProductID:       p.ID,
		Code:            p.Code,
		Name:            p.Name,
		Quantity:        p.Quantity,
		QuantityMinimum: p.QuantityMinimum,
		PurchaseCost:    p.PurchaseCost,
		SalePrice:       p.SalePrice,
		ExpiryDate:      p.ExpiryDate,
	}
}
