package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// RecordPurchaseRequest cuerpo para POST /api/ledger/purchases.
type RecordPurchaseRequest struct {
	ProductID  string          `json:"product_id"`
	SupplierID string          `json:"supplier_id,omitempty"`
	Quantity   int64           `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Notes      string          `json:"notes,omitempty"`
}

// RecordSaleRequest cuerpo para POST /api/ledger/sales.
type RecordSaleRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes,omitempty"`
}

// PurchaseEventResponse evento de compra confirmado.
type PurchaseEventResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	SupplierID string          `json:"supplier_id,omitempty"`
	Quantity   int64           `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
	CreatedBy  string          `json:"created_by"`
}

// SaleEventResponse evento de venta confirmado, con utilidad calculada al commit.
type SaleEventResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Total      decimal.Decimal `json:"total"`
	Profit     decimal.Decimal `json:"profit"`
	Notes      string          `json:"notes,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
	CreatedBy  string          `json:"created_by"`
}

// SnapshotResponse vista puntual del producto más su estado de alerta.
type SnapshotResponse struct {
	ProductID       string          `json:"product_id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Quantity        int64           `json:"quantity"`
	QuantityMinimum int64           `json:"quantity_minimum"`
	PurchaseCost    decimal.Decimal `json:"purchase_cost"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	ExpiryDate      string          `json:"expiry_date"` // YYYY-MM-DD
	Alert           string          `json:"alert,omitempty"`
}

// ToPurchaseEventResponse mapea la entidad al DTO de respuesta.
func ToPurchaseEventResponse(e *entity.PurchaseEvent) PurchaseEventResponse {
	return PurchaseEventResponse{
		ID:         e.ID,
		ProductID:  e.ProductID,
		SupplierID: e.SupplierID,
		Quantity:   e.Quantity,
		UnitCost:   e.UnitCost,
		Total:      e.Total,
		Notes:      e.Notes,
		RecordedAt: e.RecordedAt,
		CreatedBy:  e.CreatedBy,
	}
}

// ToSaleEventResponse mapea la entidad al DTO de respuesta.
func ToSaleEventResponse(e *entity.SaleEvent) SaleEventResponse {
	return SaleEventResponse{
		ID:         e.ID,
		ProductID:  e.ProductID,
		Quantity:   e.Quantity,
		UnitPrice:  e.UnitPrice,
		Total:      e.Total,
		Profit:     e.Profit,
		Notes:      e.Notes,
		RecordedAt: e.RecordedAt,
		CreatedBy:  e.CreatedBy,
	}
}

// ToSnapshotResponse mapea el snapshot al DTO; alertState puede ir vacío.
func ToSnapshotResponse(s entity.Snapshot, alertState string) SnapshotResponse {
	return SnapshotResponse{
		ProductID:       s.ProductID,
		Code:            s.Code,
		Name:            s.Name,
		Quantity:        s.Quantity,
		QuantityMinimum: s.QuantityMinimum,
		PurchaseCost:    s.PurchaseCost,
		SalePrice:       s.SalePrice,
		ExpiryDate:      s.ExpiryDate.Format("2006-01-02"),
		Alert:           alertState,
	}
}
