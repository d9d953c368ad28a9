package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// CreateProductRequest alta de producto (dato de referencia). La cantidad
// inicial siempre es 0: el stock solo entra por el ledger (RecordPurchase).
type CreateProductRequest struct {
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	QuantityMinimum *int64          `json:"quantity_minimum,omitempty"` // nil = default 10
	PurchaseCost    decimal.Decimal `json:"purchase_cost"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	ExpiryDate      string          `json:"expiry_date"` // YYYY-MM-DD
}

// UpdateProductRequest actualización de datos de referencia. No incluye
// quantity a propósito.
type UpdateProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	QuantityMinimum int64           `json:"quantity_minimum"`
	PurchaseCost    decimal.Decimal `json:"purchase_cost"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	ExpiryDate      string          `json:"expiry_date"`
}

// ProductResponse producto para listados y detalle.
type ProductResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Quantity        int64           `json:"quantity"`
	QuantityMinimum int64           `json:"quantity_minimum"`
	PurchaseCost    decimal.Decimal `json:"purchase_cost"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	ExpiryDate      string          `json:"expiry_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToProductResponse mapea la entidad al DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Code:            p.Code,
		Name:            p.Name,
		Description:     p.Description,
		Quantity:        p.Quantity,
		QuantityMinimum: p.QuantityMinimum,
		PurchaseCost:    p.PurchaseCost,
		SalePrice:       p.SalePrice,
		ExpiryDate:      p.ExpiryDate.Format("2006-01-02"),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// SupplierRequest alta/edición de proveedor.
type SupplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// SupplierResponse proveedor para listados y detalle.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// ToSupplierResponse mapea la entidad al DTO.
func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, Phone: s.Phone, Email: s.Email, Address: s.Address}
}
