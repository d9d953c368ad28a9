// Package usecase contiene los colaboradores de datos de referencia. Estos
// casos de uso administran todos los campos del producto salvo quantity, que
// pertenece en exclusiva al motor de ledger.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos (dato de referencia).
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create registra un producto nuevo con stock 0. Devuelve ErrDuplicate si el
// código ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchaseCost.LessThan(decimal.Zero) || in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.Parse("2006-01-02", in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	minimum := int64(entity.QuantityMinimumDefault)
	if in.QuantityMinimum != nil {
		if *in.QuantityMinimum < 0 {
			return nil, domain.ErrInvalidInput
		}
		minimum = *in.QuantityMinimum
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Code:            in.Code,
		Name:            in.Name,
		Description:     in.Description,
		Quantity:        0, // el stock solo entra por el ledger
		QuantityMinimum: minimum,
		PurchaseCost:    in.PurchaseCost.Round(2),
		SalePrice:       in.SalePrice.Round(2),
		ExpiryDate:      expiry,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto por su id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// GetByCode obtiene un producto por su código único.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Update modifica los datos de referencia. Quantity no se toca: el adaptador
// de persistencia excluye esa columna del UPDATE.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.QuantityMinimum < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchaseCost.LessThan(decimal.Zero) || in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.Parse("2006-01-02", in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Description = in.Description
	product.QuantityMinimum = in.QuantityMinimum
	product.PurchaseCost = in.PurchaseCost.Round(2)
	product.SalePrice = in.SalePrice.Round(2)
	product.ExpiryDate = expiry
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	updated, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(updated)
	return &resp, nil
}

// Delete elimina el producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, id)
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}
