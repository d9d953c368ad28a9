package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	resp := dto.ToSupplierResponse(supplier)
	return &resp, nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToSupplierResponse(supplier)
	return &resp, nil
}

// Update modifica un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplier.Name = in.Name
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.Address = in.Address
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	resp := dto.ToSupplierResponse(supplier)
	return &resp, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(ctx, id)
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.supplierRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.ToSupplierResponse(s))
	}
	return out, nil
}
