package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Email,
		supplier.Address, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor; nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `SELECT id, name, phone, email, address, created_at, updated_at FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update modifica un proveedor.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, phone = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Email,
		supplier.Address, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista proveedores por nombre.
func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT id, name, phone, email, address, created_at, updated_at FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
