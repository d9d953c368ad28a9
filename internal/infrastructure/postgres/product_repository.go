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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, name, description, quantity, quantity_minimum, purchase_cost, sale_price, expiry_date, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Quantity, &p.QuantityMinimum,
		&p.PurchaseCost, &p.SalePrice, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

// Create persiste un producto nuevo. Devuelve ErrDuplicate si el código ya existe.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Code, product.Name, product.Description,
		product.Quantity, product.QuantityMinimum, product.PurchaseCost,
		product.SalePrice, product.ExpiryDate, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.q.QueryRow(ctx, query, id))
}

// GetByCode obtiene un producto por su código único; nil si no existe.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	return scanProduct(r.q.QueryRow(ctx, query, code))
}

// Update modifica los datos de referencia. La columna quantity se excluye a
// propósito: solo ApplyDelta puede tocarla.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, quantity_minimum = $4,
		    purchase_cost = $5, sale_price = $6, expiry_date = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.QuantityMinimum,
		product.PurchaseCost, product.SalePrice, product.ExpiryDate, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos ordenados por código.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.Description, &p.Quantity, &p.QuantityMinimum,
			&p.PurchaseCost, &p.SalePrice, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y devuelve su
// estado. Compras y ventas del mismo producto se serializan aquí; filas de
// productos distintos no se bloquean entre sí.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return scanProduct(r.q.QueryRow(ctx, query, id))
}

// ApplyDelta suma delta (con signo) a quantity y devuelve el nuevo valor.
// El predicado quantity + delta >= 0 hace que la BD misma rechace dejar el
// stock negativo, incluso si algún caller se saltara la verificación previa.
func (r *ProductRepo) ApplyDelta(ctx context.Context, id string, delta int64) (int64, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING quantity`
	var newQty int64
	err := r.q.QueryRow(ctx, query, id, delta).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Fila no afectada: producto inexistente o stock insuficiente.
			exists, exErr := r.exists(ctx, id)
			if exErr != nil {
				return 0, exErr
			}
			if !exists {
				return 0, domain.ErrNotFound
			}
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("apply delta: %w", err)
	}
	return newQty, nil
}

func (r *ProductRepo) exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx, `SELECT 1 FROM products WHERE id = $1`, id).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return true, nil
}
