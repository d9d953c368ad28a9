package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, product_id, supplier_id, quantity, unit_cost, total, notes, recorded_at, created_by`

// PurchaseRepo log de compras sobre PostgreSQL. La tabla es insert-only: este
// adaptador no expone UPDATE ni DELETE.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste el evento de compra. Llamar solo dentro de la transacción
// que aplicó el delta de stock, con la fila del producto aún bloqueada: así
// el orden del log por producto coincide con el orden de commit.
func (r *PurchaseRepo) Create(ctx context.Context, event *entity.PurchaseEvent) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	supplierID := (*string)(nil)
	if event.SupplierID != "" {
		supplierID = &event.SupplierID
	}
	_, err := r.q.Exec(ctx, query,
		event.ID, event.ProductID, supplierID, event.Quantity,
		event.UnitCost, event.Total, event.Notes, event.RecordedAt, event.CreatedBy,
	)
	if err != nil {
		// El producto está bloqueado y verificado dentro de la transacción;
		// una FK rota aquí solo puede ser un proveedor eliminado entre la
		// validación y el insert.
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create purchase event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por id; nil si no existe.
func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseEvent, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	event, err := scanPurchase(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return event, nil
}

func scanPurchase(row pgx.Row) (*entity.PurchaseEvent, error) {
	var e entity.PurchaseEvent
	var supplierID *string
	err := row.Scan(
		&e.ID, &e.ProductID, &supplierID, &e.Quantity,
		&e.UnitCost, &e.Total, &e.Notes, &e.RecordedAt, &e.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan purchase: %w", err)
	}
	if supplierID != nil {
		e.SupplierID = *supplierID
	}
	return &e, nil
}

// ListByProduct lista compras de un producto en un rango de fechas, en orden de commit.
func (r *PurchaseRepo) ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.PurchaseEvent, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE product_id = $1`
	args := []any{productID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND recorded_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND recorded_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY recorded_at, id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.list(ctx, query, args...)
}

// ListByPeriod lista compras de un período, en orden de commit.
func (r *PurchaseRepo) ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.PurchaseEvent, error) {
	query := `
		SELECT ` + purchaseColumns + ` FROM purchases
		WHERE recorded_at BETWEEN $1 AND $2
		ORDER BY recorded_at, id LIMIT $3 OFFSET $4`
	return r.list(ctx, query, from, to, limit, offset)
}

func (r *PurchaseRepo) list(ctx context.Context, query string, args ...any) ([]*entity.PurchaseEvent, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseEvent
	for rows.Next() {
		var e entity.PurchaseEvent
		var supplierID *string
		if err := rows.Scan(
			&e.ID, &e.ProductID, &supplierID, &e.Quantity,
			&e.UnitCost, &e.Total, &e.Notes, &e.RecordedAt, &e.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if supplierID != nil {
			e.SupplierID = *supplierID
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
