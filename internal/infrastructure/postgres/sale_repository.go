package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, product_id, quantity, unit_price, total, profit, notes, recorded_at, created_by`

// SaleRepo log de ventas sobre PostgreSQL. Insert-only; profit queda
// almacenado tal como se calculó al commit, inmune a cambios de costo.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste el evento de venta dentro de la transacción del ledger.
func (r *SaleRepo) Create(ctx context.Context, event *entity.SaleEvent) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.ProductID, event.Quantity, event.UnitPrice,
		event.Total, event.Profit, event.Notes, event.RecordedAt, event.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create sale event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por id; nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.SaleEvent, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var e entity.SaleEvent
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ProductID, &e.Quantity, &e.UnitPrice,
		&e.Total, &e.Profit, &e.Notes, &e.RecordedAt, &e.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &e, nil
}

// ListByProduct lista ventas de un producto en un rango de fechas, en orden de commit.
func (r *SaleRepo) ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.SaleEvent, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE product_id = $1`
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

// ListByPeriod lista ventas de un período, en orden de commit.
func (r *SaleRepo) ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.SaleEvent, error) {
	query := `
		SELECT ` + saleColumns + ` FROM sales
		WHERE recorded_at BETWEEN $1 AND $2
		ORDER BY recorded_at, id LIMIT $3 OFFSET $4`
	return r.list(ctx, query, from, to, limit, offset)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SaleEvent, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleEvent
	for rows.Next() {
		var e entity.SaleEvent
		if err := rows.Scan(
			&e.ID, &e.ProductID, &e.Quantity, &e.UnitPrice,
			&e.Total, &e.Profit, &e.Notes, &e.RecordedAt, &e.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
