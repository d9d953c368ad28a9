package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/alert"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre el log de eventos para el
// dashboard. Siempre va contra el pool: nunca participa en la transacción
// de escritura del ledger.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics suma totales y utilidades almacenadas de las ventas del
// período. profit viene de la columna, no se recalcula: la historia es inmune
// a cambios posteriores del costo.
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total), 0), COALESCE(SUM(profit), 0)
		FROM sales
		WHERE recorded_at BETWEEN $1 AND $2`
	var revenue, profit decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&revenue, &profit); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sales metrics: %w", err)
	}
	return revenue, profit, nil
}

// GetPurchaseTotal suma el gasto en compras del período.
func (r *AnalyticsRepo) GetPurchaseTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total), 0)
		FROM purchases
		WHERE recorded_at BETWEEN $1 AND $2`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("purchase total: %w", err)
	}
	return total, nil
}

// GetTopProducts productos con más unidades vendidas en el período.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, from, to time.Time, n int) ([]repository.TopProductResult, error) {
	const query = `
		SELECT p.id, p.code, p.name, SUM(s.quantity) AS units, SUM(s.total) AS revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.recorded_at BETWEEN $1 AND $2
		GROUP BY p.id, p.code, p.name
		ORDER BY units DESC, revenue DESC
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, from, to, n)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.Code, &t.Name, &t.Units, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// CountAlerts cuenta productos por estado de alerta con la misma prioridad
// que alert.Classify: stock bajo gana sobre vencido y por vencer.
func (r *AnalyticsRepo) CountAlerts(ctx context.Context, today time.Time) (int, int, int, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	windowEnd := day.AddDate(0, 0, alert.ExpiryWindowDays)
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE quantity <= quantity_minimum),
			COUNT(*) FILTER (WHERE quantity > quantity_minimum AND expiry_date >= $1 AND expiry_date <= $2),
			COUNT(*) FILTER (WHERE quantity > quantity_minimum AND expiry_date < $1)
		FROM products`
	var lowStock, expiringSoon, expired int
	if err := r.pool.QueryRow(ctx, query, day, windowEnd).Scan(&lowStock, &expiringSoon, &expired); err != nil {
		return 0, 0, 0, fmt.Errorf("count alerts: %w", err)
	}
	return lowStock, expiringSoon, expired, nil
}
