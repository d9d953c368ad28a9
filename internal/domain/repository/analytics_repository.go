package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult producto más vendido (por unidades) en un período.
type TopProductResult struct {
	ProductID string
	Code      string
	Name      string
	Units     int64
	Revenue   decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura sobre el log de eventos.
// Proyecciones para el dashboard: nunca participa en la ruta de escritura.
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve ingreso (suma de totales) y utilidad
	// (suma de profits almacenados) de las ventas del período.
	GetSalesMetrics(ctx context.Context, from, to time.Time) (revenue, profit decimal.Decimal, err error)
	// GetPurchaseTotal devuelve el gasto en compras del período.
	GetPurchaseTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// GetTopProducts devuelve los n productos con más unidades vendidas en el período.
	GetTopProducts(ctx context.Context, from, to time.Time, n int) ([]TopProductResult, error)
	// CountAlerts recorre los productos y cuenta cuántos caen en cada estado de alerta.
	CountAlerts(ctx context.Context, today time.Time) (lowStock, expiringSoon, expired int, err error)
}
