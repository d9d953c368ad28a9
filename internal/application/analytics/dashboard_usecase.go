// Package analytics contiene el caso de uso del dashboard: proyecciones de
// solo lectura sobre el log de eventos (ventas, compras) y los contadores de
// alerta. Nunca participa en la ruta de escritura del ledger.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/cache"
)

const (
	dashboardTopProducts = 5 // número de productos en el widget del dashboard
	dashboardCacheKey    = "dashboard:summary"
	dashboardCacheTTL    = 30 * time.Second
)

// DashboardUseCase genera el resumen financiero del día y del mes en curso.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         cache.DashboardCache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser NoopDashboardCache.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, c cache.DashboardCache) *DashboardUseCase {
	if c == nil {
		c = cache.NoopDashboardCache{}
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: c}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. GetSalesMetrics(hoy)     → TodaySales + TodayProfit
//  2. GetSalesMetrics(mes)     → MonthlySales + MonthlyProfit
//  3. GetPurchaseTotal(mes)    → MonthlyPurchase
//  4. GetTopProducts(mes, 5)   → TopProducts
//
// CountAlerts va después: necesita la fecha de hoy ya truncada.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if cached, hit, err := uc.cache.Get(ctx, dashboardCacheKey); err == nil && hit {
		return cached, nil
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type metricsResult struct {
		revenue decimal.Decimal
		profit  decimal.Decimal
		err     error
	}
	type purchaseResult struct {
		total decimal.Decimal
		err   error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	purchaseCh := make(chan purchaseResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		rev, profit, err := uc.analyticsRepo.GetSalesMetrics(ctx, todayStart, todayEnd)
		todayCh <- metricsResult{rev, profit, err}
	}()
	go func() {
		rev, profit, err := uc.analyticsRepo.GetSalesMetrics(ctx, monthStart, todayEnd)
		monthCh <- metricsResult{rev, profit, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.GetPurchaseTotal(ctx, monthStart, todayEnd)
		purchaseCh <- purchaseResult{total, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, todayEnd, dashboardTopProducts)
		topCh <- topResult{products, err}
	}()

	today := <-todayCh
	month := <-monthCh
	purchase := <-purchaseCh
	top := <-topCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", month.err)
	}
	if purchase.err != nil {
		return nil, fmt.Errorf("dashboard: compras del mes: %w", purchase.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}

	lowStock, expiringSoon, expired, err := uc.analyticsRepo.CountAlerts(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("dashboard: alertas: %w", err)
	}

	topProducts := make([]dto.TopProductDTO, 0, len(top.products))
	for _, p := range top.products {
		topProducts = append(topProducts, dto.TopProductDTO{
			ProductID: p.ProductID,
			Code:      p.Code,
			Name:      p.Name,
			Units:     p.Units,
			Revenue:   p.Revenue.Round(2),
		})
	}

	summary := &dto.DashboardSummaryDTO{
		TodaySales:      today.revenue.Round(2),
		TodayProfit:     today.profit.Round(2),
		MonthlySales:    month.revenue.Round(2),
		MonthlyProfit:   month.profit.Round(2),
		MonthlyPurchase: purchase.total.Round(2),
		TopProducts:     topProducts,
		Alerts: dto.AlertCountersDTO{
			LowStock:     lowStock,
			ExpiringSoon: expiringSoon,
			Expired:      expired,
		},
	}

	// Fallo de caché no es fatal: el resumen ya está calculado.
	_ = uc.cache.Set(ctx, dashboardCacheKey, summary, dashboardCacheTTL)
	return summary, nil
}
