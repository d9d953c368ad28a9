package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	calls int
}

func (f *fakeAnalyticsRepo) GetSalesMetrics(_ context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	f.calls++
	// El rango del día es más corto que el del mes; diferenciamos por eso.
	if to.Sub(from) < 25*time.Hour {
		return decimal.NewFromInt(150), decimal.NewFromInt(60), nil
	}
	return decimal.NewFromInt(3200), decimal.NewFromInt(1100), nil
}

func (f *fakeAnalyticsRepo) GetPurchaseTotal(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.NewFromInt(900), nil
}

func (f *fakeAnalyticsRepo) GetTopProducts(_ context.Context, _, _ time.Time, n int) ([]repository.TopProductResult, error) {
	return []repository.TopProductResult{
		{ProductID: "p1", Code: "ACET-500", Name: "Acetaminofén", Units: 40, Revenue: decimal.NewFromInt(800)},
	}, nil
}

func (f *fakeAnalyticsRepo) CountAlerts(context.Context, time.Time) (int, int, int, error) {
	return 2, 1, 0, nil
}

func TestGetSummary(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo, nil) // nil → Noop cache

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TodaySales.Equal(decimal.NewFromInt(150)))
	assert.True(t, summary.TodayProfit.Equal(decimal.NewFromInt(60)))
	assert.True(t, summary.MonthlySales.Equal(decimal.NewFromInt(3200)))
	assert.True(t, summary.MonthlyPurchase.Equal(decimal.NewFromInt(900)))
	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, int64(40), summary.TopProducts[0].Units)
	assert.Equal(t, 2, summary.Alerts.LowStock)
	assert.Equal(t, 1, summary.Alerts.ExpiringSoon)
}
