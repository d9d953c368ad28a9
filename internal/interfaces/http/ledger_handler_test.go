package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
)

// countingProductRepo devuelve siempre el mismo producto y cuenta las
// lecturas. Solo el camino de snapshot debe tocarlo, y una sola vez.
type countingProductRepo struct {
	product  *entity.Product
	getCalls int
}

func (r *countingProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.getCalls++
	if r.product == nil || r.product.ID != id {
		return nil, nil
	}
	cp := *r.product
	return &cp, nil
}

func (r *countingProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *countingProductRepo) GetByCode(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *countingProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (r *countingProductRepo) Delete(context.Context, string) error          { return nil }
func (r *countingProductRepo) List(context.Context, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *countingProductRepo) GetForUpdate(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *countingProductRepo) ApplyDelta(context.Context, string, int64) (int64, error) {
	return 0, nil
}

func newSnapshotApp(repo *countingProductRepo) *fiber.App {
	// El camino de snapshot no usa la transacción ni el repo de proveedores.
	uc := ledger.NewUseCase(nil, repo, nil, nil)
	handler := apphttp.NewLedgerHandler(uc)

	app := fiber.New()
	app.Get("/api/products/:id/snapshot", handler.GetSnapshot)
	app.Get("/api/products/:id/alert", handler.GetAlert)
	return app
}

// El snapshot y su estado de alerta salen de una única lectura del producto:
// cantidad y alerta no pueden desalinearse por una escritura intermedia.
func TestGetSnapshot_UnaSolaLecturaConAlertaConsistente(t *testing.T) {
	repo := &countingProductRepo{product: &entity.Product{
		ID:              "prod-1",
		Code:            "ACET-500",
		Name:            "Acetaminofén 500mg",
		Quantity:        3,
		QuantityMinimum: 10,
		PurchaseCost:    decimal.RequireFromString("12.00"),
		SalePrice:       decimal.RequireFromString("20.00"),
		ExpiryDate:      time.Now().AddDate(2, 0, 0),
	}}
	app := newSnapshotApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/prod-1/snapshot", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, repo.getCalls, "el snapshot con alerta debe costar una sola lectura")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "prod-1", body["product_id"])
	assert.Equal(t, float64(3), body["quantity"])
	assert.Equal(t, "low_stock", body["alert"],
		"cantidad 3 con mínimo 10 es stock bajo")
}

func TestGetSnapshot_ProductoInexistente404(t *testing.T) {
	app := newSnapshotApp(&countingProductRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/no-existe/snapshot", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetAlert_EstadoOK(t *testing.T) {
	repo := &countingProductRepo{product: &entity.Product{
		ID:              "prod-1",
		Code:            "ACET-500",
		Name:            "Acetaminofén 500mg",
		Quantity:        50,
		QuantityMinimum: 10,
		PurchaseCost:    decimal.RequireFromString("12.00"),
		SalePrice:       decimal.RequireFromString("20.00"),
		ExpiryDate:      time.Now().AddDate(2, 0, 0),
	}}
	app := newSnapshotApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/prod-1/alert", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["alert"])
}
