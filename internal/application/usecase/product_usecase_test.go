package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repo de productos en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo replica las reglas del adaptador de PostgreSQL: Update nunca
// toca quantity, Create rechaza códigos duplicados.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *product
	cp.Quantity = existing.Quantity // la columna quantity queda fuera del UPDATE
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) ApplyDelta(_ context.Context, id string, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if p.Quantity+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	p.Quantity += delta
	return p.Quantity, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:         "IBU-400",
		Name:         "Ibuprofeno 400mg",
		PurchaseCost: decimal.RequireFromString("8.50"),
		SalePrice:    decimal.RequireFromString("14.00"),
		ExpiryDate:   "2027-06-30",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El alta siempre arranca con stock 0 y mínimo por defecto 10.
func TestProductCreate_StockInicialCeroYMinimoDefault(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	resp, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.Quantity, "el stock inicial siempre es 0")
	assert.Equal(t, int64(entity.QuantityMinimumDefault), resp.QuantityMinimum)
	assert.Equal(t, "2027-06-30", resp.ExpiryDate)
	assert.True(t, resp.PurchaseCost.Equal(decimal.RequireFromString("8.50")))
}

func TestProductCreate_MinimoExplicito(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	in := validCreateRequest()
	min := int64(25)
	in.QuantityMinimum = &min

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.QuantityMinimum)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	casos := []struct {
		nombre string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sin código", func(in *dto.CreateProductRequest) { in.Code = "" }},
		{"sin nombre", func(in *dto.CreateProductRequest) { in.Name = "" }},
		{"costo negativo", func(in *dto.CreateProductRequest) { in.PurchaseCost = decimal.RequireFromString("-1") }},
		{"fecha malformada", func(in *dto.CreateProductRequest) { in.ExpiryDate = "30/06/2027" }},
		{"mínimo negativo", func(in *dto.CreateProductRequest) {
			min := int64(-1)
			in.QuantityMinimum = &min
		}},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			in := validCreateRequest()
			tc.mutate(&in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Update modifica datos de referencia pero jamás la cantidad, aunque el
// producto ya tenga stock acumulado por el ledger.
func TestProductUpdate_NoTocaQuantity(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// Simula stock acumulado por compras del ledger.
	_, err = repo.ApplyDelta(ctx, created.ID, 40)
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{
		Name:            "Ibuprofeno 400mg x30",
		QuantityMinimum: 15,
		PurchaseCost:    decimal.RequireFromString("9.00"),
		SalePrice:       decimal.RequireFromString("15.50"),
		ExpiryDate:      "2027-12-31",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40), updated.Quantity, "quantity no cambia por Update")
	assert.Equal(t, "Ibuprofeno 400mg x30", updated.Name)
	assert.Equal(t, int64(15), updated.QuantityMinimum)
	assert.Equal(t, "2027-12-31", updated.ExpiryDate)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{
		Name:         "X",
		PurchaseCost: decimal.RequireFromString("1.00"),
		SalePrice:    decimal.RequireFromString("2.00"),
		ExpiryDate:   "2027-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetByCode(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	found, err := uc.GetByCode(ctx, "IBU-400")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = uc.GetByCode(ctx, "NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_Paginado(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	for _, code := range []string{"AAA-1", "BBB-2", "CCC-3"} {
		in := validCreateRequest()
		in.Code = code
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "AAA-1", page[0].Code)
	assert.Equal(t, "BBB-2", page[1].Code)

	rest, err := uc.List(ctx, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "CCC-3", rest[0].Code)
}
