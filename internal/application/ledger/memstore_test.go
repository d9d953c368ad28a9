package ledger_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para el motor de ledger.
//
// memTxRunner serializa cada transacción completa detrás de un mutex y
// emula rollback restaurando el estado si fn falla o el ctx se cancela.
// Es más estricto que el lock por fila de PostgreSQL, pero suficiente para
// verificar exclusión, atomicidad y rechazo-sin-mutación.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	purchases []*entity.PurchaseEvent
	sales     []*entity.SaleEvent
	suppliers map[string]*entity.Supplier
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		suppliers: make(map[string]*entity.Supplier),
	}
}

func (s *memStore) addProduct(p entity.Product) {
	s.products[p.ID] = &p
}

func (s *memStore) addSupplier(sup entity.Supplier) {
	s.suppliers[sup.ID] = &sup
}

func (s *memStore) quantity(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		return p.Quantity
	}
	return -1
}

// snapshotState copia el estado mutable para poder restaurarlo en rollback.
func (s *memStore) snapshotState() (map[string]entity.Product, int, int) {
	products := make(map[string]entity.Product, len(s.products))
	for id, p := range s.products {
		products[id] = *p
	}
	return products, len(s.purchases), len(s.sales)
}

func (s *memStore) restoreState(products map[string]entity.Product, nPurchases, nSales int) {
	s.products = make(map[string]*entity.Product, len(products))
	for id := range products {
		p := products[id]
		s.products[id] = &p
	}
	s.purchases = s.purchases[:nPurchases]
	s.sales = s.sales[:nSales]
}

type memTxRunner struct {
	store *memStore
	// failSaleCreate fuerza un error al persistir la venta (simula fallo de storage).
	failSaleCreate error
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	products, nPurchases, nSales := r.store.snapshotState()
	err := fn(
		&memProductRepo{store: r.store},
		&memPurchaseRepo{store: r.store},
		&memSaleRepo{store: r.store, failCreate: r.failSaleCreate},
	)
	if err == nil {
		err = ctx.Err() // cancelación antes del commit: rollback
	}
	if err != nil {
		r.store.restoreState(products, nPurchases, nSales)
		return err
	}
	return nil
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.store.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	existing, ok := r.store.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	qty := existing.Quantity // quantity no se toca por Update
	cp := *p
	cp.Quantity = qty
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

func (r *memProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) GetForUpdate(_ context.Context, id string) (*entity.Product, error) {
	// El mutex del runner ya serializa la transacción completa.
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) ApplyDelta(_ context.Context, id string, delta int64) (int64, error) {
	p, ok := r.store.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	newQty := p.Quantity + delta
	if newQty < 0 {
		return 0, domain.ErrInsufficientStock
	}
	p.Quantity = newQty
	return newQty, nil
}

type memPurchaseRepo struct{ store *memStore }

func (r *memPurchaseRepo) Create(_ context.Context, e *entity.PurchaseEvent) error {
	cp := *e
	r.store.purchases = append(r.store.purchases, &cp)
	return nil
}

func (r *memPurchaseRepo) GetByID(_ context.Context, id string) (*entity.PurchaseEvent, error) {
	for _, e := range r.store.purchases {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPurchaseRepo) ListByProduct(_ context.Context, productID string, _, _ *time.Time, _, _ int) ([]*entity.PurchaseEvent, error) {
	var out []*entity.PurchaseEvent
	for _, e := range r.store.purchases {
		if e.ProductID == productID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPurchaseRepo) ListByPeriod(_ context.Context, _, _ time.Time, _, _ int) ([]*entity.PurchaseEvent, error) {
	out := make([]*entity.PurchaseEvent, len(r.store.purchases))
	copy(out, r.store.purchases)
	return out, nil
}

type memSaleRepo struct {
	store      *memStore
	failCreate error
}

func (r *memSaleRepo) Create(_ context.Context, e *entity.SaleEvent) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *e
	r.store.sales = append(r.store.sales, &cp)
	return nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id string) (*entity.SaleEvent, error) {
	for _, e := range r.store.sales {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) ListByProduct(_ context.Context, productID string, _, _ *time.Time, _, _ int) ([]*entity.SaleEvent, error) {
	var out []*entity.SaleEvent
	for _, e := range r.store.sales {
		if e.ProductID == productID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSaleRepo) ListByPeriod(_ context.Context, _, _ time.Time, _, _ int) ([]*entity.SaleEvent, error) {
	out := make([]*entity.SaleEvent, len(r.store.sales))
	copy(out, r.store.sales)
	return out, nil
}

type memSupplierRepo struct{ store *memStore }

func (r *memSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.store.suppliers[s.ID] = s
	return nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	s, ok := r.store.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	r.store.suppliers[s.ID] = s
	return nil
}

func (r *memSupplierRepo) Delete(_ context.Context, id string) error {
	delete(r.store.suppliers, id)
	return nil
}

func (r *memSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.store.suppliers))
	for _, s := range r.store.suppliers {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}
