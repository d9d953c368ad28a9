package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// lockTimeout espera máxima por el lock de la fila del producto. Si otra
// transacción lo retiene más tiempo, la llamada falla con ErrBusy en lugar
// de bloquear indefinidamente.
const lockTimeout = "3s"

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. SET LOCAL lock_timeout acota la espera por la fila;
// el 55P03 resultante se traduce a domain.ErrBusy (reintentable).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '"+lockTimeout+"'"); err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	productRepo := NewProductRepository(tx)
	purchaseRepo := NewPurchaseRepository(tx)
	saleRepo := NewSaleRepository(tx)

	if err := fn(productRepo, purchaseRepo, saleRepo); err != nil {
		if isLockNotAvailable(err) {
			return domain.ErrBusy
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
