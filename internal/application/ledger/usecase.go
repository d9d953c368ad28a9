// Package ledger implementa el motor de inventario: aplica compras y ventas
// de forma atómica contra el stock del producto y deja un log append-only de
// eventos con los campos financieros derivados (total, utilidad) calculados
// una sola vez al commit.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/alert"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// UseCase motor de ledger de inventario. Las pantallas CRUD lo invocan como
// caja negra; es el único componente autorizado a mutar Product.Quantity.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewUseCase construye el motor. now inyectable para tests; nil usa time.Now.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository, log *logger.Logger) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		log:          log,
		now:          time.Now,
	}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// PurchaseInput entrada para RecordPurchase. SupplierID es opcional.
type PurchaseInput struct {
	ProductID  string
	SupplierID string
	Quantity   int64
	UnitCost   decimal.Decimal
	ActorID    string
	Notes      string
}

// SaleInput entrada para RecordSale.
type SaleInput struct {
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	ActorID   string
	Notes     string
}

// RecordPurchase incrementa el stock del producto y registra el evento de
// compra en una sola unidad de trabajo atómica.
//
// Precondiciones: Quantity > 0, UnitCost >= 0, producto existente (y proveedor,
// si viene). Cantidad cero se rechaza con ErrInvalidInput, no es un no-op.
func (uc *UseCase) RecordPurchase(ctx context.Context, in PurchaseInput) (*entity.PurchaseEvent, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}

	var event *entity.PurchaseEvent
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		// Bloquea la fila del producto; serializa con otras compras/ventas
		// del mismo producto sin frenar productos distintos.
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if _, err := productRepo.ApplyDelta(ctx, in.ProductID, in.Quantity); err != nil {
			return err
		}
		now := uc.now()
		event = &entity.PurchaseEvent{
			ID:         uuid.New().String(),
			ProductID:  in.ProductID,
			SupplierID: in.SupplierID,
			Quantity:   in.Quantity,
			UnitCost:   in.UnitCost,
			Total:      decimal.NewFromInt(in.Quantity).Mul(in.UnitCost).Round(2),
			Notes:      in.Notes,
			RecordedAt: now,
			CreatedBy:  in.ActorID,
		}
		return purchaseRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	if uc.log != nil {
		uc.log.Info().
			Str("product_id", in.ProductID).
			Int64("quantity", in.Quantity).
			Str("total", event.Total.String()).
			Msg("compra registrada")
	}
	return event, nil
}

// RecordSale decrementa el stock del producto y registra el evento de venta.
//
// La verificación de stock y el decremento ocurren con la fila bloqueada en la
// misma transacción: dos ventas concurrentes no pueden leer ambas el stock
// pre-decremento y tener éxito cuando solo una cabía. Si no alcanza el stock
// se aborta con ErrInsufficientStock y no queda ninguna mutación.
//
// Profit = (UnitPrice − PurchaseCost vigente al commit) × Quantity. Se almacena
// y nunca se recalcula; puede ser negativo.
func (uc *UseCase) RecordSale(ctx context.Context, in SaleInput) (*entity.SaleEvent, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var event *entity.SaleEvent
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		if _, err := productRepo.ApplyDelta(ctx, in.ProductID, -in.Quantity); err != nil {
			return err
		}
		qty := decimal.NewFromInt(in.Quantity)
		now := uc.now()
		event = &entity.SaleEvent{
			ID:         uuid.New().String(),
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			Total:      qty.Mul(in.UnitPrice).Round(2),
			Profit:     in.UnitPrice.Sub(product.PurchaseCost).Mul(qty).Round(2),
			Notes:      in.Notes,
			RecordedAt: now,
			CreatedBy:  in.ActorID,
		}
		return saleRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	if uc.log != nil {
		uc.log.Info().
			Str("product_id", in.ProductID).
			Int64("quantity", in.Quantity).
			Str("profit", event.Profit.String()).
			Msg("venta registrada")
	}
	return event, nil
}

// GetProductSnapshot vista puntual de solo lectura del producto. Sin efectos.
func (uc *UseCase) GetProductSnapshot(ctx context.Context, productID string) (entity.Snapshot, error) {
	if productID == "" {
		return entity.Snapshot{}, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return entity.Snapshot{}, err
	}
	if product == nil {
		return entity.Snapshot{}, domain.ErrNotFound
	}
	return product.Snapshot(), nil
}

// AlertStatus clasifica el estado de alerta del producto con la fecha dada.
// Siempre se deriva del snapshot más reciente; nunca se persiste.
func (uc *UseCase) AlertStatus(ctx context.Context, productID string, today time.Time) (alert.State, error) {
	snap, err := uc.GetProductSnapshot(ctx, productID)
	if err != nil {
		return "", err
	}
	return alert.Classify(snap, today), nil
}
