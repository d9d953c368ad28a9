package ledger

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ledger:
// o el ajuste de stock y el evento quedan visibles juntos, o ninguno.
//
// La implementación debe acotar la espera por el lock de fila y devolver
// domain.ErrBusy si se agota, y respetar la cancelación del ctx (rollback
// sin rastro si el caller cancela antes del commit).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
