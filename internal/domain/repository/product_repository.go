package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// Quantity solo se muta vía ApplyDelta, y únicamente desde el motor de ledger
// dentro de una transacción con la fila bloqueada (GetForUpdate). Create/Update
// son la superficie del CRUD de datos de referencia y nunca tocan quantity.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)

	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y devuelve
	// su estado. Usar solo dentro de una transacción del TxRunner.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// ApplyDelta suma delta (con signo) a quantity y devuelve el nuevo valor.
	// Rechaza con ErrInsufficientStock si el resultado sería negativo.
	ApplyDelta(ctx context.Context, id string, delta int64) (int64, error)
}
