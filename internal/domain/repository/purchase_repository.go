package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia del log de compras.
// Insert-only: los eventos son inmutables, no hay Update ni Delete.
type PurchaseRepository interface {
	Create(ctx context.Context, event *entity.PurchaseEvent) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseEvent, error)
	ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.PurchaseEvent, error)
	ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.PurchaseEvent, error)
}
