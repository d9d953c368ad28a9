package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia del log de ventas.
// Insert-only: los eventos son inmutables, no hay Update ni Delete.
type SaleRepository interface {
	Create(ctx context.Context, event *entity.SaleEvent) error
	GetByID(ctx context.Context, id string) (*entity.SaleEvent, error)
	ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.SaleEvent, error)
	ListByPeriod(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.SaleEvent, error)
}
