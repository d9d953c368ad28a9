// Package cache expone el caché del resumen de dashboard. Las proyecciones
// del log de eventos son costosas de agregar en caliente; un TTL corto evita
// golpear la BD en cada refresco de pantalla sin comprometer la ruta de
// escritura, que nunca pasa por aquí.
package cache

import (
	"context"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
)

// DashboardCache puerto de caché para el resumen del dashboard.
type DashboardCache interface {
	Get(ctx context.Context, key string) (*dto.DashboardSummaryDTO, bool, error)
	Set(ctx context.Context, key string, value *dto.DashboardSummaryDTO, ttl time.Duration) error
}

// NoopDashboardCache implementación nula: siempre miss. Se usa cuando Redis
// no está configurado y en tests.
type NoopDashboardCache struct{}

func (NoopDashboardCache) Get(context.Context, string) (*dto.DashboardSummaryDTO, bool, error) {
	return nil, false, nil
}

func (NoopDashboardCache) Set(context.Context, string, *dto.DashboardSummaryDTO, time.Duration) error {
	return nil
}
