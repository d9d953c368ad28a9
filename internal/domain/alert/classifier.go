// Package alert clasifica el estado de urgencia de un producto a partir de un
// snapshot y la fecha actual. Función pura: sin efectos, segura para llamadas
// concurrentes, nunca se cachea el resultado.
package alert

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// State estado de alerta derivado de un producto.
type State string

const (
	StateOK           State = "ok"
	StateLowStock     State = "low_stock"
	StateExpiringSoon State = "expiring_soon"
	StateExpired      State = "expired"
)

// ExpiryWindowDays ventana fija para expiring_soon. Regla de negocio heredada
// del sistema original; no recalcular ni parametrizar.
const ExpiryWindowDays = 30

// Classify aplica las reglas en orden de prioridad:
//  1. quantity <= quantity_minimum            → low_stock (gana aunque también esté por vencer)
//  2. expiry_date < hoy                       → expired
//  3. expiry_date <= hoy + 30 días            → expiring_soon
//  4. en otro caso                            → ok
func Classify(s entity.Snapshot, today time.Time) State {
	if s.Quantity <= s.QuantityMinimum {
		return StateLowStock
	}
	day := truncateToDay(today)
	expiry := truncateToDay(s.ExpiryDate)
	if expiry.Before(day) {
		return StateExpired
	}
	if !expiry.After(day.AddDate(0, 0, ExpiryWindowDays)) {
		return StateExpiringSoon
	}
	return StateOK
}

// truncateToDay descarta el componente horario; la comparación es por fecha calendario.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
