package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// Los helpers deben reconocer el código SQLSTATE aunque el error venga envuelto.
func TestIsLockNotAvailable(t *testing.T) {
	lockErr := &pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"}

	assert.True(t, isLockNotAvailable(lockErr))
	assert.True(t, isLockNotAvailable(fmt.Errorf("apply delta: %w", lockErr)),
		"debe atravesar el wrapping con errors.As")

	assert.False(t, isLockNotAvailable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isLockNotAvailable(errors.New("lock timeout")),
		"un error plano sin PgError no es 55P03")
	assert.False(t, isLockNotAvailable(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	dupErr := &pgconn.PgError{Code: "23505", ConstraintName: "products_code_key"}

	assert.True(t, isUniqueViolation(dupErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("create product: %w", dupErr)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "55P03"}))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "purchases_supplier_id_fkey"}

	assert.True(t, isForeignKeyViolation(fkErr))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("create purchase event: %w", fkErr)))

	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(nil))
}
