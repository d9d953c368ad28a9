package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// respondWith monta una ruta que responde el error dado y devuelve la respuesta.
func respondWith(t *testing.T, err error) *http.Response {
	t.Helper()
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/t", nil), -1)
	require.NoError(t, reqErr)
	return resp
}

// Contención sobre la fila del producto: 503 reintentable con Retry-After.
func TestRespondError_Busy503ConRetryAfter(t *testing.T) {
	resp := respondWith(t, domain.ErrBusy)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"),
		"ErrBusy debe indicar al cliente cuándo reintentar")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "BUSY")
}

// El wrapping no debe romper el mapeo: errors.Is atraviesa fmt.Errorf %w.
func TestRespondError_BusyEnvuelto(t *testing.T) {
	resp := respondWith(t, errors.Join(errors.New("tx"), domain.ErrBusy))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
}

func TestRespondError_MapeoDeDominio(t *testing.T) {
	casos := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrEmailAlreadyExists, http.StatusConflict, "EMAIL_EXISTS"},
		{domain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{errors.New("disco lleno"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range casos {
		t.Run(tc.code, func(t *testing.T) {
			resp := respondWith(t, tc.err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tc.code)
		})
	}
}
