package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// En production las líneas salen en JSON con el campo service fijo.
func TestNew_ProductionJSONConCampoService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Env:     "production",
		Level:   "info",
		Service: "farmacia-api",
		Output:  &buf,
	})

	log.Info().Str("product_id", "p-1").Msg("compra registrada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "en production la salida debe ser JSON")
	assert.Equal(t, "farmacia-api", line["service"])
	assert.Equal(t, "compra registrada", line["message"])
	assert.Equal(t, "p-1", line["product_id"])
	assert.Contains(t, line, "time")
}

// El nivel configurado filtra los eventos por debajo.
func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("no debería salir")
	assert.Zero(t, buf.Len(), "info queda filtrado con nivel warn")

	log.Warn().Msg("sí sale")
	assert.NotZero(t, buf.Len())
}

// Un nivel desconocido o vacío cae a info en lugar de fallar.
func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	for _, level := range []string{"", "verboso", "  INFO  "} {
		var buf bytes.Buffer
		log := New(Config{Env: "production", Level: level, Output: &buf})

		log.Debug().Msg("filtrado")
		assert.Zero(t, buf.Len(), "debug no pasa con nivel %q", level)

		log.Info().Msg("visible")
		assert.NotZero(t, buf.Len(), "info pasa con nivel %q", level)
	}
}
