// Package logger arma el logger estructurado del servicio sobre zerolog.
// Cada línea lleva timestamp y el nombre del servicio; el formato depende
// del entorno (consola legible fuera de production, JSON en production).
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env     string    // production -> JSON; cualquier otro -> consola legible
	Level   string    // trace, debug, info, warn, error (default info)
	Service string    // se agrega como campo fijo en cada línea
	Output  io.Writer // destino; nil usa os.Stdout
}

// Logger wrapper sobre zerolog para inyección en los casos de uso.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del servicio y lo fija también como logger global de
// zerolog para las librerías que usen log.Logger.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env != "production" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Service != "" {
		zctx = zctx.Str("service", cfg.Service)
	}
	zl := zctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Debug, Info, Warn, Error, Fatal delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos adicionales.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
