package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/mes-pro/pkg/logger"
)

// El nivel configurado se aplica al logger; un nivel desconocido cae en info
// en lugar de romper el arranque.
func TestNew_NivelConfigurado(t *testing.T) {
	casos := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, c := range casos {
		l := logger.New(logger.Config{Env: "production", Level: c.level, Service: "mes-pro"})
		assert.Equal(t, c.want, l.Zerolog().GetLevel(), "level=%q", c.level)
	}
}
