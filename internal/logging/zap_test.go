package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  zapcore.Level
		isNil bool
	}{
		{"debug", "debug", zapcore.DebugLevel, false},
		{"info", "info", zapcore.InfoLevel, false},
		{"warn", "warn", zapcore.WarnLevel, false},
		{"error", "error", zapcore.ErrorLevel, false},
		{"unknown keeps default", "trace", 0, true},
		{"empty keeps default", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLevel(tt.in)
			if tt.isNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger("debug", true)
	require.NoError(t, err)
	require.NotNil(t, l)

	child := l.With("component", "test")
	require.NotNil(t, child)
}
