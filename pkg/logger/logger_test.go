package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name        string
		logLvl      string
		expectError bool
	}{
		{name: "Debug level", logLvl: "debug"},
		{name: "Info level", logLvl: "info"},
		{name: "Warn level", logLvl: "warn"},
		{name: "Error level", logLvl: "error"},
		{name: "Unsupported level", logLvl: "trace", expectError: true},
		{name: "Empty level", logLvl: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported log lvl")
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, zap.L())
		})
	}
}
