package logging_test

import (
	"testing"

	"github.com/quotecms/quotetag/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default_warn", 0, zerolog.WarnLevel},
		{"verbose_info", 1, zerolog.InfoLevel},
		{"very_verbose_debug", 2, zerolog.DebugLevel},
		{"trace_level", 3, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logging.SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	logging.SetupLogger(0)
	logger := logging.GetLogger("rules.store")
	// Must be usable without panicking
	logger.Debug().Str("key", "value").Msg("test message")
}
