package logging_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulebook/pkg/logging"
)

func TestSetupLogger(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.level, zerolog.GlobalLevel())
	}
}

func TestGetLogger(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	logging.SetupLogger(0)

	logger := logging.GetLogger("rules.selector")
	// Logging must not panic and the logger must be usable
	logger.Debug().Str("path", "src/a.ts").Msg("test message")
}

func TestLogOperationStart(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	logging.SetupLogger(2)

	logger := logging.GetLogger("ruleset.loader")
	done := logging.LogOperationStart(logger, "ruleset-load")
	require.NotNil(t, done)
	done()
}
