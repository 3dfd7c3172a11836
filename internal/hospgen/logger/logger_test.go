package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		require.NoError(t, InitLogger(level), "level %s", level)
		assert.NotNil(t, L())
	}
}

func TestInitLogger_UnknownLevelFallsBack(t *testing.T) {
	require.NoError(t, InitLogger("chatty"))
	core := L().Desugar().Core()
	assert.True(t, core.Enabled(zapcore.InfoLevel))
	assert.False(t, core.Enabled(zapcore.DebugLevel))
}

func TestL_WithoutInit(t *testing.T) {
	global = nil
	assert.NotNil(t, L())
}
