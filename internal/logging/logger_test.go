package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger("world", &buf, INFO)

	logger.Debug("скрыто %d", 1)
	logger.Info("чанк %d создан", 7)

	out := buf.String()
	assert.NotContains(t, out, "скрыто")
	assert.Contains(t, out, "[INFO] [world] чанк 7 создан")
	assert.False(t, logger.Enabled(DEBUG))
	assert.True(t, logger.Enabled(WARN))
}

func TestNilLoggerIsNoop(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() { logger.Info("ничего") })
	assert.False(t, logger.Enabled(ERROR))
	assert.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DEBUG, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, INFO, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerManager_ConsoleFactory(t *testing.T) {
	var buf bytes.Buffer
	lm := NewLoggerManager(ConsoleFactory(&buf, TRACE))

	a := lm.MustGetLogger("world")
	b := lm.MustGetLogger("world")
	assert.Same(t, a, b)

	lm.MustGetLogger("worldgen")
	assert.Equal(t, []string{"world", "worldgen"}, lm.ListComponents())

	require.NoError(t, lm.SetLogLevel("world", ERROR, ERROR))
	a.Warn("не должно попасть")
	assert.Empty(t, buf.String())

	assert.Error(t, lm.SetLogLevel("missing", INFO, INFO))
	assert.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}
