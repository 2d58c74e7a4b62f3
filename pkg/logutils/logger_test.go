package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	closer()
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "viewxy.log")

	logger, closer, err := New("debug", file)
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	logger.Debug().Str("gemeente", "Utrecht").Msg("hello")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"gemeente":"Utrecht"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNew_AppendsToExistingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "viewxy.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}
