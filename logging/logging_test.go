package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitWritesRotatingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pizzapi.log")

	logger, err := Init("production", file)
	require.NoError(t, err)
	defer zap.ReplaceGlobals(zap.NewNop())

	zap.L().Info("menu loaded", zap.String("store_id", "4336"))
	_ = logger.Sync()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"store_id":"4336"`)
}

func TestInitDevelopment(t *testing.T) {
	logger, err := Init("development", "")
	require.NoError(t, err)
	defer zap.ReplaceGlobals(zap.NewNop())

	assert.Same(t, logger, zap.L())
}
