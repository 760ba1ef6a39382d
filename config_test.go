package lumen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
designer: true
logging:
  debug: true
scene: levels/intro.yaml
step: 16ms
`))
	require.NoError(t, err)

	assert.True(t, cfg.Designer)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, "lumen", cfg.Logging.Prefix, "unset fields keep their defaults")
	assert.Equal(t, "levels/intro.yaml", cfg.Scene)
	assert.Equal(t, 1, cfg.Ticks)
	assert.Equal(t, 16*time.Millisecond, cfg.Step)
}

func TestParseConfig_Errors(t *testing.T) {
	_, err := ParseConfig([]byte("designer: [oops"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("ticks: -3"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("step: -1s"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticks: 5\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Ticks)
	assert.False(t, cfg.Designer)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
