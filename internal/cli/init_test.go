package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holewatch/internal/config"
	"holewatch/internal/errors"
)

func TestInitCommand_WritesDefaultConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, initCommand(false))

	data, err := os.ReadFile(config.ConfigFileName)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "# holewatch configuration")
	assert.Contains(t, content, "server: http://localhost:5000")
	assert.Contains(t, content, "interval: 500ms")
	assert.Contains(t, content, "position: 11.5")
}

func TestInitCommand_ExistingFileWithoutForce(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("server: http://old\n"), 0o644))

	// stdin isn't a TTY under test, so no overwrite prompt appears.
	err := initCommand(false)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	data, err := os.ReadFile(config.ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, "server: http://old\n", string(data), "existing config untouched")
}

func TestInitCommand_ForceOverwrites(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("server: http://old\n"), 0o644))

	require.NoError(t, initCommand(true))

	data, err := os.ReadFile(config.ConfigFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server: http://localhost:5000")
}

func TestInitCommand_GeneratedConfigLoads(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, initCommand(false))

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, config.DefaultConfig().Interval, cfg.Interval)
}
