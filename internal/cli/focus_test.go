package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holewatch/internal/api"
	"holewatch/internal/config"
	"holewatch/internal/errors"
)

// Tests run without a TTY on stdin, so buildFocusRequest never opens the
// interactive form here.

func TestBuildFocusRequest_ExplicitPosition(t *testing.T) {
	cfg := config.DefaultConfig()

	req, err := buildFocusRequest(cfg, "9.75", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, api.FocusManual, req.Mode)
	assert.Equal(t, 9.75, req.Position)
}

func TestBuildFocusRequest_DefaultsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lens.Position = 22.5

	req, err := buildFocusRequest(cfg, "", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, api.FocusManual, req.Mode)
	assert.Equal(t, 22.5, req.Position)
}

func TestBuildFocusRequest_AutoModeIgnoresPosition(t *testing.T) {
	cfg := config.DefaultConfig()

	req, err := buildFocusRequest(cfg, "", "auto", "macro", "fast")
	require.NoError(t, err)

	assert.Equal(t, api.FocusAuto, req.Mode)
	assert.Equal(t, 0.0, req.Position)
	assert.Equal(t, "macro", req.Range)
	assert.Equal(t, "fast", req.Speed)
}

func TestBuildFocusRequest_BadMode(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := buildFocusRequest(cfg, "", "telepathic", "", "")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrFocus))
}

func TestBuildFocusRequest_BadPosition(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := buildFocusRequest(cfg, "close-ish", "manual", "", "")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrFocus))
}

func TestBuildFocusRequest_WhitespacePositionFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()

	req, err := buildFocusRequest(cfg, "   ", "manual", "", "")
	require.NoError(t, err)

	assert.Equal(t, cfg.Lens.Position, req.Position)
}
