package config

import (
	"fmt"
	"net/url"
	"time"

	"holewatch/internal/api"
	"holewatch/internal/errors"
)

// MinInterval is the fastest poll cadence accepted; anything quicker just
// hammers the rig's single-board computer.
const MinInterval = 100 * time.Millisecond

// Lens position limits, matching the camera's focus sweep range.
const (
	MinLensPosition = 0.0
	MaxLensPosition = 100.0
)

var validRanges = map[string]bool{"normal": true, "macro": true, "full": true}
var validSpeeds = map[string]bool{"normal": true, "fast": true}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Server == "" {
		return errors.New(errors.ErrConfig,
			"No server configured",
			"Set 'server' in .holewatch.yaml to the backend URL, e.g. http://rig:5000")
	}

	u, err := url.Parse(cfg.Server)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a server URL", cfg.Server),
			"Use an absolute URL like http://192.168.1.40:5000")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unsupported server scheme '%s'", u.Scheme),
			"The inspection backend speaks plain http (or https behind a proxy)")
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Poll interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use %s or longer to avoid overwhelming the rig", MinInterval))
	}

	if cfg.Lens.Position < MinLensPosition || cfg.Lens.Position > MaxLensPosition {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Lens position %.2f is out of range", cfg.Lens.Position),
			fmt.Sprintf("Positions run from %.0f (infinity) to %.0f", MinLensPosition, MaxLensPosition))
	}

	if _, err := api.ParseFocusMode(cfg.Lens.Mode); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid focus mode '%s'", cfg.Lens.Mode),
			"Use manual, auto, or continuous")
	}

	if !validRanges[cfg.Lens.Range] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid focus range '%s'", cfg.Lens.Range),
			"Use normal, macro, or full")
	}

	if !validSpeeds[cfg.Lens.Speed] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid focus speed '%s'", cfg.Lens.Speed),
			"Use normal or fast")
	}

	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid color mode '%s'", cfg.Output.Color),
			"Use auto, always, or never")
	}

	return nil
}
