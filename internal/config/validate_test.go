package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"holewatch/internal/errors"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid https server",
			mutate:  func(c *Config) { c.Server = "https://rig.example.com" },
			wantErr: false,
		},
		{
			name:    "empty server",
			mutate:  func(c *Config) { c.Server = "" },
			wantErr: true,
		},
		{
			name:    "server without scheme",
			mutate:  func(c *Config) { c.Server = "rig:5000" },
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			mutate:  func(c *Config) { c.Server = "ftp://rig:5000" },
			wantErr: true,
		},
		{
			name:    "interval at the floor",
			mutate:  func(c *Config) { c.Interval = MinInterval },
			wantErr: false,
		},
		{
			name:    "interval too short",
			mutate:  func(c *Config) { c.Interval = 50 * time.Millisecond },
			wantErr: true,
		},
		{
			name:    "lens position negative",
			mutate:  func(c *Config) { c.Lens.Position = -1 },
			wantErr: true,
		},
		{
			name:    "lens position beyond sweep",
			mutate:  func(c *Config) { c.Lens.Position = 101 },
			wantErr: true,
		},
		{
			name:    "lens position at infinity",
			mutate:  func(c *Config) { c.Lens.Position = 0 },
			wantErr: false,
		},
		{
			name:    "bad focus mode",
			mutate:  func(c *Config) { c.Lens.Mode = "tracking" },
			wantErr: true,
		},
		{
			name:    "bad focus range",
			mutate:  func(c *Config) { c.Lens.Range = "wide" },
			wantErr: true,
		},
		{
			name:    "bad focus speed",
			mutate:  func(c *Config) { c.Lens.Speed = "turbo" },
			wantErr: true,
		},
		{
			name:    "bad color mode",
			mutate:  func(c *Config) { c.Output.Color = "sometimes" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig),
					"validation errors carry the CONFIG code")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
