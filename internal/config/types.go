package config

import "time"

// Config represents the complete .holewatch.yaml configuration file.
type Config struct {
	// Server is the inspection backend's base URL.
	Server string `yaml:"server" mapstructure:"server"`

	// Interval is the dashboard poll cadence.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	Lens     LensConfig     `yaml:"lens" mapstructure:"lens"`
	Snapshot SnapshotConfig `yaml:"snapshot" mapstructure:"snapshot"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// LensConfig holds focus-actuator defaults.
type LensConfig struct {
	// Position is the manual lens setpoint used when a focus command
	// does not carry one.
	Position float64 `yaml:"position" mapstructure:"position"`

	// Mode is the default focus mode: manual, auto, or continuous.
	Mode string `yaml:"mode" mapstructure:"mode"`

	// Range is the autofocus search range: normal, macro, or full.
	Range string `yaml:"range" mapstructure:"range"`

	// Speed is the autofocus speed: normal or fast.
	Speed string `yaml:"speed" mapstructure:"speed"`
}

// SnapshotConfig controls where captured frames are written.
type SnapshotConfig struct {
	// Dir is the directory snapshot JPEGs are saved into.
	// Supports a leading ~ for the home directory.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a config with sensible defaults for a rig on the
// local network.
func DefaultConfig() *Config {
	return &Config{
		Server:   "http://localhost:5000",
		Interval: 500 * time.Millisecond,
		Lens: LensConfig{
			Position: 11.5,
			Mode:     "manual",
			Range:    "normal",
			Speed:    "normal",
		},
		Snapshot: SnapshotConfig{
			Dir: "~/holewatch-snapshots",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
