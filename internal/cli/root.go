// Package cli wires the cobra command surface: watch, metrics, snapshot,
// focus, doctor, init, version, and completion.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"holewatch/internal/config"
	"holewatch/internal/errors"
)

// Persistent flags shared by every command.
var (
	configFlag string
	serverFlag string
)

// rootCmd is the base command for holewatch.
var rootCmd = &cobra.Command{
	Use:   "holewatch",
	Short: "Dashboard for a camera hole-inspection rig",
	Long: `holewatch is a terminal dashboard for a hole-inspection backend.

It polls the rig's metrics endpoint, renders detected hole diameters live,
and drives the camera: freeze-frame snapshots and manual lens focus.

Examples:
  holewatch watch
  holewatch metrics --json
  holewatch snapshot --output frame.jpeg
  holewatch focus --pos 11.5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: search for .holewatch.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "inspection server base URL (overrides config)")
}

// Config returns the explicit config path from --config, or "".
func Config() string {
	return configFlag
}

// loadConfig resolves the effective config: file/env/defaults, then the
// --server override, then validation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if serverFlag != "" {
		cfg.Server = serverFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	applyColorMode(cfg.Output.Color)
	return cfg, nil
}

// applyColorMode pins the lipgloss color profile for "always"/"never";
// "auto" leaves terminal detection alone.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Structured errors already format themselves with cause and
		// suggestion lines.
		var structured *errors.Error
		if stderrors.As(err, &structured) {
			fmt.Fprintln(os.Stderr, structured.Error())
		} else {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		}
		os.Exit(1)
	}
}
