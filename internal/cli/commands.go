package cli

import (
	"os"

	"github.com/spf13/cobra"

	"holewatch/internal/errors"
)

// Command-specific flags
var (
	watchIntervalFlag string
	watchPlainFlag    bool
	metricsJSONFlag   bool
	snapshotOutFlag   string
	snapshotJSONFlag  bool
	focusPosFlag      string
	focusModeFlag     string
	focusRangeFlag    string
	focusSpeedFlag    string
	doctorJSONFlag    bool
	initForceFlag     bool
)

// watchCmd runs the live dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live inspection dashboard",
	Long: `Poll the inspection server and render detected hole diameters live.

Dashboard keys: s snapshot, r reset, f focus, +/- nudge lens, ? help, q quit.

Examples:
  holewatch watch
  holewatch watch --interval 1s
  holewatch watch --plain | tee inspection.log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchIntervalFlag, watchPlainFlag)
	},
}

// metricsCmd fetches one metrics sample and prints it.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Fetch the latest hole measurements",
	Long: `Fetch the most recent analysis from the inspection server and print
the measured hole diameters.

Examples:
  holewatch metrics
  holewatch metrics --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return metricsCommand(metricsJSONFlag)
	},
}

// snapshotCmd captures a still frame from the camera.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture a still frame with measurements",
	Long: `Freeze the camera feed, capture an annotated still frame, and write
it to disk as a JPEG.

Examples:
  holewatch snapshot
  holewatch snapshot --output /tmp/frame.jpeg
  holewatch snapshot --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(snapshotOutFlag, snapshotJSONFlag)
	},
}

// focusCmd drives the camera lens.
var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Adjust the camera focus",
	Long: `Set the camera focus. Manual mode drives the lens to a fixed
position (0-100); auto and continuous hand control to the camera.

Without --pos on a terminal, an interactive form collects the settings.

Examples:
  holewatch focus --pos 11.5
  holewatch focus --mode auto --range macro
  holewatch focus`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return focusCommand(focusPosFlag, focusModeFlag, focusRangeFlag, focusSpeedFlag)
	},
}

// doctorCmd diagnoses config and backend problems.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config and backend problems",
	Long: `Run diagnostic checks against the local configuration and the
inspection server: health endpoint, metrics payload, and the MJPEG stream.

Examples:
  holewatch doctor
  holewatch doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(doctorJSONFlag)
	},
}

// initCmd creates a new .holewatch.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .holewatch.yaml configuration",
	Long: `Write a commented .holewatch.yaml with the default settings into the
current directory.

Examples:
  holewatch init
  holewatch init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForceFlag)
	},
}

// completionCmd generates shell completion scripts.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for holewatch.

Examples:
  # Bash
  holewatch completion bash > /etc/bash_completion.d/holewatch

  # Zsh
  holewatch completion zsh > "${fpath[1]}/_holewatch"

  # Fish
  holewatch completion fish > ~/.config/fish/completions/holewatch.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// watch command flags
	watchCmd.Flags().StringVar(&watchIntervalFlag, "interval", "", "poll interval (e.g., 500ms, 2s)")
	watchCmd.Flags().BoolVar(&watchPlainFlag, "plain", false, "plain text output instead of the TUI")

	// metrics command flags
	metricsCmd.Flags().BoolVar(&metricsJSONFlag, "json", false, "output in JSON format")

	// snapshot command flags
	snapshotCmd.Flags().StringVarP(&snapshotOutFlag, "output", "o", "", "output path (default: snapshot dir from config)")
	snapshotCmd.Flags().BoolVar(&snapshotJSONFlag, "json", false, "output in JSON format")

	// focus command flags
	focusCmd.Flags().StringVar(&focusPosFlag, "pos", "", "lens position 0-100 (manual mode)")
	focusCmd.Flags().StringVar(&focusModeFlag, "mode", "", "focus mode: manual, auto, or continuous")
	focusCmd.Flags().StringVar(&focusRangeFlag, "range", "", "autofocus range: normal, macro, or full")
	focusCmd.Flags().StringVar(&focusSpeedFlag, "speed", "", "autofocus speed: normal or fast")

	// doctor command flags
	doctorCmd.Flags().BoolVar(&doctorJSONFlag, "json", false, "output in JSON format")

	// init command flags
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
