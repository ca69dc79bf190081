package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"holewatch/internal/config"
	"holewatch/internal/errors"
	"holewatch/internal/ui"
)

// initCommand writes a commented default .holewatch.yaml into the current
// directory.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if serverFlag != "" {
		cfg.Server = serverFlag
	}

	// Shadow struct so the interval lands as "500ms", not raw nanoseconds.
	out := struct {
		Server   string                `yaml:"server"`
		Interval string                `yaml:"interval"`
		Lens     config.LensConfig     `yaml:"lens"`
		Snapshot config.SnapshotConfig `yaml:"snapshot"`
		Output   config.OutputConfig   `yaml:"output"`
	}{
		Server:   cfg.Server,
		Interval: cfg.Interval.String(),
		Lens:     cfg.Lens,
		Snapshot: cfg.Snapshot,
		Output:   cfg.Output,
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# holewatch configuration
# Run 'holewatch watch' for the live dashboard
# server:   base URL of the inspection backend
# interval: poll cadence (min 100ms)
# lens:     focus defaults sent by the focus command

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  holewatch doctor  - Check the backend connection")
	fmt.Println("  holewatch watch   - Start the live dashboard")

	return nil
}
