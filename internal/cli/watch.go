package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"holewatch/internal/api"
	"holewatch/internal/config"
	"holewatch/internal/controller"
	"holewatch/internal/errors"
	"holewatch/internal/logger"
	"holewatch/internal/monitor"
)

// watchCommand starts the live dashboard, or a plain polling loop when the
// terminal cannot host the TUI.
func watchCommand(intervalFlag string, plain bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interval := cfg.Interval
	if intervalFlag != "" {
		interval, err = time.ParseDuration(intervalFlag)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("'%s' doesn't look like a valid interval", intervalFlag),
				"Use a Go duration like 500ms or 2s")
		}
		if interval < config.MinInterval {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Interval %s is below the %s floor", interval, config.MinInterval),
				"Polling faster than the camera analyzes just burns the radio")
		}
	}

	client := api.NewClient(cfg.Server)
	log := logger.Default()

	if plain {
		return watchPlain(client, log, interval)
	}

	surface := monitor.NewSurface(cfg.Snapshot.Dir, log)
	ctrl := controller.New(client, surface, log)
	model := monitor.NewModel(ctrl, surface, cfg.Server, interval, cfg.Lens.Position)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// watchPlain runs the controller's poll loop against a line-oriented view
// until interrupted. Suited to dumb terminals and piping.
func watchPlain(client *api.Client, log logger.Logger, interval time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	view := monitor.NewPlainView(os.Stdout)
	ctrl := controller.New(client, view, log)

	ctrl.Run(ctx, interval)
	return nil
}
