package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"holewatch/internal/api"
	"holewatch/internal/config"
	"holewatch/internal/controller"
	"holewatch/internal/errors"
	"holewatch/internal/ui"
)

// focusCommand adjusts the camera focus. Flags win; with no --pos on a
// terminal, an interactive form collects the settings instead.
func focusCommand(posFlag, modeFlag, rangeFlag, speedFlag string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req, err := buildFocusRequest(cfg, posFlag, modeFlag, rangeFlag, speedFlag)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	client := api.NewClient(cfg.Server)
	res, err := client.Focus(ctx, req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFocus,
			"Focus request didn't reach "+cfg.Server,
			"Check that the inspection server is running ('holewatch doctor')")
	}
	if !res.OK() {
		msg := res.Message
		if msg == "" {
			msg = "rejected by the camera"
		}
		return errors.New(errors.ErrFocus,
			"Focus failed: "+msg,
			"Lens positions must be between 0 and 100")
	}

	switch req.Mode {
	case api.FocusManual:
		fmt.Printf("%s Lens driven to %.2f\n", ui.SymbolSuccess, res.LensPosition)
	default:
		fmt.Printf("%s Focus mode set to %s\n", ui.SymbolSuccess, res.Mode)
	}
	return nil
}

// buildFocusRequest resolves flags, config defaults, and the interactive
// form into one request.
func buildFocusRequest(cfg *config.Config, posFlag, modeFlag, rangeFlag, speedFlag string) (api.FocusRequest, error) {
	interactive := posFlag == "" && modeFlag == "" && term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		return focusForm(cfg)
	}

	mode := cfg.Lens.Mode
	if modeFlag != "" {
		mode = modeFlag
	}
	parsedMode, err := api.ParseFocusMode(mode)
	if err != nil {
		return api.FocusRequest{}, errors.WrapWithCode(err, errors.ErrFocus,
			fmt.Sprintf("'%s' isn't a focus mode", mode),
			"Use manual, auto, or continuous")
	}

	req := api.FocusRequest{
		Mode:  parsedMode,
		Range: rangeFlag,
		Speed: speedFlag,
	}

	if parsedMode == api.FocusManual {
		// Empty or malformed positions fall back to the configured setpoint.
		req.Position = cfg.Lens.Position
		if strings.TrimSpace(posFlag) != "" {
			pos, err := strconv.ParseFloat(strings.TrimSpace(posFlag), 64)
			if err != nil {
				return api.FocusRequest{}, errors.WrapWithCode(err, errors.ErrFocus,
					fmt.Sprintf("'%s' isn't a lens position", posFlag),
					"Use a number between 0 and 100, e.g. --pos 11.5")
			}
			req.Position = pos
		}
	}

	return req, nil
}

// focusForm collects focus settings interactively.
func focusForm(cfg *config.Config) (api.FocusRequest, error) {
	mode := cfg.Lens.Mode
	position := strconv.FormatFloat(cfg.Lens.Position, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Focus mode").
				Options(
					huh.NewOption("Manual (fixed lens position)", "manual"),
					huh.NewOption("Auto (single sweep)", "auto"),
					huh.NewOption("Continuous", "continuous"),
				).
				Value(&mode),
			huh.NewInput().
				Title("Lens position").
				Description("0 (far) to 100 (near); ignored outside manual mode").
				Value(&position).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if v < 0 || v > 100 {
						return fmt.Errorf("must be between 0 and 100")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return api.FocusRequest{}, errors.WrapWithCode(err, errors.ErrFocus,
			"Couldn't read focus settings",
			"Pass --pos or --mode to skip the interactive form")
	}

	parsedMode, err := api.ParseFocusMode(mode)
	if err != nil {
		return api.FocusRequest{}, err
	}

	req := api.FocusRequest{Mode: parsedMode}
	if parsedMode == api.FocusManual {
		req.Position = controller.ParseLensPosition(position)
	}
	return req, nil
}
