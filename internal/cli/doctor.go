package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"holewatch/internal/api"
	"holewatch/internal/doctor"
	"holewatch/internal/errors"
	"holewatch/internal/ui"
)

// DoctorOutput is the --json payload for the doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput holds the results for one check category.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand runs the config and backend diagnostics.
func doctorCommand(asJSON bool) error {
	cfg, err := loadConfig()
	if err != nil {
		if asJSON {
			return WriteJSONFromError(os.Stdout, err)
		}
		return err
	}

	configChecks := doctor.ConfigChecks(Config())
	backendChecks := doctor.BackendChecks(api.NewClient(cfg.Server))

	configResults := doctor.RunAll(configChecks)
	// Backend checks each ride out their own timeout; run them together.
	backendResults := doctor.RunAllParallel(backendChecks)

	all := append(append([]doctor.CheckResult{}, configResults...), backendResults...)

	if asJSON {
		return outputDoctorJSON(configResults, backendResults, all)
	}
	return outputDoctorText(configResults, backendResults, all)
}

func outputDoctorJSON(configResults, backendResults, all []doctor.CheckResult) error {
	counts := doctor.CountByStatus(all)
	out := DoctorOutput{
		Categories: []CategoryOutput{
			{Name: "CONFIG", Results: configResults},
			{Name: "BACKEND", Results: backendResults},
		},
		Summary: SummaryOutput{
			Pass:     counts[doctor.StatusPass],
			Warn:     counts[doctor.StatusWarn],
			Fail:     counts[doctor.StatusFail],
			AllClear: !doctor.HasFailures(all),
		},
	}

	if err := WriteJSONSuccess(os.Stdout, out); err != nil {
		return err
	}
	if doctor.HasFailures(all) {
		return errors.New(errors.ErrAPI, "Diagnostics found failures", "")
	}
	return nil
}

func outputDoctorText(configResults, backendResults, all []doctor.CheckResult) error {
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(headerStyle.Render("holewatch Diagnostic Report"))
	fmt.Println()

	fmt.Println(headerStyle.Render("CONFIG"))
	for _, r := range configResults {
		renderCheckResult(r)
	}
	fmt.Println()

	fmt.Println(headerStyle.Render("BACKEND"))
	for _, r := range backendResults {
		renderCheckResult(r)
	}
	fmt.Println()

	fmt.Println(strings.Repeat("━", 60))
	fmt.Println()

	counts := doctor.CountByStatus(all)
	fmt.Printf("%d passed, %d warnings, %d failed\n",
		counts[doctor.StatusPass], counts[doctor.StatusWarn], counts[doctor.StatusFail])

	if doctor.HasFailures(all) {
		return errors.New(errors.ErrAPI,
			"Diagnostics found failures",
			"Fix the items above and re-run 'holewatch doctor'")
	}
	return nil
}

// renderCheckResult prints one check line with its status symbol.
func renderCheckResult(r doctor.CheckResult) {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	switch r.Status {
	case doctor.StatusPass:
		fmt.Printf("  %s %s\n", successStyle.Render(ui.SymbolSuccess), r.Message)
	case doctor.StatusWarn:
		fmt.Printf("  %s %s\n", warnStyle.Render(ui.SymbolWarn), r.Message)
	default:
		fmt.Printf("  %s %s\n", errorStyle.Render(ui.SymbolFail), r.Message)
	}

	if r.Suggestion != "" && r.Status != doctor.StatusPass {
		fmt.Printf("    %s\n", mutedStyle.Render(r.Suggestion))
	}
}
