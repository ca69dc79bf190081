package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"holewatch/internal/api"
	"holewatch/internal/controller"
	"holewatch/internal/errors"
	"holewatch/internal/ui"
)

// fetchTimeout bounds one-shot command round trips.
const fetchTimeout = 10 * time.Second

// metricsOutput is the --json payload for the metrics command.
type metricsOutput struct {
	HolesMM   []float64 `json:"holes_mm"`
	Count     int       `json:"count"`
	Timestamp float64   `json:"timestamp"`
	Measured  string    `json:"measured,omitempty"`
}

// metricsCommand fetches one analysis and prints the measurement table.
func metricsCommand(asJSON bool) error {
	cfg, err := loadConfig()
	if err != nil {
		if asJSON {
			return WriteJSONFromError(os.Stdout, err)
		}
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	client := api.NewClient(cfg.Server)
	snap, err := client.Metrics(ctx)
	if err != nil {
		wrapped := errors.Wrap(err, "Couldn't fetch measurements from "+cfg.Server)
		if asJSON {
			return WriteJSONFromError(os.Stdout, wrapped)
		}
		return wrapped
	}

	if asJSON {
		out := metricsOutput{
			HolesMM:   snap.HolesMM,
			Count:     snap.Count,
			Timestamp: snap.Timestamp,
		}
		if t, ok := snap.Time(); ok {
			out.Measured = t.Local().Format(time.RFC3339)
		}
		return WriteJSONSuccess(os.Stdout, out)
	}

	rows := controller.Rows(snap.HolesMM)
	if len(rows) == 0 {
		fmt.Println("No holes detected yet")
	} else {
		tableRows := make([][]string, len(rows))
		for i, r := range rows {
			tableRows[i] = []string{strconv.Itoa(r.Index), r.Diameter}
		}
		fmt.Println(ui.RenderSimpleTable([]ui.TableColumn{
			{Title: "#", Width: 4},
			{Title: "Diameter (mm)", Width: 14},
		}, tableRows))
	}

	when := controller.TimePlaceholder
	if t, ok := snap.Time(); ok {
		when = t.Local().Format("15:04:05")
	}
	fmt.Printf("Detected %d · %s\n", snap.Count, when)

	return nil
}
