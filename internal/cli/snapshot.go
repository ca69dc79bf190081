package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"holewatch/internal/api"
	"holewatch/internal/config"
	"holewatch/internal/errors"
	"holewatch/internal/ui"
)

// snapshotOutput is the --json payload for the snapshot command.
type snapshotOutput struct {
	Path      string    `json:"path"`
	HolesMM   []float64 `json:"holes_mm"`
	Timestamp float64   `json:"timestamp"`
}

// snapshotCommand captures one annotated frame and writes it to disk.
func snapshotCommand(outPath string, asJSON bool) error {
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
	res, err := client.Snapshot(ctx)
	if err != nil {
		err = errors.WrapWithCode(err, errors.ErrCapture,
			"Couldn't capture a frame from "+cfg.Server,
			"Check that the inspection server is running ('holewatch doctor')")
		if asJSON {
			return WriteJSONFromError(os.Stdout, err)
		}
		return err
	}
	if res.Error != "" {
		err = errors.New(errors.ErrCapture,
			"Camera reported: "+res.Error,
			"The feed may still be warming up; try again in a moment")
		if asJSON {
			return WriteJSONFromError(os.Stdout, err)
		}
		return err
	}

	img, err := res.Image()
	if err != nil {
		err = errors.WrapWithCode(err, errors.ErrCapture,
			"Camera sent an unreadable image",
			"This usually means a server-side encoding bug")
		if asJSON {
			return WriteJSONFromError(os.Stdout, err)
		}
		return err
	}

	path, err := writeSnapshot(outPath, cfg, img)
	if err != nil {
		if asJSON {
			return WriteJSONFromError(os.Stdout, err)
		}
		return err
	}

	if asJSON {
		return WriteJSONSuccess(os.Stdout, snapshotOutput{
			Path:      path,
			HolesMM:   res.HolesMM,
			Timestamp: res.Timestamp,
		})
	}

	fmt.Printf("%s Captured %d holes to %s\n", ui.SymbolSuccess, len(res.HolesMM), path)
	return nil
}

// writeSnapshot resolves the destination path and writes the JPEG. An empty
// outPath lands a timestamped file in the configured snapshot directory.
func writeSnapshot(outPath string, cfg *config.Config, img []byte) (string, error) {
	path := outPath
	if path == "" {
		dir := cfg.Snapshot.Dir
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrCapture,
				"Couldn't create snapshot directory "+dir,
				"Check permissions, or pass --output to choose another location")
		}
		path = filepath.Join(dir, time.Now().Format("capture-20060102-150405.jpeg"))
	}

	if err := os.WriteFile(path, img, 0o644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrCapture,
			"Couldn't write snapshot to "+path,
			"Check directory permissions")
	}
	return path, nil
}
