package doctor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"holewatch/internal/api"
)

// checkTimeout bounds each backend round trip.
const checkTimeout = 5 * time.Second

// HealthCheck verifies the backend answers its health endpoint.
type HealthCheck struct {
	Client *api.Client
}

func (c *HealthCheck) Name() string     { return "server_health" }
func (c *HealthCheck) Category() string { return "BACKEND" }

func (c *HealthCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if err := c.Client.Health(ctx); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Backend unreachable: %v", err),
			Suggestion: fmt.Sprintf("Check that the inspection server is running at %s", c.Client.BaseURL()),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Backend healthy at %s", c.Client.BaseURL()),
	}
}

// MetricsCheck verifies the metrics endpoint returns a parseable payload.
type MetricsCheck struct {
	Client *api.Client
}

func (c *MetricsCheck) Name() string     { return "metrics_endpoint" }
func (c *MetricsCheck) Category() string { return "BACKEND" }

func (c *MetricsCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	snap, err := c.Client.Metrics(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Metrics fetch failed: %v", err),
			Suggestion: "The dashboard will show a stale table until this recovers",
		}
	}

	if snap.Timestamp == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "Metrics endpoint up, no analysis has run yet",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Metrics OK, %d holes in last analysis", snap.Count),
	}
}

// VideoStreamCheck verifies the live MJPEG stream is being served.
type VideoStreamCheck struct {
	Client *api.Client
}

func (c *VideoStreamCheck) Name() string     { return "video_stream" }
func (c *VideoStreamCheck) Category() string { return "BACKEND" }

func (c *VideoStreamCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Client.VideoURL(), nil)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("Bad video URL: %v", err),
		}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Video stream unreachable: %v", err),
			Suggestion: "Check the camera feed on the inspection server",
		}
	}
	// The stream never ends; close without draining.
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("Video stream returned HTTP %d", resp.StatusCode),
		}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/x-mixed-replace") {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Unexpected stream content type %q", ct),
			Suggestion: "Expected an MJPEG stream (multipart/x-mixed-replace)",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Video stream serving MJPEG",
	}
}

// BackendChecks returns the standard backend check set for a server.
func BackendChecks(client *api.Client) []Check {
	return []Check{
		&HealthCheck{Client: client},
		&MetricsCheck{Client: client},
		&VideoStreamCheck{Client: client},
	}
}

// ConfigChecks returns the local configuration check set.
func ConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigSchemaCheck{ConfigPath: configPath},
	}
}
