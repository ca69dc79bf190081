// Package controller holds the dashboard's core logic: a self-rescheduling
// poll loop over the backend's metrics endpoint, the snapshot/reset feed
// machine, and the focus command. The controller renders through an injected
// View and reports swallowed background errors through an injected Logger,
// so the whole thing runs headless under test.
package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"holewatch/internal/api"
	"holewatch/internal/logger"
)

const (
	// DefaultInterval is the poll cadence, measured from the end of one
	// attempt to the start of the next rather than wall-clock aligned.
	DefaultInterval = 500 * time.Millisecond

	// DefaultLensPosition is used when a focus command carries an empty or
	// unparseable position.
	DefaultLensPosition = 11.5

	// TimePlaceholder is shown when the backend has no measurement yet.
	TimePlaceholder = "—"

	// ResumedStatus is the fixed status line after a reset.
	ResumedStatus = "Live feed resumed"
)

// Backend is the client surface the controller needs. *api.Client satisfies it.
type Backend interface {
	Metrics(ctx context.Context) (api.MetricsSnapshot, error)
	Snapshot(ctx context.Context) (api.SnapshotResult, error)
	Focus(ctx context.Context, req api.FocusRequest) (api.FocusResult, error)
	VideoURL() string
}

// Controller drives a View from backend polls and user commands.
// Command methods and the poll loop may run concurrently; the view receives
// whichever response lands last (last-response-wins, matching the original
// dashboard's behavior). Only the feed state and the video-source bookkeeping
// are guarded, since the TUI calls in from its own goroutines.
type Controller struct {
	backend Backend
	view    View
	log     logger.Logger

	mu       sync.Mutex
	state    FeedState
	videoSrc string // last source handed to the view, for idempotent assignment
}

// New creates a controller in the Live state.
// A nil view or logger falls back to NopView / logger.Noop.
func New(backend Backend, view View, log logger.Logger) *Controller {
	if view == nil {
		view = NopView{}
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Controller{
		backend: backend,
		view:    view,
		log:     log,
		state:   FeedLive,
	}
}

// State returns the current feed state.
func (c *Controller) State() FeedState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run polls until ctx is cancelled. Each iteration finishes its round trip
// and rendering before the timer is re-armed, so attempts never overlap and
// exactly one reschedule happens per attempt regardless of outcome.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	timer := time.NewTimer(0) // first attempt fires immediately
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		c.PollOnce(ctx)
		timer.Reset(interval)
	}
}

// PollOnce performs a single poll attempt: fetch metrics, rebuild the table
// and status line, and keep the live stream assigned while the feed is Live.
// Failures are swallowed by design, favoring live-view availability over
// transient network noise; the logger keeps them observable.
func (c *Controller) PollOnce(ctx context.Context) {
	if c.State() == FeedLive {
		c.ensureVideoSource(false)
	}

	snap, err := c.backend.Metrics(ctx)
	if err != nil {
		c.log.Debug("[poll] metrics fetch failed: %v", err)
		return
	}

	c.view.RenderTable(Rows(snap.HolesMM))
	c.view.SetStatus(metricsStatus(snap))
}

// Focus parses a lens position (empty or malformed input falls back to
// DefaultLensPosition), posts a manual focus adjustment, and notifies the
// user with the outcome. No retry, no de-duplication of rapid calls.
func (c *Controller) Focus(ctx context.Context, posInput string) {
	pos := ParseLensPosition(posInput)
	c.FocusAt(ctx, pos)
}

// FocusAt posts a manual focus adjustment to an exact lens position.
func (c *Controller) FocusAt(ctx context.Context, pos float64) {
	res, err := c.backend.Focus(ctx, api.FocusRequest{Mode: api.FocusManual, Position: pos})
	switch {
	case err != nil:
		c.log.Debug("[focus] request failed: %v", err)
		c.view.Notify("Focus request failed")
	case res.OK():
		c.view.Notify(fmt.Sprintf("Focus set to %.2f", pos))
	default:
		msg := res.Message
		if msg == "" {
			msg = "rejected by the camera"
		}
		c.view.Notify("Focus failed: " + msg)
	}
}

// Snapshot freezes the feed and replaces the view with a still capture.
// The freeze happens before the fetch: polling continues while frozen, but
// the video source is no longer reasserted, so the captured frame stays up.
func (c *Controller) Snapshot(ctx context.Context) {
	c.freeze()

	res, err := c.backend.Snapshot(ctx)
	if err != nil {
		c.log.Debug("[snapshot] request failed: %v", err)
		c.view.Notify("Snapshot failed")
		return
	}
	if res.Error != "" {
		// Server-reported failure: tell the user, leave the image alone.
		c.view.Notify("Snapshot failed: " + res.Error)
		return
	}

	img, err := res.Image()
	if err != nil {
		c.log.Debug("[snapshot] image decode failed: %v", err)
		c.view.Notify("Snapshot failed: bad image data")
		return
	}

	c.view.SetImage(img)
	c.view.RenderTable(Rows(res.HolesMM))
	c.view.SetStatus(captureStatus(res))
}

// Reset returns the feed to Live: table cleared, status fixed, image cleared,
// and the video source reassigned unconditionally to restart the stream.
func (c *Controller) Reset() {
	c.resume()
	c.view.RenderTable(nil)
	c.view.SetStatus(ResumedStatus)
	c.view.SetImage(nil)
	c.ensureVideoSource(true)
}

// freeze transitions Live -> Frozen. Idempotent.
func (c *Controller) freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = FeedFrozen
}

// resume transitions Frozen -> Live. Idempotent.
func (c *Controller) resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = FeedLive
}

// ensureVideoSource assigns the stream URL to the view. Unless forced, the
// assignment only happens when the source changed, to avoid restarting the
// stream on every poll tick.
func (c *Controller) ensureVideoSource(force bool) {
	url := c.backend.VideoURL()

	c.mu.Lock()
	changed := force || c.videoSrc != url
	if changed {
		c.videoSrc = url
	}
	c.mu.Unlock()

	if changed {
		c.view.SetVideoSource(url)
	}
}

// Rows formats measurements for the table: 1-indexed, two decimal places.
func Rows(holesMM []float64) []Row {
	rows := make([]Row, len(holesMM))
	for i, d := range holesMM {
		rows[i] = Row{Index: i + 1, Diameter: strconv.FormatFloat(d, 'f', 2, 64)}
	}
	return rows
}

// ParseLensPosition parses user input for a manual lens position.
// Empty or unparseable input falls back to DefaultLensPosition.
func ParseLensPosition(input string) float64 {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultLensPosition
	}
	pos, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return DefaultLensPosition
	}
	return pos
}

// metricsStatus renders the poll status line: detected count plus a
// localized measurement time, or a placeholder before the first analysis.
func metricsStatus(snap api.MetricsSnapshot) string {
	when := TimePlaceholder
	if t, ok := snap.Time(); ok {
		when = t.Local().Format("15:04:05")
	}
	return fmt.Sprintf("Detected %d · %s", snap.Count, when)
}

// captureStatus renders the status line after a snapshot.
func captureStatus(res api.SnapshotResult) string {
	when := TimePlaceholder
	if t, ok := res.Time(); ok {
		when = t.Local().Format("15:04:05")
	}
	return fmt.Sprintf("Captured %d · %s", len(res.HolesMM), when)
}
