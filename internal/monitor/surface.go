package monitor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"holewatch/internal/controller"
	"holewatch/internal/logger"
)

// Surface is the terminal-side implementation of controller.View. The
// controller writes into it from command goroutines; the bubbletea model
// reads it back during View(), so every field is mutex-guarded.
//
// Captured frames cannot be drawn in a terminal, so SetImage writes the
// JPEG into the snapshot directory instead and the saved path is shown
// alongside the status line.
type Surface struct {
	mu sync.Mutex

	rows         []controller.Row
	status       string
	notification string
	videoSource  string
	imagePath    string

	snapshotDir string
	log         logger.Logger
	now         func() time.Time // injectable for tests
}

// NewSurface creates a surface that saves captures into snapshotDir.
// An empty dir disables saving; captured frames are then dropped.
func NewSurface(snapshotDir string, log logger.Logger) *Surface {
	if log == nil {
		log = logger.Noop()
	}
	return &Surface{
		snapshotDir: snapshotDir,
		log:         log,
		now:         time.Now,
	}
}

// RenderTable replaces the measurement table.
func (s *Surface) RenderTable(rows []controller.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
}

// SetStatus replaces the status line.
func (s *Surface) SetStatus(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = line
}

// SetImage saves a captured frame to the snapshot directory; nil clears the
// saved-path annotation. Write failures are logged and surfaced in place of
// the path, never fatal.
func (s *Surface) SetImage(jpeg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if jpeg == nil {
		s.imagePath = ""
		return
	}
	if s.snapshotDir == "" {
		return
	}

	path := filepath.Join(s.snapshotDir, s.now().Format("capture-20060102-150405.jpeg"))
	if err := os.MkdirAll(s.snapshotDir, 0o755); err != nil {
		s.log.Warn("[surface] snapshot dir: %v", err)
		s.imagePath = "save failed: " + err.Error()
		return
	}
	if err := os.WriteFile(path, jpeg, 0o644); err != nil {
		s.log.Warn("[surface] snapshot write: %v", err)
		s.imagePath = "save failed: " + err.Error()
		return
	}
	s.imagePath = path
}

// SetVideoSource records the MJPEG stream URL for display in the header.
func (s *Surface) SetVideoSource(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videoSource = url
}

// Notify records a command result for the flash line.
func (s *Surface) Notify(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notification = msg
}

// ClearNotification drops the flash line (called when the flash expires).
func (s *Surface) ClearNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notification = ""
}

// Rows returns a copy of the current table rows.
func (s *Surface) Rows() []controller.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]controller.Row, len(s.rows))
	copy(rows, s.rows)
	return rows
}

// Status returns the current status line.
func (s *Surface) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Notification returns the current flash message, or "".
func (s *Surface) Notification() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notification
}

// VideoSource returns the stream URL last assigned by the controller.
func (s *Surface) VideoSource() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoSource
}

// ImagePath returns where the last capture was written, or a short failure
// note, or "" when no capture is held.
func (s *Surface) ImagePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imagePath
}

// PlainView prints table and status straight to a writer, for --plain mode
// and dumb terminals. It satisfies controller.View.
type PlainView struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPlainView creates a view that writes rendered text to out.
func NewPlainView(out io.Writer) *PlainView {
	return &PlainView{out: out}
}

func (p *PlainView) RenderTable(rows []controller.Row) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range rows {
		fmt.Fprintf(p.out, "%3d  %s mm\n", r.Index, r.Diameter)
	}
}

func (p *PlainView) SetStatus(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

func (p *PlainView) SetImage(jpeg []byte) {}

func (p *PlainView) SetVideoSource(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "stream: %s\n", url)
}

func (p *PlainView) Notify(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, msg)
}
