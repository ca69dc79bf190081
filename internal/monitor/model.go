package monitor

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"holewatch/internal/controller"
)

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 60 columns: table and status only
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 60-100 columns: adds the sparkline
	LayoutCompact
	// LayoutWide is for terminals 100+ columns: full header with stream URL
	LayoutWide
)

// Width breakpoints for layout modes
const (
	BreakpointCompact = 60
	BreakpointWide    = 100
)

// pollTimeout bounds a single metrics round trip so a hung backend cannot
// stack up in-flight requests behind the tick cadence.
const pollTimeout = 5 * time.Second

// flashDuration is how long a command result stays on the flash line.
const flashDuration = 4 * time.Second

// LensStep is the lens-position change per nudge keypress.
const LensStep = 0.5

// Model is the Bubble Tea model for the inspection dashboard. All domain
// state lives in the controller and its Surface; the model only holds
// presentation state (layout, help overlay, lens setpoint, history).
type Model struct {
	ctrl    *controller.Controller
	surface *Surface
	history *History

	server   string
	interval time.Duration
	lensPos  float64

	width    int
	height   int
	lastPoll time.Time
	quitting bool
	showHelp bool
	flashSeq int
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// pollDoneMsg reports that a poll attempt finished (success or swallowed
// failure) so the view re-renders and history advances.
type pollDoneMsg time.Time

// actionDoneMsg reports that a user command (snapshot/reset/focus) finished.
type actionDoneMsg struct{}

// flashExpireMsg clears the notification line; seq guards against expiring
// a newer flash than the one this timer was armed for.
type flashExpireMsg struct{ seq int }

// NewModel creates a dashboard model around an already-built controller and
// its surface. lensPos is the starting manual-focus setpoint.
func NewModel(ctrl *controller.Controller, surface *Surface, server string, interval time.Duration, lensPos float64) Model {
	if interval <= 0 {
		interval = controller.DefaultInterval
	}
	return Model{
		ctrl:     ctrl,
		surface:  surface,
		history:  NewHistory(DefaultHistorySize),
		server:   server,
		interval: interval,
		lensPos:  lensPos,
	}
}

// Init triggers the first poll immediately and starts the tick timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.tickCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.pollCmd())

	case pollDoneMsg:
		m.lastPoll = time.Time(msg)
		m.history.Push(len(m.surface.Rows()))

	case actionDoneMsg:
		m.flashSeq++
		return m, m.flashExpireCmd(m.flashSeq)

	case flashExpireMsg:
		if msg.seq == m.flashSeq {
			m.surface.ClearNotification()
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the poll interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// pollCmd runs one poll attempt off the UI goroutine. The controller writes
// results into the surface; the returned message only forces a re-render.
func (m Model) pollCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()
		m.ctrl.PollOnce(ctx)
		return pollDoneMsg(time.Now())
	}
}

// snapshotCmd freezes the feed and captures a still frame.
func (m Model) snapshotCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()
		m.ctrl.Snapshot(ctx)
		return actionDoneMsg{}
	}
}

// resetCmd resumes the live feed.
func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		m.ctrl.Reset()
		return actionDoneMsg{}
	}
}

// focusCmd drives the lens to the model's current setpoint.
func (m Model) focusCmd() tea.Cmd {
	pos := m.lensPos
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()
		m.ctrl.FocusAt(ctx, pos)
		return actionDoneMsg{}
	}
}

// flashExpireCmd arms the notification expiry timer for the given sequence.
func (m Model) flashExpireCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpireMsg{seq: seq}
	})
}

// LayoutMode returns the responsive layout for the current terminal width.
func (m Model) LayoutMode() LayoutMode {
	switch {
	case m.width == 0 || m.width >= BreakpointWide:
		return LayoutWide
	case m.width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// SecondsSinceUpdate returns whole seconds since the last completed poll.
func (m Model) SecondsSinceUpdate() int {
	if m.lastPoll.IsZero() {
		return 0
	}
	return int(time.Since(m.lastPoll).Seconds())
}

// LensPosition returns the current manual-focus setpoint.
func (m Model) LensPosition() float64 {
	return m.lensPos
}
