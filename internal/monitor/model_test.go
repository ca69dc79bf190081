package monitor

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holewatch/internal/api"
	"holewatch/internal/controller"
)

// stubBackend serves canned responses for dashboard tests.
type stubBackend struct {
	metrics api.MetricsSnapshot
}

func (s *stubBackend) Metrics(ctx context.Context) (api.MetricsSnapshot, error) {
	return s.metrics, nil
}

func (s *stubBackend) Snapshot(ctx context.Context) (api.SnapshotResult, error) {
	return api.SnapshotResult{
		ImageBase64: "/9j/AA==",
		HolesMM:     []float64{5.25},
		Timestamp:   1700000000,
	}, nil
}

func (s *stubBackend) Focus(ctx context.Context, req api.FocusRequest) (api.FocusResult, error) {
	return api.FocusResult{Status: "ok", LensPosition: req.Position}, nil
}

func (s *stubBackend) VideoURL() string {
	return "http://cam:5000/video"
}

func newTestModel(t *testing.T) (Model, *Surface, *controller.Controller) {
	t.Helper()
	surface := NewSurface("", nil)
	ctrl := controller.New(&stubBackend{
		metrics: api.MetricsSnapshot{HolesMM: []float64{3.333, 7.1}, Count: 2, Timestamp: 1700000000},
	}, surface, nil)
	m := NewModel(ctrl, surface, "http://cam:5000", 500*time.Millisecond, 11.5)
	return m, surface, ctrl
}

func TestNewModel_Defaults(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, 500*time.Millisecond, m.interval)
	assert.Equal(t, 11.5, m.LensPosition())
	assert.NotNil(t, m.history)
}

func TestNewModel_ZeroIntervalFallsBack(t *testing.T) {
	surface := NewSurface("", nil)
	ctrl := controller.New(&stubBackend{}, surface, nil)

	m := NewModel(ctrl, surface, "http://cam:5000", 0, 11.5)

	assert.Equal(t, controller.DefaultInterval, m.interval)
}

func TestModel_PollDoneAdvancesHistory(t *testing.T) {
	m, surface, ctrl := newTestModel(t)

	ctrl.PollOnce(context.Background())
	require.Len(t, surface.Rows(), 2)

	updated, _ := m.Update(pollDoneMsg(time.Now()))
	m = updated.(Model)

	assert.Equal(t, []float64{2}, m.history.Last(5))
	assert.Equal(t, 0, m.SecondsSinceUpdate())
}

func TestModel_TickReschedules(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(tickMsg(time.Now()))

	assert.NotNil(t, cmd, "tick should re-arm the timer and start a poll")
}

func TestModel_WindowSizeSetsLayout(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	m = updated.(Model)
	assert.Equal(t, LayoutMinimal, m.LayoutMode())

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	assert.Equal(t, LayoutCompact, m.LayoutMode())

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = updated.(Model)
	assert.Equal(t, LayoutWide, m.LayoutMode())
}

func TestModel_LayoutDefaultsWideBeforeFirstResize(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, LayoutWide, m.LayoutMode())
}

func TestModel_FlashExpiry(t *testing.T) {
	m, surface, _ := newTestModel(t)
	surface.Notify("Focus set to 11.50")

	updated, cmd := m.Update(actionDoneMsg{})
	m = updated.(Model)
	require.NotNil(t, cmd, "action completion arms the flash timer")

	// A stale expiry (older sequence) must not clear a newer flash.
	updated, _ = m.Update(flashExpireMsg{seq: m.flashSeq - 1})
	m = updated.(Model)
	assert.Equal(t, "Focus set to 11.50", surface.Notification())

	updated, _ = m.Update(flashExpireMsg{seq: m.flashSeq})
	_ = updated
	assert.Empty(t, surface.Notification())
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View(), "quitting model renders nothing")
}

func TestHandleKeyMsg_LensNudge(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, key := range []rune{'+', '+', '-'} {
		handled, _ := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
		require.True(t, handled)
	}

	assert.Equal(t, 12.0, m.LensPosition())
}

func TestHandleKeyMsg_LensClamps(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.lensPos = 0.25
	m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	assert.Equal(t, 0.0, m.LensPosition())

	m.lensPos = 99.75
	m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	assert.Equal(t, 100.0, m.LensPosition())
}

func TestHandleKeyMsg_HelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	handled, _ := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.True(t, handled)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "holewatch keys")

	handled, _ = m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, handled)
	assert.False(t, m.showHelp)
}

func TestHandleKeyMsg_CommandsReturnCmds(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, key := range []rune{'s', 'r', 'f'} {
		handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
		assert.True(t, handled, "key %q", key)
		assert.NotNil(t, cmd, "key %q", key)
	}
}

func TestHandleKeyMsg_UnknownKeyIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestView_EmptyTablePlaceholder(t *testing.T) {
	m, _, _ := newTestModel(t)

	out := m.View()

	assert.Contains(t, out, "No holes detected yet")
	assert.Contains(t, out, "Waiting for first analysis")
	assert.Contains(t, out, "LIVE")
}

func TestView_RendersMeasurements(t *testing.T) {
	m, _, ctrl := newTestModel(t)
	ctrl.PollOnce(context.Background())

	out := m.View()

	assert.Contains(t, out, "3.33")
	assert.Contains(t, out, "7.10")
	assert.Contains(t, out, "Detected 2")
}

func TestView_FrozenBadgeAndCapturePath(t *testing.T) {
	dir := t.TempDir()
	surface := NewSurface(dir, nil)
	ctrl := controller.New(&stubBackend{}, surface, nil)
	m := NewModel(ctrl, surface, "http://cam:5000", 500*time.Millisecond, 11.5)

	ctrl.Snapshot(context.Background())
	require.Equal(t, controller.FeedFrozen, ctrl.State())

	out := m.View()

	assert.Contains(t, out, "FROZEN")
	assert.Contains(t, out, "Captured 1")
	assert.Contains(t, out, dir, "saved capture path appears in the view")
}

func TestView_NotificationFlash(t *testing.T) {
	m, surface, _ := newTestModel(t)
	surface.Notify("Live feed resumed")

	assert.Contains(t, m.View(), "Live feed resumed")
}

func TestView_FooterShowsLensSetpoint(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.lensPos = 9.5

	assert.Contains(t, m.View(), "focus @ 9.5")
}

func TestView_MinimalLayoutSkipsSparkline(t *testing.T) {
	m, _, ctrl := newTestModel(t)
	ctrl.PollOnce(context.Background())
	m.history.Push(2)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	m = updated.(Model)

	assert.NotContains(t, m.View(), "▁")
	assert.NotContains(t, m.View(), "█")
}
