package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"holewatch/internal/controller"
	"holewatch/internal/ui"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n")

	if m.LayoutMode() >= LayoutCompact {
		if spark := m.renderSparkline(); spark != "" {
			b.WriteString(spark)
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderStatus())

	if notify := m.surface.Notification(); notify != "" {
		b.WriteString("\n")
		b.WriteString(NotifyStyle.Render(notify))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title, feed badge, and poll freshness.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("holewatch")

	badge := BadgeLiveStyle.Render("LIVE")
	if m.ctrl.State() == controller.FeedFrozen {
		badge = BadgeFrozenStyle.Render("FROZEN")
	}

	var updateText string
	switch age := m.SecondsSinceUpdate(); age {
	case 0:
		updateText = "just now"
	case 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", age)
	}

	parts := []string{title, badge}
	if m.LayoutMode() == LayoutWide {
		src := m.surface.VideoSource()
		if src == "" {
			src = m.server
		}
		parts = append(parts, LabelStyle.Render(src))
	}
	parts = append(parts, LabelStyle.Render("updated "+updateText))

	return HeaderStyle.Render(strings.Join(parts, "  "))
}

// renderTable renders the measurement table, or a placeholder before the
// first analysis lands.
func (m Model) renderTable() string {
	rows := m.surface.Rows()
	if len(rows) == 0 {
		return PanelStyle.Render(LabelStyle.Render("No holes detected yet"))
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{strconv.Itoa(r.Index), r.Diameter}
	}

	t := ui.NewTable([]ui.TableColumn{
		{Title: "#", Width: 4},
		{Title: "Diameter (mm)", Width: 14},
	}, tableRows)

	return PanelStyle.Render(t.View())
}

// renderSparkline renders the detected-hole-count history.
func (m Model) renderSparkline() string {
	width := 40
	if m.width > 0 && m.width-10 < width {
		width = m.width - 10
	}
	data := m.history.Last(width)
	if len(data) == 0 {
		return ""
	}
	return StatusStyle.Render("holes " + RenderSparkline(data, width, ColorGraph))
}

// renderStatus renders the poll status line plus the saved-capture path
// while the feed is frozen.
func (m Model) renderStatus() string {
	status := m.surface.Status()
	if status == "" {
		status = "Waiting for first analysis"
	}

	line := StatusStyle.Render(status)
	if path := m.surface.ImagePath(); path != "" {
		line += "\n" + StatusStyle.Render("frame "+path)
	}
	return line
}

// renderFooter renders key hints and the lens setpoint.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"s snapshot",
		"r reset",
		fmt.Sprintf("f focus @ %.1f", m.lensPos),
		"+/- lens",
		"? help",
	}
	if m.LayoutMode() == LayoutMinimal {
		hints = hints[:4]
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	rows := [][2]string{
		{"s", "freeze the feed and capture a still frame"},
		{"r", "resume the live feed"},
		{"f", fmt.Sprintf("drive the lens to %.1f", m.lensPos)},
		{"+ / -", fmt.Sprintf("nudge the lens setpoint by %.1f", LensStep)},
		{"?", "toggle this help"},
		{"q / ctrl+c", "quit"},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("holewatch keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		key := lipgloss.NewStyle().Foreground(ColorAccent).Width(12).Render(r[0])
		b.WriteString(key)
		b.WriteString(LabelStyle.Render(r[1]))
		b.WriteString("\n")
	}

	return HelpStyle.Render(b.String())
}
