package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeySnapshot   = "s"
	KeyReset      = "r"
	KeyFocus      = "f"
	KeyLensUp     = "+"
	KeyLensUpAlt  = "="
	KeyLensDown   = "-"
	KeyToggleHelp = "?"
	KeyCloseHelp  = "esc"
)

// lens position limits accepted by the camera
const (
	lensMin = 0.0
	lensMax = 100.0
)

// HandleKeyMsg processes keyboard input and returns updated model state and
// command. Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCloseHelp {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeySnapshot:
		return true, m.snapshotCmd()

	case KeyReset:
		return true, m.resetCmd()

	case KeyFocus:
		return true, m.focusCmd()

	case KeyLensUp, KeyLensUpAlt:
		m.lensPos += LensStep
		if m.lensPos > lensMax {
			m.lensPos = lensMax
		}
		return true, nil

	case KeyLensDown:
		m.lensPos -= LensStep
		if m.lensPos < lensMin {
			m.lensPos = lensMin
		}
		return true, nil
	}

	return false, nil
}
