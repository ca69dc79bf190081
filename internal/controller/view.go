package controller

// Row is one rendered measurement line: a 1-based index and the hole
// diameter formatted to two decimal places.
type Row struct {
	Index    int
	Diameter string
}

// View is the rendering surface the controller draws on. Injecting it keeps
// the dashboard logic testable without a terminal (or a browser page, where
// this contract originally lived as a handful of DOM element IDs).
type View interface {
	// RenderTable replaces the measurement table wholesale.
	RenderTable(rows []Row)

	// SetStatus replaces the one-line status text.
	SetStatus(line string)

	// SetImage shows a captured frame; nil clears it back to the live view.
	SetImage(jpeg []byte)

	// SetVideoSource points the live viewer at the MJPEG stream URL.
	// The controller only calls this when the source actually changes,
	// so implementations may restart their stream unconditionally.
	SetVideoSource(url string)

	// Notify surfaces a user-initiated command result. Background polling
	// never calls this; its failures go to the logger instead.
	Notify(msg string)
}

// NopView discards everything. Useful as a default and in tests that only
// care about controller state.
type NopView struct{}

func (NopView) RenderTable(rows []Row)  {}
func (NopView) SetStatus(line string)   {}
func (NopView) SetImage(jpeg []byte)    {}
func (NopView) SetVideoSource(u string) {}
func (NopView) Notify(msg string)       {}
