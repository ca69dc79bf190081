package controller

// FeedState is the dashboard's two-state feed machine.
// Live: the poll loop drives the table and the video source.
// Frozen: the table and image reflect the last snapshot until a reset.
type FeedState int

const (
	FeedLive FeedState = iota
	FeedFrozen
)

// String returns a human-readable state label.
func (s FeedState) String() string {
	switch s {
	case FeedLive:
		return "live"
	case FeedFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}
