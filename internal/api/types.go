package api

import (
	"encoding/base64"
	"fmt"
	"time"
)

// MetricsSnapshot is the analyzer's latest measurement set.
// It is replaced wholesale on every poll; nothing is persisted client-side.
type MetricsSnapshot struct {
	HolesMM   []float64 `json:"holes_mm"`
	Count     int       `json:"count"`
	Timestamp float64   `json:"timestamp"`
}

// Time returns the snapshot timestamp as a local time.
// ok is false when the backend has not produced a measurement yet
// (timestamp absent or zero), in which case callers should show a placeholder.
func (s MetricsSnapshot) Time() (t time.Time, ok bool) {
	if s.Timestamp == 0 {
		return time.Time{}, false
	}
	sec := int64(s.Timestamp)
	nsec := int64((s.Timestamp - float64(sec)) * 1e9)
	return time.Unix(sec, nsec), true
}

// SnapshotResult is a single still capture with its annotated image and
// the measurements taken from that exact frame.
type SnapshotResult struct {
	ImageBase64 string    `json:"image_base64"`
	HolesMM     []float64 `json:"holes_mm"`
	Timestamp   float64   `json:"timestamp"`
	Error       string    `json:"error,omitempty"`
}

// Image decodes the base64-encoded JPEG payload.
func (r SnapshotResult) Image() ([]byte, error) {
	if r.ImageBase64 == "" {
		return nil, fmt.Errorf("snapshot has no image data")
	}
	return base64.StdEncoding.DecodeString(r.ImageBase64)
}

// Time returns the capture timestamp as a local time.
// ok is false when the timestamp is absent or zero.
func (r SnapshotResult) Time() (t time.Time, ok bool) {
	return MetricsSnapshot{Timestamp: r.Timestamp}.Time()
}

// FocusMode selects how the camera's focus actuator is driven.
type FocusMode string

const (
	FocusManual     FocusMode = "manual"
	FocusAuto       FocusMode = "auto"
	FocusContinuous FocusMode = "continuous"
)

// ParseFocusMode validates a mode string from flags or config.
func ParseFocusMode(s string) (FocusMode, error) {
	switch FocusMode(s) {
	case FocusManual, FocusAuto, FocusContinuous:
		return FocusMode(s), nil
	default:
		return "", fmt.Errorf("invalid focus mode %q (want manual, auto, or continuous)", s)
	}
}

// FocusRequest describes a focus adjustment.
// Position applies to manual mode; Range and Speed apply to auto/continuous
// and are sent only when non-empty.
type FocusRequest struct {
	Mode     FocusMode
	Position float64
	Range    string // normal, macro, full
	Speed    string // normal, fast
}

// FocusResult is the backend's reply to a focus adjustment.
type FocusResult struct {
	Status       string  `json:"status"`
	Message      string  `json:"message,omitempty"`
	Mode         string  `json:"mode,omitempty"`
	LensPosition float64 `json:"lens_position,omitempty"`
	Range        string  `json:"range,omitempty"`
	Speed        string  `json:"speed,omitempty"`
}

// OK reports whether the backend accepted the adjustment.
func (r FocusResult) OK() bool {
	return r.Status == "ok"
}

// healthResponse is the /health reply body.
type healthResponse struct {
	Status string `json:"status"`
}
