// Package api is a thin HTTP client for the inspection rig's backend.
// It covers the four endpoints the dashboard consumes: /metrics, /video,
// /focus, and /video_snapshot, plus the rig's /health probe.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client is a thin HTTP client for the inspection backend.
// Calls carry no internal timeout; pass a deadline via context when one
// is wanted. A hung request stalls only its own caller.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL (e.g. http://rig:5000).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// NewClientWithHTTPClient creates a client with a caller-supplied http.Client.
// Used by tests and by callers that want transport-level timeouts.
func NewClientWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// VideoURL returns the MJPEG live-stream URL. The stream is assigned to a
// viewer, never fetched through this client.
func (c *Client) VideoURL() string {
	return c.baseURL + "/video"
}

// Metrics fetches the analyzer's latest measurement set.
func (c *Client) Metrics(ctx context.Context) (MetricsSnapshot, error) {
	var snap MetricsSnapshot
	if err := c.getJSON(ctx, "/metrics", &snap); err != nil {
		return MetricsSnapshot{}, err
	}
	return snap, nil
}

// Snapshot requests a still capture with its measurements.
// A transport or decode failure is returned as an error; a backend-reported
// failure arrives in the result's Error field with err == nil, so callers
// can distinguish the two per the dashboard's notification rules.
func (c *Client) Snapshot(ctx context.Context) (SnapshotResult, error) {
	var res SnapshotResult
	if err := c.getJSON(ctx, "/video_snapshot", &res); err != nil {
		return SnapshotResult{}, err
	}
	return res, nil
}

// Focus drives the camera's focus actuator.
// The backend replies with a JSON body even on HTTP error statuses, so the
// body is decoded before the status code is judged: a decodable
// status/message pair beats a bare "500 Internal Server Error".
func (c *Client) Focus(ctx context.Context, freq FocusRequest) (FocusResult, error) {
	q := url.Values{}
	q.Set("mode", string(freq.Mode))
	if freq.Mode == FocusManual {
		q.Set("pos", strconv.FormatFloat(freq.Position, 'f', -1, 64))
	}
	if freq.Range != "" {
		q.Set("range", freq.Range)
	}
	if freq.Speed != "" {
		q.Set("speed", freq.Speed)
	}

	endpoint := c.baseURL + "/focus?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return FocusResult{}, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return FocusResult{}, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return FocusResult{}, err
	}

	var result FocusResult
	if jsonErr := json.Unmarshal(body, &result); jsonErr == nil && result.Status != "" {
		return result, nil
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return FocusResult{}, fmt.Errorf("focus request failed: %s", res.Status)
	}
	return FocusResult{}, fmt.Errorf("focus request returned an unrecognized body")
}

// Health probes the backend's liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	var hr healthResponse
	if err := c.getJSON(ctx, "/health", &hr); err != nil {
		return err
	}
	if hr.Status != "ok" {
		return fmt.Errorf("backend reported status %q", hr.Status)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	// The rig sits behind aggressive proxies on some shop floors.
	req.Header.Set("Cache-Control", "no-cache")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		msg := strings.TrimSpace(string(body))
		if msg != "" {
			return fmt.Errorf("request failed: %s: %s", res.Status, msg)
		}
		return fmt.Errorf("request failed: %s", res.Status)
	}

	decoder := json.NewDecoder(res.Body)
	return decoder.Decode(out)
}
