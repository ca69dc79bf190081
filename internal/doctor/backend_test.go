package doctor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"holewatch/internal/api"
)

// newBackend spins up a fake inspection server with adjustable behavior.
func newBackend(t *testing.T, healthy bool, metricsBody string, videoCT string) *api.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(metricsBody))
	})
	mux.HandleFunc("/video", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", videoCT)
		w.Write([]byte("--frame\r\n"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL)
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy backend passes", func(t *testing.T) {
		client := newBackend(t, true, `{}`, "")
		res := (&HealthCheck{Client: client}).Run()

		assert.Equal(t, StatusPass, res.Status)
		assert.Contains(t, res.Message, "Backend healthy")
	})

	t.Run("degraded backend fails", func(t *testing.T) {
		client := newBackend(t, false, `{}`, "")
		res := (&HealthCheck{Client: client}).Run()

		assert.Equal(t, StatusFail, res.Status)
		assert.Contains(t, res.Suggestion, client.BaseURL())
	})

	t.Run("dead backend fails", func(t *testing.T) {
		client := api.NewClient("http://127.0.0.1:1")
		res := (&HealthCheck{Client: client}).Run()

		assert.Equal(t, StatusFail, res.Status)
	})
}

func TestMetricsCheck(t *testing.T) {
	t.Run("analyzed metrics pass", func(t *testing.T) {
		client := newBackend(t, true, `{"holes_mm":[3.3,7.1],"count":2,"timestamp":1700000000}`, "")
		res := (&MetricsCheck{Client: client}).Run()

		assert.Equal(t, StatusPass, res.Status)
		assert.Contains(t, res.Message, "2 holes")
	})

	t.Run("no analysis yet warns", func(t *testing.T) {
		client := newBackend(t, true, `{"holes_mm":[],"count":0,"timestamp":0}`, "")
		res := (&MetricsCheck{Client: client}).Run()

		assert.Equal(t, StatusWarn, res.Status)
	})

	t.Run("bad payload fails", func(t *testing.T) {
		client := newBackend(t, true, `not json`, "")
		res := (&MetricsCheck{Client: client}).Run()

		assert.Equal(t, StatusFail, res.Status)
	})
}

func TestVideoStreamCheck(t *testing.T) {
	t.Run("mjpeg stream passes", func(t *testing.T) {
		client := newBackend(t, true, `{}`, "multipart/x-mixed-replace; boundary=frame")
		res := (&VideoStreamCheck{Client: client}).Run()

		assert.Equal(t, StatusPass, res.Status)
	})

	t.Run("wrong content type warns", func(t *testing.T) {
		client := newBackend(t, true, `{}`, "text/html")
		res := (&VideoStreamCheck{Client: client}).Run()

		assert.Equal(t, StatusWarn, res.Status)
		assert.Contains(t, res.Message, "text/html")
	})

	t.Run("unreachable stream fails", func(t *testing.T) {
		client := api.NewClient("http://127.0.0.1:1")
		res := (&VideoStreamCheck{Client: client}).Run()

		assert.Equal(t, StatusFail, res.Status)
	})
}

func TestBackendChecks_RunTogether(t *testing.T) {
	client := newBackend(t, true, `{"holes_mm":[5.0],"count":1,"timestamp":1700000000}`, "multipart/x-mixed-replace; boundary=frame")

	results := RunAllParallel(BackendChecks(client))

	assert.Len(t, results, 3)
	assert.False(t, HasFailures(results))
}
