package monitor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Force TrueColor output in tests so we can verify ANSI color codes
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestFindMinMax(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		wantMin float64
		wantMax float64
	}{
		{
			name:    "empty data returns unit range",
			data:    []float64{},
			wantMin: 0,
			wantMax: 1,
		},
		{
			name:    "positive counts pin the floor at zero",
			data:    []float64{3, 5, 9},
			wantMin: 0,
			wantMax: 9,
		},
		{
			name:    "flat series",
			data:    []float64{4, 4, 4},
			wantMin: 0,
			wantMax: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minVal, maxVal := findMinMax(tt.data)
			assert.Equal(t, tt.wantMin, minVal)
			assert.Equal(t, tt.wantMax, maxVal)
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, 0.0, normalizeValue(0, 0, 10))
	assert.Equal(t, 1.0, normalizeValue(10, 0, 10))
	assert.Equal(t, 0.5, normalizeValue(5, 0, 10))
	assert.Equal(t, 0.5, normalizeValue(7, 7, 7), "degenerate range maps to the middle")
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-3, 7))
	assert.Equal(t, 7, clampInt(9, 7))
	assert.Equal(t, 4, clampInt(4, 7))
}

func TestResampleData(t *testing.T) {
	t.Run("same size passes through", func(t *testing.T) {
		data := []float64{1, 2, 3}
		assert.Equal(t, data, resampleData(data, 3))
	})

	t.Run("downsampling preserves peaks", func(t *testing.T) {
		data := []float64{0, 0, 9, 0, 0, 0, 0, 0}
		out := resampleData(data, 4)
		assert.Len(t, out, 4)
		assert.Contains(t, out, 9.0)
	})

	t.Run("single value fills the width", func(t *testing.T) {
		out := resampleData([]float64{6}, 4)
		assert.Equal(t, []float64{6, 6, 6, 6}, out)
	})

	t.Run("upsampling repeats neighbors", func(t *testing.T) {
		out := resampleData([]float64{1, 2}, 4)
		assert.Equal(t, []float64{1, 1, 2, 2}, out)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, resampleData(nil, 4))
		assert.Nil(t, resampleData([]float64{1}, 0))
	})
}

func TestRenderSparkline(t *testing.T) {
	t.Run("empty data renders nothing", func(t *testing.T) {
		assert.Equal(t, "", RenderSparkline(nil, 10, ColorGraph))
		assert.Equal(t, "", RenderSparkline([]float64{1}, 0, ColorGraph))
	})

	t.Run("rising counts use rising blocks", func(t *testing.T) {
		out := RenderSparkline([]float64{0, 2, 4, 8}, 4, ColorGraph)
		assert.Contains(t, out, "▁")
		assert.Contains(t, out, "█")
	})

	t.Run("applies the accent color", func(t *testing.T) {
		out := RenderSparkline([]float64{1, 2}, 2, ColorGraph)
		assert.Contains(t, out, "\x1b[", "expected an ANSI escape sequence")
	})
}
