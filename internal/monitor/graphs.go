package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparklineBlocks are the block characters for single-row sparklines,
// from lowest to highest.
var sparklineBlocks = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline renders a single-row sparkline of hole counts using block
// characters. Values are scaled against the observed min/max; a flat series
// renders at the middle level so an empty-looking line always means no data.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	minVal, maxVal := findMinMax(data)
	resampled := resampleData(data, width)

	var result strings.Builder
	for _, val := range resampled {
		normalized := normalizeValue(val, minVal, maxVal)
		idx := clampInt(int(normalized*float64(len(sparklineBlocks)-1)), len(sparklineBlocks)-1)
		result.WriteRune(sparklineBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(result.String())
}

// findMinMax returns the minimum and maximum of the data, pinning the floor
// at zero so a run of identical counts still reads as a level, not a cliff.
func findMinMax(data []float64) (minVal, maxVal float64) {
	if len(data) == 0 {
		return 0, 1
	}

	minVal, maxVal = data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	if minVal > 0 {
		minVal = 0
	}
	return minVal, maxVal
}

// normalizeValue maps val into [0, 1] within the min/max range.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// clampInt clamps an integer to the range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// resampleData fits data into targetSize points. Downsampling keeps the max
// within each bucket to preserve peaks; upsampling repeats neighbors.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}
	if len(data) == targetSize {
		return data
	}

	result := make([]float64, targetSize)

	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	if len(data) > targetSize {
		bucketSize := float64(len(data)) / float64(targetSize)
		for i := 0; i < targetSize; i++ {
			start := int(float64(i) * bucketSize)
			end := int(float64(i+1) * bucketSize)
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				end = start + 1
			}
			maxInBucket := data[start]
			for j := start + 1; j < end; j++ {
				if data[j] > maxInBucket {
					maxInBucket = data[j]
				}
			}
			result[i] = maxInBucket
		}
		return result
	}

	// Upsampling: nearest neighbor
	for i := 0; i < targetSize; i++ {
		srcIdx := i * len(data) / targetSize
		result[i] = data[srcIdx]
	}
	return result
}
