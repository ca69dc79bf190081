package monitor

import "sync"

// DefaultHistorySize is the number of poll samples retained for the
// sparkline. At the default 500ms cadence this is one minute of history.
const DefaultHistorySize = 120

// History is a thread-safe record of recent detected-hole counts, backed by
// a fixed-size ring buffer. The dashboard pushes one sample per poll tick
// and reads the tail back for sparkline rendering.
type History struct {
	mu  sync.RWMutex
	buf *ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{buf: newRingBuffer(size)}
}

// Push records a detected-hole count sample.
func (h *History) Push(count int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.push(float64(count))
}

// Last returns up to n of the most recent samples in chronological order.
// Returns fewer values if not enough history is available.
func (h *History) Last(n int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.buf.getLast(n)
}

// Len returns the number of samples currently held.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.buf.count
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, overwriting the oldest entry when full.
func (r *ringBuffer) push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last n values in chronological order (oldest first).
func (r *ringBuffer) getLast(n int) []float64 {
	if n <= 0 || r.count == 0 {
		return nil
	}
	if n > r.count {
		n = r.count
	}

	result := make([]float64, n)
	start := (r.head - n + r.size) % r.size
	for i := 0; i < n; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
