package monitor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_PushAndLast(t *testing.T) {
	h := NewHistory(5)

	h.Push(3)
	h.Push(4)
	h.Push(5)

	assert.Equal(t, []float64{3, 4, 5}, h.Last(10), "asking for more than held returns everything, oldest first")
	assert.Equal(t, []float64{4, 5}, h.Last(2), "tail of the series")
	assert.Equal(t, 3, h.Len())
}

func TestHistory_Wraparound(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		h.Push(i)
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float64{3, 4, 5}, h.Last(3), "oldest entries are overwritten")
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)

	assert.Nil(t, h.Last(3))
	assert.Equal(t, 0, h.Len())
}

func TestHistory_ZeroSizeUsesDefault(t *testing.T) {
	h := NewHistory(0)

	for i := 0; i < DefaultHistorySize+10; i++ {
		h.Push(i)
	}

	assert.Equal(t, DefaultHistorySize, h.Len())
}

func TestHistory_ConcurrentAccess(t *testing.T) {
	h := NewHistory(50)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Push(j)
				h.Last(10)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, h.Len())
}

func TestHistory_LastNonPositive(t *testing.T) {
	h := NewHistory(5)
	h.Push(1)

	assert.Nil(t, h.Last(0))
	assert.Nil(t, h.Last(-1))
}
