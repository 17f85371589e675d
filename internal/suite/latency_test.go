package suite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatency(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Latency{}, computeLatency(nil))
	})

	t.Run("single", func(t *testing.T) {
		l := computeLatency([]time.Duration{5 * time.Millisecond})
		assert.Equal(t, 5*time.Millisecond, l.Min)
		assert.Equal(t, 5*time.Millisecond, l.P50)
		assert.Equal(t, 5*time.Millisecond, l.P95)
		assert.Equal(t, 1, l.Samples)
	})

	t.Run("unsorted input", func(t *testing.T) {
		in := []time.Duration{
			50 * time.Millisecond,
			10 * time.Millisecond,
			30 * time.Millisecond,
			20 * time.Millisecond,
			40 * time.Millisecond,
		}
		l := computeLatency(in)
		assert.Equal(t, 10*time.Millisecond, l.Min)
		assert.Equal(t, 50*time.Millisecond, l.Max)
		assert.Equal(t, 30*time.Millisecond, l.Mean)
		assert.Equal(t, 30*time.Millisecond, l.P50)
		assert.InDelta(t, float64(48*time.Millisecond), float64(l.P95), float64(time.Microsecond))
		assert.Equal(t, 50*time.Millisecond, in[0], "input must not be reordered")
	})
}
