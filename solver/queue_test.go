package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrdering(t *testing.T) {
	q := newQueue([]float64{1.0, 4.0, 2.0, 8.0})
	for _, expected := range []int{3, 1, 2, 0} {
		require.False(t, q.empty())
		assert.Equal(t, expected, q.removeMin())
	}
	assert.True(t, q.empty())
}

func TestQueueDecrease(t *testing.T) {
	activity := []float64{1.0, 2.0, 3.0}
	q := newQueue(activity)
	// Bumping an activity must be signalled for the heap to reorder.
	activity[0] = 10.0
	q.decrease(0)
	assert.Equal(t, 0, q.removeMin())
	assert.Equal(t, 2, q.removeMin())
	assert.Equal(t, 1, q.removeMin())
}

func TestQueueContains(t *testing.T) {
	q := newQueue([]float64{1.0, 2.0})
	require.True(t, q.contains(0))
	require.True(t, q.contains(1))
	assert.Equal(t, 1, q.removeMin())
	assert.False(t, q.contains(1))
	assert.True(t, q.contains(0))
	q.insert(1)
	assert.True(t, q.contains(1))
}

func TestQueueBuild(t *testing.T) {
	q := newQueue([]float64{3.0, 1.0, 2.0})
	q.build([]int{1, 2})
	assert.False(t, q.contains(0))
	assert.Equal(t, 2, q.removeMin())
	assert.Equal(t, 1, q.removeMin())
	assert.True(t, q.empty())
}
