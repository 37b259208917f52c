package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hxforge/model"
)

func calc(q float64) model.Calculation {
	return model.Calculation{Kind: model.TypeLMTD, Q: &q}
}

func TestListDeque_AddFirstIsNewestFirst(t *testing.T) {
	d := NewListDeque(3)
	require.True(t, d.IsEmpty())

	for i := 1; i <= 3; i++ {
		assert.True(t, d.AddFirst(calc(float64(i))))
	}
	assert.True(t, d.IsFull())
	assert.Equal(t, 3, d.Size())
	assert.Equal(t, 3.0, *d.Get(0).Q)
	assert.Equal(t, 1.0, *d.Get(2).Q)
}

func TestListDeque_AddWhenFull(t *testing.T) {
	d := NewListDeque(1)
	require.True(t, d.AddLast(calc(1)))
	assert.False(t, d.AddLast(calc(2)))
	assert.False(t, d.AddFirst(calc(3)))
	assert.Equal(t, 1, d.Size())
	assert.Equal(t, 1.0, *d.Get(0).Q)
}

func TestListDeque_Remove(t *testing.T) {
	d := NewListDeque(4)
	d.AddLast(calc(1))
	d.AddLast(calc(2))
	d.AddLast(calc(3))

	first, ok := d.RemoveFirst()
	require.True(t, ok)
	assert.Equal(t, 1.0, *first.Q)

	last, ok := d.RemoveLast()
	require.True(t, ok)
	assert.Equal(t, 3.0, *last.Q)

	assert.Equal(t, 1, d.Size())
	assert.Equal(t, 2.0, *d.Get(0).Q)

	_, ok = d.RemoveLast()
	require.True(t, ok)
	_, ok = d.RemoveLast()
	assert.False(t, ok)
	_, ok = d.RemoveFirst()
	assert.False(t, ok)
	assert.True(t, d.IsEmpty())
}

func TestListDeque_Traverse(t *testing.T) {
	d := NewListDeque(5)
	for i := 0; i < 5; i++ {
		d.AddLast(calc(float64(i)))
	}
	var seen []float64
	d.Traverse(func(i int, item model.Calculation) {
		assert.Equal(t, float64(i), *item.Q)
		seen = append(seen, *item.Q)
	})
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, seen)
}

func TestListDeque_GetOutOfRange(t *testing.T) {
	d := NewListDeque(2)
	d.AddLast(calc(1))
	assert.Panics(t, func() { d.Get(1) })
	assert.Panics(t, func() { d.Get(-1) })
}

func TestListDeque_ZeroCapacity(t *testing.T) {
	d := NewListDeque(-3)
	assert.Equal(t, 0, d.Capacity())
	assert.True(t, d.IsFull())
	assert.False(t, d.AddFirst(calc(1)))
}

func BenchmarkListDeque_AddFirst(b *testing.B) {
	deque := NewListDeque(4000)
	for i := 0; i < b.N; i++ {
		deque.AddFirst(model.Calculation{})
		deque.RemoveFirst()
	}
}

func BenchmarkListDeque_AddLast(b *testing.B) {
	deque := NewListDeque(4000)
	for i := 0; i < b.N; i++ {
		deque.AddLast(model.Calculation{})
		deque.RemoveLast()
	}
}
