package quadrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFIFOOrder(t *testing.T) {
	var q fifo[int]
	require.True(t, q.empty())
	_, ok := q.popFront()
	require.False(t, ok)
	_, ok = q.peekFront()
	require.False(t, ok)

	for i := 0; i < 5; i++ {
		q.pushBack(i)
	}
	require.Equal(t, 5, q.len())
	v, ok := q.peekFront()
	require.True(t, ok)
	require.Equal(t, 0, v)

	for i := 0; i < 5; i++ {
		v, ok := q.popFront()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, q.empty())
}

func TestFIFOCompaction(t *testing.T) {
	var q fifo[int]
	next, want := 0, 0
	// interleave so the queue never drains and the head keeps advancing
	for round := 0; round < 50; round++ {
		for i := 0; i < 100; i++ {
			q.pushBack(next)
			next++
		}
		for i := 0; i < 90; i++ {
			v, ok := q.popFront()
			require.True(t, ok)
			require.Equal(t, want, v)
			want++
		}
	}
	require.Equal(t, next-want, q.len())
	require.LessOrEqual(t, len(q.items), 2*q.len()+2048)

	for !q.empty() {
		v, _ := q.popFront()
		require.Equal(t, want, v)
		want++
	}
	require.Equal(t, next, want)
}

func TestFIFOReset(t *testing.T) {
	var q fifo[Coord]
	q.pushBack(Coord{1, 2, 3})
	q.pushBack(Coord{4, 5, 6})
	q.reset()
	require.True(t, q.empty())
	require.Zero(t, q.len())

	q.pushBack(Coord{7, 8, 9})
	v, ok := q.popFront()
	require.True(t, ok)
	require.Equal(t, Coord{7, 8, 9}, v)
}
