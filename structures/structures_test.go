package structures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKDTreeInRange(t *testing.T) {
	var tree *T
	pts := []Point{{0, 0}, {1, 0}, {0, 1}, {5, 5}, {10, 10}}
	for i, p := range pts {
		n := &T{Point: p, Data: i}
		tree = tree.Insert(n)
	}

	found := tree.InRange(Point{0, 0}, 1.5, nil)
	ids := make(map[int]bool)
	for _, n := range found {
		ids[n.PayloadInt()] = true
	}
	require.True(t, ids[0])
	require.True(t, ids[1])
	require.True(t, ids[2])
	require.False(t, ids[3])
	require.False(t, ids[4])
}

func TestKDTreeEmptyTree(t *testing.T) {
	var tree *T
	found := tree.InRange(Point{0, 0}, 10, nil)
	require.Empty(t, found)
}

func TestKDTreeNegativeRadius(t *testing.T) {
	var tree *T
	tree = tree.Insert(&T{Point: Point{0, 0}, Data: 1})
	found := tree.InRange(Point{0, 0}, -1, nil)
	require.Empty(t, found)
}

func TestZQueuePopsInAscendingOrder(t *testing.T) {
	q := NewZQueue(ZMINPQ)
	q.Push("b", 5.0)
	q.Push("a", 1.0)
	q.Push("c", 9.0)
	q.Push("d", 1.0) // ties with "a"; "a" was pushed first so pops first

	require.Equal(t, "a", q.Pop())
	require.Equal(t, "d", q.Pop())
	require.Equal(t, "b", q.Pop())
	require.Equal(t, "c", q.Pop())
	require.Equal(t, 0, q.Len())
	require.Nil(t, q.Pop())
}

func TestZQueueMaxOrdering(t *testing.T) {
	q := NewZQueue(ZMAXPQ)
	q.Push("low", 1.0)
	q.Push("high", 9.0)
	q.Push("mid", 5.0)

	require.Equal(t, "high", q.Pop())
	require.Equal(t, "mid", q.Pop())
	require.Equal(t, "low", q.Pop())
}
