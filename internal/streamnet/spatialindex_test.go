// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpatialIndexNeighborsWithinRange(t *testing.T) {
	idx := NewSpatialIndex()
	idx.Insert([2]float64{0, 0}, 1)
	idx.Insert([2]float64{3, 4}, 2) // distSq 25, outside radiusSq 9
	idx.Insert([2]float64{1, 0}, 3) // distSq 1, inside

	got := idx.NeighborsWithinRange([2]float64{0, 0}, 9)
	payloads := make(map[int]float64)
	for _, n := range got {
		payloads[n.Payload] = n.DistSq
	}

	require.Contains(t, payloads, 1)
	require.InDelta(t, 0.0, payloads[1], 1e-9)
	require.Contains(t, payloads, 3)
	require.InDelta(t, 1.0, payloads[3], 1e-9)
	require.NotContains(t, payloads, 2)
}

func TestSpatialIndexNegativeRadiusIsEmpty(t *testing.T) {
	idx := NewSpatialIndex()
	idx.Insert([2]float64{0, 0}, 1)
	got := idx.NeighborsWithinRange([2]float64{0, 0}, -1)
	require.Empty(t, got)
}

func TestSpatialIndexEmptyIndex(t *testing.T) {
	idx := NewSpatialIndex()
	got := idx.NeighborsWithinRange([2]float64{0, 0}, 100)
	require.Empty(t, got)
}
