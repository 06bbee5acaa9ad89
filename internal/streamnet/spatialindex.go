// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import (
	"math"

	"github.com/jblindsay/streamnet/structures"
)

// SpatialIndex is a 2-D spatial index over endpoint ids, backed by
// structures.T (spec.md §4.1). It exists as a thin wrapper because the
// underlying K-D tree's InRange takes a non-squared radius, while the spec
// and this engine's callers work in squared distances throughout.
type SpatialIndex struct {
	root *structures.T
}

// NewSpatialIndex returns an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{}
}

// Insert adds a payload (typically an endpoint id) at the given point.
func (s *SpatialIndex) Insert(point [2]float64, payload int) {
	n := &structures.T{Point: structures.Point(point), Data: payload}
	s.root = s.root.Insert(n)
}

// Neighbor pairs a payload with its squared distance from the query point,
// the result shape spec.md §4.1 names for neighborsWithinRange.
type Neighbor struct {
	Payload int
	DistSq  float64
}

// NeighborsWithinRange returns every indexed payload within radiusSquared of
// point. The result order is unspecified but deterministic for a given
// sequence of Insert calls, matching the K-D tree's own traversal order.
func (s *SpatialIndex) NeighborsWithinRange(point [2]float64, radiusSquared float64) []Neighbor {
	if radiusSquared < 0 {
		return nil
	}
	radius := math.Sqrt(radiusSquared)
	pt := structures.Point(point)
	nodes := s.root.InRange(pt, radius, nil)
	out := make([]Neighbor, len(nodes))
	for i, n := range nodes {
		dx := n.Point[0] - pt[0]
		dy := n.Point[1] - pt[1]
		out[i] = Neighbor{Payload: n.PayloadInt(), DistSq: dx*dx + dy*dy}
	}
	return out
}
