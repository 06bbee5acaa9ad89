// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExportGraphSkipsUnmappedLinksAndTheirEdges verifies exportGraph omits
// unmapped links as vertices and never emits an edge touching one, even if
// an unmapped link is (incorrectly) still listed in an OutflowingLinks slice.
func TestExportGraphSkipsUnmappedLinksAndTheirEdges(t *testing.T) {
	arena := newArena()
	mapped := arena.addLink(0, -1, -1, 2.5, true, true)
	unmapped := arena.addLink(0, -1, -1, 1, false, false)
	arena.Links[mapped].OutflowingLinks = []int{unmapped}

	g := exportGraph(arena)

	require.True(t, g.HasVertex(linkVertexID(mapped)))
	require.False(t, g.HasVertex(linkVertexID(unmapped)))
	require.False(t, g.HasEdge(linkVertexID(mapped), linkVertexID(unmapped)))
}

// TestExportGraphAddsOneEdgePerOutflow verifies a mapped link flowing into
// two other mapped links produces exactly those two directed edges, with
// weight derived from the upstream link's length.
func TestExportGraphAddsOneEdgePerOutflow(t *testing.T) {
	arena := newArena()
	u := arena.addLink(0, -1, -1, 4.0, true, false)
	d1 := arena.addLink(0, -1, -1, 1, true, true)
	d2 := arena.addLink(0, -1, -1, 1, true, true)
	arena.Links[u].OutflowingLinks = []int{d1, d2}

	g := exportGraph(arena)

	require.True(t, g.HasEdge(linkVertexID(u), linkVertexID(d1)))
	require.True(t, g.HasEdge(linkVertexID(u), linkVertexID(d2)))
	require.False(t, g.HasEdge(linkVertexID(d1), linkVertexID(u)), "edges are directed downstream only")
}
