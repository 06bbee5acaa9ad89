// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import (
	"strconv"

	lvgraph "github.com/katalvlaran/lvlath/graph/core"
)

// exportGraph builds a non-authoritative diagnostic view of the oriented
// link DAG as an lvlath graph, one vertex per mapped link and one directed
// edge per outflowingLinks entry, weighted by link length. It is never
// consulted by the engine itself: outflowingLinks/inflowingLinks on Link
// remain the authoritative adjacency, because lvlath's adjacency list is
// backed by Go maps whose iteration order the engine's diffluence
// tie-breaking cannot depend on (spec.md §4.5, §9 design notes).
func exportGraph(arena *Arena) *lvgraph.Graph {
	g := lvgraph.NewGraph(true, true)

	for i := range arena.Links {
		L := &arena.Links[i]
		if !L.IsFeatureMapped {
			continue
		}
		g.AddVertex(&lvgraph.Vertex{
			ID: linkVertexID(L.ID),
			Metadata: map[string]interface{}{
				"outlet":   L.Outlet,
				"tribId":   L.TribID,
				"strahler": L.StrahlerOrder,
			},
		})
	}

	for i := range arena.Links {
		L := &arena.Links[i]
		if !L.IsFeatureMapped {
			continue
		}
		for _, d := range L.OutflowingLinks {
			if !arena.Links[d].IsFeatureMapped {
				continue
			}
			g.AddEdge(linkVertexID(L.ID), linkVertexID(d), int64(L.Length*1000))
		}
	}

	return g
}

func linkVertexID(id int) string {
	return "link-" + strconv.Itoa(id)
}
