// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import "math"

// buildResult carries what EndpointGraph construction produces besides the
// arena: the two spatial indexes, the distance-conversion factor, and the
// number of features read. Later phases (outlet detection, flow
// orientation) work from the arena alone and do not read it.
type buildResult struct {
	index       *SpatialIndex
	lakeIndex   *SpatialIndex // nil if no lakes were supplied
	distMult    float64
	numFeatures int
}

// buildEndpointGraph implements §4.3: it creates one Link per polyline part,
// samples the DEM at every vertex, and snaps endpoints into Nodes by
// proximity. Unmapped links (no vertex over valid DEM data) are kept in the
// arena but excluded from the spatial index and, later, from orientation and
// output (spec.md §7).
func buildEndpointGraph(arena *Arena, polySrc PolylineSource, lakeSrc PolygonSource, dem DemSource, snapDistance float64, reporter Reporter) (*buildResult, error) {
	probe := newDemProbe(dem)
	distMult := dem.MetricDistanceFactor()

	index := NewSpatialIndex()

	featureCount := 0
	for {
		if reporter.CancelRequested() {
			return nil, newError(Cancelled, "cancelled during endpoint graph construction", nil)
		}
		feature, ok, err := polySrc.Next()
		if err != nil {
			return nil, newError(IoError, "reading polyline stream", err)
		}
		if !ok {
			break
		}
		for partIdx, part := range feature.Parts {
			addPart(arena, index, probe, partIdx, part, distMult)
		}
		featureCount++
		reporter.Progress("reading polylines", 0) // caller doesn't know total count up front
	}

	var lakeIndex *SpatialIndex
	if lakeSrc != nil {
		lakeIndex = NewSpatialIndex()
		for {
			if reporter.CancelRequested() {
				return nil, newError(Cancelled, "cancelled while indexing lakes", nil)
			}
			poly, ok, err := lakeSrc.Next()
			if err != nil {
				return nil, newError(IoError, "reading lake stream", err)
			}
			if !ok {
				break
			}
			lakeID := arena.addLake()
			for _, v := range poly.Vertices {
				lakeIndex.Insert([2]float64{v.X, v.Y}, lakeID)
			}
		}
	}

	snapRadius := snapDistance / distMult
	if err := formNodes(arena, index, lakeIndex, snapRadius*snapRadius, reporter); err != nil {
		return nil, err
	}

	return &buildResult{
		index:       index,
		lakeIndex:   lakeIndex,
		distMult:    distMult,
		numFeatures: featureCount,
	}, nil
}

// addPart creates one Link from a single polyline part, sampling the DEM at
// every vertex and registering mapped endpoints in the spatial index.
func addPart(arena *Arena, index *SpatialIndex, probe *demProbe, partIdx int, part PolylinePart, distMult float64) {
	if len(part) < 2 {
		return
	}

	length := 0.0
	for i := 1; i < len(part); i++ {
		dx := part[i].X - part[i-1].X
		dy := part[i].Y - part[i-1].Y
		length += math.Sqrt(dx*dx + dy*dy)
	}
	length *= distMult

	mapped := false
	touchesNoData := false
	touchesEdge := false
	touchesValid := false
	for _, v := range part {
		z := probe.sample(v.X, v.Y)
		if probe.isNoData(z) {
			touchesNoData = true
			continue
		}
		touchesValid = true
		mapped = true
		if probe.isEdgeCellAt(v.X, v.Y) {
			touchesEdge = true
		}
	}
	crossesDemEdge := touchesValid && (touchesNoData || touchesEdge)

	start, end := part[0], part[len(part)-1]
	z1 := probe.sample(start.X, start.Y)
	z2 := probe.sample(end.X, end.Y)

	linkID := arena.addLink(partIdx, -1, -1, length, mapped, crossesDemEdge)

	e1 := arena.addEndpoint(linkID, start.X, start.Y, z1)
	e2 := arena.addEndpoint(linkID, end.X, end.Y, z2)
	arena.Links[linkID].Endpoint1ID = e1
	arena.Links[linkID].Endpoint2ID = e2

	if mapped {
		index.Insert([2]float64{start.X, start.Y}, e1)
		index.Insert([2]float64{end.X, end.Y}, e2)
	}
}

// formNodes implements the node-formation pass of §4.3: endpoints within
// snapRadiusSq of one another collapse into a shared Node, with lake
// vertices given first refusal when an endpoint is otherwise isolated.
//
// A node formed from a lake vertex is classified NodeLake so later phases
// can recognize it, but it is never returned on the §6 node record stream:
// that stream's TYPE enumeration is closed to outlet, diffluence, and
// joined head, all of which are only assigned during FlowOrientation.
func formNodes(arena *Arena, index, lakeIndex *SpatialIndex, snapRadiusSq float64, reporter Reporter) error {
	visited := make([]bool, len(arena.Endpoints))

	for i := range arena.Endpoints {
		if reporter.CancelRequested() {
			return newError(Cancelled, "cancelled during node formation", nil)
		}
		if visited[i] || arena.Endpoints[i].NodeID >= 0 {
			continue
		}
		if !arena.Links[arena.Endpoints[i].LinkID].IsFeatureMapped {
			continue
		}
		e := &arena.Endpoints[i]

		results := index.NeighborsWithinRange([2]float64{e.X, e.Y}, snapRadiusSq)

		if len(results) == 1 && lakeIndex != nil && !e.Outflowing {
			lakeHits := lakeIndex.NeighborsWithinRange([2]float64{e.X, e.Y}, snapRadiusSq)
			if len(lakeHits) > 0 {
				lakeID := lakeHits[0].Payload
				lake := &arena.Lakes[lakeID]
				if lake.NodeID < 0 {
					lake.NodeID = arena.addNode()
					arena.Nodes[lake.NodeID].Kind = NodeLake
					arena.Nodes[lake.NodeID].LakeID = lakeID
				}
				attachEndpointToNode(arena, e.ID, lake.NodeID)
				visited[e.ID] = true
				continue
			}
			nodeID := arena.addNode()
			attachEndpointToNode(arena, e.ID, nodeID)
			visited[e.ID] = true
			continue
		}

		nodeID := arena.addNode()
		for _, n := range results {
			attachEndpointToNode(arena, n.Payload, nodeID)
			visited[n.Payload] = true
		}
	}

	return nil
}

func attachEndpointToNode(arena *Arena, endpointID, nodeID int) {
	arena.Endpoints[endpointID].NodeID = nodeID
	arena.Nodes[nodeID].Endpoints = append(arena.Nodes[nodeID].Endpoints, endpointID)
}
