// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import "github.com/jblindsay/streamnet/structures"

// detectOutlets implements §4.4: every link whose part crosses a DEM edge
// contributes exactly one endpoint, chosen by the three-rule priority below,
// as a seed for the FlowOrientation flood.
func detectOutlets(arena *Arena, probe *demProbe, reporter Reporter) (*structures.ZQueue, error) {
	queue := structures.NewZQueue(structures.ZMINPQ)

	for i := range arena.Links {
		if reporter.CancelRequested() {
			return nil, newError(Cancelled, "cancelled during outlet detection", nil)
		}
		link := &arena.Links[i]
		if !link.IsFeatureMapped || !link.CrossesDemEdge {
			continue
		}

		e1 := &arena.Endpoints[link.Endpoint1ID]
		e2 := &arena.Endpoints[link.Endpoint2ID]
		seed := chooseOutletSeed(probe, e1, e2)

		seed.Outflowing = true
		queue.Push(seed.ID, seed.Z)
	}

	return queue, nil
}

// chooseOutletSeed applies the three-rule priority of §4.4: a nodata
// endpoint beats a valid one, an edge-cell endpoint beats a non-edge one,
// and otherwise the lower-z endpoint wins. A tie in every rule (including
// equal z) keeps endpoint 1, per the spec's resolved open question on the
// equal-z case.
func chooseOutletSeed(probe *demProbe, e1, e2 *Endpoint) *Endpoint {
	e1NoData := probe.isNoData(e1.Z)
	e2NoData := probe.isNoData(e2.Z)
	if e1NoData != e2NoData {
		if e1NoData {
			return e1
		}
		return e2
	}

	e1Edge := probe.isEdgeCellAt(e1.X, e1.Y)
	e2Edge := probe.isEdgeCellAt(e2.X, e2.Y)
	if e1Edge != e2Edge {
		if e1Edge {
			return e1
		}
		return e2
	}

	if e2.Z < e1.Z {
		return e2
	}
	return e1
}
