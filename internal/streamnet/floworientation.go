// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import (
	"github.com/jblindsay/streamnet/metrics"
	"github.com/jblindsay/streamnet/structures"
)

// flowOrientationState carries the counters the priority flood advances as
// it pops endpoints: a monotone outlet-catchment counter and a monotone node
// record FID counter.
type flowOrientationState struct {
	arena       *Arena
	nextOutlet  int
	nextNodeFID int
	reporter    Reporter
	metrics     *metrics.Collector
}

// orientFlow implements §4.5: a priority flood from the outlet seeds that
// assigns each link's catchment, orients it downstream, and records
// diffluence and joined-head junctions as they are discovered.
func orientFlow(arena *Arena, queue *structures.ZQueue, reporter Reporter, m *metrics.Collector) error {
	st := &flowOrientationState{arena: arena, reporter: reporter, metrics: m}

	for {
		if reporter.CancelRequested() {
			return newError(Cancelled, "cancelled during flow orientation", nil)
		}
		v := queue.Pop()
		if v == nil {
			break
		}
		eID := v.(int)
		e := &arena.Endpoints[eID]
		L := &arena.Links[e.LinkID]

		if L.Outlet == -1 {
			L.Outlet = st.nextOutlet
			st.nextOutlet++
			L.OutletLinkID = L.ID
			L.IsOutletLink = true
			st.markNodeKind(e.NodeID, NodeOutlet)
			st.emitNode(e.NodeID, "outlet")
		}

		st.propagate(L, e.NodeID, queue, false)

		otherID := otherEndpoint(L, e.ID)
		eStar := &arena.Endpoints[otherID]
		st.propagate(L, eStar.NodeID, queue, true)
	}

	return nil
}

// otherEndpoint returns the endpoint of L that isn't eID.
func otherEndpoint(L *Link, eID int) int {
	if L.Endpoint1ID == eID {
		return L.Endpoint2ID
	}
	return L.Endpoint1ID
}

// propagate visits every endpoint sharing nodeID and, for each belonging to
// a not-yet-oriented link, orients that link downstream of L. When
// detectJunctions is set (the node(e*), "upstream end" visit of §4.5), it
// additionally detects diffluences and joined heads among links that are
// already oriented.
func (st *flowOrientationState) propagate(L *Link, nodeID int, queue *structures.ZQueue, detectJunctions bool) {
	node := &st.arena.Nodes[nodeID]

	for _, epID := range node.Endpoints {
		ep := &st.arena.Endpoints[epID]
		if ep.LinkID == L.ID {
			continue
		}
		Lp := &st.arena.Links[ep.LinkID]

		if Lp.Outlet == -1 {
			Lp.Outlet = L.Outlet
			Lp.OutletLinkID = L.OutletLinkID
			Lp.NumDownstreamNodes = L.NumDownstreamNodes + 1
			Lp.DistToOutlet = L.DistToOutlet + Lp.Length
			Lp.OutflowingLinks = append(Lp.OutflowingLinks, L.ID)
			ep.Outflowing = true
			queue.Push(ep.ID, ep.Z)
			st.metrics.SetQueueDepth(queue.Len())
			continue
		}

		if !detectJunctions {
			continue
		}

		switch {
		case Lp.Outlet == L.Outlet && ep.Outflowing:
			Lp.OutflowingLinks = append(Lp.OutflowingLinks, L.ID)
			st.markNodeKind(nodeID, NodeDiffluence)
			st.emitNode(nodeID, "diffluence")
			st.metrics.IncDiffluences()
		case Lp.Outlet != L.Outlet && !Lp.IsOutletLink:
			st.markNodeKind(nodeID, NodeJoinedHead)
			st.emitNode(nodeID, "joined head")
			st.metrics.IncJoinedHeads()
		}
	}
}

func (st *flowOrientationState) markNodeKind(nodeID int, kind NodeKind) {
	node := &st.arena.Nodes[nodeID]
	if node.Kind == NodeUnclassified {
		node.Kind = kind
	}
}

func (st *flowOrientationState) emitNode(nodeID int, kind string) {
	st.nextNodeFID++
	st.reporter.ReturnRecord(RecordNode, NodeRecord{
		FID:    st.nextNodeFID,
		NodeID: nodeID,
		Type:   kind,
	})
}
