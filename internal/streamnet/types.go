// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package streamnet reconstructs the implicit flow graph of a hydrographic
// stream network from a set of polyline features and a DEM, orients every
// link, and computes Horton/Strahler/Shreve/Hack stream orders along with
// the other per-link hydrographic indices.
//
// Entities are held in integer-indexed arenas (Endpoint, Link, Node) rather
// than a pointer graph: nodes reference endpoints by id and endpoints
// reference links and nodes by id, which would otherwise form a reference
// cycle.
package streamnet

// NodeKind classifies why a Node record was emitted, if it was.
type NodeKind int

const (
	NodeUnclassified NodeKind = iota
	NodeOutlet
	NodeDiffluence
	NodeJoinedHead
	NodeLake
)

func (k NodeKind) String() string {
	switch k {
	case NodeOutlet:
		return "outlet"
	case NodeDiffluence:
		return "diffluence"
	case NodeJoinedHead:
		return "joined head"
	case NodeLake:
		return "lake"
	default:
		return "unclassified"
	}
}

// Endpoint is one end of a Link: either the first or the last vertex of a
// polyline part.
type Endpoint struct {
	ID         int
	LinkID     int
	X, Y       float64
	Z          float64 // DEM sample at (X,Y), or nodata
	NodeID     int      // -1 until node formation assigns it
	Outflowing bool     // true once water is known to leave the link here
}

// Link is one part of one input polyline feature: a single arc in the
// network.
type Link struct {
	ID              int
	PartIndex       int // which part of the source feature this link came from (NEW, diagnostic)
	Endpoint1ID     int
	Endpoint2ID     int
	Length          float64
	IsFeatureMapped bool
	CrossesDemEdge  bool

	Outlet           int // -1 until assigned a catchment
	OutletLinkID     int // -1 until assigned; the id of the outlet-terminus link of its catchment
	IsOutletLink     bool
	NumDownstreamNodes int
	DistToOutlet     float64

	TUCL            float64
	MaxUpstreamDist float64

	HortonOrder   int
	StrahlerOrder int
	ShreveOrder   float64
	HackOrder     int
	TribID        int
	IsMainstem    bool

	OutflowingLinks []int
	InflowingLinks  []int
}

// newLink returns a Link with every "unassigned" field set to its sentinel
// value.
func newLink(id, partIndex, e1, e2 int, length float64, mapped, crossesEdge bool) Link {
	return Link{
		ID:              id,
		PartIndex:       partIndex,
		Endpoint1ID:     e1,
		Endpoint2ID:     e2,
		Length:          length,
		IsFeatureMapped: mapped,
		CrossesDemEdge:  crossesEdge,
		Outlet:          -1,
		OutletLinkID:    -1,
		TribID:          0,
	}
}

// Node is a spatial equivalence class of endpoints within snap distance of
// one another: a physical junction, channel head, outlet terminus, or lake
// connector.
type Node struct {
	ID        int
	Endpoints []int
	Kind      NodeKind
	LakeID    int // -1 unless this node belongs to a lake
}

// Lake is a polygon whose vertices are indexed for endpoint-to-lake
// snapping; at most one Node is ever created per Lake.
type Lake struct {
	ID     int
	NodeID int // -1 until an endpoint first snaps to this lake
}

// Arena owns every Endpoint, Link, Node, and Lake created while building the
// network. Nothing is removed from an Arena until the engine run completes.
type Arena struct {
	Endpoints []Endpoint
	Links     []Link
	Nodes     []Node
	Lakes     []Lake
}

func newArena() *Arena {
	return &Arena{}
}

func (a *Arena) addEndpoint(linkID int, x, y, z float64) int {
	id := len(a.Endpoints)
	a.Endpoints = append(a.Endpoints, Endpoint{
		ID:     id,
		LinkID: linkID,
		X:      x,
		Y:      y,
		Z:      z,
		NodeID: -1,
	})
	return id
}

func (a *Arena) addLink(partIndex, e1, e2 int, length float64, mapped, crossesEdge bool) int {
	id := len(a.Links)
	a.Links = append(a.Links, newLink(id, partIndex, e1, e2, length, mapped, crossesEdge))
	return id
}

func (a *Arena) addNode() int {
	id := len(a.Nodes)
	a.Nodes = append(a.Nodes, Node{ID: id, LakeID: -1})
	return id
}

func (a *Arena) addLake() int {
	id := len(a.Lakes)
	a.Lakes = append(a.Lakes, Lake{ID: id, NodeID: -1})
	return id
}
