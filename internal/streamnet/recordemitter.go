// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

// LinkRecord is one row of the emitted link table (spec.md §4.7, §6).
type LinkRecord struct {
	FID                int
	Outlet             int
	TUCL               float64
	MaxUpstreamDist    float64
	NumDownstreamNodes int
	DistToOutlet       float64
	Horton             int
	Strahler           int
	Shreve             float64
	Hack               int
	Mainstem           int
	TribID             int
	Discontinuous      int
}

// NodeRecord is one row of the emitted node table (spec.md §4.7, §6).
type NodeRecord struct {
	FID    int
	NodeID int
	Type   string
}

// emitLinkRecords implements the link half of §4.7: one record per mapped
// link, in link-id order, with FIDs assigned sequentially starting at 1.
func emitLinkRecords(arena *Arena, reporter Reporter) {
	fid := 0
	for i := range arena.Links {
		L := &arena.Links[i]
		if !L.IsFeatureMapped {
			continue
		}
		fid++
		discontinuous := 0
		if L.Outlet == -1 {
			discontinuous = 1
		}
		mainstem := 0
		if L.IsMainstem {
			mainstem = 1
		}
		reporter.ReturnRecord(RecordLink, LinkRecord{
			FID:                fid,
			Outlet:             L.Outlet,
			TUCL:               L.TUCL,
			MaxUpstreamDist:    L.MaxUpstreamDist,
			NumDownstreamNodes: L.NumDownstreamNodes,
			DistToOutlet:       L.DistToOutlet,
			Horton:             L.HortonOrder,
			Strahler:           L.StrahlerOrder,
			Shreve:             L.ShreveOrder,
			Hack:               L.HackOrder,
			Mainstem:           mainstem,
			TribID:             L.TribID,
			Discontinuous:      discontinuous,
		})
	}
}
