// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAssignTribIDFurthestHeadRule covers the furthest-head rule directly: a
// confluence link inherits the tribId of whichever inflow has travelled
// furthest upstream, not the first or last in InflowingLinks order.
func TestAssignTribIDFurthestHeadRule(t *testing.T) {
	arena := newArena()
	short := arena.addLink(0, -1, -1, 1, true, false)
	long := arena.addLink(0, -1, -1, 1, true, false)
	confluence := arena.addLink(0, -1, -1, 1, true, false)

	arena.Links[short].TribID = 7
	arena.Links[short].MaxUpstreamDist = 3

	arena.Links[long].TribID = 9
	arena.Links[long].MaxUpstreamDist = 30

	arena.Links[confluence].InflowingLinks = []int{short, long}

	assignTribID(arena, &arena.Links[confluence])
	require.Equal(t, 9, arena.Links[confluence].TribID)

	// Order must not matter: the same result holds with inflows reversed.
	arena.Links[confluence].InflowingLinks = []int{long, short}
	assignTribID(arena, &arena.Links[confluence])
	require.Equal(t, 9, arena.Links[confluence].TribID)
}

// TestAssignTribIDSingleInflowInherited covers the single-inflow case: no
// comparison needed, the tribId passes straight through.
func TestAssignTribIDSingleInflowInherited(t *testing.T) {
	arena := newArena()
	u := arena.addLink(0, -1, -1, 1, true, false)
	d := arena.addLink(0, -1, -1, 1, true, false)
	arena.Links[u].TribID = 42
	arena.Links[d].InflowingLinks = []int{u}

	assignTribID(arena, &arena.Links[d])
	require.Equal(t, 42, arena.Links[d].TribID)
}

// TestAssignStrahlerOrderMergeRule covers the classic Strahler merge: two
// distinct tributaries of equal order bump the confluence by one, but an
// unequal pair or a same-tributary pair (Strahler order along a single
// reach) does not.
func TestAssignStrahlerOrderMergeRule(t *testing.T) {
	arena := newArena()
	a := arena.addLink(0, -1, -1, 1, true, false)
	b := arena.addLink(0, -1, -1, 1, true, false)
	d := arena.addLink(0, -1, -1, 1, true, false)

	arena.Links[a].StrahlerOrder, arena.Links[a].TribID = 2, 1
	arena.Links[b].StrahlerOrder, arena.Links[b].TribID = 2, 2
	arena.Links[d].InflowingLinks = []int{a, b}
	assignStrahlerOrder(arena, &arena.Links[d])
	require.Equal(t, 3, arena.Links[d].StrahlerOrder, "equal orders from distinct tributaries bump the order")

	arena.Links[b].StrahlerOrder = 1
	assignStrahlerOrder(arena, &arena.Links[d])
	require.Equal(t, 2, arena.Links[d].StrahlerOrder, "a strictly larger inflow order passes through unchanged")

	arena.Links[b].StrahlerOrder, arena.Links[b].TribID = 2, 1
	assignStrahlerOrder(arena, &arena.Links[d])
	require.Equal(t, 2, arena.Links[d].StrahlerOrder, "equal orders from the same tributary do not bump the order")
}

// TestUpstreamPassSplitsHackOrderAtTributaryJunction drives upstreamPass
// directly on a hand-built three-link arena: an outlet O with two inflows,
// a mainstem M sharing O's tribId and a side tributary S that doesn't. M
// must inherit O's hortonOrder/hackOrder verbatim; S gets its own Strahler
// order as its Horton order and hackOrder bumped by one.
func TestUpstreamPassSplitsHackOrderAtTributaryJunction(t *testing.T) {
	arena := newArena()
	o := arena.addLink(0, -1, -1, 1, true, true)
	m := arena.addLink(0, -1, -1, 1, true, false)
	s := arena.addLink(0, -1, -1, 1, true, false)

	arena.Links[o].IsOutletLink = true
	arena.Links[o].OutletLinkID = o
	arena.Links[o].TribID = 1
	arena.Links[o].StrahlerOrder = 2
	arena.Links[o].InflowingLinks = []int{m, s}

	arena.Links[m].TribID = 1
	arena.Links[m].StrahlerOrder = 2

	arena.Links[s].TribID = 2
	arena.Links[s].StrahlerOrder = 1

	require.NoError(t, upstreamPass(arena, NoopReporter{}))

	require.Equal(t, 2, arena.Links[o].HortonOrder)
	require.Equal(t, 1, arena.Links[o].HackOrder)

	require.Equal(t, 2, arena.Links[m].HortonOrder, "the mainstem inherits the outlet's Horton order")
	require.Equal(t, 1, arena.Links[m].HackOrder, "the mainstem inherits the outlet's Hack order")

	require.Equal(t, 1, arena.Links[s].HortonOrder, "a side tributary's Horton order is its own Strahler order")
	require.Equal(t, 2, arena.Links[s].HackOrder, "a side tributary's Hack order is one more than its receiving reach")
}

// TestUpstreamPassSkipsUnmappedAndNonOutletLinks covers the seeding rule:
// only IsFeatureMapped, IsOutletLink links seed the descent, so an unmapped
// link sitting at what would otherwise look like an outlet, and a mapped
// link that is not an outlet link and is reached from none, never get
// Horton/Hack values.
func TestUpstreamPassSkipsUnmappedAndNonOutletLinks(t *testing.T) {
	arena := newArena()
	unmappedOutlet := arena.addLink(0, -1, -1, 1, false, true)
	arena.Links[unmappedOutlet].IsOutletLink = true
	arena.Links[unmappedOutlet].OutletLinkID = unmappedOutlet

	nonOutlet := arena.addLink(0, -1, -1, 1, true, false)
	arena.Links[nonOutlet].StrahlerOrder = 1

	require.NoError(t, upstreamPass(arena, NoopReporter{}))
	require.Zero(t, arena.Links[unmappedOutlet].HortonOrder)
	require.Zero(t, arena.Links[unmappedOutlet].HackOrder)
	require.Zero(t, arena.Links[nonOutlet].HortonOrder)
	require.Zero(t, arena.Links[nonOutlet].HackOrder)
}
