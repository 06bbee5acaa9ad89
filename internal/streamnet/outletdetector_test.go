// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChooseOutletSeedNoDataBeatsValid(t *testing.T) {
	dem := newFakeDem(10, 10)
	dem.fill(100)
	probe := newDemProbe(dem)

	valid := &Endpoint{ID: 1, X: 1, Y: 1, Z: 100}
	nodata := &Endpoint{ID: 2, X: 50, Y: 50, Z: dem.NoData()}

	got := chooseOutletSeed(probe, valid, nodata)
	require.Equal(t, nodata.ID, got.ID)

	got = chooseOutletSeed(probe, nodata, valid)
	require.Equal(t, nodata.ID, got.ID)
}

func TestChooseOutletSeedEdgeBeatsInterior(t *testing.T) {
	dem := newFakeDem(10, 10)
	dem.fill(100)
	probe := newDemProbe(dem)

	edge := &Endpoint{ID: 1, X: 0, Y: 0, Z: 100}   // corner: out-of-bounds neighbors count as nodata
	interior := &Endpoint{ID: 2, X: 5, Y: 5, Z: 100}

	got := chooseOutletSeed(probe, edge, interior)
	require.Equal(t, edge.ID, got.ID)
}

func TestChooseOutletSeedLowerZWins(t *testing.T) {
	dem := newFakeDem(10, 10)
	dem.fill(100)
	probe := newDemProbe(dem)

	higher := &Endpoint{ID: 1, X: 5, Y: 5, Z: 100}
	lower := &Endpoint{ID: 2, X: 6, Y: 6, Z: 50}

	got := chooseOutletSeed(probe, higher, lower)
	require.Equal(t, lower.ID, got.ID)
}

func TestDetectOutletsOnlyFlagsCrossingMappedLinks(t *testing.T) {
	arena := newArena()

	crossing := arena.addLink(0, -1, -1, 1, true, true)
	ce1 := arena.addEndpoint(crossing, 0, 0, 100)
	ce2 := arena.addEndpoint(crossing, 1, 1, 50)
	arena.Links[crossing].Endpoint1ID = ce1
	arena.Links[crossing].Endpoint2ID = ce2

	interior := arena.addLink(0, -1, -1, 1, true, false)
	ie1 := arena.addEndpoint(interior, 2, 2, 100)
	ie2 := arena.addEndpoint(interior, 3, 3, 100)
	arena.Links[interior].Endpoint1ID = ie1
	arena.Links[interior].Endpoint2ID = ie2

	unmapped := arena.addLink(0, -1, -1, 1, false, false)
	ue1 := arena.addEndpoint(unmapped, 4, 4, 100)
	ue2 := arena.addEndpoint(unmapped, 5, 5, 100)
	arena.Links[unmapped].Endpoint1ID = ue1
	arena.Links[unmapped].Endpoint2ID = ue2

	probe := newDemProbe(newFakeDem(10, 10))
	queue, err := detectOutlets(arena, probe, NoopReporter{})
	require.NoError(t, err)
	require.Equal(t, 1, queue.Len())

	v := queue.Pop()
	require.NotNil(t, v)
	id := v.(int)
	require.Equal(t, ce2, id, "the lower-elevation endpoint of the crossing link is the seed")
}
