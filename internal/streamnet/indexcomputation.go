// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

// computeIndices runs the three topological passes of §4.6 in sequence:
// downstream accumulation (TUCL, Shreve, maxUpstreamDist, tribId), Strahler
// order, and upstream descent (Horton, Hack).
func computeIndices(arena *Arena, reporter Reporter) error {
	if err := downstreamPass(arena, reporter); err != nil {
		return err
	}
	if err := strahlerPass(arena, reporter); err != nil {
		return err
	}
	return upstreamPass(arena, reporter)
}

// downstreamPass implements the headwaters-to-outlets pass of §4.6. A mapped
// link with no inflow is a headwater regardless of whether its catchment
// ever reached an outlet: a wholly-interior disconnected fragment (S5) still
// needs a tribId and a shreveOrder/tucl contribution, even though it will
// never be visited by the upstream (Horton/Hack) pass because that pass only
// starts from outlet links.
func downstreamPass(arena *Arena, reporter Reporter) error {
	inDegree := make([]int, len(arena.Links))
	for i := range arena.Links {
		L := &arena.Links[i]
		for _, d := range L.OutflowingLinks {
			inDegree[d]++
			arena.Links[d].InflowingLinks = append(arena.Links[d].InflowingLinks, L.ID)
		}
	}

	var stack []int
	nextTribID := 1
	for i := range arena.Links {
		L := &arena.Links[i]
		if !L.IsFeatureMapped || inDegree[i] != 0 {
			continue
		}
		L.ShreveOrder = 1
		L.TribID = nextTribID
		nextTribID++
		stack = append(stack, L.ID)
	}

	for len(stack) > 0 {
		if reporter.CancelRequested() {
			return newError(Cancelled, "cancelled during downstream index pass", nil)
		}
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		L := &arena.Links[id]

		L.TUCL += L.Length
		L.MaxUpstreamDist += L.Length

		k := len(L.OutflowingLinks)
		for _, dID := range L.OutflowingLinks {
			D := &arena.Links[dID]
			D.TUCL += L.TUCL / float64(k)
			D.ShreveOrder += L.ShreveOrder / float64(k)
			if L.MaxUpstreamDist > D.MaxUpstreamDist {
				D.MaxUpstreamDist = L.MaxUpstreamDist
			}
			inDegree[dID]--
			if inDegree[dID] == 0 {
				assignTribID(arena, D)
				stack = append(stack, dID)
			}
		}
	}

	return nil
}

// assignTribID applies the furthest-head rule: a link inheriting from more
// than one inflow takes the tribId of whichever inflow reaches furthest
// upstream. On a tie the first such inflow in InflowingLinks wins, and
// downstreamPass builds InflowingLinks in ascending upstream link id, so the
// result is deterministic.
func assignTribID(arena *Arena, D *Link) {
	switch len(D.InflowingLinks) {
	case 0:
		return
	case 1:
		D.TribID = arena.Links[D.InflowingLinks[0]].TribID
	default:
		best := D.InflowingLinks[0]
		bestDist := arena.Links[best].MaxUpstreamDist
		for _, u := range D.InflowingLinks[1:] {
			if arena.Links[u].MaxUpstreamDist > bestDist {
				best = u
				bestDist = arena.Links[u].MaxUpstreamDist
			}
		}
		D.TribID = arena.Links[best].TribID
	}
}

// strahlerPass implements the Strahler-order pass of §4.6, run over a fresh
// inDegree count so it doesn't depend on downstreamPass having left the
// stack-walk state intact.
func strahlerPass(arena *Arena, reporter Reporter) error {
	inDegree := make([]int, len(arena.Links))
	for i := range arena.Links {
		for _, d := range arena.Links[i].OutflowingLinks {
			inDegree[d]++
		}
	}

	var stack []int
	for i := range arena.Links {
		L := &arena.Links[i]
		if !L.IsFeatureMapped || inDegree[i] != 0 {
			continue
		}
		L.StrahlerOrder = 1
		stack = append(stack, L.ID)
	}

	for len(stack) > 0 {
		if reporter.CancelRequested() {
			return newError(Cancelled, "cancelled during Strahler pass", nil)
		}
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		L := &arena.Links[id]

		if L.OutletLinkID >= 0 && arena.Links[L.OutletLinkID].TribID == L.TribID {
			L.IsMainstem = true
		}

		for _, dID := range L.OutflowingLinks {
			inDegree[dID]--
			if inDegree[dID] == 0 {
				assignStrahlerOrder(arena, &arena.Links[dID])
				stack = append(stack, dID)
			}
		}
	}

	return nil
}

// assignStrahlerOrder applies the classic Strahler merge rule: two equal
// maximal orders from distinct tributaries bump the order by one, otherwise
// the link inherits the largest inflow order unchanged.
func assignStrahlerOrder(arena *Arena, D *Link) {
	switch len(D.InflowingLinks) {
	case 0:
		return
	case 1:
		D.StrahlerOrder = arena.Links[D.InflowingLinks[0]].StrahlerOrder
	default:
		largest, secondLargest := -1, -1
		largestTrib, secondTrib := -1, -2
		for _, u := range D.InflowingLinks {
			o := arena.Links[u].StrahlerOrder
			t := arena.Links[u].TribID
			if o > largest {
				secondLargest, secondTrib = largest, largestTrib
				largest, largestTrib = o, t
			} else if o > secondLargest {
				secondLargest, secondTrib = o, t
			}
		}
		if largest == secondLargest && largestTrib != secondTrib {
			D.StrahlerOrder = largest + 1
		} else {
			D.StrahlerOrder = largest
		}
	}
}

// upstreamPass implements the Horton/Hack descent of §4.6, starting from
// every outlet link and walking inflowingLinks.
func upstreamPass(arena *Arena, reporter Reporter) error {
	visited := make([]bool, len(arena.Links))
	var stack []int
	for i := range arena.Links {
		L := &arena.Links[i]
		if !L.IsFeatureMapped || !L.IsOutletLink {
			continue
		}
		L.HortonOrder = L.StrahlerOrder
		L.HackOrder = 1
		visited[i] = true
		stack = append(stack, L.ID)
	}

	for len(stack) > 0 {
		if reporter.CancelRequested() {
			return newError(Cancelled, "cancelled during upstream index pass", nil)
		}
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		L := &arena.Links[id]

		for _, uID := range L.InflowingLinks {
			if visited[uID] {
				continue
			}
			U := &arena.Links[uID]
			if U.TribID == L.TribID {
				U.HortonOrder = L.HortonOrder
				U.HackOrder = L.HackOrder
			} else {
				U.HortonOrder = U.StrahlerOrder
				U.HackOrder = L.HackOrder + 1
			}
			visited[uID] = true
			stack = append(stack, uID)
		}
	}

	return nil
}
