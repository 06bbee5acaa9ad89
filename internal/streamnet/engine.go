// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import (
	"time"

	lvgraph "github.com/katalvlaran/lvlath/graph/core"

	"github.com/jblindsay/streamnet/metrics"
)

// Input bundles the engine's required collaborators (spec.md §6): a
// polyline stream, an optional lake stream, a DEM, and a snap distance in
// the units MetricDistanceFactor converts into (metres). It is divided by
// the DEM's MetricDistanceFactor to get a radius in the DEM's native xy
// units, so for projected DEMs (factor 1.0) the two are the same.
type Input struct {
	Polylines    PolylineSource
	Lakes        PolygonSource // nil if no lake layer is supplied
	Dem          DemSource
	SnapDistance float64
	Reporter     Reporter         // nil defaults to NoopReporter
	Metrics      *metrics.Collector // nil disables instrumentation
}

// Result is everything Run produces: the two emitted record streams plus a
// non-authoritative graph export for callers that want to inspect the
// oriented network with generic graph tooling.
type Result struct {
	LinkRecords []LinkRecord
	NodeRecords []NodeRecord
	Graph       *lvgraph.Graph
}

// Run executes the four subsystems in sequence: EndpointGraph construction,
// OutletDetector, FlowOrientation, and IndexComputation, followed by
// RecordEmitter (spec.md §4, data flow diagram in §2).
//
// On NoOutlets the run still completes and returns link records with every
// DISCONT flag set, alongside the NoOutlets error (spec.md §7); on every
// other error kind, output is suppressed and Result is nil.
func Run(input Input) (*Result, error) {
	if input.Dem == nil {
		return nil, newError(BadInputShape, "a DEM source is required", nil)
	}
	if input.Polylines == nil {
		return nil, newError(BadInputShape, "a polyline source is required", nil)
	}

	reporter := newCollectingReporter(input.Reporter)
	arena := newArena()
	m := input.Metrics

	stageStart := time.Now()
	_, err := buildEndpointGraph(arena, input.Polylines, input.Lakes, input.Dem, input.SnapDistance, reporter)
	if err != nil {
		return nil, err
	}
	m.ObserveStage("node_formation", time.Since(stageStart))
	mappedLinks := 0
	for i := range arena.Links {
		if arena.Links[i].IsFeatureMapped {
			mappedLinks++
		}
	}
	m.IncLinksProcessed(mappedLinks)
	reporter.Progress("node formation", 25)

	stageStart = time.Now()
	probe := newDemProbe(input.Dem)
	queue, err := detectOutlets(arena, probe, reporter)
	if err != nil {
		return nil, err
	}
	m.ObserveStage("outlet_detection", time.Since(stageStart))
	m.IncOutletsFound(queue.Len())
	m.SetQueueDepth(queue.Len())
	reporter.Progress("outlet detection", 50)

	if queue.Len() == 0 {
		reporter.Feedback("no outlet seeds found; every link will be marked discontinuous")
		emitLinkRecords(arena, reporter)
		return &Result{
			LinkRecords: reporter.linkRecords,
			NodeRecords: reporter.nodeRecords,
			Graph:       exportGraph(arena),
		}, newError(NoOutlets, "outlet queue was empty after outlet detection", nil)
	}

	stageStart = time.Now()
	if err := orientFlow(arena, queue, reporter, m); err != nil {
		return nil, err
	}
	m.ObserveStage("flow_orientation", time.Since(stageStart))
	reporter.Progress("flow orientation", 75)

	stageStart = time.Now()
	if err := computeIndices(arena, reporter); err != nil {
		return nil, err
	}
	m.ObserveStage("index_computation", time.Since(stageStart))
	reporter.Progress("index computation", 90)

	emitLinkRecords(arena, reporter)
	reporter.Progress("done", 100)

	return &Result{
		LinkRecords: reporter.linkRecords,
		NodeRecords: reporter.nodeRecords,
		Graph:       exportGraph(arena),
	}, nil
}
