// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

// DemSource is the abstract DEM the engine samples (spec.md §6). A caller
// satisfies it with a concrete DEM reader; *rasterdem.Grid (this module's
// geospatialfiles/rasterdem package) already does.
type DemSource interface {
	// RowColFromXY maps a world coordinate to the grid cell that contains
	// it. The result may be out of bounds.
	RowColFromXY(x, y float64) (row, col int)
	// Value returns the cell's elevation, or the nodata sentinel when the
	// cell is out of bounds or genuinely nodata.
	Value(row, col int) float64
	// NoData returns the sentinel value Value uses for missing data.
	NoData() float64
	// IsEdgeCell reports whether the cell holds valid data and borders
	// nodata or the grid boundary.
	IsEdgeCell(row, col int) bool
	// MetricDistanceFactor returns the scalar that converts lengths in the
	// DEM's native xy units into metres (1.0 for already-projected data).
	MetricDistanceFactor() float64
}

// demProbe wraps a DemSource with the sampling operations EndpointGraph and
// OutletDetector need, keeping the row/col <-> world-coordinate conversion
// in one place.
type demProbe struct {
	dem DemSource
}

func newDemProbe(dem DemSource) *demProbe {
	return &demProbe{dem: dem}
}

// sample returns the DEM value at a world coordinate, downgraded to NoData
// on any out-of-bounds read (spec.md §7: "numeric parse or sample failures
// on individual vertices downgrade the endpoint's z to nodata but do not
// abort").
func (p *demProbe) sample(x, y float64) float64 {
	row, col := p.dem.RowColFromXY(x, y)
	return p.dem.Value(row, col)
}

func (p *demProbe) isNoData(z float64) bool {
	return z == p.dem.NoData()
}

func (p *demProbe) isEdgeCellAt(x, y float64) bool {
	row, col := p.dem.RowColFromXY(x, y)
	return p.dem.IsEdgeCell(row, col)
}
