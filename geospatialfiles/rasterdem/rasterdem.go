// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package rasterdem provides a minimal streamnet.DemSource backed by a flat
// in-memory elevation grid. Reading production raster formats (GeoTIFF,
// Whitebox .dep/.tas, ArcGIS ASCII, and the rest) is explicitly out of scope
// for the core (spec.md §1); this is a demo stand-in for the cmd/streamnet
// CLI, in the same spirit as internal/streamnetio's NDJSON feature readers.
package rasterdem

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// WGS-84 ellipsoid constants used for the mid-latitude metric conversion.
const (
	wgs84SemiMajorAxis = 6378137.0
	wgs84SemiMinorAxis = 6356752.314
)

// gridHeader is the first NDJSON line of a grid file: the dimensions,
// geographic extent, and nodata sentinel. XYUnits is free-form metadata;
// anything naming degrees/geographic/latlong is treated as geographic,
// everything else (including "not specified") is treated as already metric.
type gridHeader struct {
	Rows        int     `json:"rows"`
	Columns     int     `json:"columns"`
	North       float64 `json:"north"`
	South       float64 `json:"south"`
	East        float64 `json:"east"`
	West        float64 `json:"west"`
	NoDataValue float64 `json:"noDataValue"`
	XYUnits     string  `json:"xyUnits"`
}

// Grid is a flat, row-major elevation grid that implements
// streamnet.DemSource directly: no format-reader indirection, no Save path.
type Grid struct {
	rows, columns int
	north, south  float64
	east, west    float64
	noData        float64
	geographic    bool
	metricFactor  float64
	values        []float64
}

// Load reads a grid from NDJSON: a header line followed by one JSON
// float64-array line per row, top row first. Missing rows are left at the
// header's nodata value.
func Load(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var header gridHeader
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("rasterdem: empty grid stream")
	}
	if err := json.Unmarshal(scanner.Bytes(), &header); err != nil {
		return nil, fmt.Errorf("rasterdem: parsing header: %w", err)
	}
	if header.Rows <= 0 || header.Columns <= 0 {
		return nil, fmt.Errorf("rasterdem: invalid dimensions %dx%d", header.Rows, header.Columns)
	}

	g := &Grid{
		rows:    header.Rows,
		columns: header.Columns,
		north:   header.North,
		south:   header.South,
		east:    header.East,
		west:    header.West,
		noData:  header.NoDataValue,
		values:  make([]float64, header.Rows*header.Columns),
	}
	for i := range g.values {
		g.values[i] = header.NoDataValue
	}
	switch header.XYUnits {
	case "degrees", "decimal degrees", "geographic", "lat/long":
		g.geographic = true
	}
	g.metricFactor = g.computeMetricDistanceFactor()

	for row := 0; row < header.Rows; row++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			break
		}
		var line []float64
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			return nil, fmt.Errorf("rasterdem: parsing row %d: %w", row, err)
		}
		for col := 0; col < header.Columns && col < len(line); col++ {
			g.values[row*header.Columns+col] = line[col]
		}
	}
	return g, nil
}

// Rows reports the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Columns reports the grid's column count.
func (g *Grid) Columns() int { return g.columns }

// NoData returns the sentinel value Value uses for missing/out-of-bounds
// cells, satisfying the streamnet engine's DemSource interface.
func (g *Grid) NoData() float64 { return g.noData }

// Value retrieves a cell's elevation, returning NoData for any out-of-bounds
// row/column.
func (g *Grid) Value(row, col int) float64 {
	if row < 0 || row >= g.rows || col < 0 || col >= g.columns {
		return g.noData
	}
	return g.values[row*g.columns+col]
}

func (g *Grid) cellSizeX() float64 { return (g.east - g.west) / float64(g.columns) }
func (g *Grid) cellSizeY() float64 { return (g.north - g.south) / float64(g.rows) }

// RowColFromXY maps a world coordinate to the row/column of the cell that
// contains it. The result may fall outside [0,Rows)x[0,Columns); callers
// should treat such cells as nodata, which Value and IsEdgeCell already do.
func (g *Grid) RowColFromXY(x, y float64) (row, col int) {
	col = int(math.Floor((x - g.west) / g.cellSizeX()))
	row = int(math.Floor((g.north - y) / g.cellSizeY()))
	return row, col
}

// IsEdgeCell reports whether the cell at (row,col) holds valid (non-nodata)
// data and has at least one of its eight Moore neighbours either off-grid or
// nodata.
func (g *Grid) IsEdgeCell(row, col int) bool {
	if g.Value(row, col) == g.noData {
		return false
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			rr, cc := row+dy, col+dx
			if rr < 0 || rr >= g.rows || cc < 0 || cc >= g.columns {
				return true
			}
			if g.values[rr*g.columns+cc] == g.noData {
				return true
			}
		}
	}
	return false
}

// MetricDistanceFactor returns the scalar that converts distances measured
// in the grid's native xy units into metres, cached at Load time so the hot
// sampling path never recomputes it.
func (g *Grid) MetricDistanceFactor() float64 {
	return g.metricFactor
}

// computeMetricDistanceFactor is MetricDistanceFactor's Load-time
// computation: 1.0 for projected grids, and for geographic grids the
// average of the metre-per-degree distance along a meridian and along a
// parallel at the grid's mid latitude, following the WGS-84 ellipsoid
// (spec.md §4.2).
func (g *Grid) computeMetricDistanceFactor() float64 {
	if !g.geographic {
		return 1.0
	}
	midLat := (g.north + g.south) / 2.0
	latRad := midLat * math.Pi / 180.0

	a := wgs84SemiMajorAxis
	b := wgs84SemiMinorAxis
	e2 := 1 - (b*b)/(a*a)

	// Metres per degree of latitude (along a meridian).
	num := a * (1 - e2)
	denom := math.Pow(1-e2*math.Sin(latRad)*math.Sin(latRad), 1.5)
	latDegDist := (math.Pi / 180.0) * num / denom

	// Metres per degree of longitude (along the parallel at midLat).
	radiusOfParallel := a * math.Cos(latRad) / math.Sqrt(1-e2*math.Sin(latRad)*math.Sin(latRad))
	longDegDist := (math.Pi / 180.0) * radiusOfParallel

	return (longDegDist + latDegDist) / 2.0
}
