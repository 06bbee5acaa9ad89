// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package rasterdem

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// gridLines builds a minimal NDJSON grid: a header line followed by rows
// rows, each cols cells wide and filled with fill.
func gridLines(rows, cols int, fill float64, xyUnits string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `{"rows":%d,"columns":%d,"north":%d,"south":0,"east":%d,"west":0,"noDataValue":-32768,"xyUnits":%q}`+"\n",
		rows, cols, rows, cols, xyUnits)

	cells := make([]string, cols)
	for i := range cells {
		cells[i] = fmt.Sprintf("%v", fill)
	}
	line := "[" + strings.Join(cells, ",") + "]\n"
	for r := 0; r < rows; r++ {
		b.WriteString(line)
	}
	return b.String()
}

// TestLoadParsesDimensionsAndValues verifies Load reads the header and every
// row's values, and that Value reflects them.
func TestLoadParsesDimensionsAndValues(t *testing.T) {
	g, err := Load(strings.NewReader(gridLines(10, 10, 100, "not specified")))
	require.NoError(t, err)
	require.Equal(t, 10, g.Rows())
	require.Equal(t, 10, g.Columns())
	require.Equal(t, 100.0, g.Value(5, 5))
}

// TestLoadValueOutOfBoundsIsNoData verifies out-of-bounds cells read as
// NoData rather than panicking.
func TestLoadValueOutOfBoundsIsNoData(t *testing.T) {
	g, err := Load(strings.NewReader(gridLines(5, 5, 100, "not specified")))
	require.NoError(t, err)
	require.Equal(t, g.NoData(), g.Value(-1, 0))
	require.Equal(t, g.NoData(), g.Value(0, 100))
}

// TestLoadIsEdgeCell verifies a grid interior with uniform valid data has no
// edge cells except at the grid boundary.
func TestLoadIsEdgeCell(t *testing.T) {
	g, err := Load(strings.NewReader(gridLines(10, 10, 100, "not specified")))
	require.NoError(t, err)
	require.False(t, g.IsEdgeCell(5, 5))
	require.True(t, g.IsEdgeCell(0, 0), "a corner cell always borders the grid boundary")
}

// TestLoadProjectedMetricDistanceFactor verifies a projected grid's factor
// is exactly 1.0.
func TestLoadProjectedMetricDistanceFactor(t *testing.T) {
	g, err := Load(strings.NewReader(gridLines(5, 5, 100, "not specified")))
	require.NoError(t, err)
	require.Equal(t, 1.0, g.MetricDistanceFactor())
}

// TestLoadGeographicMetricDistanceFactor verifies a geographic grid gets a
// non-trivial, positive metres-per-degree factor, computed once at Load
// time.
func TestLoadGeographicMetricDistanceFactor(t *testing.T) {
	g, err := Load(strings.NewReader(gridLines(5, 5, 100, "degrees")))
	require.NoError(t, err)
	require.Greater(t, g.MetricDistanceFactor(), 1000.0, "a metre-per-degree factor is on the order of 1e5, not ~1")
}

// TestLoadRowColFromXY verifies the coordinate mapping matches the cell-size
// arithmetic for both in-bounds and out-of-bounds queries.
func TestLoadRowColFromXY(t *testing.T) {
	g, err := Load(strings.NewReader(gridLines(10, 10, 100, "not specified")))
	require.NoError(t, err)

	row, col := g.RowColFromXY(3.5, 3.5)
	require.Equal(t, 6, row)
	require.Equal(t, 3, col)
}

// TestLoadRejectsEmptyStream verifies Load surfaces an error rather than
// returning a zero-value Grid when the stream has no header line.
func TestLoadRejectsEmptyStream(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	require.Error(t, err)
}

// TestLoadRejectsInvalidDimensions verifies a header with non-positive
// dimensions is rejected.
func TestLoadRejectsInvalidDimensions(t *testing.T) {
	_, err := Load(strings.NewReader(`{"rows":0,"columns":5}` + "\n"))
	require.Error(t, err)
}
