// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jblindsay/streamnet/geospatialfiles/rasterdem"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dem>",
	Short: "Report edge-cell and nodata statistics for a DEM",
	Long: `validate loads a DEM and reports how many cells are nodata, how
many are edge cells, and its geographic-to-metric distance factor — useful
for sanity-checking OutletDetector inputs before a full run.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(c *cobra.Command, args []string) error {
	demFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening DEM: %w", err)
	}
	defer demFile.Close()
	dem, err := rasterdem.Load(demFile)
	if err != nil {
		return fmt.Errorf("loading DEM: %w", err)
	}

	total, nodata, edge := 0, 0, 0
	for row := 0; row < dem.Rows(); row++ {
		for col := 0; col < dem.Columns(); col++ {
			total++
			if dem.Value(row, col) == dem.NoData() {
				nodata++
				continue
			}
			if dem.IsEdgeCell(row, col) {
				edge++
			}
		}
	}

	fmt.Printf("cells: %d\n", total)
	fmt.Printf("nodata cells: %d\n", nodata)
	fmt.Printf("edge cells: %d\n", edge)
	fmt.Printf("metric distance factor: %.6f\n", dem.MetricDistanceFactor())
	return nil
}
