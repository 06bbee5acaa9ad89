// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jblindsay/streamnet/geospatialfiles/rasterdem"
	"github.com/jblindsay/streamnet/internal/streamnet"
	"github.com/jblindsay/streamnet/internal/streamnetio"
	"github.com/jblindsay/streamnet/metrics"
	"github.com/jblindsay/streamnet/streamnetcfg"
)

var (
	configPath   string
	snapDistance float64
	outputPath   string
	emitNodes    bool
)

var runCmd = &cobra.Command{
	Use:   "run <polylines.ndjson> <dem> [lakes.ndjson]",
	Short: "Run the streamnet engine over a polyline stream and a DEM",
	Long: `run loads a newline-delimited-JSON polyline stream (and, optionally,
a newline-delimited-JSON lake stream) plus a DEM, executes the full
EndpointGraph -> OutletDetector -> FlowOrientation -> IndexComputation
pipeline, and writes the resulting link and node records as
newline-delimited JSON. This is a demo adapter, NOT a shapefile writer:
shapefile/DBF I/O is explicitly out of scope for the core.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file (snapDistance/outputPath/emitNodes/logLevel)")
	runCmd.Flags().Float64Var(&snapDistance, "snap-distance", 0, "endpoint snap distance, in metres; equal to the DEM's native xy units for projected DEMs (overrides config)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "directory to write links.ndjson/nodes.ndjson into (default: stdout)")
	runCmd.Flags().BoolVar(&emitNodes, "emit-nodes", true, "emit node records alongside link records")
}

func runRun(c *cobra.Command, args []string) error {
	cfg := streamnetcfg.Default()
	if configPath != "" {
		loaded, err := streamnetcfg.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.Flags().Changed("snap-distance") {
		cfg.SnapDistance = snapDistance
	}
	if c.Flags().Changed("emit-nodes") {
		cfg.EmitNodes = emitNodes
	}
	if c.Flags().Changed("output") {
		cfg.OutputPath = outputPath
	}

	runID := uuid.New().String()
	slog.Info("starting run", "runId", runID, "snapDistance", cfg.SnapDistance)

	polyFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening polyline stream: %w", err)
	}
	defer polyFile.Close()

	demFile, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("opening DEM: %w", err)
	}
	defer demFile.Close()
	dem, err := rasterdem.Load(demFile)
	if err != nil {
		return fmt.Errorf("loading DEM: %w", err)
	}

	var lakes streamnet.PolygonSource
	if len(args) == 3 {
		lakeFile, err := os.Open(args[2])
		if err != nil {
			return fmt.Errorf("opening lake stream: %w", err)
		}
		defer lakeFile.Close()
		lakes = streamnetio.NewPolygonReader(lakeFile)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	collector := metrics.NewCollector()

	result, runErr := streamnet.Run(streamnet.Input{
		Polylines:    streamnetio.NewPolylineReader(polyFile),
		Lakes:        lakes,
		Dem:          dem,
		SnapDistance: cfg.SnapDistance,
		Reporter:     newCliReporter(ctx, runID),
		Metrics:      collector,
	})
	if runErr != nil && !isNoOutlets(runErr) {
		return fmt.Errorf("run %s failed: %w", runID, runErr)
	}
	if runErr != nil {
		slog.Warn("no outlets detected; every link is discontinuous", "runId", runID)
	}

	return writeResult(result, cfg)
}

func isNoOutlets(err error) bool {
	return errors.Is(err, streamnet.KindOf(streamnet.NoOutlets))
}

func writeResult(result *streamnet.Result, cfg *streamnetcfg.Config) error {
	if cfg.OutputPath == "" {
		if err := streamnetio.WriteLinkRecords(os.Stdout, result.LinkRecords); err != nil {
			return err
		}
		if cfg.EmitNodes {
			return streamnetio.WriteNodeRecords(os.Stdout, result.NodeRecords)
		}
		return nil
	}

	if err := os.MkdirAll(cfg.OutputPath, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	linksFile, err := os.Create(cfg.OutputPath + "/links.ndjson")
	if err != nil {
		return err
	}
	defer linksFile.Close()
	if err := streamnetio.WriteLinkRecords(linksFile, result.LinkRecords); err != nil {
		return err
	}

	if !cfg.EmitNodes {
		return nil
	}
	nodesFile, err := os.Create(cfg.OutputPath + "/nodes.ndjson")
	if err != nil {
		return err
	}
	defer nodesFile.Close()
	return streamnetio.WriteNodeRecords(nodesFile, result.NodeRecords)
}
