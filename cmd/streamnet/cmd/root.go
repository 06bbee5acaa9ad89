// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package cmd is the streamnet command-line tree, built on
// github.com/spf13/cobra (grounded on alexanderritik-dbgraph's cmd/root.go +
// subcommand-per-file layout), replacing the teacher's flag-based
// go-spatial.go entry point per the redesigned host abstraction.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "streamnet",
	Short: "Vector stream-network hydrographic analysis engine",
	Long: `streamnet reconstructs the implicit flow graph of a hydrographic
stream network from polyline features and a DEM, detects outlets, orients
every link, and computes Horton/Strahler/Shreve/Hack stream orders along
with the other per-link hydrographic indices.`,
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
