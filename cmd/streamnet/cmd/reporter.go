// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package cmd

import (
	"context"
	"log/slog"

	"github.com/jblindsay/streamnet/internal/streamnet"
)

// cliReporter adapts a cancellable context and the structured logger to the
// engine's streamnet.Reporter interface. It never inspects emitted records:
// those are returned in bulk from streamnet.Run and written separately.
type cliReporter struct {
	ctx   context.Context
	runID string
}

func newCliReporter(ctx context.Context, runID string) *cliReporter {
	return &cliReporter{ctx: ctx, runID: runID}
}

func (r *cliReporter) Progress(label string, pct int) {
	slog.Debug("progress", "runId", r.runID, "stage", label, "pct", pct)
}

func (r *cliReporter) Feedback(msg string) {
	slog.Info(msg, "runId", r.runID)
}

func (r *cliReporter) ReturnRecord(streamnet.RecordKind, interface{}) {}

func (r *cliReporter) CancelRequested() bool {
	return r.ctx.Err() != nil
}
