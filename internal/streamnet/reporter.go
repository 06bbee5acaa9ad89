// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

// RecordKind distinguishes the two record streams RecordEmitter produces.
type RecordKind int

const (
	RecordLink RecordKind = iota
	RecordNode
)

// Reporter is the narrow host surface the engine needs from its caller, in
// place of the teacher's PluginTool/PluginToolManager host (design note 1).
// A caller driving a GUI, a CLI, or a test fixture implements this directly;
// NoopReporter is a safe zero-effort default.
type Reporter interface {
	// Progress reports coarse-grained completion of a named phase (e.g.
	// "node formation", "priority flood") as a percentage in [0,100].
	Progress(label string, pct int)
	// Feedback reports a human-readable diagnostic message that is not an
	// error (e.g. "12 links were discontinuous").
	Feedback(msg string)
	// ReturnRecord delivers one emitted record (a LinkRecord or NodeRecord)
	// to the caller.
	ReturnRecord(kind RecordKind, data interface{})
	// CancelRequested is polled at the coarse-grained boundaries spec.md §5
	// names (per polyline record / per endpoint / per popped queue element).
	// When it returns true the engine stops promptly without producing
	// partial output.
	CancelRequested() bool
}

// NoopReporter implements Reporter with no-ops and never requests
// cancellation; useful for tests and for library callers who only want the
// returned records slice from Run.
type NoopReporter struct{}

func (NoopReporter) Progress(string, int)                {}
func (NoopReporter) Feedback(string)                      {}
func (NoopReporter) ReturnRecord(RecordKind, interface{}) {}
func (NoopReporter) CancelRequested() bool                { return false }

// collectingReporter wraps another Reporter and also accumulates every
// record into memory, which is how Run returns records to callers that
// don't want to implement ReturnRecord themselves.
type collectingReporter struct {
	Reporter
	linkRecords []LinkRecord
	nodeRecords []NodeRecord
}

func newCollectingReporter(inner Reporter) *collectingReporter {
	if inner == nil {
		inner = NoopReporter{}
	}
	return &collectingReporter{Reporter: inner}
}

func (c *collectingReporter) ReturnRecord(kind RecordKind, data interface{}) {
	switch kind {
	case RecordLink:
		c.linkRecords = append(c.linkRecords, data.(LinkRecord))
	case RecordNode:
		c.nodeRecords = append(c.nodeRecords, data.(NodeRecord))
	}
	c.Reporter.ReturnRecord(kind, data)
}
