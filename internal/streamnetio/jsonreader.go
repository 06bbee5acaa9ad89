// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package streamnetio provides newline-delimited-JSON adapters for
// streamnet.PolylineSource and streamnet.PolygonSource, and a matching
// writer for the engine's emitted records. These are demo stand-ins for the
// cmd/streamnet CLI only — shapefile/DBF reading is an out-of-scope external
// collaborator (spec.md §1); nothing here is part of the core.
package streamnetio

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jblindsay/streamnet/internal/streamnet"
)

// jsonPoint mirrors streamnet.Point for JSON (de)serialization.
type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonPolylineFeature struct {
	Parts [][]jsonPoint `json:"parts"`
}

type jsonPolygonFeature struct {
	Vertices []jsonPoint `json:"vertices"`
}

// PolylineReader streams one streamnet.PolylineFeature per line of NDJSON.
type PolylineReader struct {
	scanner *bufio.Scanner
}

// NewPolylineReader wraps r as a streamnet.PolylineSource.
func NewPolylineReader(r io.Reader) *PolylineReader {
	return &PolylineReader{scanner: bufio.NewScanner(r)}
}

func (p *PolylineReader) Next() (streamnet.PolylineFeature, bool, error) {
	for p.scanner.Scan() {
		line := p.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var raw jsonPolylineFeature
		if err := json.Unmarshal(line, &raw); err != nil {
			return streamnet.PolylineFeature{}, false, err
		}
		return streamnet.PolylineFeature{Parts: toParts(raw.Parts)}, true, nil
	}
	if err := p.scanner.Err(); err != nil {
		return streamnet.PolylineFeature{}, false, err
	}
	return streamnet.PolylineFeature{}, false, nil
}

func toParts(parts [][]jsonPoint) []streamnet.PolylinePart {
	out := make([]streamnet.PolylinePart, len(parts))
	for i, part := range parts {
		p := make(streamnet.PolylinePart, len(part))
		for j, v := range part {
			p[j] = streamnet.Point{X: v.X, Y: v.Y}
		}
		out[i] = p
	}
	return out
}

// PolygonReader streams one streamnet.PolygonFeature (a lake) per line of
// NDJSON.
type PolygonReader struct {
	scanner *bufio.Scanner
}

// NewPolygonReader wraps r as a streamnet.PolygonSource.
func NewPolygonReader(r io.Reader) *PolygonReader {
	return &PolygonReader{scanner: bufio.NewScanner(r)}
}

func (p *PolygonReader) Next() (streamnet.PolygonFeature, bool, error) {
	for p.scanner.Scan() {
		line := p.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var raw jsonPolygonFeature
		if err := json.Unmarshal(line, &raw); err != nil {
			return streamnet.PolygonFeature{}, false, err
		}
		vertices := make([]streamnet.Point, len(raw.Vertices))
		for i, v := range raw.Vertices {
			vertices[i] = streamnet.Point{X: v.X, Y: v.Y}
		}
		return streamnet.PolygonFeature{Vertices: vertices}, true, nil
	}
	if err := p.scanner.Err(); err != nil {
		return streamnet.PolygonFeature{}, false, err
	}
	return streamnet.PolygonFeature{}, false, nil
}
