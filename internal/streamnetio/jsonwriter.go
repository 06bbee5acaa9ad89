// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnetio

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/jblindsay/streamnet/internal/streamnet"
)

// round3 rounds f to the nearest value at the 3-decimal-place precision spec.md §6 treats as
// normative for the link output's floating-point fields.
func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

type linkRow struct {
	FID        int     `json:"FID"`
	Outlet     int     `json:"OUTLET"`
	TUCL       float64 `json:"TUCL"`
	MaxUpsDist float64 `json:"MAXUPSDIST"`
	DSNodes    int     `json:"DS_NODES"`
	Dist2Mouth float64 `json:"DIST2MOUTH"`
	Horton     int     `json:"HORTON"`
	Strahler   int     `json:"STRAHLER"`
	Shreve     float64 `json:"SHREVE"`
	Hack       int     `json:"HACK"`
	Mainstem   int     `json:"MAINSTEM"`
	TribID     int     `json:"TRIB_ID"`
	Discont    int     `json:"DISCONT"`
}

type nodeRow struct {
	FID  int    `json:"FID"`
	Type string `json:"TYPE"`
}

// WriteLinkRecords writes one NDJSON line per LinkRecord, field names and
// precision matching spec.md §6's normative wire format.
func WriteLinkRecords(w io.Writer, records []streamnet.LinkRecord) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		row := linkRow{
			FID:        r.FID,
			Outlet:     r.Outlet,
			TUCL:       round3(r.TUCL),
			MaxUpsDist: round3(r.MaxUpstreamDist),
			DSNodes:    r.NumDownstreamNodes,
			Dist2Mouth: round3(r.DistToOutlet),
			Horton:     r.Horton,
			Strahler:   r.Strahler,
			Shreve:     round3(r.Shreve),
			Hack:       r.Hack,
			Mainstem:   r.Mainstem,
			TribID:     r.TribID,
			Discont:    r.Discontinuous,
		}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("writing link record %d: %w", r.FID, err)
		}
	}
	return nil
}

// WriteNodeRecords writes one NDJSON line per NodeRecord.
func WriteNodeRecords(w io.Writer, records []streamnet.NodeRecord) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		row := nodeRow{FID: r.FID, Type: r.Type}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("writing node record %d: %w", r.FID, err)
		}
	}
	return nil
}
