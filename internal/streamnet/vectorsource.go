// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

// Point is a planar (x,y) coordinate. Z is never carried on the wire — the
// engine samples elevation from the DEM itself (spec.md §3).
type Point struct {
	X, Y float64
}

// PolylinePart is one contiguous sequence of vertices; spec.md §3 creates
// exactly one Link per part.
type PolylinePart []Point

// PolylineFeature is one input stream record: a polyline made of one or
// more parts.
type PolylineFeature struct {
	Parts []PolylinePart
}

// PolygonFeature is one lake record. Only its vertex coordinates are
// consumed (spec.md §3, §6); holes and part structure are not modeled
// because nothing downstream of lake-snapping needs them.
type PolygonFeature struct {
	Vertices []Point
}

// PolylineSource streams polyline features (spec.md §6). Next returns
// ok=false once the stream is exhausted, with err nil on a clean end.
// Shapefile/DBF reading is an out-of-scope external collaborator per
// spec.md §1 — callers bring their own PolylineSource.
type PolylineSource interface {
	Next() (feature PolylineFeature, ok bool, err error)
}

// PolygonSource streams the optional lake layer (spec.md §6).
type PolygonSource interface {
	Next() (feature PolygonFeature, ok bool, err error)
}

// sliceSource adapts an in-memory slice of features to PolylineSource, used
// by tests and by the optional convenience constructors below.
type sliceSource struct {
	features []PolylineFeature
	i        int
}

func (s *sliceSource) Next() (PolylineFeature, bool, error) {
	if s.i >= len(s.features) {
		return PolylineFeature{}, false, nil
	}
	f := s.features[s.i]
	s.i++
	return f, true, nil
}

// NewPolylineSliceSource returns a PolylineSource over an in-memory slice,
// useful for tests and for small embedded callers that already hold their
// features in memory.
func NewPolylineSliceSource(features []PolylineFeature) PolylineSource {
	return &sliceSource{features: features}
}

type polygonSliceSource struct {
	features []PolygonFeature
	i        int
}

func (s *polygonSliceSource) Next() (PolygonFeature, bool, error) {
	if s.i >= len(s.features) {
		return PolygonFeature{}, false, nil
	}
	f := s.features[s.i]
	s.i++
	return f, true, nil
}

// NewPolygonSliceSource returns a PolygonSource over an in-memory slice.
func NewPolygonSliceSource(features []PolygonFeature) PolygonSource {
	return &polygonSliceSource{features: features}
}
