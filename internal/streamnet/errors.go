// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package streamnet

import "fmt"

// ErrorKind classifies the errors the engine can return (spec.md §7).
type ErrorKind int

const (
	// BadInputShape: a polyline stream was not polyline-typed, a lake
	// stream was not polygon-typed, or a required source (the polyline
	// stream or the DEM) was not supplied.
	BadInputShape ErrorKind = iota
	// IoError: a raster or vector reader failed.
	IoError
	// NoOutlets: the outlet queue was empty after detection; the engine
	// still completes, flagging every link discontinuous.
	NoOutlets
	// OutOfMemory: a hard allocation failure; partial output is suppressed.
	OutOfMemory
	// Cancelled: the caller requested cancellation via the Reporter.
	Cancelled
)

func (k ErrorKind) String() string {
	switch k {
	case BadInputShape:
		return "bad input shape"
	case IoError:
		return "io error"
	case NoOutlets:
		return "no outlets"
	case OutOfMemory:
		return "out of memory"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown error"
	}
}

// Error wraps an ErrorKind with a human-readable message and, for IoError,
// the underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, streamnet.KindOf(streamnet.NoOutlets)) style checks
// via the KindOf sentinel helper instead of type-asserting.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns kind as a sentinel *Error suitable for errors.Is comparisons.
func KindOf(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}
