// Package geoerr gives every operation in clip, build, edit and csg a
// common error shape: a Kind classifying why a geometry operation failed
// plus an Op naming which operation it was.
package geoerr

import "fmt"

// Kind classifies why a geometry operation failed.
type Kind int

const (
	// InvalidInput means the caller passed a plane, vertex id or brush that
	// could not possibly produce a valid result (degenerate plane, unknown
	// handle, wrong winding).
	InvalidInput Kind = iota
	// DegenerateResult means the operation ran but its output violates one
	// of the five mesh invariants; the mutation was rolled back.
	DegenerateResult
	// Empty means the operation legitimately produces no geometry (a clip
	// or subtraction that consumes the entire brush).
	Empty
	// NumericFailure means floating point arithmetic could not resolve an
	// intersection or a cycle (parallel planes, a seam that would not
	// close) to within epsilon.
	NumericFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case DegenerateResult:
		return "degenerate result"
	case Empty:
		return "empty"
	case NumericFailure:
		return "numeric failure"
	default:
		return "unknown"
	}
}

// Error is the error type returned by clip, build, edit and csg.
type Error struct {
	Op   string // the operation that failed, e.g. "clip.Clip" or "edit.MoveVertex"
	Kind Kind
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(op string, kind Kind) *Error {
	return &Error{Op: op, Kind: kind}
}

// Wrap builds an *Error around an existing cause.
func Wrap(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf returns err's Kind and true if err is itself a *Error, or 0 and
// false otherwise. It does not unwrap err to look for a *Error further down
// the chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
		return e.Kind, true
	}
	return 0, false
}
