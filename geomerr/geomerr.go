// Package geomerr defines the error taxonomy shared across the geometry
// kernel. Every constructor wraps one of the sentinel errors below so
// callers can discriminate with errors.Is while still getting a
// human-readable message.
package geomerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds, matched with errors.Is against values returned by the
// Domain/Degenerate/... constructors below.
var (
	ErrDomain               = errors.New("domain error")
	ErrDegenerateInput      = errors.New("degenerate input")
	ErrSingularTransform    = errors.New("singular transform")
	ErrUnsupportedDecompose = errors.New("unsupported decomposition")
	ErrNotOnPerimeter       = errors.New("point not on perimeter")
	ErrOutOfRange           = errors.New("value out of range")
)

// wrapped pairs a sentinel with a formatted message so both fmt.Stringer
// and errors.Is work without string matching.
type wrapped struct {
	sentinel error
	msg      string
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.sentinel }

func newf(sentinel error, format string, args ...any) error {
	return &wrapped{sentinel: sentinel, msg: fmt.Sprintf(format, args...)}
}

// Domain reports an invalid construction: non-positive radius, major <
// minor, fewer than the minimum required points, an invalid index, or a
// division by a zero component.
func Domain(format string, args ...any) error { return newf(ErrDomain, format, args...) }

// Degenerate reports an input that is mathematically valid but too
// degenerate for the requested operation: collinear points fed to a
// circle fit, parallel lines fed to a unique-intersection query.
func Degenerate(format string, args ...any) error { return newf(ErrDegenerateInput, format, args...) }

// Singular reports that Transform2D.Inverse was requested on a matrix
// whose linear block has |determinant| <= epsilon.
func Singular(format string, args ...any) error { return newf(ErrSingularTransform, format, args...) }

// UnsupportedDecomposition reports that Decompose could not produce any
// of the requested target kinds from the receiving shape.
func UnsupportedDecomposition(format string, args ...any) error {
	return newf(ErrUnsupportedDecompose, format, args...)
}

// NotOnPerimeter reports that AddVertexAtPoint found no edge within
// tolerance of the supplied point.
func NotOnPerimeter(format string, args ...any) error { return newf(ErrNotOnPerimeter, format, args...) }

// OutOfRange reports a control-datum setter rejecting a value outside
// its declared [min, max] bounds.
func OutOfRange(format string, args ...any) error { return newf(ErrOutOfRange, format, args...) }
