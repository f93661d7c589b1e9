// Package constraint bridges shape values to an external constraint
// solver. The solver itself is never implemented here: VarBag is the
// whole of what this package asks of it, and every shape kind exposes
// its named handles through a small, kind-specific binding type.
package constraint

import "github.com/latticecad/kernel/geom2d"

// Handle is an opaque reference to one variable (scalar or point) held
// by a VarBag. Kernel code never inspects it; it only passes handles
// back to the VarBag that minted them.
type Handle struct{ id int }

// VarBag is the variable-storage abstraction a constraint solver must
// provide. DeclareScalar/DeclarePoint register a named variable seeded
// with an initial value; fixed marks it as not free for the solver to
// move. ScalarValue/SetScalarValue and PointValue/SetPointValue
// round-trip the current value for a handle that was declared with the
// matching dimensionality.
type VarBag interface {
	DeclareScalar(name string, initial float64, fixed bool) Handle
	DeclarePoint(name string, initial geom2d.Point2D, fixed bool) Handle
	ScalarValue(h Handle) float64
	PointValue(h Handle) geom2d.Point2D
	SetScalarValue(h Handle, v float64)
	SetPointValue(h Handle, v geom2d.Point2D)
}

// NamedHandle pairs a stable, per-kind name with the handle backing it,
// the shape of what GetConstrainables returns.
type NamedHandle struct {
	Name   string
	Handle Handle
}

// Constrainable is the subset of a binding's contract that is uniform
// across shape kinds: enumerating the handles a solver should know
// about. The per-kind Update* methods keep their own concrete shape
// types rather than being forced through a lossy common signature.
type Constrainable interface {
	GetConstrainables() []NamedHandle
}

// HandleID exposes a Handle's opaque id to VarBag implementations
// outside this package (e.g. a solver adapter indexing its own
// variable table by it). Kernel code should treat the result as
// opaque beyond using it as a map key.
func HandleID(h Handle) int { return h.id }

// NewHandle lets an external VarBag implementation construct a Handle
// for an id it has already allocated.
func NewHandle(id int) Handle { return Handle{id: id} }
