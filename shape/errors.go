package shape

import "github.com/latticecad/kernel/geomerr"

// unsupportedDecompose builds the UnsupportedDecomposition error shared
// by every shape's Decompose method.
func unsupportedDecompose(from Kind, into []Kind) error {
	return geomerr.UnsupportedDecomposition("shape: cannot decompose %s into any of %v", from, into)
}
