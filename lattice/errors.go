// Package lattice implements the generalization lattice: the product
// order of per-attribute level assignments, with levelwise construction,
// node marking/pruning, and the "lift a pruned sub-lattice into a larger
// one" reconstruction operation the bottom-up search driver relies on.
//
// Sentinel errors, following the teacher's core/builder convention: only
// package-level vars, wrapped with %w + context at the call site.
package lattice

import "errors"

// ErrIncompatibleLattice indicates Reconstruct was called with a
// reference lattice whose attribute set is not a subset of self's.
var ErrIncompatibleLattice = errors.New("lattice: incompatible attribute sets")

// ErrUnknownAttribute indicates a Vector or operation referenced an
// attribute the lattice was not built over.
var ErrUnknownAttribute = errors.New("lattice: unknown attribute")

// ErrInvalidLevel indicates a level outside [0, maxLevel] for its
// attribute.
var ErrInvalidLevel = errors.New("lattice: invalid level")

// ErrNodeNotFound indicates an operation referenced a NodeID outside the
// arena's bounds. DropNode itself is idempotent and does not return this
// for an already-deleted node; it is reserved for genuinely invalid IDs.
var ErrNodeNotFound = errors.New("lattice: node not found")
