// Package vgh holds, per quasi-identifier column, a value-generalization
// hierarchy (VGH) and answers "at level L, what is the generalized value
// of raw value v in column c?" in O(1) average time.
//
// Sentinel errors for the vgh package.
//
// Error policy (matching the teacher's core/builder convention):
//   - Only package-level sentinel variables are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never formatted with arguments at definition site;
//     context is attached with fmt.Errorf("%w: ...", ErrX, ...) at the
//     call site.
package vgh

import "errors"

// ErrUnknownColumn indicates a column has no registered hierarchy.
var ErrUnknownColumn = errors.New("vgh: unknown column")

// ErrUnknownValue indicates a row contains a raw value with no level-0
// entry in the column's hierarchy.
var ErrUnknownValue = errors.New("vgh: unknown value in hierarchy")

// ErrInvalidLevel indicates a requested generalization level is outside
// [0, MaxLevel] for the column.
var ErrInvalidLevel = errors.New("vgh: invalid generalization level")

// ErrEmptyTree indicates a Tree has no tuples for its column.
var ErrEmptyTree = errors.New("vgh: empty hierarchy tree")
