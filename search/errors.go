// Package search implements the bottom-up Incognito driver: given a
// table, a VGH store, an ordered quasi-identifier set Q, and k, it finds
// every minimal generalization vector over Q that makes the table
// k-anonymous (spec.md §4.4).
//
// Sentinel errors, following the teacher's core/builder convention: only
// package-level vars, wrapped with %w + context at the call site.
package search

import "errors"

// ErrEmptyQuasiIdentifierSet indicates Q had zero columns.
var ErrEmptyQuasiIdentifierSet = errors.New("search: empty quasi-identifier set")

// ErrInvalidK indicates k < 1.
var ErrInvalidK = errors.New("search: invalid k")

// ErrUnknownColumn indicates a Q column has no hierarchy in the store or
// is missing from the table's schema.
var ErrUnknownColumn = errors.New("search: unknown column")

// ErrDuplicateColumn indicates Q named the same column twice.
var ErrDuplicateColumn = errors.New("search: duplicate column in quasi-identifier set")
