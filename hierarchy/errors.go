// Package hierarchy reads per-column value-generalization hierarchies
// from disk into vgh.Tree, the raw tuple form vgh.NewStoreFromTrees
// expands into a Store.
//
// Sentinel errors, following the teacher's core/builder convention: only
// package-level vars, wrapped with %w + context at the call site.
package hierarchy

import "errors"

// ErrHierarchyUnreadable indicates a hierarchy file could not be opened
// or read.
var ErrHierarchyUnreadable = errors.New("hierarchy: file unreadable")

// ErrMalformedHierarchy indicates a hierarchy file was read but its
// contents don't parse into a valid tree (too few columns, inconsistent
// indentation, etc.).
var ErrMalformedHierarchy = errors.New("hierarchy: malformed hierarchy file")
