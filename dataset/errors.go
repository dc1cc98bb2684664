// Package dataset loads the known benchmark tables from disk into
// table.Table, handling the dataset registry, sentinel/missing-value
// recoding, and incomplete-row dropping that sit in front of the core
// packages (vgh, lattice, anonymity, search never read a file directly).
//
// Sentinel errors, following the teacher's core/builder convention: only
// package-level vars, wrapped with %w + context at the call site.
package dataset

import "errors"

// ErrUnknownDataset indicates a name outside the fixed Registry.
var ErrUnknownDataset = errors.New("dataset: unknown dataset name")

// ErrDatasetUnreadable indicates the dataset's CSV file could not be
// opened, read, or parsed.
var ErrDatasetUnreadable = errors.New("dataset: file unreadable")
