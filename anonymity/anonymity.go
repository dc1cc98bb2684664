// Package anonymity evaluates whether a table satisfies k-anonymity
// under a prescribed generalization vector (spec.md §4.2).
package anonymity

import (
	"github.com/latticek/incognito/lattice"
	"github.com/latticek/incognito/table"
	"github.com/latticek/incognito/vgh"
)

// IsKAnonymous reports whether t, generalized by g through store, is
// k-anonymous: every distinct group_key(row, g) occurs at least k times.
//
// Edge cases (spec.md §4.2): an empty table is vacuously k-anonymous;
// k <= 1 is trivially satisfied; an empty g (no columns) reduces to a
// single group containing every row, so it holds iff len(t.Rows) >= k.
//
// Complexity: O(|T|) hashing work, one pass; O(|distinct keys|) memory.
// The result depends only on (t, g, k), never on row iteration order.
func IsKAnonymous(t table.Table, store *vgh.Store, g lattice.Vector, k int) (bool, error) {
	if k <= 1 {
		return true, nil
	}
	if len(t.Rows) == 0 {
		return true, nil
	}

	counts := make(map[table.Key]int)
	for _, row := range t.Rows {
		key, err := store.GroupKey(t.Schema, row, g)
		if err != nil {
			return false, err
		}
		counts[key]++
	}

	minCount := -1
	for _, c := range counts {
		if minCount == -1 || c < minCount {
			minCount = c
		}
	}

	return minCount >= k, nil
}
