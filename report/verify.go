package report

import (
	"fmt"

	"github.com/latticek/incognito/anonymity"
	"github.com/latticek/incognito/lattice"
	"github.com/latticek/incognito/table"
	"github.com/latticek/incognito/vgh"
)

// Verify re-checks every vector in result against the evaluator,
// recovering incognito.py:verify_result's independent post-hoc check of
// the driver's own output. Returns the first failing vector wrapped in
// ErrVerificationFailed; never exits or panics, matching spec.md §7's
// policy that that behavior belongs to the CLI layer only.
func Verify(t table.Table, store *vgh.Store, result []lattice.Vector, k int) error {
	for i, g := range result {
		ok, err := anonymity.IsKAnonymous(t, store, g, k)
		if err != nil {
			return fmt.Errorf("report: verifying result %d: %w", i+1, err)
		}
		if !ok {
			return fmt.Errorf("%w: result %d (%v) is not %d-anonymous", ErrVerificationFailed, i+1, g, k)
		}
	}

	return nil
}
