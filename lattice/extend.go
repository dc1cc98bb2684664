package lattice

import "fmt"

// ExtendByOneAttribute is the central lattice operation (spec.md §4.3):
// given the current lattice self over attribute set A, and newDim — a
// lattice over exactly one attribute not in A — produces a lattice over
// A ∪ {newDim's attribute}.
//
// Node generation (spec.md §4.3 "classical Apriori-style join", applied
// to the single-new-attribute case the bottom-up driver always uses):
// every live node p of self is combined with every level 0..Lc of the
// new attribute, producing the coordinatewise union p.g ∪ {attr: level}.
// self contributes only its LIVE nodes (it has already been pruned by
// earlier driver-loop rounds); the new attribute contributes its FULL
// level domain regardless of newDim's own marked/deleted state — newDim
// is typically the single-attribute lattice Cᵢ the driver has already
// pruned (step 2a), and folding Cᵢ's specific deletions into the result
// is the job of the separate Reconstruct call (step 2b), not of
// ExtendByOneAttribute itself. This two-step split is deliberate: it
// keeps the newly-extended lattice fully materialized (so Reconstruct
// has concrete dropped nodes to find and delete — see spec.md §8 S6)
// rather than silently never creating them.
//
// Edge generation: for a single new attribute, the Apriori join
// degenerates to the standard product-order Hasse diagram — an edge
// connects two generated nodes iff they differ in exactly one
// coordinate by exactly 1, which happens in exactly two ways here: (1)
// same new-attribute level, self-component edge; (2) same self
// component, new-attribute level+1. Both are reconstructed directly from
// the component lattices' own adjacency, never by an O(|V|²) scan,
// matching spec.md §4.3's parent-adjacency reconstruction.
func (l *Lattice) ExtendByOneAttribute(newDim *Lattice, newAttr string) (*Lattice, error) {
	if len(newDim.attrs) != 1 || newDim.attrs[0] != newAttr {
		return nil, fmt.Errorf("%w: newDim must be a single-attribute lattice over %q", ErrIncompatibleLattice, newAttr)
	}
	for _, a := range l.attrs {
		if a == newAttr {
			return nil, fmt.Errorf("%w: attribute %q already present", ErrIncompatibleLattice, newAttr)
		}
	}

	l.muNodes.RLock()
	defer l.muNodes.RUnlock()
	newDim.muNodes.RLock()
	defer newDim.muNodes.RUnlock()

	newMaxLevel := newDim.maxLevel[newAttr]
	combinedAttrs := append(append([]string(nil), l.attrs...), newAttr)
	combinedMax := make(map[string]int, len(combinedAttrs))
	for k, v := range l.maxLevel {
		combinedMax[k] = v
	}
	combinedMax[newAttr] = newMaxLevel

	out := newEmpty(combinedAttrs, combinedMax)

	// combinedID[selfNodeID][level] = NodeID in out.
	combinedID := make(map[NodeID][]NodeID, len(l.arena))

	for _, p := range l.arena {
		if p.deleted {
			continue
		}
		ids := make([]NodeID, newMaxLevel+1)
		for level := 0; level <= newMaxLevel; level++ {
			v := p.vector.Clone()
			v[newAttr] = level
			ids[level] = out.addNode(v)
		}
		combinedID[p.id] = ids
	}

	// Case (1): same new-attribute level, self-component edge p -> p'.
	for _, p := range l.arena {
		if p.deleted {
			continue
		}
		for succ := range p.up {
			for level := 0; level <= newMaxLevel; level++ {
				out.connect(combinedID[p.id][level], combinedID[succ][level])
			}
		}
	}

	// Case (2): same self component, new-attribute level -> level+1.
	for _, p := range l.arena {
		if p.deleted {
			continue
		}
		ids := combinedID[p.id]
		for level := 0; level < newMaxLevel; level++ {
			out.connect(ids[level], ids[level+1])
		}
	}

	return out, nil
}
