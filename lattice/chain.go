package lattice

// NewChain builds the single-attribute seed lattice for attr: a chain
// 0 -> 1 -> ... -> maxLevel (spec.md §4.3 "For |Q|=1 the lattice is a
// chain 0 -> 1 -> ... -> Lc"). maxLevel must be >= 0.
func NewChain(attr string, maxLevel int) *Lattice {
	l := newEmpty([]string{attr}, map[string]int{attr: maxLevel})
	prev := NodeID(-1)
	for level := 0; level <= maxLevel; level++ {
		id := l.addNode(Vector{attr: level})
		if prev >= 0 {
			l.connect(prev, id)
		}
		prev = id
	}

	return l
}
