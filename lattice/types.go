package lattice

import (
	"strconv"
	"strings"
)

// Vector is a generalization vector: an ordered mapping from column name
// to generalization level, defined over some subset of the quasi-
// identifier columns. Its height is the sum of its levels.
type Vector map[string]int

// Height returns Σ g[c] over every attribute in g.
func (v Vector) Height() int {
	h := 0
	for _, level := range v {
		h += level
	}

	return h
}

// Clone returns a shallow copy, so callers can hand out a Vector without
// letting the caller mutate internal lattice state.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for k, val := range v {
		out[k] = val
	}

	return out
}

// canonicalKey renders v deterministically over attrs (in attrs' given
// order), for use as a dedup/lookup key. attrs must be a superset of
// v's keys; missing attrs are treated as absent from the encoding, which
// is only valid when v is known to be defined over exactly attrs.
func canonicalKey(attrs []string, v Vector) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		level, ok := v[a]
		if !ok {
			continue
		}
		parts = append(parts, a+"="+strconv.Itoa(level))
	}

	return strings.Join(parts, "|")
}

// project restricts v to the attributes in subset, dropping the rest.
func project(v Vector, subset []string) Vector {
	out := make(Vector, len(subset))
	for _, a := range subset {
		if level, ok := v[a]; ok {
			out[a] = level
		}
	}

	return out
}

// NodeID addresses a node within a Lattice's arena. Stable for the
// lifetime of the Lattice; never reused, even after DropNode.
type NodeID int

// node is one element of the product lattice. up/down hold the NodeIDs
// of direct successors/predecessors (vectors differing in exactly one
// coordinate by exactly 1). Represented as index sets into the arena
// (spec.md §9) rather than pointers, so deletion is a flag flip plus an
// adjacency-map removal with no ownership cycles to break.
type node struct {
	id      NodeID
	vector  Vector
	height  int
	up      map[NodeID]struct{}
	down    map[NodeID]struct{}
	marked  bool
	deleted bool
}

func newNode(id NodeID, v Vector) *node {
	return &node{
		id:     id,
		vector: v,
		height: v.Height(),
		up:     make(map[NodeID]struct{}),
		down:   make(map[NodeID]struct{}),
	}
}
