package vgh

import (
	"fmt"
	"sort"

	"github.com/latticek/incognito/lattice"
	"github.com/latticek/incognito/table"
)

// columnHierarchy holds one column's precomputed per-level lookup
// tables plus its Lc.
type columnHierarchy struct {
	maxLevel int
	// levels[L][rawText] = generalized Value. levels[0] is unused for
	// generalization itself (level 0 always returns the row's own value)
	// but leaves records the same set, for ValidateComplete to check a
	// raw value actually appears in the hierarchy before evaluation ever
	// begins (spec.md §7 UnknownValueInHierarchy).
	levels []map[string]table.Value
	leaves map[string]struct{}
}

// Store is the VGH store for a set of quasi-identifier columns: the
// expanded "(col, level) -> (raw -> generalized)" mapping named in
// spec.md §6, built once from the Tree(s) the hierarchy loader supplies.
type Store struct {
	cols map[string]*columnHierarchy
}

// NewStoreFromTrees bridges hierarchy.Load's raw Trees into a Store,
// precomputing the per-level lookup tables described in spec.md §4.1.
func NewStoreFromTrees(trees map[string]Tree) (*Store, error) {
	s := &Store{cols: make(map[string]*columnHierarchy, len(trees))}
	for col, tree := range trees {
		if len(tree.Tuples) == 0 {
			return nil, fmt.Errorf("%w: column %q", ErrEmptyTree, col)
		}
		max := tree.MaxLevel()
		ch := &columnHierarchy{maxLevel: max, levels: make([]map[string]table.Value, max+1)}
		ch.leaves = make(map[string]struct{}, len(tree.Tuples))
		for raw := range tree.levelMap(0) {
			ch.leaves[raw] = struct{}{}
		}
		for level := 1; level <= max; level++ {
			raw2gen := tree.levelMap(level)
			m := make(map[string]table.Value, len(raw2gen))
			for raw, gen := range raw2gen {
				m[raw] = table.String(gen)
			}
			ch.levels[level] = m
		}
		s.cols[col] = ch
	}

	return s, nil
}

// MaxLevel returns Lc for column c, or an error if c is unknown.
func (s *Store) MaxLevel(c string) (int, error) {
	ch, ok := s.cols[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
	}

	return ch.maxLevel, nil
}

// Levels returns Lc+1, the number of distinct levels (0..Lc) for c.
func (s *Store) Levels(c string) (int, error) {
	max, err := s.MaxLevel(c)
	if err != nil {
		return 0, err
	}

	return max + 1, nil
}

// Columns returns the set of columns this Store has hierarchies for, in
// sorted order (deterministic iteration for callers that range over it).
func (s *Store) Columns() []string {
	out := make([]string, 0, len(s.cols))
	for c := range s.cols {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// generalizeValue maps a single cell at column c, level level. Null
// passes through unchanged at any level (spec.md §4.1: "null is treated
// as its own group"). Level 0 is always identity, even for a column this
// Store has never heard of would fail elsewhere; here MaxLevel/level
// bookkeeping already validated c is known.
func (ch *columnHierarchy) generalizeValue(c string, v table.Value, level int) (table.Value, error) {
	if v.IsNull() {
		return table.Null, nil
	}
	if level == 0 {
		return v, nil
	}
	m := ch.levels[level]
	gen, ok := m[v.Text()]
	if !ok {
		return table.Value{}, fmt.Errorf("%w: column %q value %q", ErrUnknownValue, c, v.Text())
	}

	return gen, nil
}

// Generalize rewrites row according to g (spec.md §4.1): each column
// c in dom(g) is replaced by vgh[c](row[c], g[c]); columns outside dom(g)
// are left untouched. Returns a new Row; row is never mutated.
func (s *Store) Generalize(schema table.Schema, row table.Row, g lattice.Vector) (table.Row, error) {
	out := make(table.Row, len(row))
	copy(out, row)
	for c, level := range g {
		ch, ok := s.cols[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
		idx := schema.IndexOf(c)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q not present in row schema", ErrUnknownColumn, c)
		}
		if level < 0 || level > ch.maxLevel {
			return nil, fmt.Errorf("%w: column %q level %d", ErrInvalidLevel, c, level)
		}
		gen, err := ch.generalizeValue(c, row[idx], level)
		if err != nil {
			return nil, err
		}
		out[idx] = gen
	}

	return out, nil
}

// GroupKey returns the tuple of generalized values for the columns in
// dom(g), in a fixed order (lexicographic by column name), as the only
// operation the evaluator needs from the VGH (spec.md §4.1).
func (s *Store) GroupKey(schema table.Schema, row table.Row, g lattice.Vector) (table.Key, error) {
	cols := make([]string, 0, len(g))
	for c := range g {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	values := make([]table.Value, len(cols))
	for i, c := range cols {
		ch, ok := s.cols[c]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
		idx := schema.IndexOf(c)
		if idx < 0 {
			return "", fmt.Errorf("%w: %q not present in row schema", ErrUnknownColumn, c)
		}
		level := g[c]
		if level < 0 || level > ch.maxLevel {
			return "", fmt.Errorf("%w: column %q level %d", ErrInvalidLevel, c, level)
		}
		gen, err := ch.generalizeValue(c, row[idx], level)
		if err != nil {
			return "", err
		}
		values[i] = gen
	}

	return table.MakeKey(values), nil
}

// GeneralizeTable applies g to every row of t, producing a new Table.
// Used by search.Materialize; never mutates t.
func (s *Store) GeneralizeTable(t table.Table, g lattice.Vector) (table.Table, error) {
	rows := make([]table.Row, len(t.Rows))
	for i, row := range t.Rows {
		gr, err := s.Generalize(t.Schema, row, g)
		if err != nil {
			return table.Table{}, err
		}
		rows[i] = gr
	}

	return table.Table{Schema: t.Schema, Rows: rows}, nil
}

// ValidateComplete checks that every non-null value t holds in each of
// cols has a level-0 entry in this Store's hierarchy (spec.md §7: the
// driver validates hierarchy completeness against T once, up front,
// before any evaluation begins, rather than discovering a gap mid-search).
func (s *Store) ValidateComplete(t table.Table, cols []string) error {
	chs := make([]*columnHierarchy, len(cols))
	idxs := make([]int, len(cols))
	for i, c := range cols {
		ch, ok := s.cols[c]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
		idx := t.Schema.IndexOf(c)
		if idx < 0 {
			return fmt.Errorf("%w: %q not present in table schema", ErrUnknownColumn, c)
		}
		chs[i] = ch
		idxs[i] = idx
	}
	for _, row := range t.Rows {
		for i, ch := range chs {
			v := row[idxs[i]]
			if v.IsNull() {
				continue
			}
			if _, ok := ch.leaves[v.Text()]; !ok {
				return fmt.Errorf("%w: column %q value %q", ErrUnknownValue, cols[i], v.Text())
			}
		}
	}

	return nil
}
