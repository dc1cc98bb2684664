package hierarchy

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/latticek/incognito/vgh"
)

// ReadMatrixCSV parses the "official" CSV-matrix hierarchy form: each row
// is one raw value's full ancestor chain (leaf, level-1 parent, level-2
// parent, ...), semicolon-separated, no header. Every pair of columns
// (childCol < parentCol) becomes a batch of (child, childCol, parent,
// parentCol) tuples, deduplicated, mirroring
// original_source/src/utils.py:read_hierarchy_official_csv's full
// cross-product of column pairs rather than just adjacent ones — later
// callers only need the childCol==0 tuples, but the full matrix is kept
// for fidelity with the source format.
func ReadMatrixCSV(path, column string) (vgh.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return vgh.Tree{}, fmt.Errorf("%w: %q: %v", ErrHierarchyUnreadable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return vgh.Tree{}, fmt.Errorf("%w: %q: %v", ErrHierarchyUnreadable, path, err)
	}
	if len(records) == 0 {
		return vgh.Tree{}, fmt.Errorf("%w: %q has no rows", ErrMalformedHierarchy, path)
	}

	ncols := len(records[0])
	if ncols < 2 {
		return vgh.Tree{}, fmt.Errorf("%w: %q needs at least 2 columns, has %d", ErrMalformedHierarchy, path, ncols)
	}

	col := column
	if col == "salary-class" {
		col = "income"
	}

	type pair struct{ child, parent string }
	seen := make(map[[2]int]map[pair]struct{})
	var tuples []vgh.Tuple
	for _, row := range records {
		if len(row) != ncols {
			return vgh.Tree{}, fmt.Errorf("%w: %q row has %d fields, want %d", ErrMalformedHierarchy, path, len(row), ncols)
		}
		for childCol := 0; childCol < ncols-1; childCol++ {
			for parentCol := childCol + 1; parentCol < ncols; parentCol++ {
				key := [2]int{childCol, parentCol}
				p := pair{child: row[childCol], parent: row[parentCol]}
				dedup, ok := seen[key]
				if !ok {
					dedup = make(map[pair]struct{})
					seen[key] = dedup
				}
				if _, dup := dedup[p]; dup {
					continue
				}
				dedup[p] = struct{}{}
				tuples = append(tuples, vgh.Tuple{
					Child:       p.child,
					ChildLevel:  childCol,
					Parent:      p.parent,
					ParentLevel: parentCol,
				})
			}
		}
	}

	return vgh.Tree{Column: col, Tuples: tuples}, nil
}
