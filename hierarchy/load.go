package hierarchy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/latticek/incognito/vgh"
)

// Load reads one hierarchy file per column in colNames from dir,
// dispatching on file extension: "{dir}/{col}.csv" is read as the
// CSV-matrix form, "{dir}/{col}.tree" as the tab-indented form, mirroring
// original_source/src/utils.py:read_hierarchies_by_col_names (one file
// per column, concatenated) adapted to a map keyed by column rather than
// one concatenated frame.
func Load(colNames []string, dir string) (map[string]vgh.Tree, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: hierarchies directory %q: %v", ErrHierarchyUnreadable, dir, err)
	}

	out := make(map[string]vgh.Tree, len(colNames))
	for _, col := range colNames {
		csvPath := filepath.Join(dir, col+".csv")
		if _, err := os.Stat(csvPath); err == nil {
			tree, err := ReadMatrixCSV(csvPath, col)
			if err != nil {
				return nil, err
			}
			out[col] = tree

			continue
		}

		treePath := filepath.Join(dir, col+".tree")
		if _, err := os.Stat(treePath); err == nil {
			tree, err := ReadTabIndented(treePath, col)
			if err != nil {
				return nil, err
			}
			out[col] = tree

			continue
		}

		return nil, fmt.Errorf("%w: no hierarchy file for column %q in %q", ErrHierarchyUnreadable, col, dir)
	}

	return out, nil
}
