package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/latticek/incognito/table"
)

// Registry is the fixed set of known dataset names, mirroring
// original_source/src/utils.py:read_dataset's allow-list.
var Registry = []string{"adult", "atus", "cup", "fars", "ihis", "acs13_ma"}

// IsKnown reports whether name is in Registry.
func IsKnown(name string) bool {
	for _, n := range Registry {
		if n == name {
			return true
		}
	}

	return false
}

// Load reads "{dir}/{name}/{name}.csv" into a Table: the header row
// becomes the Schema, and every other row's cells are tagged Int, Float,
// or String by trying each in turn, with an empty cell becoming
// table.Null (pandas' implicit NaN-on-empty-field behavior). acs13_ma is
// comma-separated; every other dataset is semicolon-separated, matching
// original_source/src/utils.py:read_dataset's separator quirk.
func Load(dir, name string) (table.Table, error) {
	if !IsKnown(name) {
		return table.Table{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}

	sep := ';'
	if name == "acs13_ma" {
		sep = ','
	}

	path := filepath.Join(dir, name, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("%w: %q: %v", ErrDatasetUnreadable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = sep
	records, err := r.ReadAll()
	if err != nil {
		return table.Table{}, fmt.Errorf("%w: %q: %v", ErrDatasetUnreadable, path, err)
	}
	if len(records) == 0 {
		return table.Table{}, fmt.Errorf("%w: %q has no rows", ErrDatasetUnreadable, path)
	}

	schema := table.NewSchema(records[0])
	rows := make([]table.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(table.Row, len(rec))
		for i, cell := range rec {
			row[i] = inferValue(cell)
		}
		rows = append(rows, row)
	}

	return table.Table{Schema: schema, Rows: rows}, nil
}

func inferValue(raw string) table.Value {
	if raw == "" {
		return table.Null
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return table.Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return table.Float(f)
	}

	return table.String(raw)
}
