package dataset

import "github.com/latticek/incognito/table"

// ReplaceSentinel returns a copy of t with every cell in cols that either
// equals the literal sentinel string (the original's "?") or is already
// empty recoded to table.Null, mirroring
// original_source/src/df_operations.py:replace_nan. t is never mutated.
func ReplaceSentinel(t table.Table, sentinel string, cols []string) table.Table {
	idxs := columnIndexes(t.Schema, cols)

	rows := make([]table.Row, len(t.Rows))
	for i, row := range t.Rows {
		out := make(table.Row, len(row))
		copy(out, row)
		for _, idx := range idxs {
			if idx < 0 {
				continue
			}
			v := out[idx]
			if v.IsNull() {
				continue
			}
			if v.Kind == table.KindString && (v.Str == sentinel || v.Str == "") {
				out[idx] = table.Null
			}
		}
		rows[i] = out
	}

	return table.Table{Schema: t.Schema, Rows: rows}
}

// DropIncomplete returns a copy of t with every row holding table.Null in
// any of cols removed, mirroring original_source/src/utils.py:dropna.
func DropIncomplete(t table.Table, cols []string) table.Table {
	idxs := columnIndexes(t.Schema, cols)

	rows := make([]table.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		complete := true
		for _, idx := range idxs {
			if idx < 0 {
				continue
			}
			if row[idx].IsNull() {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, row)
		}
	}

	return table.Table{Schema: t.Schema, Rows: rows}
}

func columnIndexes(schema table.Schema, cols []string) []int {
	idxs := make([]int, len(cols))
	for i, c := range cols {
		idxs[i] = schema.IndexOf(c)
	}

	return idxs
}
