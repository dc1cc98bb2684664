package search

import (
	"github.com/latticek/incognito/lattice"
	"github.com/latticek/incognito/table"
	"github.com/latticek/incognito/vgh"
)

// Materialize applies one of Run's result vectors to t, returning the
// generalized table a caller would actually release or inspect (spec.md
// §4.4: the driver reports vectors, not generalized tables; materializing
// one is a separate, explicit step).
func Materialize(t table.Table, store *vgh.Store, g lattice.Vector) (table.Table, error) {
	return store.GeneralizeTable(t, g)
}
