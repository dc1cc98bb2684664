package cmd

import (
	"errors"

	"github.com/latticek/incognito/dataset"
	"github.com/latticek/incognito/hierarchy"
	"github.com/latticek/incognito/search"
)

// exitCodeFor maps a fatal error to the process exit code spec.md §6.4
// names: 2 for an unknown column or dataset, 3 for an unreadable
// hierarchy file, 1 for everything else.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, dataset.ErrUnknownDataset),
		errors.Is(err, search.ErrUnknownColumn):
		return exitUnknownColumnData
	case errors.Is(err, hierarchy.ErrHierarchyUnreadable),
		errors.Is(err, hierarchy.ErrMalformedHierarchy):
		return exitHierarchyUnreadable
	default:
		return exitOther
	}
}
