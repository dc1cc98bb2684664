package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/latticek/incognito/lattice"
)

// Print writes a human-readable listing of result to w, one line per
// vector, numbered from 1, recovering incognito.py:_print_result's
// "There are N combinations... satisfying k-anonymity (k=K)" banner
// followed by one "dim=level, dim=level, ..." line per vector.
func Print(w io.Writer, result []lattice.Vector, q []string, k int) {
	fmt.Fprintf(w, "\nIncognito result:\n")
	fmt.Fprintf(w, "There are %d combination(s) of generalization levels satisfying k-anonymity (k=%d):\n", len(result), k)
	for i, g := range result {
		fmt.Fprintf(w, "%d %s\n", i+1, formatVector(g, q))
	}
	fmt.Fprintln(w)
}

// formatVector renders g as "col=level, col=level, ..." in q's fixed
// order, for stable, reproducible output regardless of map iteration
// order.
func formatVector(g lattice.Vector, q []string) string {
	parts := make([]string, 0, len(q))
	for _, c := range q {
		level, ok := g[c]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%d", c, level))
	}

	return strings.Join(parts, ", ")
}
