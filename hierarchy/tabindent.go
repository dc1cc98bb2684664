package hierarchy

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/latticek/incognito/vgh"
)

// ReadTabIndented parses the tab-indented textual VGH form named in the
// original design (one value per line; indentation depth = depth in the
// tree; the root line is unindented). Not present in the reference
// implementation's own fixtures, so parsed from the description alone:
// a leaf is any line whose next non-blank line is not more deeply
// indented than it; its level is 0, and a tuple is emitted from it to
// every ancestor still open on the indentation stack, at that ancestor's
// level (computed as the file's maximum depth minus the ancestor's own
// depth, so the root always sits at the column's Lc).
func ReadTabIndented(path, column string) (vgh.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return vgh.Tree{}, fmt.Errorf("%w: %q: %v", ErrHierarchyUnreadable, path, err)
	}
	defer f.Close()

	type line struct {
		depth int
		value string
	}
	var lines []line
	maxDepth := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		trimmed := strings.TrimLeft(raw, "\t")
		depth := len(raw) - len(trimmed)
		value := strings.TrimSpace(trimmed)
		if value == "" {
			continue
		}
		if depth > maxDepth {
			maxDepth = depth
		}
		lines = append(lines, line{depth: depth, value: value})
	}
	if err := scanner.Err(); err != nil {
		return vgh.Tree{}, fmt.Errorf("%w: %q: %v", ErrHierarchyUnreadable, path, err)
	}
	if len(lines) == 0 {
		return vgh.Tree{}, fmt.Errorf("%w: %q has no entries", ErrMalformedHierarchy, path)
	}

	var tuples []vgh.Tuple
	stack := make([]line, 0, maxDepth+1)
	for i, ln := range lines {
		for len(stack) > 0 && stack[len(stack)-1].depth >= ln.depth {
			stack = stack[:len(stack)-1]
		}

		isLeaf := i == len(lines)-1 || lines[i+1].depth <= ln.depth
		if isLeaf {
			for _, anc := range stack {
				tuples = append(tuples, vgh.Tuple{
					Child:       ln.value,
					ChildLevel:  0,
					Parent:      anc.value,
					ParentLevel: maxDepth - anc.depth,
				})
			}
		}

		stack = append(stack, ln)
	}

	return vgh.Tree{Column: column, Tuples: tuples}, nil
}
