package search

import (
	"container/heap"
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/latticek/incognito/anonymity"
	"github.com/latticek/incognito/internal/ilog"
	"github.com/latticek/incognito/lattice"
	"github.com/latticek/incognito/table"
	"github.com/latticek/incognito/vgh"
)

// Run finds every minimal generalization vector over q that makes t
// k-anonymous, following the bottom-up Incognito construction: seed a
// chain for q[0], prune it; for each further attribute, prune its own
// chain, extend the running lattice by that one attribute, fold the new
// chain's pruning in, and re-prune the extended lattice; repeat until
// every attribute in q has been folded in, then return the minimal
// witnesses accumulated across the final lattice (spec.md §4.4).
//
// Inputs are validated once, up front: q must be non-empty with no
// duplicate columns, k >= 1, every column in q must have both a table
// column and a VGH hierarchy, and every value t holds in those columns
// must be known to the hierarchy (spec.md §7). Validation failures are
// returned before any evaluation runs.
//
// If ctx is cancelled mid-search, Run returns the context error together
// with the minimal marked vectors of the lattice it was working on.
func Run(ctx context.Context, t table.Table, store *vgh.Store, q []string, k int, log ilog.Logger) ([]lattice.Vector, error) {
	if err := validateInputs(t, store, q, k); err != nil {
		return nil, err
	}
	if log == nil {
		log = ilog.Null{}
	}

	maxLevel0, err := store.MaxLevel(q[0])
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	l := lattice.NewChain(q[0], maxLevel0)
	if err := driverLoop(ctx, l, t, store, k, log); err != nil {
		if ctx.Err() != nil {
			return l.Minimal(), err
		}
		return nil, err
	}
	log.Info("seeded and pruned chain for %q: %d live node(s)", q[0], l.Len())

	for i := 1; i < len(q); i++ {
		attr := q[i]
		maxLevel, err := store.MaxLevel(attr)
		if err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}

		ci := lattice.NewChain(attr, maxLevel)
		if err := driverLoop(ctx, ci, t, store, k, log); err != nil {
			if ctx.Err() != nil {
				return l.Minimal(), err
			}
			return nil, err
		}

		extended, err := l.ExtendByOneAttribute(ci, attr)
		if err != nil {
			return nil, fmt.Errorf("search: extending lattice with %q: %w", attr, err)
		}
		if err := extended.Reconstruct(ci); err != nil {
			return nil, fmt.Errorf("search: folding %q's pruning into the extended lattice: %w", attr, err)
		}
		if err := driverLoop(ctx, extended, t, store, k, log); err != nil {
			if ctx.Err() != nil {
				return extended.Minimal(), err
			}
			return nil, err
		}

		l = extended
		log.Info("extended lattice with %q: %d live node(s)", attr, l.Len())
	}

	return l.Minimal(), nil
}

// validateInputs implements the fail-fast contract of spec.md §7.
func validateInputs(t table.Table, store *vgh.Store, q []string, k int) error {
	if len(q) == 0 {
		return ErrEmptyQuasiIdentifierSet
	}
	if k < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidK, k)
	}

	seen := make(map[string]struct{}, len(q))
	for _, c := range q {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, c)
		}
		seen[c] = struct{}{}

		if !t.Schema.Has(c) {
			return fmt.Errorf("%w: %q not present in table schema", ErrUnknownColumn, c)
		}
		if _, err := store.MaxLevel(c); err != nil {
			return fmt.Errorf("%w: %q has no hierarchy", ErrUnknownColumn, c)
		}
	}

	if err := store.ValidateComplete(t, q); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	return nil
}

// driverLoop runs the mark/drop state machine over l to completion
// (spec.md §4.4 step 3 / §4.5): a height-ordered priority queue seeded
// from l's roots, processed one height band at a time. Every node in a
// band is evaluated concurrently (bounded by GOMAXPROCS), then results
// are applied sequentially: a success marks the node and its direct
// up-neighbors; a failure drops the node and enqueues its direct
// up-neighbors for evaluation at their own height.
func driverLoop(ctx context.Context, l *lattice.Lattice, t table.Table, store *vgh.Store, k int, log ilog.Logger) error {
	pq := make(nodePQ, 0, l.Len())
	heap.Init(&pq)
	for _, id := range l.Roots() {
		height, err := l.Height(id)
		if err != nil {
			return err
		}
		heap.Push(&pq, &nodeItem{height: height, id: id})
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batchHeight := pq[0].height
		var batch []lattice.NodeID
		for pq.Len() > 0 && pq[0].height == batchHeight {
			item := heap.Pop(&pq).(*nodeItem)
			live, err := isLive(l, item.id)
			if err != nil {
				return err
			}
			if !live {
				continue // stale entry: resolved by an earlier batch
			}
			batch = append(batch, item.id)
		}
		if len(batch) == 0 {
			continue
		}

		results, err := evaluateBatch(ctx, batch, l, t, store, k, workers)
		if err != nil {
			return err
		}

		for i, id := range batch {
			if err := applyResult(l, id, results[i], &pq); err != nil {
				return err
			}
		}
		log.Debug("height %d: evaluated %d node(s)", batchHeight, len(batch))
	}

	return nil
}

// evaluateBatch runs IsKAnonymous for every node in batch concurrently,
// bounded to workers in flight at once.
func evaluateBatch(ctx context.Context, batch []lattice.NodeID, l *lattice.Lattice, t table.Table, store *vgh.Store, k, workers int) ([]bool, error) {
	results := make([]bool, len(batch))
	errs := make([]error, len(batch))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, id := range batch {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, id lattice.NodeID) {
			defer wg.Done()
			defer func() { <-sem }()

			select {
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			default:
			}

			vec, err := l.Vector(id)
			if err != nil {
				errs[i] = err
				return
			}
			ok, err := anonymity.IsKAnonymous(t, store, vec, k)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = ok
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// applyResult folds one node's evaluation outcome into the lattice
// (spec.md §4.4 step 3), pushing newly-eligible up-neighbors onto pq.
func applyResult(l *lattice.Lattice, id lattice.NodeID, ok bool, pq *nodePQ) error {
	ups, err := l.Up(id)
	if err != nil {
		return err
	}

	if ok {
		if err := l.Mark(id); err != nil {
			return err
		}
		for _, m := range ups {
			if err := l.Mark(m); err != nil {
				return err
			}
		}

		return nil
	}

	if err := l.DropNode(id); err != nil {
		return err
	}
	for _, m := range ups {
		live, err := isLive(l, m)
		if err != nil {
			return err
		}
		if !live {
			continue
		}
		height, err := l.Height(m)
		if err != nil {
			return err
		}
		heap.Push(pq, &nodeItem{height: height, id: m})
	}

	return nil
}

// isLive reports whether id still needs evaluation: neither deleted nor
// already marked.
func isLive(l *lattice.Lattice, id lattice.NodeID) (bool, error) {
	deleted, err := l.IsDeleted(id)
	if err != nil {
		return false, err
	}
	if deleted {
		return false, nil
	}
	marked, err := l.IsMarked(id)
	if err != nil {
		return false, err
	}

	return !marked, nil
}
