package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticek/incognito/anonymity"
	"github.com/latticek/incognito/lattice"
	"github.com/latticek/incognito/search"
	"github.com/latticek/incognito/table"
	"github.com/latticek/incognito/vgh"
)

// ageOnlyFixture builds a single-attribute table where k=2 only holds
// once age is generalized all the way to its top level: raw counts are
// 20:2,30:1,40:1 (fails), young/old counts are 3:1 (fails), and only the
// single top group of 4 succeeds.
func ageOnlyFixture(t *testing.T) (table.Table, *vgh.Store) {
	t.Helper()
	schema := table.NewSchema([]string{"age"})
	tbl := table.Table{Schema: schema, Rows: []table.Row{
		{table.String("20")},
		{table.String("30")},
		{table.String("40")},
		{table.String("20")},
	}}
	tree := vgh.Tree{Column: "age", Tuples: []vgh.Tuple{
		{Child: "20", ChildLevel: 0, Parent: "young", ParentLevel: 1},
		{Child: "30", ChildLevel: 0, Parent: "young", ParentLevel: 1},
		{Child: "40", ChildLevel: 0, Parent: "old", ParentLevel: 1},
		{Child: "young", ChildLevel: 1, Parent: "*", ParentLevel: 2},
		{Child: "old", ChildLevel: 1, Parent: "*", ParentLevel: 2},
		{Child: "20", ChildLevel: 0, Parent: "*", ParentLevel: 2},
		{Child: "30", ChildLevel: 0, Parent: "*", ParentLevel: 2},
		{Child: "40", ChildLevel: 0, Parent: "*", ParentLevel: 2},
	}}
	store, err := vgh.NewStoreFromTrees(map[string]vgh.Tree{"age": tree})
	require.NoError(t, err)

	return tbl, store
}

// ageZipFixture is a two-attribute table with two incomparable minimal
// witnesses at height 1: (age:0,zip:1) and (age:1,zip:0). Both raw
// (age,zip) pairs and the fully-generalized top are excluded, the first
// as too small and the second as dominated.
func ageZipFixture(t *testing.T) (table.Table, *vgh.Store) {
	t.Helper()
	schema := table.NewSchema([]string{"age", "zip"})
	tbl := table.Table{Schema: schema, Rows: []table.Row{
		{table.String("20"), table.String("10001")},
		{table.String("20"), table.String("10002")},
		{table.String("30"), table.String("10001")},
		{table.String("30"), table.String("10002")},
		{table.String("40"), table.String("20001")},
		{table.String("40"), table.String("20001")},
	}}
	ageTree := vgh.Tree{Column: "age", Tuples: []vgh.Tuple{
		{Child: "20", ChildLevel: 0, Parent: "young", ParentLevel: 1},
		{Child: "30", ChildLevel: 0, Parent: "young", ParentLevel: 1},
		{Child: "40", ChildLevel: 0, Parent: "old", ParentLevel: 1},
	}}
	zipTree := vgh.Tree{Column: "zip", Tuples: []vgh.Tuple{
		{Child: "10001", ChildLevel: 0, Parent: "100**", ParentLevel: 1},
		{Child: "10002", ChildLevel: 0, Parent: "100**", ParentLevel: 1},
		{Child: "20001", ChildLevel: 0, Parent: "200**", ParentLevel: 1},
	}}
	store, err := vgh.NewStoreFromTrees(map[string]vgh.Tree{"age": ageTree, "zip": zipTree})
	require.NoError(t, err)

	return tbl, store
}

func TestRun_SingleAttribute_FindsTopOfChainOnly(t *testing.T) {
	tbl, store := ageOnlyFixture(t)

	result, err := search.Run(context.Background(), tbl, store, []string{"age"}, 2, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, lattice.Vector{"age": 2}, result[0])

	ok, err := anonymity.IsKAnonymous(tbl, store, result[0], 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRun_TwoAttributes_FindsBothIncomparableMinima(t *testing.T) {
	tbl, store := ageZipFixture(t)

	result, err := search.Run(context.Background(), tbl, store, []string{"age", "zip"}, 2, nil)
	require.NoError(t, err)
	require.Len(t, result, 2, "result should contain exactly the two incomparable witnesses, not their dominated join")

	assert.ElementsMatch(t, []lattice.Vector{
		{"age": 0, "zip": 1},
		{"age": 1, "zip": 0},
	}, result)

	for _, g := range result {
		ok, err := anonymity.IsKAnonymous(tbl, store, g, 2)
		require.NoError(t, err)
		assert.True(t, ok, "every reported vector must itself be k-anonymous: %v", g)
	}
}

func TestRun_Minimality_NoReportedVectorHasAGeneralizedVariantAlsoReported(t *testing.T) {
	tbl, store := ageZipFixture(t)

	result, err := search.Run(context.Background(), tbl, store, []string{"age", "zip"}, 2, nil)
	require.NoError(t, err)

	for i, a := range result {
		for j, b := range result {
			if i == j {
				continue
			}
			dominates := true
			for attr, lvl := range a {
				if b[attr] < lvl {
					dominates = false
					break
				}
			}
			assert.False(t, dominates, "%v should not be a generalization of %v in a minimal result set", b, a)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	tbl, store := ageZipFixture(t)

	first, err := search.Run(context.Background(), tbl, store, []string{"age", "zip"}, 2, nil)
	require.NoError(t, err)
	second, err := search.Run(context.Background(), tbl, store, []string{"age", "zip"}, 2, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
}

func TestRun_ValidationErrors(t *testing.T) {
	tbl, store := ageZipFixture(t)

	_, err := search.Run(context.Background(), tbl, store, nil, 2, nil)
	assert.ErrorIs(t, err, search.ErrEmptyQuasiIdentifierSet)

	_, err = search.Run(context.Background(), tbl, store, []string{"age"}, 0, nil)
	assert.ErrorIs(t, err, search.ErrInvalidK)

	_, err = search.Run(context.Background(), tbl, store, []string{"age", "age"}, 2, nil)
	assert.ErrorIs(t, err, search.ErrDuplicateColumn)

	_, err = search.Run(context.Background(), tbl, store, []string{"income"}, 2, nil)
	assert.ErrorIs(t, err, search.ErrUnknownColumn)
}

func TestRun_RejectsValueMissingFromHierarchy(t *testing.T) {
	tbl, store := ageOnlyFixture(t)
	tbl.Rows = append(tbl.Rows, table.Row{table.String("99")})

	_, err := search.Run(context.Background(), tbl, store, []string{"age"}, 2, nil)
	assert.ErrorIs(t, err, vgh.ErrUnknownValue)
}

func TestRun_RespectsContextCancellation(t *testing.T) {
	tbl, store := ageZipFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Run(ctx, tbl, store, []string{"age", "zip"}, 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaterialize_AppliesResultVector(t *testing.T) {
	tbl, store := ageOnlyFixture(t)

	out, err := search.Materialize(tbl, store, lattice.Vector{"age": 2})
	require.NoError(t, err)
	require.Len(t, out.Rows, len(tbl.Rows))
	for _, row := range out.Rows {
		assert.Equal(t, table.String("*"), row[0])
	}
}
