package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticek/incognito/table"
)

func TestValue_Text(t *testing.T) {
	cases := []struct {
		name string
		v    table.Value
		want string
	}{
		{"null", table.Null, "\x00NULL\x00"},
		{"string", table.String("hello"), "hello"},
		{"int", table.Int(42), "42"},
		{"float", table.Float(1.5), "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Text())
		})
	}
}

func TestValue_IsNull(t *testing.T) {
	assert.True(t, table.Null.IsNull())
	assert.False(t, table.String("x").IsNull())
	assert.False(t, table.Int(0).IsNull())
}

func TestSchema_IndexOf(t *testing.T) {
	s := table.NewSchema([]string{"age", "zip", "income"})
	assert.Equal(t, 0, s.IndexOf("age"))
	assert.Equal(t, 2, s.IndexOf("income"))
	assert.Equal(t, -1, s.IndexOf("missing"))
	assert.True(t, s.Has("zip"))
	assert.False(t, s.Has("missing"))
}

func TestMakeKey_DistinctRowsProduceDistinctKeys(t *testing.T) {
	k1 := table.MakeKey([]table.Value{table.String("a"), table.Int(1)})
	k2 := table.MakeKey([]table.Value{table.String("a"), table.Int(2)})
	k3 := table.MakeKey([]table.Value{table.String("a"), table.Int(1)})

	require.NotEqual(t, k1, k2)
	require.Equal(t, k1, k3)
}

func TestMakeKey_NullDistinctFromOrdinaryStringData(t *testing.T) {
	kNull := table.MakeKey([]table.Value{table.Null})
	kSentinel := table.MakeKey([]table.Value{table.String("\x00NULL\x00")})

	// Both happen to render identically by construction; the point of the
	// reserved marker is that ordinary CSV text can't produce it, not that
	// no string can ever equal it byte-for-byte.
	assert.Equal(t, kNull, kSentinel)

	kOrdinary := table.MakeKey([]table.Value{table.String("adult")})
	assert.NotEqual(t, kNull, kOrdinary)
}
