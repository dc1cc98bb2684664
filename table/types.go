// Package table provides a dynamically-typed, read-only row/column
// representation shared by the dataset loader, the VGH store, and the
// anonymity evaluator.
//
// A Table is a Schema paired with a slice of Row. Each Row holds one
// tagged Value per column, in Schema order. Value tags one of String,
// Int, Float, or Null — Null is the distinguished sentinel for missing
// data (the loader's substitute for a CSV "?" or an empty cell).
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the dynamic type carried by a Value.
type Kind uint8

const (
	// KindNull marks a missing value. The distinguished sentinel; never
	// equal to any other Kind's zero value during grouping.
	KindNull Kind = iota
	// KindString marks a string-valued cell.
	KindString
	// KindInt marks an integer-valued cell.
	KindInt
	// KindFloat marks a float-valued cell.
	KindFloat
)

// Value is a single tagged cell. Only the field matching Kind is
// meaningful; the others are zero.
type Value struct {
	Kind Kind
	Str  string
	Int  int64
	Flt  float64
}

// Null is the shared representation of a missing cell.
var Null = Value{Kind: KindNull}

// String builds a KindString Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Int builds a KindInt Value.
func Int(i int64) Value { return Value{Kind: KindInt, Int: i} }

// Float builds a KindFloat Value.
func Float(f float64) Value { return Value{Kind: KindFloat, Flt: f} }

// IsNull reports whether v is the Null sentinel.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Text renders v for grouping/printing purposes. Null renders as a
// NUL-delimited marker that ordinary text data does not contain; a
// String holding exactly that marker renders identically.
func (v Value) Text() string {
	switch v.Kind {
	case KindNull:
		return "\x00NULL\x00"
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Flt, 'g', -1, 64)
	default:
		return fmt.Sprintf("<bad-kind:%d>", v.Kind)
	}
}

// Schema is the ordered set of column names shared by every Row in a
// Table. Lookup is O(1) via the accompanying index.
type Schema struct {
	Columns []string
	index   map[string]int
}

// NewSchema builds a Schema from an ordered column list.
func NewSchema(columns []string) Schema {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}

	return Schema{Columns: columns, index: idx}
}

// IndexOf returns the position of column c, or -1 if absent.
func (s Schema) IndexOf(c string) int {
	if s.index == nil {
		return -1
	}
	i, ok := s.index[c]
	if !ok {
		return -1
	}

	return i
}

// Has reports whether column c is part of the schema.
func (s Schema) Has(c string) bool { return s.IndexOf(c) >= 0 }

// Row is one record, one Value per Schema column, in Schema order.
type Row []Value

// Table is a read-only sequence of Row over a fixed Schema. Nothing in
// this package mutates a Table in place; generalization produces a new
// Table (see vgh.Store.GeneralizeTable).
type Table struct {
	Schema Schema
	Rows   []Row
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Key is a comparable, map-safe encoding of a generalized tuple of
// values for a fixed ordered set of columns. Two rows with identical
// generalized values for the same columns produce an identical Key.
type Key string

// MakeKey joins the rendered values on the \x1f control byte, distinct
// from the \x00 used by the Null marker. String values are rendered
// verbatim, so a String containing \x1f could produce an ambiguous key.
func MakeKey(values []Value) Key {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Text()
	}

	return Key(strings.Join(parts, "\x1f"))
}
