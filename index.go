package moniker

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// Record is the indexed form of one enumeration constant.
type Record[E Integer] struct {
	Value    E
	Name     string
	Alias    string
	HasAlias bool
	Code     int64
}

// Index maps every declared value of E to its Record.
//
// An Index is immutable once NewIndex returns and is safe for concurrent use.
type Index[E Integer] struct {
	records map[E]Record[E]
	order   []E          // distinct values, first-declaration order
	names   map[string]E // every declared name, including collapsed duplicates
	typ     string
}

// NewIndex builds the index for E from its member table.
//
// Members are processed in declaration order. A later member with the same
// value replaces the earlier record, though the earlier name stays resolvable.
// Construction never fails: missing or blank aliases mean "no alias".
func NewIndex[E Integer](members ...Member[E]) *Index[E] {
	return newIndex(reflect.TypeFor[E]().String(), members)
}

func newIndex[E Integer](typeName string, members []Member[E]) *Index[E] {
	start := time.Now()

	idx := &Index[E]{
		records: make(map[E]Record[E], len(members)),
		order:   make([]E, 0, len(members)),
		names:   make(map[string]E, len(members)),
		typ:     typeName,
	}

	for _, m := range members {
		rec := Record[E]{
			Value: m.Value,
			Name:  m.Name,
			Code:  int64(m.Value),
		}
		if strings.TrimSpace(m.Alias) != "" {
			rec.Alias = m.Alias
			rec.HasAlias = true
		}

		if _, seen := idx.records[m.Value]; !seen {
			idx.order = append(idx.order, m.Value)
		}
		idx.records[m.Value] = rec

		if m.Name != "" {
			idx.names[m.Name] = m.Value
		}
	}

	emitIndexBuilt(context.Background(), typeName, len(idx.order), idx.aliasCount(), time.Since(start))
	return idx
}

// TypeName returns the name used for E in errors and signals.
func (x *Index[E]) TypeName() string {
	return x.typ
}

// Len returns the number of distinct values.
func (x *Index[E]) Len() int {
	return len(x.order)
}

// Lookup returns the record for v.
func (x *Index[E]) Lookup(v E) (Record[E], bool) {
	rec, ok := x.records[v]
	return rec, ok
}

// Records returns all records in declaration order.
func (x *Index[E]) Records() []Record[E] {
	out := make([]Record[E], 0, len(x.order))
	for _, v := range x.order {
		out = append(out, x.records[v])
	}
	return out
}

// Name returns the declared name of v.
func (x *Index[E]) Name(v E) (string, bool) {
	rec, ok := x.records[v]
	if !ok || rec.Name == "" {
		return "", false
	}
	return rec.Name, true
}

// FindAlias returns the first value, in declaration order, whose alias is text.
func (x *Index[E]) FindAlias(text string) (E, bool) {
	for _, v := range x.order {
		rec := x.records[v]
		if rec.HasAlias && rec.Alias == text {
			return v, true
		}
	}
	return 0, false
}

// ParseName resolves a declared name or an integer literal.
//
// Names match case-sensitively. An integer literal resolves to the value
// with that code even when no member declares it, as long as it fits E.
func (x *Index[E]) ParseName(s string) (E, bool) {
	if v, ok := x.names[s]; ok {
		return v, true
	}
	code, ok := parseCode(s)
	if !ok {
		return 0, false
	}
	return FromCode[E](code)
}

func (x *Index[E]) aliasCount() int {
	n := 0
	for _, rec := range x.records {
		if rec.HasAlias {
			n++
		}
	}
	return n
}
