package moniker_test

import (
	"reflect"
	"testing"

	"github.com/zoobzio/moniker"
	mtesting "github.com/zoobzio/moniker/testing"
)

func TestNewIndex_Records(t *testing.T) {
	idx := moniker.NewIndex(mtesting.StatusMembers()...)

	if idx.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", idx.Len())
	}

	want := []moniker.Record[mtesting.Status]{
		{Value: mtesting.StatusActive, Name: "Active", Alias: "active", HasAlias: true, Code: 1},
		{Value: mtesting.StatusInactive, Name: "Inactive", Alias: "inactive", HasAlias: true, Code: 2},
		{Value: mtesting.StatusUnknown, Name: "Unknown", Code: 99},
	}
	if got := idx.Records(); !reflect.DeepEqual(got, want) {
		t.Errorf("Records() = %+v, want %+v", got, want)
	}

	if idx.TypeName() != "testing.Status" {
		t.Errorf("TypeName() = %q, want %q", idx.TypeName(), "testing.Status")
	}
}

func TestNewIndex_Lookup(t *testing.T) {
	idx := moniker.NewIndex(mtesting.StatusMembers()...)

	rec, ok := idx.Lookup(mtesting.StatusInactive)
	if !ok {
		t.Fatal("Lookup(StatusInactive) should succeed")
	}
	if rec.Alias != "inactive" || rec.Code != 2 {
		t.Errorf("Lookup(StatusInactive) = %+v", rec)
	}

	if _, ok := idx.Lookup(mtesting.Status(42)); ok {
		t.Error("Lookup(42) should fail for an undeclared value")
	}
}

func TestNewIndex_DuplicateValues(t *testing.T) {
	idx := moniker.NewIndex(
		moniker.Member[mtesting.Status]{Value: 1, Name: "First", Alias: "first"},
		moniker.Member[mtesting.Status]{Value: 2, Name: "Second"},
		moniker.Member[mtesting.Status]{Value: 1, Name: "Again", Alias: "again"},
	)

	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}

	rec, _ := idx.Lookup(1)
	if rec.Name != "Again" || rec.Alias != "again" {
		t.Errorf("duplicate value should keep the last record, got %+v", rec)
	}

	// Collapsed names still resolve.
	if v, ok := idx.ParseName("First"); !ok || v != 1 {
		t.Errorf("ParseName(First) = %v, %v, want 1, true", v, ok)
	}

	// Declaration order follows first appearance.
	records := idx.Records()
	if records[0].Value != 1 || records[1].Value != 2 {
		t.Errorf("Records() order = %+v", records)
	}
}

func TestNewIndex_BlankAlias(t *testing.T) {
	idx := moniker.NewIndex(
		moniker.Member[mtesting.Status]{Value: 1, Name: "Blank", Alias: "   "},
		moniker.Member[mtesting.Status]{Value: 2, Name: "Empty"},
	)

	for _, rec := range idx.Records() {
		if rec.HasAlias {
			t.Errorf("%s should have no alias, got %q", rec.Name, rec.Alias)
		}
	}
}

func TestNewIndex_Idempotent(t *testing.T) {
	a := moniker.NewIndex(mtesting.StatusMembers()...)
	b := moniker.NewIndex(mtesting.StatusMembers()...)

	if !reflect.DeepEqual(a.Records(), b.Records()) {
		t.Error("building the same table twice should yield identical records")
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("building the same table twice should yield identical fingerprints")
	}

	changed := mtesting.StatusMembers()
	changed[2].Alias = "unknown"
	c := moniker.NewIndex(changed...)
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("changing an alias should change the fingerprint")
	}
}

func TestIndex_Name(t *testing.T) {
	idx := moniker.NewIndex(mtesting.StatusMembers()...)

	if name, ok := idx.Name(mtesting.StatusUnknown); !ok || name != "Unknown" {
		t.Errorf("Name(StatusUnknown) = %q, %v", name, ok)
	}
	if _, ok := idx.Name(mtesting.Status(7)); ok {
		t.Error("Name(7) should fail for an undeclared value")
	}
}

func TestIndex_FindAlias(t *testing.T) {
	idx := moniker.NewIndex(
		moniker.Member[mtesting.Status]{Value: 1, Name: "One", Alias: "shared"},
		moniker.Member[mtesting.Status]{Value: 2, Name: "Two", Alias: "shared"},
	)

	v, ok := idx.FindAlias("shared")
	if !ok || v != 1 {
		t.Errorf("FindAlias(shared) = %v, %v, want first declared value 1", v, ok)
	}
	if _, ok := idx.FindAlias("Shared"); ok {
		t.Error("FindAlias should be case-sensitive")
	}
}

func TestIndex_ParseName(t *testing.T) {
	status := moniker.NewIndex(mtesting.StatusMembers()...)
	level := moniker.NewIndex(mtesting.LevelMembers()...)

	tests := []struct {
		name  string
		parse func(string) (int64, bool)
		input string
		want  int64
		ok    bool
	}{
		{"declared name", parseWith(status), "Active", 1, true},
		{"name without alias", parseWith(status), "Unknown", 99, true},
		{"case mismatch", parseWith(status), "active", 0, false},
		{"declared code", parseWith(status), "2", 2, true},
		{"undeclared code", parseWith(status), "42", 42, true},
		{"padded code", parseWith(status), " 7 ", 7, true},
		{"signed code", parseWith(status), "-3", -3, true},
		{"garbage", parseWith(status), "not-a-real-value", 0, false},
		{"empty", parseWith(status), "", 0, false},
		{"int8 in range", parseWith(level), "127", 127, true},
		{"int8 overflow", parseWith(level), "300", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.parse(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseName(%q) = %d, %v, want %d, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func parseWith[E moniker.Integer](idx *moniker.Index[E]) func(string) (int64, bool) {
	return func(s string) (int64, bool) {
		v, ok := idx.ParseName(s)
		return int64(v), ok
	}
}

func TestFromCode(t *testing.T) {
	if v, ok := moniker.FromCode[int8](-128); !ok || v != -128 {
		t.Errorf("FromCode[int8](-128) = %d, %v", v, ok)
	}
	if _, ok := moniker.FromCode[int8](128); ok {
		t.Error("FromCode[int8](128) should overflow")
	}
	if _, ok := moniker.FromCode[uint8](-1); ok {
		t.Error("FromCode[uint8](-1) should fail")
	}
	if v, ok := moniker.FromCode[uint32](4294967295); !ok || v != 4294967295 {
		t.Errorf("FromCode[uint32](max) = %d, %v", v, ok)
	}
}
