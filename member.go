package moniker

// Integer constrains the underlying types an enumeration may use.
// Numeric codes are carried as int64, so 64-bit unsigned kinds are excluded.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Member declares one constant of an enumeration.
//
// Name is the constant's declared identifier and is matched case-sensitively
// on read. Alias is the optional external text; an empty or whitespace-only
// Alias means the constant has none.
//
//	var statusMembers = []moniker.Member[Status]{
//	    {Value: StatusActive, Name: "Active", Alias: "active"},
//	    {Value: StatusInactive, Name: "Inactive", Alias: "inactive"},
//	    {Value: StatusUnknown, Name: "Unknown"},
//	}
type Member[E Integer] struct {
	Value E
	Name  string
	Alias string
}

// Loader produces the member table for an enumeration on demand.
// Registries call it at most once per successful build.
type Loader[E Integer] func() ([]Member[E], error)

// Static returns a Loader over a fixed member table.
func Static[E Integer](members []Member[E]) Loader[E] {
	return func() ([]Member[E], error) {
		return members, nil
	}
}

// FromCode converts a numeric code to E.
// It reports false when the code does not fit E's underlying type.
func FromCode[E Integer](code int64) (E, bool) {
	v := E(code)
	if int64(v) != code {
		return 0, false
	}
	return v, true
}
