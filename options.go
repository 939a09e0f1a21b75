package moniker

// WriteMode selects how alias-less values are written.
type WriteMode string

const (
	// WriteAlias writes the alias when present, otherwise the numeric code.
	WriteAlias WriteMode = "alias"

	// WriteNumeric always writes the numeric code, aliases notwithstanding.
	// Status-code style enumerations that peers compare numerically use this.
	WriteNumeric WriteMode = "numeric"

	// WriteName writes the alias when present, otherwise the declared name.
	WriteName WriteMode = "name"
)

// validWriteModes contains all valid write modes.
var validWriteModes = map[WriteMode]bool{
	WriteAlias:   true,
	WriteNumeric: true,
	WriteName:    true,
}

// IsValidWriteMode returns true if the mode is a known write mode.
func IsValidWriteMode(m WriteMode) bool {
	return validWriteModes[m]
}

// Option configures a Codec.
type Option func(*options)

type options struct {
	mode     WriteMode
	typeName string
}

func defaultOptions() options {
	return options{mode: WriteAlias}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithNumeric makes the codec always write numeric codes.
func WithNumeric() Option {
	return WithWriteMode(WriteNumeric)
}

// WithName makes the codec write declared names for alias-less values.
func WithName() Option {
	return WithWriteMode(WriteName)
}

// WithWriteMode sets the write mode. Unknown modes are ignored.
func WithWriteMode(m WriteMode) Option {
	return func(o *options) {
		if IsValidWriteMode(m) {
			o.mode = m
		}
	}
}

// WithTypeName overrides the type name reported in errors and signals.
func WithTypeName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.typeName = name
		}
	}
}
