// Package moniker converts integer-backed enumerations to and from their
// external representation, honoring an optional alias per constant.
//
// An enumeration declares its constants in an explicit member table. Each
// constant has a declared name, a numeric code and at most one alias:
//
//	type Status int
//
//	const (
//	    StatusActive   Status = 1
//	    StatusInactive Status = 2
//	    StatusUnknown  Status = 99
//	)
//
//	var statusCodec = moniker.New([]moniker.Member[Status]{
//	    {Value: StatusActive, Name: "Active", Alias: "active"},
//	    {Value: StatusInactive, Name: "Inactive", Alias: "inactive"},
//	    {Value: StatusUnknown, Name: "Unknown"},
//	})
//
// # Writing
//
// A value is written as its alias when it has one and as its numeric code
// otherwise. Codecs built WithNumeric always write numeric codes:
//
//	statusCodec.Write(StatusActive)  // "active"
//	statusCodec.Write(StatusUnknown) // 99
//
// # Reading
//
// Number tokens resolve by numeric code. String tokens resolve by alias, then
// by declared name, then as an integer literal. Integer codes that fit the
// underlying type resolve even when no constant declares them:
//
//	statusCodec.Read(moniker.StringToken("active")) // StatusActive
//	statusCodec.Read(moniker.StringToken("Unknown")) // StatusUnknown
//	statusCodec.Read(moniker.NumberToken(99))        // StatusUnknown
//	statusCodec.Read(moniker.StringToken("bogus"))   // ErrUnsupportedValue
//
// # Absent Values
//
// Optional[E] and *E share the codec of E. The null token maps to None or nil
// without consulting the underlying codec, and back.
//
// # Registry
//
// A Registry selects codecs for Go types at runtime. Registering E makes the
// registry handle E, *E and Optional[E]; the index is built on first use:
//
//	moniker.Register(moniker.Default, statusMembers)
//	conv, err := moniker.Default.Converter(reflect.TypeFor[*Status]())
//
// # Format Providers
//
// The following wire adapters are available as subpackages:
//
//   - json - JSON tokens (application/json)
//   - yaml - YAML scalar nodes (application/yaml)
//   - msgpack - MessagePack values (application/msgpack)
//   - cbor - CBOR values (application/cbor)
//   - bson - BSON registry encoders and value marshalers
//   - xml - XML element and attribute text
package moniker

// Format translates single tokens to and from one wire encoding.
type Format interface {
	// ContentType returns the MIME type for this format (e.g., "application/json").
	ContentType() string

	// EncodeToken encodes a single token.
	EncodeToken(tok Token) ([]byte, error)

	// DecodeToken decodes a single token.
	DecodeToken(data []byte) (Token, error)
}

// Marshal writes v with w and encodes the token with f.
func Marshal[T any](f Format, w Writer[T], v T) ([]byte, error) {
	tok, err := w.Write(v)
	if err != nil {
		return nil, err
	}
	return f.EncodeToken(tok)
}

// Unmarshal decodes one token with f and reads it into dst with r.
// dst is left untouched on error.
func Unmarshal[T any](f Format, r Reader[T], data []byte, dst *T) error {
	tok, err := f.DecodeToken(data)
	if err != nil {
		return err
	}
	v, err := r.Read(tok)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
