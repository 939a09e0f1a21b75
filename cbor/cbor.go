// Package cbor provides a CBOR token format for moniker codecs.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2), so a value
// always produces identical bytes.
package cbor

import (
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/zoobzio/moniker"
)

const formatName = "cbor"

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}
}

// cborFormat implements moniker.Format for CBOR.
type cborFormat struct{}

// New returns a CBOR format.
func New() moniker.Format {
	return &cborFormat{}
}

// ContentType returns the MIME type for CBOR.
func (f *cborFormat) ContentType() string {
	return "application/cbor"
}

// EncodeToken encodes tok as a CBOR text string, integer, or null.
func (f *cborFormat) EncodeToken(tok moniker.Token) ([]byte, error) {
	switch tok.Kind {
	case moniker.TokenString:
		return encMode.Marshal(tok.Text)
	case moniker.TokenNumber:
		return encMode.Marshal(tok.Number)
	case moniker.TokenNull:
		return encMode.Marshal(nil)
	default:
		return nil, moniker.NewTokenError(formatName, tok.Kind.String())
	}
}

// DecodeToken decodes a single CBOR data item into a token.
func (f *cborFormat) DecodeToken(data []byte) (moniker.Token, error) {
	var raw any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return moniker.Token{}, err
	}

	switch v := raw.(type) {
	case nil:
		return moniker.NullToken(), nil
	case string:
		return moniker.StringToken(v), nil
	case int64:
		return moniker.NumberToken(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return moniker.Token{}, moniker.NewTokenError(formatName, fmt.Sprintf("integer %d", v))
		}
		return moniker.NumberToken(int64(v)), nil
	default:
		return moniker.Token{}, moniker.NewTokenError(formatName, fmt.Sprintf("%T", v))
	}
}

// Marshal encodes v as CBOR using w, for cbor.Marshaler.
func Marshal[T any](w moniker.Writer[T], v T) ([]byte, error) {
	return moniker.Marshal(New(), w, v)
}

// Unmarshal decodes CBOR data into dst using r, for cbor.Unmarshaler.
func Unmarshal[T any](r moniker.Reader[T], data []byte, dst *T) error {
	return moniker.Unmarshal(New(), r, data, dst)
}
