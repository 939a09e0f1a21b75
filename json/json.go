// Package json provides a JSON token format for moniker codecs.
//
// Enumerations typically wire it into their json.Marshaler and
// json.Unmarshaler methods:
//
//	func (s Status) MarshalJSON() ([]byte, error) {
//	    return json.Marshal(statusCodec, s)
//	}
//
//	func (s *Status) UnmarshalJSON(data []byte) error {
//	    return json.Unmarshal(statusCodec, data, s)
//	}
package json

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/zoobzio/moniker"
)

const formatName = "json"

// jsonFormat implements moniker.Format for JSON.
type jsonFormat struct{}

// New returns a JSON format.
func New() moniker.Format {
	return &jsonFormat{}
}

// ContentType returns the MIME type for JSON.
func (f *jsonFormat) ContentType() string {
	return "application/json"
}

// EncodeToken encodes tok as a JSON string, number, or null.
func (f *jsonFormat) EncodeToken(tok moniker.Token) ([]byte, error) {
	return appendToken(nil, tok)
}

// DecodeToken decodes a single JSON value into a token.
// Anything but whitespace after the value is rejected.
func (f *jsonFormat) DecodeToken(data []byte) (moniker.Token, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return moniker.Token{}, err
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return moniker.Token{}, moniker.NewTokenError(formatName, "trailing data")
	}
	return tokenOf(raw)
}

// Marshal encodes v as JSON using w.
func Marshal[T any](w moniker.Writer[T], v T) ([]byte, error) {
	return moniker.Marshal(New(), w, v)
}

// Unmarshal decodes JSON data into dst using r.
func Unmarshal[T any](r moniker.Reader[T], data []byte, dst *T) error {
	return moniker.Unmarshal(New(), r, data, dst)
}

// tokenReader reads successive JSON values from a stream.
type tokenReader struct {
	dec *json.Decoder
}

// NewTokenReader returns a TokenReader over a stream of JSON values.
// io.EOF is returned once the stream is exhausted.
func NewTokenReader(r io.Reader) moniker.TokenReader {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &tokenReader{dec: dec}
}

// ReadToken decodes the next JSON value.
func (t *tokenReader) ReadToken() (moniker.Token, error) {
	var raw any
	if err := t.dec.Decode(&raw); err != nil {
		return moniker.Token{}, err
	}
	return tokenOf(raw)
}

// tokenWriter writes tokens as newline-delimited JSON values.
type tokenWriter struct {
	w   io.Writer
	buf []byte
}

// NewTokenWriter returns a TokenWriter emitting one JSON value per line.
func NewTokenWriter(w io.Writer) moniker.TokenWriter {
	return &tokenWriter{w: w}
}

func (t *tokenWriter) WriteString(s string) error {
	return t.write(moniker.StringToken(s))
}

func (t *tokenWriter) WriteNumber(n int64) error {
	return t.write(moniker.NumberToken(n))
}

func (t *tokenWriter) WriteNull() error {
	return t.write(moniker.NullToken())
}

func (t *tokenWriter) write(tok moniker.Token) error {
	buf, err := appendToken(t.buf[:0], tok)
	if err != nil {
		return err
	}
	t.buf = append(buf, '\n')
	_, err = t.w.Write(t.buf)
	return err
}

// appendToken appends the JSON encoding of tok to dst.
func appendToken(dst []byte, tok moniker.Token) ([]byte, error) {
	switch tok.Kind {
	case moniker.TokenString:
		b, err := json.Marshal(tok.Text)
		if err != nil {
			return nil, err
		}
		return append(dst, b...), nil
	case moniker.TokenNumber:
		return strconv.AppendInt(dst, tok.Number, 10), nil
	case moniker.TokenNull:
		return append(dst, "null"...), nil
	default:
		return nil, moniker.NewTokenError(formatName, tok.Kind.String())
	}
}

// tokenOf converts a decoded JSON value into a token.
func tokenOf(raw any) (moniker.Token, error) {
	switch v := raw.(type) {
	case nil:
		return moniker.NullToken(), nil
	case string:
		return moniker.StringToken(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return moniker.Token{}, moniker.NewTokenError(formatName, "number "+v.String())
		}
		return moniker.NumberToken(n), nil
	case bool:
		return moniker.Token{}, moniker.NewTokenError(formatName, "bool")
	case map[string]any:
		return moniker.Token{}, moniker.NewTokenError(formatName, "object")
	case []any:
		return moniker.Token{}, moniker.NewTokenError(formatName, "array")
	default:
		return moniker.Token{}, moniker.NewTokenError(formatName, fmt.Sprintf("%T", v))
	}
}
