// Package msgpack provides a MessagePack token format for moniker codecs.
//
// Enumerations wire it into msgpack's custom encoder hooks:
//
//	func (s Status) EncodeMsgpack(enc *msgpack.Encoder) error {
//	    return mmsgpack.Encode(enc, statusCodec, s)
//	}
//
//	func (s *Status) DecodeMsgpack(dec *msgpack.Decoder) error {
//	    return mmsgpack.Decode(dec, statusCodec, s)
//	}
package msgpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"github.com/zoobzio/moniker"
)

const formatName = "msgpack"

// msgpackFormat implements moniker.Format for MessagePack.
type msgpackFormat struct{}

// New returns a MessagePack format.
func New() moniker.Format {
	return &msgpackFormat{}
}

// ContentType returns the MIME type for MessagePack.
func (f *msgpackFormat) ContentType() string {
	return "application/msgpack"
}

// EncodeToken encodes tok as a MessagePack str, int, or nil.
func (f *msgpackFormat) EncodeToken(tok moniker.Token) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteToken(msgpack.NewEncoder(&buf), tok); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeToken decodes a single MessagePack value into a token.
// Any bytes after the value are rejected.
func (f *msgpackFormat) DecodeToken(data []byte) (moniker.Token, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	tok, err := ReadToken(dec)
	if err != nil {
		return moniker.Token{}, err
	}
	if _, err := dec.PeekCode(); !errors.Is(err, io.EOF) {
		return moniker.Token{}, moniker.NewTokenError(formatName, "trailing data")
	}
	return tok, nil
}

// WriteToken writes tok to enc.
func WriteToken(enc *msgpack.Encoder, tok moniker.Token) error {
	switch tok.Kind {
	case moniker.TokenString:
		return enc.EncodeString(tok.Text)
	case moniker.TokenNumber:
		return enc.EncodeInt(tok.Number)
	case moniker.TokenNull:
		return enc.EncodeNil()
	default:
		return moniker.NewTokenError(formatName, tok.Kind.String())
	}
}

// ReadToken reads the next value from dec as a token.
func ReadToken(dec *msgpack.Decoder) (moniker.Token, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return moniker.Token{}, err
	}

	switch {
	case c == msgpcode.Nil:
		if err := dec.DecodeNil(); err != nil {
			return moniker.Token{}, err
		}
		return moniker.NullToken(), nil
	case msgpcode.IsString(c):
		s, err := dec.DecodeString()
		if err != nil {
			return moniker.Token{}, err
		}
		return moniker.StringToken(s), nil
	case isInt(c):
		n, err := dec.DecodeInt64()
		if err != nil {
			return moniker.Token{}, err
		}
		return moniker.NumberToken(n), nil
	default:
		return moniker.Token{}, moniker.NewTokenError(formatName, fmt.Sprintf("code 0x%02x", c))
	}
}

// Encode writes v to enc using w, for EncodeMsgpack.
func Encode[T any](enc *msgpack.Encoder, w moniker.Writer[T], v T) error {
	tok, err := w.Write(v)
	if err != nil {
		return err
	}
	return WriteToken(enc, tok)
}

// Decode reads the next value from dec into dst using r, for DecodeMsgpack.
func Decode[T any](dec *msgpack.Decoder, r moniker.Reader[T], dst *T) error {
	tok, err := ReadToken(dec)
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

// Marshal encodes v as MessagePack using w.
func Marshal[T any](w moniker.Writer[T], v T) ([]byte, error) {
	return moniker.Marshal(New(), w, v)
}

// Unmarshal decodes MessagePack data into dst using r.
func Unmarshal[T any](r moniker.Reader[T], data []byte, dst *T) error {
	return moniker.Unmarshal(New(), r, data, dst)
}

func isInt(c byte) bool {
	if msgpcode.IsFixedNum(c) {
		return true
	}
	switch c {
	case msgpcode.Int8, msgpcode.Int16, msgpcode.Int32, msgpcode.Int64,
		msgpcode.Uint8, msgpcode.Uint16, msgpcode.Uint32, msgpcode.Uint64:
		return true
	}
	return false
}
