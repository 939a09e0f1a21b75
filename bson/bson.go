// Package bson connects moniker codecs to the MongoDB BSON codec registry.
//
// Register installs a type encoder and decoder for every type a
// moniker.Registry handles, so documents carrying enumerations, pointers to
// them, or moniker.Optional values encode without per-type methods:
//
//	reg := bson.NewRegistry()
//	if err := mbson.Register(reg, moniker.Default); err != nil {
//	    return err
//	}
package bson

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/moniker"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

const formatName = "bson"

// Register installs encoders and decoders on reg for every type r handles.
// Codecs are built eagerly; a build failure is returned unchanged.
func Register(reg *bsoncodec.Registry, r *moniker.Registry) error {
	for _, t := range r.Types() {
		conv, err := r.Converter(t)
		if err != nil {
			return err
		}
		reg.RegisterTypeEncoder(t, encoder(conv))
		reg.RegisterTypeDecoder(t, decoder(conv))
	}
	return nil
}

// encoder returns a ValueEncoder writing conv's tokens.
func encoder(conv moniker.Converter) bsoncodec.ValueEncoder {
	return bsoncodec.ValueEncoderFunc(func(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
		if !val.IsValid() || val.Type() != conv.Type() {
			return bsoncodec.ValueEncoderError{
				Name:     "moniker.Encoder",
				Types:    []reflect.Type{conv.Type()},
				Received: val,
			}
		}
		tok, err := conv.WriteAny(val.Interface())
		if err != nil {
			return err
		}
		return moniker.WriteToken(valueWriter{vw}, tok)
	})
}

// decoder returns a ValueDecoder reading conv's tokens.
func decoder(conv moniker.Converter) bsoncodec.ValueDecoder {
	return bsoncodec.ValueDecoderFunc(func(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
		if !val.CanSet() || val.Type() != conv.Type() {
			return bsoncodec.ValueDecoderError{
				Name:     "moniker.Decoder",
				Types:    []reflect.Type{conv.Type()},
				Received: val,
			}
		}
		tok, err := valueReader{vr}.ReadToken()
		if err != nil {
			return err
		}
		v, err := conv.ReadAny(tok)
		if err != nil {
			return err
		}
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			rv = reflect.Zero(conv.Type())
		}
		val.Set(rv)
		return nil
	})
}

// valueWriter adapts a bsonrw.ValueWriter to moniker.TokenWriter.
type valueWriter struct {
	vw bsonrw.ValueWriter
}

func (w valueWriter) WriteString(s string) error { return w.vw.WriteString(s) }
func (w valueWriter) WriteNumber(n int64) error  { return w.vw.WriteInt64(n) }
func (w valueWriter) WriteNull() error           { return w.vw.WriteNull() }

// valueReader adapts a bsonrw.ValueReader to moniker.TokenReader.
type valueReader struct {
	vr bsonrw.ValueReader
}

func (r valueReader) ReadToken() (moniker.Token, error) {
	switch t := r.vr.Type(); t {
	case bsontype.String:
		s, err := r.vr.ReadString()
		if err != nil {
			return moniker.Token{}, err
		}
		return moniker.StringToken(s), nil
	case bsontype.Int32:
		n, err := r.vr.ReadInt32()
		if err != nil {
			return moniker.Token{}, err
		}
		return moniker.NumberToken(int64(n)), nil
	case bsontype.Int64:
		n, err := r.vr.ReadInt64()
		if err != nil {
			return moniker.Token{}, err
		}
		return moniker.NumberToken(n), nil
	case bsontype.Null:
		if err := r.vr.ReadNull(); err != nil {
			return moniker.Token{}, err
		}
		return moniker.NullToken(), nil
	default:
		if err := r.vr.Skip(); err != nil {
			return moniker.Token{}, err
		}
		return moniker.Token{}, moniker.NewTokenError(formatName, t.String())
	}
}

// MarshalValue writes v with w as a BSON value, for bson.ValueMarshaler.
func MarshalValue[T any](w moniker.Writer[T], v T) (bsontype.Type, []byte, error) {
	tok, err := w.Write(v)
	if err != nil {
		return 0, nil, err
	}
	switch tok.Kind {
	case moniker.TokenString:
		return bsontype.String, bsoncore.AppendString(nil, tok.Text), nil
	case moniker.TokenNumber:
		return bsontype.Int64, bsoncore.AppendInt64(nil, tok.Number), nil
	case moniker.TokenNull:
		return bsontype.Null, nil, nil
	default:
		return 0, nil, moniker.NewTokenError(formatName, tok.Kind.String())
	}
}

// UnmarshalValue reads a BSON value into dst with r, for bson.ValueUnmarshaler.
func UnmarshalValue[T any](r moniker.Reader[T], t bsontype.Type, data []byte, dst *T) error {
	tok, err := tokenOf(t, data)
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

func tokenOf(t bsontype.Type, data []byte) (moniker.Token, error) {
	switch t {
	case bsontype.String:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return moniker.Token{}, fmt.Errorf("bson: malformed string value")
		}
		return moniker.StringToken(s), nil
	case bsontype.Int32:
		n, _, ok := bsoncore.ReadInt32(data)
		if !ok {
			return moniker.Token{}, fmt.Errorf("bson: malformed int32 value")
		}
		return moniker.NumberToken(int64(n)), nil
	case bsontype.Int64:
		n, _, ok := bsoncore.ReadInt64(data)
		if !ok {
			return moniker.Token{}, fmt.Errorf("bson: malformed int64 value")
		}
		return moniker.NumberToken(n), nil
	case bsontype.Null:
		return moniker.NullToken(), nil
	default:
		return moniker.Token{}, moniker.NewTokenError(formatName, t.String())
	}
}
