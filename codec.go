package moniker

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
)

// Converter is the type-erased codec a Registry hands to host engines.
// Values passed to WriteAny and returned by ReadAny have exactly Type().
type Converter interface {
	// Type returns the Go type this converter reads and writes.
	Type() reflect.Type

	// ReadAny resolves a token to a value of Type().
	ReadAny(tok Token) (any, error)

	// WriteAny resolves a value of Type() to its token.
	WriteAny(v any) (Token, error)
}

// Reader resolves tokens to values of T.
type Reader[T any] interface {
	Read(tok Token) (T, error)
}

// Writer resolves values of T to tokens.
type Writer[T any] interface {
	Write(v T) (Token, error)
}

// Codec converts values of E to and from tokens using an Index.
//
// A Codec holds no mutable state and is safe for concurrent use.
type Codec[E Integer] struct {
	index *Index[E]
	mode  WriteMode
	typ   reflect.Type
}

// New builds an Index from members and binds a Codec to it.
func New[E Integer](members []Member[E], opts ...Option) *Codec[E] {
	o := applyOptions(opts)
	name := o.typeName
	if name == "" {
		name = reflect.TypeFor[E]().String()
	}
	return bind(newIndex(name, members), o)
}

// Bind returns a Codec over an existing Index.
// WithTypeName is ignored; the index's name is used.
func Bind[E Integer](idx *Index[E], opts ...Option) *Codec[E] {
	return bind(idx, applyOptions(opts))
}

func bind[E Integer](idx *Index[E], o options) *Codec[E] {
	c := &Codec[E]{
		index: idx,
		mode:  o.mode,
		typ:   reflect.TypeFor[E](),
	}
	emitCodecCreated(context.Background(), idx.TypeName(), c.mode)
	return c
}

// Index returns the codec's index.
func (c *Codec[E]) Index() *Index[E] {
	return c.index
}

// Mode returns the codec's write mode.
func (c *Codec[E]) Mode() WriteMode {
	return c.mode
}

// Type returns the reflect.Type of E.
func (c *Codec[E]) Type() reflect.Type {
	return c.typ
}

// Read resolves a token to a value.
//
// Number tokens resolve by numeric code. String tokens resolve, in order, by
// alias (first match in declaration order), by declared name, then as an
// integer literal. Integer codes that fit E are accepted even when no member
// declares them. Anything else fails with ErrUnsupportedValue.
func (c *Codec[E]) Read(tok Token) (E, error) {
	switch tok.Kind {
	case TokenNumber:
		if v, ok := FromCode[E](tok.Number); ok {
			return v, nil
		}
	case TokenString:
		if v, ok := c.index.FindAlias(tok.Text); ok {
			return v, nil
		}
		if v, ok := c.index.ParseName(tok.Text); ok {
			return v, nil
		}
	}
	return 0, c.rejectRead(tok.String())
}

// Write resolves a value to exactly one token: its alias, or its numeric
// code when the codec is numeric or the value has no alias.
// Values with no record fail with ErrUnsupportedValue.
func (c *Codec[E]) Write(v E) (Token, error) {
	rec, ok := c.index.Lookup(v)
	if !ok {
		return Token{}, c.rejectWrite(strconv.FormatInt(int64(v), 10))
	}

	switch {
	case c.mode == WriteNumeric:
		return NumberToken(rec.Code), nil
	case rec.HasAlias:
		return StringToken(rec.Alias), nil
	case c.mode == WriteName && rec.Name != "":
		return StringToken(rec.Name), nil
	default:
		return NumberToken(rec.Code), nil
	}
}

// Decode reads one token from r and resolves it.
func (c *Codec[E]) Decode(r TokenReader) (E, error) {
	tok, err := r.ReadToken()
	if err != nil {
		return 0, err
	}
	return c.Read(tok)
}

// Encode resolves v and writes its token to w.
func (c *Codec[E]) Encode(w TokenWriter, v E) error {
	tok, err := c.Write(v)
	if err != nil {
		return err
	}
	return WriteToken(w, tok)
}

// ReadAny implements Converter.
func (c *Codec[E]) ReadAny(tok Token) (any, error) {
	v, err := c.Read(tok)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// WriteAny implements Converter.
func (c *Codec[E]) WriteAny(v any) (Token, error) {
	e, ok := v.(E)
	if !ok {
		return Token{}, c.rejectWrite(fmt.Sprintf("%v", v))
	}
	return c.Write(e)
}

// Optional returns an adapter for Optional[E] sharing this codec's index.
func (c *Codec[E]) Optional() *OptionalCodec[E] {
	return &OptionalCodec[E]{inner: c}
}

// Pointer returns an adapter for *E sharing this codec's index.
func (c *Codec[E]) Pointer() *PointerCodec[E] {
	return &PointerCodec[E]{inner: c}
}

func (c *Codec[E]) rejectRead(text string) error {
	err := newUnsupportedValueError(c.index.TypeName(), text)
	emitReadRejected(context.Background(), c.index.TypeName(), text, err)
	return err
}

func (c *Codec[E]) rejectWrite(text string) error {
	err := newUnsupportedValueError(c.index.TypeName(), text)
	emitWriteRejected(context.Background(), c.index.TypeName(), text, err)
	return err
}
