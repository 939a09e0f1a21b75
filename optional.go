package moniker

import "reflect"

// Optional holds a value of E or nothing.
type Optional[E Integer] struct {
	Value E
	Valid bool
}

// Some returns a present Optional.
func Some[E Integer](v E) Optional[E] {
	return Optional[E]{Value: v, Valid: true}
}

// None returns an absent Optional.
func None[E Integer]() Optional[E] {
	return Optional[E]{}
}

// Get returns the value and whether it is present.
func (o Optional[E]) Get() (E, bool) {
	return o.Value, o.Valid
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Optional[E]) Ptr() *E {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// OptionalCodec adapts a Codec to Optional[E].
// Null tokens map to None without consulting the inner codec.
type OptionalCodec[E Integer] struct {
	inner *Codec[E]
}

// Read resolves a token, mapping the null token to None.
func (c *OptionalCodec[E]) Read(tok Token) (Optional[E], error) {
	if tok.IsNull() {
		return None[E](), nil
	}
	v, err := c.inner.Read(tok)
	if err != nil {
		return None[E](), err
	}
	return Some(v), nil
}

// Write resolves a value, mapping None to the null token.
func (c *OptionalCodec[E]) Write(v Optional[E]) (Token, error) {
	if !v.Valid {
		return NullToken(), nil
	}
	return c.inner.Write(v.Value)
}

// Decode reads one token from r and resolves it.
func (c *OptionalCodec[E]) Decode(r TokenReader) (Optional[E], error) {
	tok, err := r.ReadToken()
	if err != nil {
		return None[E](), err
	}
	return c.Read(tok)
}

// Encode resolves v and writes its token to w.
func (c *OptionalCodec[E]) Encode(w TokenWriter, v Optional[E]) error {
	tok, err := c.Write(v)
	if err != nil {
		return err
	}
	return WriteToken(w, tok)
}

// Type implements Converter.
func (c *OptionalCodec[E]) Type() reflect.Type {
	return reflect.TypeFor[Optional[E]]()
}

// ReadAny implements Converter.
func (c *OptionalCodec[E]) ReadAny(tok Token) (any, error) {
	v, err := c.Read(tok)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// WriteAny implements Converter.
func (c *OptionalCodec[E]) WriteAny(v any) (Token, error) {
	if v == nil {
		return NullToken(), nil
	}
	if o, ok := v.(Optional[E]); ok {
		return c.Write(o)
	}
	return c.inner.WriteAny(v)
}

// PointerCodec adapts a Codec to *E, where nil is absent.
type PointerCodec[E Integer] struct {
	inner *Codec[E]
}

// Read resolves a token, mapping the null token to nil.
func (c *PointerCodec[E]) Read(tok Token) (*E, error) {
	if tok.IsNull() {
		return nil, nil
	}
	v, err := c.inner.Read(tok)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Write resolves a value, mapping nil to the null token.
func (c *PointerCodec[E]) Write(v *E) (Token, error) {
	if v == nil {
		return NullToken(), nil
	}
	return c.inner.Write(*v)
}

// Decode reads one token from r and resolves it.
func (c *PointerCodec[E]) Decode(r TokenReader) (*E, error) {
	tok, err := r.ReadToken()
	if err != nil {
		return nil, err
	}
	return c.Read(tok)
}

// Encode resolves v and writes its token to w.
func (c *PointerCodec[E]) Encode(w TokenWriter, v *E) error {
	tok, err := c.Write(v)
	if err != nil {
		return err
	}
	return WriteToken(w, tok)
}

// Type implements Converter.
func (c *PointerCodec[E]) Type() reflect.Type {
	return reflect.TypeFor[*E]()
}

// ReadAny implements Converter. Absent values are returned as a typed nil *E.
func (c *PointerCodec[E]) ReadAny(tok Token) (any, error) {
	v, err := c.Read(tok)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// WriteAny implements Converter.
func (c *PointerCodec[E]) WriteAny(v any) (Token, error) {
	if v == nil {
		return NullToken(), nil
	}
	if p, ok := v.(*E); ok {
		return c.Write(p)
	}
	return c.inner.WriteAny(v)
}
