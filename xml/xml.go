// Package xml provides XML element and attribute helpers for moniker codecs.
//
// XML text carries no type, so every token reads as a string token and
// resolves by alias, name, then integer literal. Absent values are omitted
// on write; empty text reads as the null token.
//
// A value written as its numeric code does not survive a round trip when
// another member's alias is the same numeral: the text reads back as the
// aliased member. Such enumerations should use WithName for XML.
//
//	func (s Status) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
//	    return mxml.EncodeElement(e, start, statusCodec, s)
//	}
//
//	func (s *Status) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
//	    return mxml.DecodeElement(d, start, statusCodec, s)
//	}
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/moniker"
)

// EncodeElement writes v as the text of element start.
// The element is omitted entirely when v writes the null token.
func EncodeElement[T any](e *xml.Encoder, start xml.StartElement, w moniker.Writer[T], v T) error {
	tok, err := w.Write(v)
	if err != nil {
		return err
	}
	if tok.IsNull() {
		return nil
	}
	return e.EncodeElement(tok.String(), start)
}

// DecodeElement reads the text of element start into dst.
func DecodeElement[T any](d *xml.Decoder, start xml.StartElement, r moniker.Reader[T], dst *T) error {
	var text string
	if err := d.DecodeElement(&text, &start); err != nil {
		return err
	}
	v, err := r.Read(textToken(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// MarshalAttr writes v as attribute name.
// A zero Attr, which encoding/xml omits, is returned for the null token.
func MarshalAttr[T any](name xml.Name, w moniker.Writer[T], v T) (xml.Attr, error) {
	tok, err := w.Write(v)
	if err != nil {
		return xml.Attr{}, err
	}
	if tok.IsNull() {
		return xml.Attr{}, nil
	}
	return xml.Attr{Name: name, Value: tok.String()}, nil
}

// UnmarshalAttr reads attr into dst.
func UnmarshalAttr[T any](attr xml.Attr, r moniker.Reader[T], dst *T) error {
	v, err := r.Read(textToken(attr.Value))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func textToken(text string) moniker.Token {
	if text == "" {
		return moniker.NullToken()
	}
	return moniker.StringToken(text)
}
