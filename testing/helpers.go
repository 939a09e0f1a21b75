// Package testing provides test fixtures for moniker.
package testing

import (
	"encoding/xml"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/moniker"
	mcbor "github.com/zoobzio/moniker/cbor"
	mjson "github.com/zoobzio/moniker/json"
	mmsgpack "github.com/zoobzio/moniker/msgpack"
	mxml "github.com/zoobzio/moniker/xml"
	myaml "github.com/zoobzio/moniker/yaml"
	"gopkg.in/yaml.v3"
)

// Status is an enumeration mixing aliased and alias-less constants.
type Status int

const (
	StatusActive   Status = 1
	StatusInactive Status = 2
	StatusUnknown  Status = 99
)

// StatusMembers returns the member table for Status.
// StatusUnknown has no alias and writes as 99.
func StatusMembers() []moniker.Member[Status] {
	return []moniker.Member[Status]{
		{Value: StatusActive, Name: "Active", Alias: "active"},
		{Value: StatusInactive, Name: "Inactive", Alias: "inactive"},
		{Value: StatusUnknown, Name: "Unknown"},
	}
}

// StatusCodec returns the shared codec for Status.
var StatusCodec = sync.OnceValue(func() *moniker.Codec[Status] {
	return moniker.New(StatusMembers())
})

// MarshalJSON implements json.Marshaler.
func (s Status) MarshalJSON() ([]byte, error) {
	return mjson.Marshal(StatusCodec(), s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Status) UnmarshalJSON(data []byte) error {
	return mjson.Unmarshal(StatusCodec(), data, s)
}

// MarshalYAML implements yaml.Marshaler.
func (s Status) MarshalYAML() (any, error) {
	return myaml.MarshalNode(StatusCodec(), s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Status) UnmarshalYAML(n *yaml.Node) error {
	return myaml.UnmarshalNode(StatusCodec(), n, s)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (s Status) EncodeMsgpack(enc *msgpack.Encoder) error {
	return mmsgpack.Encode(enc, StatusCodec(), s)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (s *Status) DecodeMsgpack(dec *msgpack.Decoder) error {
	return mmsgpack.Decode(dec, StatusCodec(), s)
}

// MarshalCBOR implements cbor.Marshaler.
func (s Status) MarshalCBOR() ([]byte, error) {
	return mcbor.Marshal(StatusCodec(), s)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (s *Status) UnmarshalCBOR(data []byte) error {
	return mcbor.Unmarshal(StatusCodec(), data, s)
}

// MarshalXML implements xml.Marshaler.
func (s Status) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return mxml.EncodeElement(e, start, StatusCodec(), s)
}

// UnmarshalXML implements xml.Unmarshaler.
func (s *Status) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return mxml.DecodeElement(d, start, StatusCodec(), s)
}

// MarshalXMLAttr implements xml.MarshalerAttr.
func (s Status) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return mxml.MarshalAttr(name, StatusCodec(), s)
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr.
func (s *Status) UnmarshalXMLAttr(attr xml.Attr) error {
	return mxml.UnmarshalAttr(attr, StatusCodec(), s)
}

// Level is an enumeration whose LevelLow alias is the numeral "3",
// which is also LevelHigh's numeric code.
type Level int8

const (
	LevelLow    Level = 1
	LevelMedium Level = 2
	LevelHigh   Level = 3
)

// LevelMembers returns the member table for Level.
func LevelMembers() []moniker.Member[Level] {
	return []moniker.Member[Level]{
		{Value: LevelLow, Name: "Low", Alias: "3"},
		{Value: LevelMedium, Name: "Medium", Alias: "medium"},
		{Value: LevelHigh, Name: "High"},
	}
}

// Document carries Status in plain and pointer form.
type Document struct {
	ID       string  `json:"id" yaml:"id" msgpack:"id" cbor:"id" xml:"id"`
	Status   Status  `json:"status" yaml:"status" msgpack:"status" cbor:"status" xml:"status"`
	Previous *Status `json:"previous" yaml:"previous" msgpack:"previous" cbor:"previous" xml:"previous,omitempty"`
}

// NewRegistry returns a registry with Status and Level declared.
func NewRegistry() *moniker.Registry {
	r := moniker.NewRegistry()
	moniker.Register(r, StatusMembers())
	moniker.Register(r, LevelMembers())
	return r
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
