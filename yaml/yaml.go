// Package yaml provides a YAML token format for moniker codecs.
//
// Enumerations wire it into yaml.v3's node-based hooks:
//
//	func (s Status) MarshalYAML() (any, error) {
//	    return yaml.MarshalNode(statusCodec, s)
//	}
//
//	func (s *Status) UnmarshalYAML(n *yaml.Node) error {
//	    return yaml.UnmarshalNode(statusCodec, n, s)
//	}
package yaml

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/zoobzio/moniker"
	"gopkg.in/yaml.v3"
)

const formatName = "yaml"

// YAML core schema short tags.
const (
	tagStr  = "!!str"
	tagInt  = "!!int"
	tagNull = "!!null"
)

// yamlFormat implements moniker.Format for YAML.
type yamlFormat struct{}

// New returns a YAML format.
func New() moniker.Format {
	return &yamlFormat{}
}

// ContentType returns the MIME type for YAML.
func (f *yamlFormat) ContentType() string {
	return "application/yaml"
}

// EncodeToken encodes tok as a single YAML scalar document.
func (f *yamlFormat) EncodeToken(tok moniker.Token) ([]byte, error) {
	n, err := Node(tok)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

// DecodeToken decodes a single YAML scalar document into a token.
// An empty stream is the null token; a second document is rejected.
func (f *yamlFormat) DecodeToken(data []byte) (moniker.Token, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var n yaml.Node
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return moniker.NullToken(), nil
		}
		return moniker.Token{}, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return moniker.Token{}, moniker.NewTokenError(formatName, "trailing document")
	}
	if n.Kind == 0 {
		return moniker.NullToken(), nil
	}
	return FromNode(&n)
}

// Node returns the scalar node for tok.
// String tokens are tagged !!str so numerals and keywords stay quoted.
func Node(tok moniker.Token) (*yaml.Node, error) {
	switch tok.Kind {
	case moniker.TokenString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: tok.Text}, nil
	case moniker.TokenNumber:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagInt, Value: strconv.FormatInt(tok.Number, 10)}, nil
	case moniker.TokenNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagNull, Value: "null"}, nil
	default:
		return nil, moniker.NewTokenError(formatName, tok.Kind.String())
	}
}

// FromNode converts a scalar node, or a document holding one, into a token.
func FromNode(n *yaml.Node) (moniker.Token, error) {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return moniker.NullToken(), nil
		}
		n = n.Content[0]
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return moniker.Token{}, moniker.NewTokenError(formatName, kindName(n.Kind))
	}

	switch tag := n.ShortTag(); tag {
	case tagStr:
		return moniker.StringToken(n.Value), nil
	case tagInt:
		var v int64
		if err := n.Decode(&v); err != nil {
			return moniker.Token{}, moniker.NewTokenError(formatName, "int "+n.Value)
		}
		return moniker.NumberToken(v), nil
	case tagNull:
		return moniker.NullToken(), nil
	default:
		return moniker.Token{}, moniker.NewTokenError(formatName, tag)
	}
}

// MarshalNode writes v with w and returns its node, for MarshalYAML.
func MarshalNode[T any](w moniker.Writer[T], v T) (*yaml.Node, error) {
	tok, err := w.Write(v)
	if err != nil {
		return nil, err
	}
	return Node(tok)
}

// UnmarshalNode reads n into dst with r, for UnmarshalYAML.
func UnmarshalNode[T any](r moniker.Reader[T], n *yaml.Node, dst *T) error {
	tok, err := FromNode(n)
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

// Marshal encodes v as a YAML document using w.
func Marshal[T any](w moniker.Writer[T], v T) ([]byte, error) {
	return moniker.Marshal(New(), w, v)
}

// Unmarshal decodes a YAML document into dst using r.
func Unmarshal[T any](r moniker.Reader[T], data []byte, dst *T) error {
	return moniker.Unmarshal(New(), r, data, dst)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
