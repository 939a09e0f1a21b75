package moniker

import (
	"strconv"
	"strings"
)

// TokenKind identifies the shape of a Token.
type TokenKind uint8

const (
	// TokenString is a text token.
	TokenString TokenKind = iota + 1

	// TokenNumber is an integer token.
	TokenNumber

	// TokenNull is the explicit absence token (JSON null, YAML ~, msgpack nil).
	TokenNull
)

func (k TokenKind) String() string {
	switch k {
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenNull:
		return "null"
	default:
		return "invalid"
	}
}

// Token is one atomic unit of an external encoding as seen by a Codec.
type Token struct {
	Kind   TokenKind
	Text   string // set for TokenString
	Number int64  // set for TokenNumber
}

// StringToken returns a text token.
func StringToken(s string) Token {
	return Token{Kind: TokenString, Text: s}
}

// NumberToken returns an integer token.
func NumberToken(n int64) Token {
	return Token{Kind: TokenNumber, Number: n}
}

// NullToken returns the absence token.
func NullToken() Token {
	return Token{Kind: TokenNull}
}

// IsNull reports whether t is the absence token.
func (t Token) IsNull() bool {
	return t.Kind == TokenNull
}

// String returns the normalized text of t: strings verbatim, numbers in base 10.
func (t Token) String() string {
	switch t.Kind {
	case TokenString:
		return t.Text
	case TokenNumber:
		return strconv.FormatInt(t.Number, 10)
	case TokenNull:
		return "null"
	default:
		return ""
	}
}

// TokenReader yields the next token from a host engine's stream.
type TokenReader interface {
	ReadToken() (Token, error)
}

// TokenWriter emits tokens into a host engine's stream.
type TokenWriter interface {
	WriteString(s string) error
	WriteNumber(n int64) error
	WriteNull() error
}

// WriteToken dispatches t to the matching TokenWriter primitive.
func WriteToken(w TokenWriter, t Token) error {
	switch t.Kind {
	case TokenString:
		return w.WriteString(t.Text)
	case TokenNumber:
		return w.WriteNumber(t.Number)
	case TokenNull:
		return w.WriteNull()
	default:
		return newTokenError("token", t.Kind.String())
	}
}

// parseCode parses a base-10 integer literal, tolerating surrounding spaces.
func parseCode(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
