// Package table loads enumeration member tables from configuration files.
//
// A table lists each constant's name, numeric code and optional alias. JSON
// tables may carry comments and trailing commas:
//
//	{
//	    // Account lifecycle states.
//	    "members": [
//	        {"name": "Active", "code": 1, "alias": "active"},
//	        {"name": "Inactive", "code": 2, "alias": "inactive"},
//	        {"name": "Unknown", "code": 99},
//	    ],
//	}
//
// The YAML form uses the same keys.
package table

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"github.com/zoobzio/moniker"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTable indicates a table file is malformed or inconsistent with
// the enumeration it is loaded into.
var ErrInvalidTable = errors.New("invalid member table")

// Table is the parsed form of a table file.
type Table struct {
	Members []Entry `json:"members" yaml:"members"`
}

// Entry is one constant in a table file.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Code  *int64 `json:"code" yaml:"code"`
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// TableError reports a malformed table or entry.
type TableError struct {
	Entry  int    // Zero-based entry index, or -1 for the whole table
	Reason string // What is wrong
	Cause  error  // Parser error, if any
}

func (e *TableError) Error() string {
	msg := ErrInvalidTable.Error()
	if e.Entry >= 0 {
		msg = fmt.Sprintf("%s: entry %d", msg, e.Entry)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TableError) Unwrap() error {
	return ErrInvalidTable
}

func newTableError(entry int, reason string, cause error) error {
	return &TableError{Entry: entry, Reason: reason, Cause: cause}
}

// ParseJSON parses a JSON table, tolerating comments and trailing commas.
func ParseJSON(data []byte) (*Table, error) {
	var t Table
	if err := json.Unmarshal(jsonc.ToJSON(data), &t); err != nil {
		return nil, newTableError(-1, "json", err)
	}
	return &t, nil
}

// ParseYAML parses a YAML table.
func ParseYAML(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, newTableError(-1, "yaml", err)
	}
	return &t, nil
}

// Members converts t into a member table for E.
// Every entry needs a name and a code that fits E.
func Members[E moniker.Integer](t *Table) ([]moniker.Member[E], error) {
	if len(t.Members) == 0 {
		return nil, newTableError(-1, "no members", nil)
	}

	out := make([]moniker.Member[E], 0, len(t.Members))
	for i, e := range t.Members {
		if e.Name == "" {
			return nil, newTableError(i, "missing name", nil)
		}
		if e.Code == nil {
			return nil, newTableError(i, fmt.Sprintf("missing code for %s", e.Name), nil)
		}
		v, ok := moniker.FromCode[E](*e.Code)
		if !ok {
			return nil, newTableError(i, fmt.Sprintf("code %d out of range for %s", *e.Code, e.Name), nil)
		}
		out = append(out, moniker.Member[E]{Value: v, Name: e.Name, Alias: e.Alias})
	}
	return out, nil
}

// JSONLoader returns a Loader parsing a JSON table on demand.
func JSONLoader[E moniker.Integer](data []byte) moniker.Loader[E] {
	return loader[E](func() (*Table, error) { return ParseJSON(data) })
}

// YAMLLoader returns a Loader parsing a YAML table on demand.
func YAMLLoader[E moniker.Integer](data []byte) moniker.Loader[E] {
	return loader[E](func() (*Table, error) { return ParseYAML(data) })
}

// FileLoader returns a Loader reading a table file on demand.
// Files ending in .yaml or .yml parse as YAML; anything else as JSON.
func FileLoader[E moniker.Integer](path string) moniker.Loader[E] {
	return loader[E](func() (*Table, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return ParseYAML(data)
		default:
			return ParseJSON(data)
		}
	})
}

// RegisterFile declares E on r with members read from path on first use.
func RegisterFile[E moniker.Integer](r *moniker.Registry, path string, opts ...moniker.Option) {
	moniker.RegisterLoader(r, FileLoader[E](path), opts...)
}

func loader[E moniker.Integer](parse func() (*Table, error)) moniker.Loader[E] {
	return func() ([]moniker.Member[E], error) {
		t, err := parse()
		if err != nil {
			return nil, err
		}
		return Members[E](t)
	}
}
