package json_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/zoobzio/moniker"
	"github.com/zoobzio/moniker/json"
	mtesting "github.com/zoobzio/moniker/testing"
)

func TestNew(t *testing.T) {
	f := json.New()
	if f == nil {
		t.Error("New() should return non-nil format")
	}
}

func TestContentType(t *testing.T) {
	f := json.New()
	if f.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", f.ContentType(), "application/json")
	}
}

func TestEncodeToken(t *testing.T) {
	f := json.New()

	tests := []struct {
		name string
		tok  moniker.Token
		want string
	}{
		{"string", moniker.StringToken("active"), `"active"`},
		{"escaped", moniker.StringToken(`say "hi"`), `"say \"hi\""`},
		{"number", moniker.NumberToken(99), `99`},
		{"negative", moniker.NumberToken(-1), `-1`},
		{"null", moniker.NullToken(), `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.EncodeToken(tt.tok)
			if err != nil {
				t.Fatalf("EncodeToken() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("EncodeToken() = %s, want %s", got, tt.want)
			}
		})
	}

	if _, err := f.EncodeToken(moniker.Token{}); !errors.Is(err, moniker.ErrUnexpectedToken) {
		t.Errorf("EncodeToken(zero) error = %v, want ErrUnexpectedToken", err)
	}
}

func TestDecodeToken(t *testing.T) {
	f := json.New()

	tests := []struct {
		name string
		data string
		want moniker.Token
	}{
		{"string", `"active"`, moniker.StringToken("active")},
		{"numeral string", `"3"`, moniker.StringToken("3")},
		{"number", `99`, moniker.NumberToken(99)},
		{"padded", " 7 \n", moniker.NumberToken(7)},
		{"null", `null`, moniker.NullToken()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.DecodeToken([]byte(tt.data))
			if err != nil {
				t.Fatalf("DecodeToken() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeToken(%s) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestDecodeToken_Unexpected(t *testing.T) {
	f := json.New()

	for _, data := range []string{`true`, `{"a":1}`, `[1]`, `1.5`, `1e3`} {
		t.Run(data, func(t *testing.T) {
			if _, err := f.DecodeToken([]byte(data)); !errors.Is(err, moniker.ErrUnexpectedToken) {
				t.Errorf("DecodeToken(%s) error = %v, want ErrUnexpectedToken", data, err)
			}
		})
	}

	if _, err := f.DecodeToken([]byte(`{`)); err == nil {
		t.Error("DecodeToken() should fail on malformed input")
	}

	for _, data := range []string{`"active" {`, `"active" "inactive"`, `1 2`, `null ]`} {
		t.Run("trailing/"+data, func(t *testing.T) {
			if _, err := f.DecodeToken([]byte(data)); !errors.Is(err, moniker.ErrUnexpectedToken) {
				t.Errorf("DecodeToken(%s) error = %v, want ErrUnexpectedToken", data, err)
			}
		})
	}
}

func TestDecodeToken_TrailingWhitespace(t *testing.T) {
	tok, err := json.New().DecodeToken([]byte("\"active\" \n\t"))
	if err != nil {
		t.Fatalf("DecodeToken() error: %v", err)
	}
	if tok != moniker.StringToken("active") {
		t.Errorf("DecodeToken() = %+v, want active", tok)
	}
}

func TestUnmarshal_TrailingData(t *testing.T) {
	s := mtesting.StatusInactive
	if err := json.Unmarshal(mtesting.StatusCodec(), []byte(`"active" {`), &s); !errors.Is(err, moniker.ErrUnexpectedToken) {
		t.Fatalf("Unmarshal() error = %v, want ErrUnexpectedToken", err)
	}
	if s != mtesting.StatusInactive {
		t.Errorf("Unmarshal() modified dst on error: %v", s)
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := mtesting.StatusCodec()

	data, err := json.Marshal(c, mtesting.StatusActive)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"active"` {
		t.Errorf("Marshal(Active) = %s", data)
	}

	var s mtesting.Status
	if err := json.Unmarshal(c, []byte(`99`), &s); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if s != mtesting.StatusUnknown {
		t.Errorf("Unmarshal(99) = %v, want Unknown", s)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  mtesting.Document
		want string
	}{
		{
			name: "alias and null",
			doc:  mtesting.Document{ID: "a", Status: mtesting.StatusActive},
			want: `{"id":"a","status":"active","previous":null}`,
		},
		{
			name: "numeric and pointer",
			doc:  mtesting.Document{ID: "b", Status: mtesting.StatusUnknown, Previous: mtesting.Ptr(mtesting.StatusInactive)},
			want: `{"id":"b","status":99,"previous":"inactive"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := gojson.Marshal(tt.doc)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var got mtesting.Document
			if err := gojson.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if got.ID != tt.doc.ID || got.Status != tt.doc.Status {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.doc)
			}
			if (got.Previous == nil) != (tt.doc.Previous == nil) {
				t.Fatalf("Previous = %v, want %v", got.Previous, tt.doc.Previous)
			}
			if got.Previous != nil && *got.Previous != *tt.doc.Previous {
				t.Errorf("Previous = %v, want %v", *got.Previous, *tt.doc.Previous)
			}
		})
	}
}

func TestDocument_ReadFallbacks(t *testing.T) {
	var doc mtesting.Document
	data := `{"id":"c","status":"Inactive","previous":"99"}`
	if err := gojson.Unmarshal([]byte(data), &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if doc.Status != mtesting.StatusInactive {
		t.Errorf("Status = %v, want Inactive", doc.Status)
	}
	if doc.Previous == nil || *doc.Previous != mtesting.StatusUnknown {
		t.Errorf("Previous = %v, want Unknown", doc.Previous)
	}
}

func TestDocument_Rejects(t *testing.T) {
	var doc mtesting.Document
	err := gojson.Unmarshal([]byte(`{"status":"bogus"}`), &doc)
	if !errors.Is(err, moniker.ErrUnsupportedValue) {
		t.Errorf("Unmarshal(bogus) error = %v, want ErrUnsupportedValue", err)
	}

	_, err = gojson.Marshal(mtesting.Document{Status: mtesting.Status(5)})
	if !errors.Is(err, moniker.ErrUnsupportedValue) {
		t.Errorf("Marshal(5) error = %v, want ErrUnsupportedValue", err)
	}
}

func TestTokenStream(t *testing.T) {
	c := mtesting.StatusCodec()
	opt := c.Optional()

	var buf bytes.Buffer
	w := json.NewTokenWriter(&buf)

	if err := c.Encode(w, mtesting.StatusActive); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if err := c.Encode(w, mtesting.StatusUnknown); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if err := opt.Encode(w, moniker.None[mtesting.Status]()); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := "\"active\"\n99\nnull\n"
	if buf.String() != want {
		t.Errorf("stream = %q, want %q", buf.String(), want)
	}

	r := json.NewTokenReader(&buf)

	if v, err := c.Decode(r); err != nil || v != mtesting.StatusActive {
		t.Errorf("Decode() = %v, %v, want Active", v, err)
	}
	if v, err := c.Decode(r); err != nil || v != mtesting.StatusUnknown {
		t.Errorf("Decode() = %v, %v, want Unknown", v, err)
	}
	if v, err := opt.Decode(r); err != nil || v.Valid {
		t.Errorf("Decode() = %+v, %v, want None", v, err)
	}
	if _, err := c.Decode(r); !errors.Is(err, io.EOF) {
		t.Errorf("Decode() at end error = %v, want io.EOF", err)
	}
}
