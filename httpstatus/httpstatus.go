// Package httpstatus provides an HTTP status code enumeration that always
// serializes numerically.
//
// Codes read from their number, their declared name ("NotFound") or their
// reason phrase ("Not Found"), and always write as the number (404).
package httpstatus

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/zoobzio/moniker"
	"github.com/zoobzio/moniker/json"
)

// Code is an HTTP response status code.
type Code int

// Status codes, named after their reason phrases.
const (
	Continue                      Code = http.StatusContinue
	SwitchingProtocols            Code = http.StatusSwitchingProtocols
	OK                            Code = http.StatusOK
	Created                       Code = http.StatusCreated
	Accepted                      Code = http.StatusAccepted
	NoContent                     Code = http.StatusNoContent
	PartialContent                Code = http.StatusPartialContent
	MovedPermanently              Code = http.StatusMovedPermanently
	Found                         Code = http.StatusFound
	SeeOther                      Code = http.StatusSeeOther
	NotModified                   Code = http.StatusNotModified
	TemporaryRedirect             Code = http.StatusTemporaryRedirect
	PermanentRedirect             Code = http.StatusPermanentRedirect
	BadRequest                    Code = http.StatusBadRequest
	Unauthorized                  Code = http.StatusUnauthorized
	Forbidden                     Code = http.StatusForbidden
	NotFound                      Code = http.StatusNotFound
	MethodNotAllowed              Code = http.StatusMethodNotAllowed
	NotAcceptable                 Code = http.StatusNotAcceptable
	RequestTimeout                Code = http.StatusRequestTimeout
	Conflict                      Code = http.StatusConflict
	Gone                          Code = http.StatusGone
	PreconditionFailed            Code = http.StatusPreconditionFailed
	RequestEntityTooLarge         Code = http.StatusRequestEntityTooLarge
	UnsupportedMediaType          Code = http.StatusUnsupportedMediaType
	UnprocessableEntity           Code = http.StatusUnprocessableEntity
	TooManyRequests               Code = http.StatusTooManyRequests
	InternalServerError           Code = http.StatusInternalServerError
	NotImplemented                Code = http.StatusNotImplemented
	BadGateway                    Code = http.StatusBadGateway
	ServiceUnavailable            Code = http.StatusServiceUnavailable
	GatewayTimeout                Code = http.StatusGatewayTimeout
	HTTPVersionNotSupported       Code = http.StatusHTTPVersionNotSupported
	NetworkAuthenticationRequired Code = http.StatusNetworkAuthenticationRequired
)

var names = []struct {
	code Code
	name string
}{
	{Continue, "Continue"},
	{SwitchingProtocols, "SwitchingProtocols"},
	{OK, "OK"},
	{Created, "Created"},
	{Accepted, "Accepted"},
	{NoContent, "NoContent"},
	{PartialContent, "PartialContent"},
	{MovedPermanently, "MovedPermanently"},
	{Found, "Found"},
	{SeeOther, "SeeOther"},
	{NotModified, "NotModified"},
	{TemporaryRedirect, "TemporaryRedirect"},
	{PermanentRedirect, "PermanentRedirect"},
	{BadRequest, "BadRequest"},
	{Unauthorized, "Unauthorized"},
	{Forbidden, "Forbidden"},
	{NotFound, "NotFound"},
	{MethodNotAllowed, "MethodNotAllowed"},
	{NotAcceptable, "NotAcceptable"},
	{RequestTimeout, "RequestTimeout"},
	{Conflict, "Conflict"},
	{Gone, "Gone"},
	{PreconditionFailed, "PreconditionFailed"},
	{RequestEntityTooLarge, "RequestEntityTooLarge"},
	{UnsupportedMediaType, "UnsupportedMediaType"},
	{UnprocessableEntity, "UnprocessableEntity"},
	{TooManyRequests, "TooManyRequests"},
	{InternalServerError, "InternalServerError"},
	{NotImplemented, "NotImplemented"},
	{BadGateway, "BadGateway"},
	{ServiceUnavailable, "ServiceUnavailable"},
	{GatewayTimeout, "GatewayTimeout"},
	{HTTPVersionNotSupported, "HTTPVersionNotSupported"},
	{NetworkAuthenticationRequired, "NetworkAuthenticationRequired"},
}

// Members returns the member table. Aliases are the standard reason phrases.
func Members() []moniker.Member[Code] {
	out := make([]moniker.Member[Code], 0, len(names))
	for _, n := range names {
		out = append(out, moniker.Member[Code]{
			Value: n.code,
			Name:  n.name,
			Alias: http.StatusText(int(n.code)),
		})
	}
	return out
}

// Codec returns the shared numeric codec for Code.
var Codec = sync.OnceValue(func() *moniker.Codec[Code] {
	return moniker.New(Members(), moniker.WithNumeric())
})

// Register declares Code on r as a numeric enumeration.
func Register(r *moniker.Registry) {
	moniker.Register(r, Members(), moniker.WithNumeric())
}

// String returns the declared name, or the number for undeclared codes.
func (c Code) String() string {
	if name, ok := Codec().Index().Name(c); ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// Text returns the reason phrase.
func (c Code) Text() string {
	return http.StatusText(int(c))
}

// MarshalJSON implements json.Marshaler.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(Codec(), c)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Code) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(Codec(), data, c)
}
