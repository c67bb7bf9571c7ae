package replyaux

import (
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// HeaderName is a validated HTTP header field name.  The name is stored
// in canonicalized form, which makes comparison of two HeaderName
// instances case-insensitive.  A HeaderName is immutable once created.
type HeaderName struct {
	name string
}

// NewHeaderName validates and canonicalizes an HTTP header field name.
// Names that are empty or contain characters outside the token grammar
// result in an *InvalidHeaderNameError.
func NewHeaderName(name string) (HeaderName, error) {
	if !httpguts.ValidHeaderFieldName(name) {
		return HeaderName{}, &InvalidHeaderNameError{Name: name}
	}

	return HeaderName{
		name: http.CanonicalHeaderKey(name),
	}, nil
}

// String returns the canonicalized name
func (hn HeaderName) String() string {
	return hn.name
}

// HeaderValue is a validated HTTP header field value.  Beyond rejecting
// forbidden bytes such as control characters, the value is opaque.  A
// HeaderValue is immutable once created.
type HeaderValue struct {
	value string
}

// NewHeaderValue validates an HTTP header field value.  Values containing
// forbidden bytes, such as NUL or a newline, result in an
// *InvalidHeaderValueError.  An empty value is valid.
func NewHeaderValue(value string) (HeaderValue, error) {
	if !httpguts.ValidHeaderFieldValue(value) {
		return HeaderValue{}, &InvalidHeaderValueError{Value: value}
	}

	return HeaderValue{
		value: value,
	}, nil
}

// String returns the value verbatim
func (hv HeaderValue) String() string {
	return hv.value
}

// validateNameValue converts a raw name/value pair into canonical tokens.
// This is the single validation path used by every decorator constructor.
func validateNameValue(name, value string) (HeaderName, HeaderValue, error) {
	hn, err := NewHeaderName(name)
	if err != nil {
		return HeaderName{}, HeaderValue{}, err
	}

	hv, err := NewHeaderValue(value)
	if err != nil {
		return HeaderName{}, HeaderValue{}, err
	}

	return hn, hv, nil
}
