// Package replyaux provides immutable response header decorators that wrap
// HTTP processing units: serverside http.Handlers and clientside
// http.RoundTrippers or Clients.  A decorator holds a single validated
// name/value pair together with a mutation policy, and transforms the
// outgoing response strictly after the wrapped unit has completed
// successfully.  The wrapped unit's matching, failure, and cancellation
// behavior is never altered.
package replyaux

import "net/http"

// Decorator is a validated response header transformation.  The only
// implementations are WithHeader and WithDefaultHeader, obtained from the
// Header and DefaultHeader constructors.  This interface cannot be
// implemented outside this package.
//
// Decorators are immutable values.  They may be shared by any number of
// concurrent requests without synchronization, since every application
// mutates only the header collection local to one response.
type Decorator interface {
	// ApplyTo mutates the given header collection according to this
	// decorator's policy.  It cannot fail: the name and value were
	// validated when the decorator was constructed.
	ApplyTo(http.Header)

	// Then wraps a handler so that each response it produces passes
	// through this decorator's transformation.  Decorator implements
	// ServerMiddleware through this method.
	Then(http.Handler) http.Handler

	// RoundTrip wraps a round tripper so that each successful response
	// passes through this decorator's transformation.  Errors from the
	// inner round tripper pass through untouched.
	RoundTrip(http.RoundTripper) http.RoundTripper

	isDecorator()
}

// WithHeader is a Decorator that unconditionally sets a header: any
// entries for the name left by the wrapped unit are discarded and
// replaced by exactly one entry.  When decorators for the same name are
// nested, the outermost one runs last and wins.
//
// The zero value is valid and applies no transformation, but only the
// Header constructor produces usable instances.
type WithHeader struct {
	name  HeaderName
	value HeaderValue
}

// Header constructs a replacement decorator for the given name and value.
// The pair is validated here, once, so a malformed header surfaces as a
// configuration error instead of a per-request condition.
func Header(name, value string) (WithHeader, error) {
	hn, hv, err := validateNameValue(name, value)
	if err != nil {
		return WithHeader{}, err
	}

	return WithHeader{name: hn, value: hv}, nil
}

// MustHeader is like Header, but panics on a validation error.  It is
// intended for hardcoded route configuration, where an invalid header is
// a defect that should fail at load time.
func MustHeader(name, value string) WithHeader {
	w, err := Header(name, value)
	if err != nil {
		panic(err)
	}

	return w
}

// Name returns the canonicalized header name this decorator sets
func (w WithHeader) Name() HeaderName { return w.name }

// Value returns the header value this decorator sets
func (w WithHeader) Value() HeaderValue { return w.value }

// ApplyTo performs an insert-replace: after it returns, h contains
// exactly one entry for the name regardless of how many existed before.
// Applying the same decorator again is a no-op.
func (w WithHeader) ApplyTo(h http.Header) {
	if len(w.name.name) > 0 {
		// the name is already canonicalized
		h[w.name.name] = []string{w.value.value}
	}
}

// Then wraps next so that the replacement runs when each response's
// headers are committed
func (w WithHeader) Then(next http.Handler) http.Handler {
	return decorateHandler(w, next)
}

// RoundTrip wraps next so that the replacement runs on each successful
// response.  If next is nil, http.DefaultTransport is decorated.
func (w WithHeader) RoundTrip(next http.RoundTripper) http.RoundTripper {
	return decorateRoundTripper(w, next)
}

func (WithHeader) isDecorator() {}

// WithDefaultHeader is a Decorator that sets a header only when the
// wrapped unit left no entry for the name.  An existing entry, whether
// set by a handler, by the origin, or by a decorator nested closer to
// the response producer, is never overwritten: the writer nearest the
// source wins.
//
// The zero value is valid and applies no transformation, but only the
// DefaultHeader constructor produces usable instances.
type WithDefaultHeader struct {
	name  HeaderName
	value HeaderValue
}

// DefaultHeader constructs a fallback decorator for the given name and
// value.  Validation behaves exactly as in Header.
func DefaultHeader(name, value string) (WithDefaultHeader, error) {
	hn, hv, err := validateNameValue(name, value)
	if err != nil {
		return WithDefaultHeader{}, err
	}

	return WithDefaultHeader{name: hn, value: hv}, nil
}

// MustDefaultHeader is like DefaultHeader, but panics on a validation
// error.  Intended for hardcoded route configuration.
func MustDefaultHeader(name, value string) WithDefaultHeader {
	w, err := DefaultHeader(name, value)
	if err != nil {
		panic(err)
	}

	return w
}

// Name returns the canonicalized header name this decorator defaults
func (w WithDefaultHeader) Name() HeaderName { return w.name }

// Value returns the fallback value
func (w WithDefaultHeader) Value() HeaderValue { return w.value }

// ApplyTo performs an entry-or-insert: if h has any entry for the name,
// nothing happens; otherwise exactly one entry is inserted.  Applying
// the same decorator again never changes the outcome of the first
// application.
func (w WithDefaultHeader) ApplyTo(h http.Header) {
	if len(w.name.name) == 0 {
		return
	}

	if len(h[w.name.name]) == 0 {
		h[w.name.name] = []string{w.value.value}
	}
}

// Then wraps next so that the fallback is evaluated when each response's
// headers are committed, after the inner handler has set its own
func (w WithDefaultHeader) Then(next http.Handler) http.Handler {
	return decorateHandler(w, next)
}

// RoundTrip wraps next so that the fallback is evaluated on each
// successful response.  If next is nil, http.DefaultTransport is
// decorated.
func (w WithDefaultHeader) RoundTrip(next http.RoundTripper) http.RoundTripper {
	return decorateRoundTripper(w, next)
}

func (WithDefaultHeader) isDecorator() {}

// headerRoundTripper is the http.RoundTripper decorator returned by the
// RoundTrip methods
type headerRoundTripper struct {
	d    Decorator
	next http.RoundTripper
}

func decorateRoundTripper(d Decorator, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return headerRoundTripper{
		d:    d,
		next: next,
	}
}

// RoundTrip delegates to the inner round tripper and transforms the
// response headers only on success.  A failed round trip, including one
// aborted by context cancellation, passes through with no transformation
// attempted.
func (hrt headerRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	response, err := hrt.next.RoundTrip(request)
	if err != nil {
		return response, err
	}

	if response.Header == nil {
		response.Header = make(http.Header, 1)
	}

	hrt.d.ApplyTo(response.Header)
	return response, nil
}
