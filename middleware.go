package replyaux

import "net/http"

// ServerMiddleware represents a bundle of decorators for HTTP handlers.
// Decorator, server.Constructor, and server.Chain all implement this
// interface, as does justinas/alice.Chain.
type ServerMiddleware interface {
	Then(http.Handler) http.Handler
}

// ClientMiddleware represents a bundle of decorators for HTTP round
// trippers.  The roundtrip package provides implementations of this
// interface.
type ClientMiddleware interface {
	ThenRoundTrip(http.RoundTripper) http.RoundTripper
}
