// Package roundtrip composes response header decorators with clientside
// http.RoundTripper middleware chains.
package roundtrip

import (
	"net/http"

	"github.com/replyaux/replyaux"
)

// Constructor applies clientside middleware to an http.RoundTripper.
//
// IMPORTANT: if a constructor returns an http.RoundTripper that does not
// provide a CloseIdleConnections method, then http.Client will not be
// able to close idle connections through that round tripper.  The Chain
// type and the Wrap function preserve CloseIdleConnections behavior at
// each level of decoration.  The PreserveCloseIdler function allows
// custom constructors to do the same.
type Constructor func(http.RoundTripper) http.RoundTripper

// Then implements Middleware
func (c Constructor) Then(next http.RoundTripper) http.RoundTripper {
	return c(next)
}

// Wrap adapts a response header decorator into a Constructor so that it
// can participate in a Chain alongside arbitrary middleware.  The inner
// round tripper's errors pass through the decorator untouched; only
// successful responses are transformed.
func Wrap(d replyaux.Decorator) Constructor {
	return func(next http.RoundTripper) http.RoundTripper {
		return PreserveCloseIdler(next, d.RoundTrip(next))
	}
}

// WrapAll builds a Chain from a sequence of decorators.  Decorators
// earlier in the sequence are outermost: their transformations run last
// on the response path.
func WrapAll(ds ...replyaux.Decorator) Chain {
	c := make([]Constructor, 0, len(ds))
	for _, d := range ds {
		c = append(c, Wrap(d))
	}

	return Chain{c: c}
}

// Chain is an immutable sequence of constructors.  This type is
// essentially a bundle of middleware for HTTP clients.
type Chain struct {
	c []Constructor
}

// NewChain creates a chain from a sequence of constructors.  The
// constructors are always applied in the order presented here.
func NewChain(c ...Constructor) Chain {
	return Chain{
		c: append([]Constructor{}, c...),
	}
}

// Append adds additional Constructors to this chain, and returns the new
// chain.  This chain is not modified.  If more has zero length, this
// chain is returned.
func (c Chain) Append(more ...Constructor) Chain {
	if len(more) > 0 {
		return Chain{
			c: append(
				append([]Constructor{}, c.c...),
				more...,
			),
		}
	}

	return c
}

// Extend is like Append, except that the additional Constructors come
// from another chain
func (c Chain) Extend(more Chain) Chain {
	return c.Append(more.c...)
}

// Then applies the given sequence of middleware to the next round
// tripper.  In keeping with the de facto standard with net/http, if next
// is nil, then http.DefaultTransport is decorated.
//
// CloseIdleConnections behavior of next is preserved at each level of
// decoration, so that http.Client.CloseIdleConnections works through a
// mix of constructors that do and do not care about that method.
func (c Chain) Then(next http.RoundTripper) http.RoundTripper {
	if len(c.c) > 0 {
		if next == nil {
			next = http.DefaultTransport
		}

		for i := len(c.c) - 1; i >= 0; i-- {
			next = PreserveCloseIdler(next, c.c[i](next))
		}
	}

	return next
}

// ThenRoundTrip implements replyaux.ClientMiddleware
func (c Chain) ThenRoundTrip(next http.RoundTripper) http.RoundTripper {
	return c.Then(next)
}

var _ replyaux.ClientMiddleware = Chain{}
