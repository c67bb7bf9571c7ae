// Package server composes response header decorators with serverside
// http.Handler middleware chains.
package server

import (
	"net/http"

	"github.com/replyaux/replyaux"
)

// Constructor applies serverside middleware to an http.Handler.
type Constructor func(http.Handler) http.Handler

// Then implements replyaux.ServerMiddleware
func (c Constructor) Then(next http.Handler) http.Handler {
	return c(next)
}

// Wrap adapts a response header decorator into a Constructor so that it
// can participate in a Chain alongside arbitrary middleware.
func Wrap(d replyaux.Decorator) Constructor {
	return d.Then
}

// WrapAll builds a Chain from a sequence of decorators.  Decorators
// earlier in the sequence are outermost: their transformations run last,
// so an earlier replacement wins over a later one for the same name,
// while an earlier fallback yields to a later one.
func WrapAll(ds ...replyaux.Decorator) Chain {
	c := make([]Constructor, 0, len(ds))
	for _, d := range ds {
		c = append(c, Wrap(d))
	}

	return Chain{c: c}
}

// Chain is an immutable sequence of constructors.  This type is
// essentially a bundle of middleware for HTTP servers.
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

// Then applies the given sequence of middleware to the next handler.  In
// keeping with the de facto standard with net/http, if next is nil, then
// http.DefaultServeMux is decorated.
func (c Chain) Then(next http.Handler) http.Handler {
	if len(c.c) > 0 {
		if next == nil {
			next = http.DefaultServeMux
		}

		// apply in reverse order, so that the order of
		// execution matches the order supplied to this chain
		for i := len(c.c) - 1; i >= 0; i-- {
			next = c.c[i](next)
		}
	}

	return next
}

var _ replyaux.ServerMiddleware = Chain{}
