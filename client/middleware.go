// Package client composes response header decorators with middleware for
// the replyaux.Client interface implemented by *http.Client.
package client

import (
	"net/http"

	"github.com/replyaux/replyaux"
)

// Func is a function that implements replyaux.Client.
type Func func(*http.Request) (*http.Response, error)

// Do invokes this function and returns the results
func (f Func) Do(request *http.Request) (*http.Response, error) {
	return f(request)
}

var _ replyaux.Client = Func(nil)

// Constructor applies clientside middleware to a replyaux.Client.
type Constructor func(replyaux.Client) replyaux.Client

// Then applies this constructor to the given client
func (c Constructor) Then(next replyaux.Client) replyaux.Client {
	return c(next)
}

// Wrap adapts a response header decorator into a Constructor.  The inner
// client's errors pass through untouched; only successful responses are
// transformed.
func Wrap(d replyaux.Decorator) Constructor {
	return func(next replyaux.Client) replyaux.Client {
		return Func(func(request *http.Request) (*http.Response, error) {
			response, err := next.Do(request)
			if err != nil {
				return response, err
			}

			if response.Header == nil {
				response.Header = make(http.Header, 1)
			}

			d.ApplyTo(response.Header)
			return response, nil
		})
	}
}

// Chain is an immutable sequence of constructors, a bundle of middleware
// for HTTP clients.
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
// chain.  This chain is not modified.
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

// Then applies the given sequence of middleware to the next client.  If
// next is nil, http.DefaultClient is decorated.
func (c Chain) Then(next replyaux.Client) replyaux.Client {
	if len(c.c) > 0 {
		if next == nil {
			next = http.DefaultClient
		}

		for i := len(c.c) - 1; i >= 0; i-- {
			next = c.c[i](next)
		}
	}

	return next
}
