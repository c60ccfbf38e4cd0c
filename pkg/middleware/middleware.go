// Package middleware provides the HTTP middleware shared by the service
// modules: request logging with request ids, panic recovery, and CORS.
package middleware

import (
	"net/http"
	"slices"
)

// Func wraps an http.Handler with additional behavior.
type Func func(http.Handler) http.Handler

// Chain is an ordered middleware stack. The first Func added runs
// outermost. The zero value is an empty chain ready for use.
type Chain struct {
	stack []Func
}

// Use appends fns to the chain.
func (c *Chain) Use(fns ...Func) {
	c.stack = append(c.stack, fns...)
}

// Len reports how many middleware the chain holds.
func (c *Chain) Len() int {
	return len(c.stack)
}

// Apply wraps handler with every middleware in the chain.
func (c *Chain) Apply(handler http.Handler) http.Handler {
	for _, fn := range slices.Backward(c.stack) {
		handler = fn(handler)
	}
	return handler
}
