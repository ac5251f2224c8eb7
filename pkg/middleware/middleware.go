// Package middleware provides the HTTP middleware stack and the standard
// request logging and CORS wrappers.
package middleware

import "net/http"

// System accumulates middleware and wraps a terminal handler with it.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	wrappers []func(http.Handler) http.Handler
}

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

func (s *stack) Use(fn func(http.Handler) http.Handler) {
	s.wrappers = append(s.wrappers, fn)
}

// Apply wraps handler so that middleware runs in registration order: the
// first Use is the outermost wrapper.
func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.wrappers) - 1; i >= 0; i-- {
		handler = s.wrappers[i](handler)
	}
	return handler
}
