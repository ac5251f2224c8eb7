// Package routes declares HTTP endpoints as data so handlers can expose
// their surface without touching a mux directly.
package routes

import "net/http"

// Route pairs an HTTP method and path pattern with the handler that serves it.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
