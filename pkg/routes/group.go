package routes

import "net/http"

// Group collects routes under a shared path prefix. Child groups nest, with
// prefixes concatenated from the outside in.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register mounts every route in the given groups onto the mux, prefixing
// patterns with the accumulated group prefixes.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		group.mount(mux, "")
	}
}

func (g Group) mount(mux *http.ServeMux, parentPrefix string) {
	prefix := parentPrefix + g.Prefix

	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}

	for _, child := range g.Children {
		child.mount(mux, prefix)
	}
}
