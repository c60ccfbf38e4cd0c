package web

import "net/http"

// Router is a ServeMux for server-rendered pages. Requests that match no
// registered pattern go to the fallback, which renders the site's own
// not-found page instead of the plain-text default.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
	patterns []string
}

// NewRouter creates a Router with no fallback.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// SetFallback configures the handler for unmatched routes.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

// Handle registers a handler for the given pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
	r.patterns = append(r.patterns, pattern)
}

// HandleFunc registers a handler function for the given pattern.
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.Handle(pattern, handler)
}

// Patterns returns the registered patterns in registration order.
func (r *Router) Patterns() []string {
	return append([]string(nil), r.patterns...)
}

// ServeHTTP dispatches to the matching pattern, or to the fallback when
// one is set and nothing matches.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if _, pattern := r.mux.Handler(req); pattern == "" && r.fallback != nil {
		r.fallback(w, req)
		return
	}
	r.mux.ServeHTTP(w, req)
}
