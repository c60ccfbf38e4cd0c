package module

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// Router dispatches on the first path segment to mounted modules. Paths
// that match no module fall through to a native ServeMux.
type Router struct {
	modules map[string]*Module
	native  *http.ServeMux
}

// NewRouter creates a Router with no modules mounted.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler on the native fallback mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers m under its prefix. Mounting a second module on the
// same prefix panics.
func (r *Router) Mount(m *Module) {
	if _, dup := r.modules[m.prefix]; dup {
		panic(fmt.Sprintf("module prefix already mounted: %s", m.prefix))
	}
	r.modules[m.prefix] = m
}

// Prefixes returns the mounted module prefixes in sorted order.
func (r *Router) Prefixes() []string {
	return slices.Sorted(maps.Keys(r.modules))
}

// ServeHTTP hands module requests over with any trailing slash removed.
// Native requests are passed through untouched.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	segment, _, _ := strings.Cut(strings.TrimPrefix(req.URL.Path, "/"), "/")

	if m, ok := r.modules["/"+segment]; ok {
		m.Serve(w, trimTrailingSlash(req))
		return
	}

	r.native.ServeHTTP(w, req)
}

func trimTrailingSlash(req *http.Request) *http.Request {
	path := req.URL.Path
	if len(path) <= 1 || !strings.HasSuffix(path, "/") {
		return req
	}
	return cloneRequest(req, strings.TrimSuffix(path, "/"))
}
