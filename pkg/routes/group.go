// Package routes declares HTTP route tables as nested groups and registers
// them on a ServeMux.
package routes

import (
	"net/http"

	"github.com/JaimeStill/discourse/pkg/openapi"
)

// Group organizes routes under a common prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		walk("", group, func(pattern string, route Route) {
			mux.HandleFunc(pattern, route.Handler)
		})
	}
}

// Patterns returns the ServeMux patterns the groups register, in
// declaration order.
func Patterns(groups ...Group) []string {
	var out []string
	for _, group := range groups {
		walk("", group, func(pattern string, _ Route) {
			out = append(out, pattern)
		})
	}
	return out
}

// Describe adds every documented route in groups to spec, prefixing paths
// with basePath. Routes without an OpenAPI operation are skipped.
func Describe(spec *openapi.Spec, basePath string, groups ...Group) {
	for _, group := range groups {
		describe(spec, basePath, group)
	}
}

func describe(spec *openapi.Spec, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}
		spec.AddOperation(route.Method, fullPrefix+route.Pattern, route.OpenAPI)
	}
	for _, child := range group.Children {
		describe(spec, fullPrefix, child)
	}
}

func walk(parentPrefix string, group Group, visit func(pattern string, route Route)) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		visit(route.Method+" "+fullPrefix+route.Pattern, route)
	}
	for _, child := range group.Children {
		walk(fullPrefix, child, visit)
	}
}
