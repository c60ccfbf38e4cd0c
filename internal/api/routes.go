package api

import (
	"net/http"

	"github.com/JaimeStill/discourse/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, runtime *Runtime, domain *Domain) ([]string, error) {
	groups := []routes.Group{
		domain.Cards.routes(),
		domain.Compose.routes(),
	}

	spec, err := newSpecHandler(runtime, groups...)
	if err != nil {
		return nil, err
	}
	groups = append(groups, routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/openapi.json", Handler: spec},
		},
	})

	routes.Register(mux, groups...)
	return routes.Patterns(groups...), nil
}
