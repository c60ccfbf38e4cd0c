package openapi

import "maps"

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {
				Schema: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"error": {Type: "string", Description: "Error message"},
					},
				},
			},
		},
	}
}

// NewComponents creates Components with shared schemas and error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "Page number (1-indexed)", Example: 1},
					"page_size": {Type: "integer", Description: "Results per page", Example: 20},
					"search":    {Type: "string", Description: "Case-insensitive search term"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      errorResponse("Invalid request"),
			"NotFound":        errorResponse("Resource not found"),
			"PayloadTooLarge": errorResponse("Request body exceeds the configured input size"),
		},
	}
}

// PageParams returns the query parameters accepted by paged endpoints.
// maxPageSize is advertised as the page_size maximum.
func PageParams(maxPageSize int) []*Parameter {
	page := QueryParam("page", "integer", "Page number (1-indexed)", false)
	page.Schema.Minimum = Float(1)

	size := QueryParam("page_size", "integer", "Results per page", false)
	size.Schema.Minimum = Float(1)
	size.Schema.Maximum = Float(float64(maxPageSize))

	return []*Parameter{
		page,
		size,
		QueryParam("search", "string", "Case-insensitive search term", false),
	}
}

// Float returns a pointer to f for the optional numeric schema bounds.
func Float(f float64) *float64 {
	return &f
}

// Int returns a pointer to n for the optional length schema bounds.
func Int(n int) *int {
	return &n
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
