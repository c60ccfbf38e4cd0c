package composer

import "context"

// Field is a required, string-typed property of a response schema.
type Field struct {
	Name        string
	Description string
}

// Schema describes the JSON object a generator must return.
type Schema struct {
	Name   string
	Fields []Field
}

// Required returns the names of every field.
func (s Schema) Required() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Request is a single-turn, schema-constrained generation request.
type Request struct {
	Prompt            string
	SystemInstruction string
	Schema            Schema
}

// Generator sends a request to a generative language service and returns
// the raw text of its answer.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Dialer builds a Generator bound to a credential. It is called once per
// request so a rotated credential takes effect immediately.
type Dialer func(ctx context.Context, credential string) (Generator, error)

// CredentialSource returns the current credential, or "" when none is
// configured.
type CredentialSource func() string
