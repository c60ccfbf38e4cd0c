package provider

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/JaimeStill/discourse/internal/composer"
)

type gemini struct {
	client *genai.Client
	model  string
}

func dialGemini(model, baseURL string) composer.Dialer {
	return func(ctx context.Context, credential string) (composer.Generator, error) {
		cc := &genai.ClientConfig{
			APIKey:  credential,
			Backend: genai.BackendGeminiAPI,
		}
		if baseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
		}

		client, err := genai.NewClient(ctx, cc)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}

		return &gemini{client: client, model: model}, nil
	}
}

func (g *gemini) Generate(ctx context.Context, req composer.Request) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    GeminiSchema(req.Schema),
	})
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

// GeminiSchema converts a composer schema to an object schema whose
// properties are all required strings.
func GeminiSchema(s composer.Schema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: f.Description,
		}
	}

	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		Required:         s.Required(),
		PropertyOrdering: s.Required(),
	}
}
