package provider

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/JaimeStill/discourse/internal/composer"
)

type openAI struct {
	client openai.Client
	model  string
}

func dialOpenAI(model, baseURL string) composer.Dialer {
	return func(_ context.Context, credential string) (composer.Generator, error) {
		opts := []option.RequestOption{
			option.WithAPIKey(credential),
			option.WithMaxRetries(0),
		}
		if baseURL != "" {
			opts = append(opts, option.WithBaseURL(baseURL))
		}

		return &openAI{client: openai.NewClient(opts...), model: model}, nil
	}
}

func (o *openAI) Generate(ctx context.Context, req composer.Request) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemInstruction),
			openai.UserMessage(req.Prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.Schema.Name,
					Schema: OpenAISchema(req.Schema),
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// OpenAISchema converts a composer schema to a strict JSON Schema object.
func OpenAISchema(s composer.Schema) map[string]any {
	props := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		p := map[string]any{"type": "string"}
		if f.Description != "" {
			p["description"] = f.Description
		}
		props[f.Name] = p
	}

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             s.Required(),
		"additionalProperties": false,
	}
}
