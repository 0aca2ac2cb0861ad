package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"automentor/backend/internal/features/generation/domain"
)

// openAIClient talks to an OpenAI-compatible chat completion API.
type openAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a TextGenerator backed by the OpenAI API.
func NewOpenAIClient(cfg ProviderConfig) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is not set")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openai model is not set")
	}
	conf := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	conf.HTTPClient = newHTTPClient(cfg.Timeout)
	return &openAIClient{
		client: openai.NewClientWithConfig(conf),
		model:  cfg.Model,
	}, nil
}

// GenerateText performs one chat completion call and normalizes the result.
// The OpenAI API has no top-k parameter, so req.TopK is not sent.
func (c *openAIClient) GenerateText(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: float32(req.Temperature),
		TopP:        float32(req.TopP),
		Stop:        req.StopSequences,
	}
	if req.Schema != nil {
		schema, err := toOpenAISchema(req.Schema)
		if err != nil {
			return nil, fmt.Errorf("failed to build response schema: %w", err)
		}
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "generation_output",
				Schema: schema,
				Strict: true,
			},
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai returned no choices", domain.ErrBackendUnavailable)
	}

	return &domain.GenerationResult{
		Text: resp.Choices[0].Message.Content,
		Usage: &domain.TokenUsage{
			PromptTokens:   resp.Usage.PromptTokens,
			ResponseTokens: resp.Usage.CompletionTokens,
			TotalTokens:    resp.Usage.TotalTokens,
		},
	}, nil
}

// toOpenAISchema translates an OutputSchema into a JSON schema document.
// All declared fields are strings.
func toOpenAISchema(schema *domain.OutputSchema) (json.RawMessage, error) {
	properties := make(map[string]any, len(schema.Fields))
	required := make([]string, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		properties[field.Name] = map[string]any{
			"type":        "string",
			"description": field.Description,
		}
		if field.Required {
			required = append(required, field.Name)
		}
	}
	doc := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
	return json.Marshal(doc)
}
