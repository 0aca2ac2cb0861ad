package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"automentor/backend/internal/features/generation/domain"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// geminiClient talks to the Gemini generateContent REST API.
type geminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewGeminiClient creates a TextGenerator backed by the Gemini API.
func NewGeminiClient(cfg ProviderConfig) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini model is not set")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &geminiClient{
		httpClient: newHTTPClient(cfg.Timeout),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}, nil
}

// Wire types for the generateContent endpoint.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64       `json:"temperature"`
	TopP             float64       `json:"topP"`
	TopK             int           `json:"topK"`
	StopSequences    []string      `json:"stopSequences,omitempty"`
	ResponseMIMEType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]geminiProperty `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

type geminiProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// GenerateText performs one generateContent call and normalizes the result.
func (c *geminiClient) GenerateText(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:   req.Temperature,
			TopP:          req.TopP,
			TopK:          req.TopK,
			StopSequences: req.StopSequences,
		},
	}
	if req.Schema != nil {
		body.GenerationConfig.ResponseMIMEType = "application/json"
		body.GenerationConfig.ResponseSchema = toGeminiSchema(req.Schema)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gemini returned status %d: %s", domain.ErrBackendUnavailable, httpResp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode gemini response: %v", domain.ErrBackendUnavailable, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: gemini returned no candidates", domain.ErrBackendUnavailable)
	}

	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	result := &domain.GenerationResult{Text: text.String()}
	if parsed.UsageMetadata != nil {
		result.Usage = &domain.TokenUsage{
			PromptTokens:   parsed.UsageMetadata.PromptTokenCount,
			ResponseTokens: parsed.UsageMetadata.CandidatesTokenCount,
			TotalTokens:    parsed.UsageMetadata.TotalTokenCount,
		}
	}
	return result, nil
}

// toGeminiSchema translates an OutputSchema into the API's schema dialect.
// All declared fields are strings.
func toGeminiSchema(schema *domain.OutputSchema) *geminiSchema {
	out := &geminiSchema{
		Type:       "OBJECT",
		Properties: make(map[string]geminiProperty, len(schema.Fields)),
	}
	for _, field := range schema.Fields {
		out.Properties[field.Name] = geminiProperty{Type: "STRING", Description: field.Description}
		if field.Required {
			out.Required = append(out.Required, field.Name)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
