package domain

import (
	"fmt"
	"strings"
)

// Defaults applied when the caller omits a sampling parameter.
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.95
	DefaultTopK        = 40
)

// SamplingConfig carries the caller's optional sampling knobs. Nil pointers
// mean "use the default"; supplied values must fall within their declared
// bounds or the request is rejected before any network call.
type SamplingConfig struct {
	Temperature   *float64 // [0.0, 1.0]
	TopP          *float64 // [0.0, 1.0]
	TopK          *int     // >= 1
	StopSequences []string // ordered, may be empty
}

// GenerationRequest is the backend-agnostic request descriptor: a rendered
// prompt plus fully resolved sampling parameters and an optional output
// schema for structured decoding.
type GenerationRequest struct {
	Prompt        string
	Temperature   float64
	TopP          float64
	TopK          int
	StopSequences []string
	Schema        *OutputSchema
}

// Structured reports whether the backend is asked to constrain its output
// to a declared schema.
func (r GenerationRequest) Structured() bool {
	return r.Schema != nil
}

// NewGenerationRequest combines a rendered prompt with a SamplingConfig and
// optional OutputSchema into one request descriptor. Out-of-bounds values
// fail fast with ErrInvalidInput; they are never clamped. Omitted values
// resolve to the declared defaults.
func NewGenerationRequest(prompt string, cfg SamplingConfig, schema *OutputSchema) (GenerationRequest, error) {
	if strings.TrimSpace(prompt) == "" {
		return GenerationRequest{}, fmt.Errorf("%w: prompt must not be empty", ErrInvalidInput)
	}

	req := GenerationRequest{
		Prompt:        prompt,
		Temperature:   DefaultTemperature,
		TopP:          DefaultTopP,
		TopK:          DefaultTopK,
		StopSequences: cfg.StopSequences,
		Schema:        schema,
	}

	if cfg.Temperature != nil {
		if *cfg.Temperature < 0 || *cfg.Temperature > 1 {
			return GenerationRequest{}, fmt.Errorf("%w: temperature must be between 0.0 and 1.0, got %v", ErrInvalidInput, *cfg.Temperature)
		}
		req.Temperature = *cfg.Temperature
	}
	if cfg.TopP != nil {
		if *cfg.TopP < 0 || *cfg.TopP > 1 {
			return GenerationRequest{}, fmt.Errorf("%w: top_p must be between 0.0 and 1.0, got %v", ErrInvalidInput, *cfg.TopP)
		}
		req.TopP = *cfg.TopP
	}
	if cfg.TopK != nil {
		if *cfg.TopK < 1 {
			return GenerationRequest{}, fmt.Errorf("%w: top_k must be at least 1, got %d", ErrInvalidInput, *cfg.TopK)
		}
		req.TopK = *cfg.TopK
	}

	return req, nil
}

// TruncateAtStop cuts text at the first occurrence of any of the request's
// stop sequences. Backends are asked to halt at these markers themselves;
// applying them again locally keeps the result well-formed when a backend
// echoes past the marker.
func (r GenerationRequest) TruncateAtStop(text string) string {
	for _, stop := range r.StopSequences {
		if i := strings.Index(text, stop); i >= 0 {
			text = text[:i]
		}
	}
	return text
}

// TokenUsage holds the backend-reported token counts for one call.
type TokenUsage struct {
	PromptTokens   int `json:"prompt_tokens"`
	ResponseTokens int `json:"response_tokens"`
	TotalTokens    int `json:"total_tokens"`
}

// GenerationResult is the normalized outcome of one backend call: the raw
// text, plus usage counts when the backend reported them. Usage is nil when
// the backend reported none; zero is a valid count and must not be confused
// with "unknown".
type GenerationResult struct {
	Text  string
	Usage *TokenUsage
}
