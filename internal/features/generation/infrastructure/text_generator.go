package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"automentor/backend/internal/features/generation/domain"
)

// TextGenerator defines a generic interface for text-generation backends.
// Implementations perform exactly one outbound call per invocation: no
// retries, no caching, no batching.
type TextGenerator interface {
	// GenerateText sends the request descriptor to the backend and
	// normalizes the response. The call honors ctx cancellation and
	// deadlines, surfacing domain.ErrTimeout rather than hanging.
	GenerateText(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// Supported provider identifiers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ProviderConfig holds the process-wide settings a text-generation client
// needs. It is built once at startup and treated as read-only.
type ProviderConfig struct {
	Provider string // "gemini" or "openai"
	APIKey   string
	Model    string
	BaseURL  string        // optional endpoint override, used by tests
	Timeout  time.Duration // per-call timeout; zero means no client timeout
}

// NewTextGenerator creates the TextGenerator selected by config.
func NewTextGenerator(cfg ProviderConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(cfg)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}

// classifyTransportError maps a transport failure onto the domain error
// taxonomy: deadline or client-timeout errors become ErrTimeout, anything
// else ErrBackendUnavailable.
func classifyTransportError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
}

// newHTTPClient builds the shared http.Client used by REST providers.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
