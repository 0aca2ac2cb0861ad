package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automentor/backend/internal/features/generation/domain"
)

// stubGenerator is a deterministic TextGenerator that records every request
// it receives.
type stubGenerator struct {
	calls   int
	lastReq domain.GenerationRequest
	result  *domain.GenerationResult
	err     error
}

func (s *stubGenerator) GenerateText(_ context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	// Copy so post-processing cannot mutate the canned result.
	result := *s.result
	return &result, nil
}

func textResult(text string) *domain.GenerationResult {
	return &domain.GenerationResult{Text: text}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestGenerateStartupIdeaRoundTrip(t *testing.T) {
	stub := &stubGenerator{result: textResult(`{"startup_name":"WalkWag","concept":"On-demand dog walks.","monetization_strategy":"Per-walk fee."}`)}
	svc := NewGenerationService(stub)

	idea, err := svc.GenerateStartupIdea(context.Background(), "Go, marketing", "dogs")
	require.NoError(t, err)

	assert.Equal(t, &domain.StartupIdea{
		StartupName:          "WalkWag",
		Concept:              "On-demand dog walks.",
		MonetizationStrategy: "Per-walk fee.",
	}, idea)
	assert.Equal(t, 1, stub.calls)
	require.NotNil(t, stub.lastReq.Schema)
	assert.Contains(t, stub.lastReq.Prompt, "Go, marketing")
	assert.Contains(t, stub.lastReq.Prompt, "dogs")
}

func TestGenerateStartupIdeaSchemaViolation(t *testing.T) {
	stub := &stubGenerator{result: textResult(`{"startup_name":"WalkWag"}`)}
	svc := NewGenerationService(stub)

	_, err := svc.GenerateStartupIdea(context.Background(), "Go", "dogs")
	require.ErrorIs(t, err, domain.ErrOutputSchemaViolation)
	assert.NotErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Equal(t, 1, stub.calls)
}

func TestGenerateTaglineStripsQuotes(t *testing.T) {
	stub := &stubGenerator{result: textResult("  \"Walks that wag.\"\n")}
	svc := NewGenerationService(stub)

	tagline, err := svc.GenerateTagline(context.Background(), "a dog-walking app")
	require.NoError(t, err)
	assert.Equal(t, "Walks that wag.", tagline)
}

func TestGenerateHeadlineStripsQuotes(t *testing.T) {
	stub := &stubGenerator{result: textResult("“Never Walk Alone”")}
	svc := NewGenerationService(stub)

	headline, err := svc.GenerateHeadline(context.Background(), "a dog-walking app")
	require.NoError(t, err)
	assert.Equal(t, "Never Walk Alone", headline)
}

func TestGenerateFeaturesTrimsWhitespaceOnly(t *testing.T) {
	stub := &stubGenerator{result: textResult("\n- **\"Fast\":** quick walks\n")}
	svc := NewGenerationService(stub)

	features, err := svc.GenerateFeatures(context.Background(), "a dog-walking app")
	require.NoError(t, err)
	// Inner quotes survive; only surrounding whitespace is trimmed.
	assert.Equal(t, `- **"Fast":** quick walks`, features)
}

func TestValidateIdeaWithTokensReturnsUsageVerbatim(t *testing.T) {
	stub := &stubGenerator{result: &domain.GenerationResult{
		Text:  "Analysis text",
		Usage: &domain.TokenUsage{PromptTokens: 42, ResponseTokens: 58, TotalTokens: 100},
	}}
	svc := NewGenerationService(stub)

	analysis, usage, err := svc.ValidateIdeaWithTokens(context.Background(), "tool rental")
	require.NoError(t, err)
	assert.Equal(t, "Analysis text", analysis)
	require.NotNil(t, usage)
	assert.Equal(t, &domain.TokenUsage{PromptTokens: 42, ResponseTokens: 58, TotalTokens: 100}, usage)
}

func TestValidateIdeaWithTokensAbsentUsageStaysAbsent(t *testing.T) {
	stub := &stubGenerator{result: textResult("Analysis text")}
	svc := NewGenerationService(stub)

	_, usage, err := svc.ValidateIdeaWithTokens(context.Background(), "tool rental")
	require.NoError(t, err)
	assert.Nil(t, usage)
}

func TestBrainstormNamesDefaultsTemperature(t *testing.T) {
	stub := &stubGenerator{result: textResult("WagWalk\nPupRoute")}
	svc := NewGenerationService(stub)

	names, used, err := svc.BrainstormNames(context.Background(), "a dog-walking app", nil)
	require.NoError(t, err)
	assert.Equal(t, "WagWalk\nPupRoute", names)
	assert.Equal(t, 0.7, used)
	assert.Equal(t, 0.7, stub.lastReq.Temperature)
}

func TestBrainstormNamesUsesSuppliedTemperature(t *testing.T) {
	stub := &stubGenerator{result: textResult("WagWalk")}
	svc := NewGenerationService(stub)

	_, used, err := svc.BrainstormNames(context.Background(), "a dog-walking app", floatPtr(0.2))
	require.NoError(t, err)
	assert.Equal(t, 0.2, used)
	assert.Equal(t, 0.2, stub.lastReq.Temperature)
}

func TestBrainstormNamesRejectsOutOfBoundsWithoutBackendCall(t *testing.T) {
	stub := &stubGenerator{result: textResult("ignored")}
	svc := NewGenerationService(stub)

	_, _, err := svc.BrainstormNames(context.Background(), "a dog-walking app", floatPtr(1.5))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, stub.calls)
}

func TestGenerateMarketingAnglesDefaultsTopP(t *testing.T) {
	stub := &stubGenerator{result: textResult("angles")}
	svc := NewGenerationService(stub)

	_, used, err := svc.GenerateMarketingAngles(context.Background(), "a dog-walking app", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.95, used)
	assert.Equal(t, 0.95, stub.lastReq.TopP)
}

func TestGenerateFAQPassesTopKThrough(t *testing.T) {
	stub := &stubGenerator{result: textResult("faq")}
	svc := NewGenerationService(stub)

	_, used, err := svc.GenerateFAQ(context.Background(), "a dog-walking app", intPtr(7))
	require.NoError(t, err)
	assert.Equal(t, 7, used)
	assert.Equal(t, 7, stub.lastReq.TopK)

	_, _, err = svc.GenerateFAQ(context.Background(), "a dog-walking app", intPtr(0))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, stub.calls)
}

func TestGenerateFirstStepStopSequence(t *testing.T) {
	stub := &stubGenerator{result: textResult(" first market the app via social media\n2. then run referrals")}
	svc := NewGenerationService(stub)

	firstStep, err := svc.GenerateFirstStep(context.Background(), "a dog-walking app")
	require.NoError(t, err)

	assert.Equal(t, "1. first market the app via social media", firstStep)
	assert.Equal(t, []string{"2."}, stub.lastReq.StopSequences)
	assert.Equal(t, 1, stub.calls)
}

func TestBlankInputRejectedWithoutBackendCall(t *testing.T) {
	stub := &stubGenerator{result: textResult("ignored")}
	svc := NewGenerationService(stub)

	_, err := svc.GenerateTagline(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.GenerateFirstStep(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, stub.calls)
}

func TestBackendErrorPropagates(t *testing.T) {
	stub := &stubGenerator{err: domain.ErrBackendUnavailable}
	svc := NewGenerationService(stub)

	_, err := svc.ValidateIdea(context.Background(), "tool rental")
	require.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Equal(t, 1, stub.calls)
}

func TestRepeatedCallsYieldIdenticalShape(t *testing.T) {
	stub := &stubGenerator{result: textResult(`{"startup_name":"WalkWag","concept":"c","monetization_strategy":"m"}`)}
	svc := NewGenerationService(stub)

	first, err := svc.GenerateStartupIdea(context.Background(), "Go", "dogs")
	require.NoError(t, err)
	second, err := svc.GenerateStartupIdea(context.Background(), "Go", "dogs")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, stub.calls)
}
