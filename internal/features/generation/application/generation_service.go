package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"automentor/backend/internal/features/generation/domain"
	"automentor/backend/internal/features/generation/infrastructure"
)

// firstStepStop halts generation before the backend starts a second list
// item; the endpoint re-prefixes "1. " onto what remains.
const firstStepStop = "2."

// GenerationService defines the interface for the generation application
// service: one operation per endpoint, each performing exactly one backend
// call.
type GenerationService interface {
	GenerateStartupIdea(ctx context.Context, skills, interests string) (*domain.StartupIdea, error)
	GenerateTagline(ctx context.Context, concept string) (string, error)
	GenerateHeadline(ctx context.Context, description string) (string, error)
	GenerateFeatures(ctx context.Context, description string) (string, error)
	ValidateIdea(ctx context.Context, idea string) (string, error)
	ValidateIdeaWithTokens(ctx context.Context, idea string) (string, *domain.TokenUsage, error)
	BrainstormNames(ctx context.Context, description string, temperature *float64) (string, float64, error)
	GenerateMarketingAngles(ctx context.Context, description string, topP *float64) (string, float64, error)
	GenerateFAQ(ctx context.Context, description string, topK *int) (string, int, error)
	GenerateFirstStep(ctx context.Context, description string) (string, error)
}

// generationService is the implementation of GenerationService.
type generationService struct {
	generator infrastructure.TextGenerator
}

// NewGenerationService creates a new instance of generationService.
func NewGenerationService(generator infrastructure.TextGenerator) GenerationService {
	return &generationService{generator: generator}
}

// generate runs the pipeline for one request: render the prompt, build the
// request descriptor, and perform the single backend call. The built
// descriptor is returned alongside the result so callers can echo the
// sampling values actually used.
func (s *generationService) generate(ctx context.Context, spec domain.PromptSpec, cfg domain.SamplingConfig, schema *domain.OutputSchema) (*domain.GenerationResult, domain.GenerationRequest, error) {
	prompt, err := domain.RenderPrompt(spec)
	if err != nil {
		return nil, domain.GenerationRequest{}, err
	}

	req, err := domain.NewGenerationRequest(prompt, cfg, schema)
	if err != nil {
		return nil, domain.GenerationRequest{}, err
	}

	result, err := s.generator.GenerateText(ctx, req)
	if err != nil {
		logrus.WithFields(logrus.Fields{"prompt": spec.ID, "error": err}).Warn("Generation call failed")
		return nil, domain.GenerationRequest{}, fmt.Errorf("generation for %q failed: %w", spec.ID, err)
	}
	result.Text = req.TruncateAtStop(result.Text)
	return result, req, nil
}

// GenerateStartupIdea produces a schema-validated startup idea from the
// user's skills and interests.
func (s *generationService) GenerateStartupIdea(ctx context.Context, skills, interests string) (*domain.StartupIdea, error) {
	spec := domain.PromptSpec{
		ID:     domain.PromptStartupIdea,
		Fields: map[string]string{domain.FieldSkills: skills, domain.FieldInterests: interests},
	}
	schema := domain.StartupIdeaSchema()

	result, _, err := s.generate(ctx, spec, domain.SamplingConfig{}, schema)
	if err != nil {
		return nil, err
	}

	fields, err := schema.Decode(result.Text)
	if err != nil {
		return nil, err
	}
	return &domain.StartupIdea{
		StartupName:          fields["startup_name"],
		Concept:              fields["concept"],
		MonetizationStrategy: fields["monetization_strategy"],
	}, nil
}

// GenerateTagline produces a tagline for a concept. The surrounding quotes
// some models add around short copy are stripped as endpoint policy.
func (s *generationService) GenerateTagline(ctx context.Context, concept string) (string, error) {
	spec := domain.PromptSpec{
		ID:     domain.PromptTagline,
		Fields: map[string]string{domain.FieldConcept: concept},
	}
	result, _, err := s.generate(ctx, spec, domain.SamplingConfig{}, nil)
	if err != nil {
		return "", err
	}
	return trimQuotes(result.Text), nil
}

// GenerateHeadline produces a landing page headline for a description.
// Quote stripping applies here as well.
func (s *generationService) GenerateHeadline(ctx context.Context, description string) (string, error) {
	spec := domain.PromptSpec{
		ID:     domain.PromptHeadline,
		Fields: map[string]string{domain.FieldDescription: description},
	}
	result, _, err := s.generate(ctx, spec, domain.SamplingConfig{}, nil)
	if err != nil {
		return "", err
	}
	return trimQuotes(result.Text), nil
}

// GenerateFeatures produces a formatted feature list for a description.
func (s *generationService) GenerateFeatures(ctx context.Context, description string) (string, error) {
	spec := domain.PromptSpec{
		ID:     domain.PromptFeatures,
		Fields: map[string]string{domain.FieldDescription: description},
	}
	result, _, err := s.generate(ctx, spec, domain.SamplingConfig{}, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Text), nil
}

// ValidateIdea produces a step-by-step validation analysis of an idea.
func (s *generationService) ValidateIdea(ctx context.Context, idea string) (string, error) {
	analysis, _, err := s.validateIdea(ctx, idea)
	return analysis, err
}

// ValidateIdeaWithTokens is ValidateIdea plus the backend's token usage.
// Usage is nil when the backend reported none.
func (s *generationService) ValidateIdeaWithTokens(ctx context.Context, idea string) (string, *domain.TokenUsage, error) {
	return s.validateIdea(ctx, idea)
}

func (s *generationService) validateIdea(ctx context.Context, idea string) (string, *domain.TokenUsage, error) {
	spec := domain.PromptSpec{
		ID:     domain.PromptIdeaValidation,
		Fields: map[string]string{domain.FieldIdea: idea},
	}
	result, _, err := s.generate(ctx, spec, domain.SamplingConfig{}, nil)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(result.Text), result.Usage, nil
}

// BrainstormNames produces candidate startup names, sampled at the given
// temperature (default 0.7 when nil). Returns the temperature actually used.
func (s *generationService) BrainstormNames(ctx context.Context, description string, temperature *float64) (string, float64, error) {
	spec := domain.PromptSpec{
		ID:     domain.PromptNameBrainstorm,
		Fields: map[string]string{domain.FieldDescription: description},
	}
	result, req, err := s.generate(ctx, spec, domain.SamplingConfig{Temperature: temperature}, nil)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(result.Text), req.Temperature, nil
}

// GenerateMarketingAngles produces marketing angles, sampled with the given
// top_p (default 0.95 when nil). Returns the top_p actually used.
func (s *generationService) GenerateMarketingAngles(ctx context.Context, description string, topP *float64) (string, float64, error) {
	spec := domain.PromptSpec{
		ID:     domain.PromptMarketingAngles,
		Fields: map[string]string{domain.FieldDescription: description},
	}
	result, req, err := s.generate(ctx, spec, domain.SamplingConfig{TopP: topP}, nil)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(result.Text), req.TopP, nil
}

// GenerateFAQ produces an FAQ section, sampled with the given top_k
// (default 40 when nil). Returns the top_k actually used.
func (s *generationService) GenerateFAQ(ctx context.Context, description string, topK *int) (string, int, error) {
	spec := domain.PromptSpec{
		ID:     domain.PromptFAQ,
		Fields: map[string]string{domain.FieldDescription: description},
	}
	result, req, err := s.generate(ctx, spec, domain.SamplingConfig{TopK: topK}, nil)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(result.Text), req.TopK, nil
}

// GenerateFirstStep produces only the first step of a launch plan. The
// prompt ends with "1." and a stop sequence halts the backend before item
// two, so the trimmed continuation is re-prefixed with "1. ".
func (s *generationService) GenerateFirstStep(ctx context.Context, description string) (string, error) {
	spec := domain.PromptSpec{
		ID:     domain.PromptFirstStep,
		Fields: map[string]string{domain.FieldDescription: description},
	}
	cfg := domain.SamplingConfig{StopSequences: []string{firstStepStop}}
	result, _, err := s.generate(ctx, spec, cfg, nil)
	if err != nil {
		return "", err
	}
	return "1. " + strings.TrimSpace(result.Text), nil
}

// trimQuotes trims whitespace plus the quotation marks models like to wrap
// around short copy.
func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'“”‘’")
}
