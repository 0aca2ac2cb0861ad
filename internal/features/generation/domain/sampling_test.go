package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestNewGenerationRequestAppliesDefaults(t *testing.T) {
	req, err := NewGenerationRequest("prompt", SamplingConfig{}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.7, req.Temperature)
	assert.Equal(t, 0.95, req.TopP)
	assert.Equal(t, 40, req.TopK)
	assert.Empty(t, req.StopSequences)
	assert.False(t, req.Structured())
}

func TestNewGenerationRequestKeepsSuppliedValues(t *testing.T) {
	cfg := SamplingConfig{
		Temperature:   floatPtr(0.2),
		TopP:          floatPtr(0.5),
		TopK:          intPtr(5),
		StopSequences: []string{"2.", "END"},
	}
	req, err := NewGenerationRequest("prompt", cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.2, req.Temperature)
	assert.Equal(t, 0.5, req.TopP)
	assert.Equal(t, 5, req.TopK)
	assert.Equal(t, []string{"2.", "END"}, req.StopSequences)
}

func TestNewGenerationRequestAcceptsBoundaryValues(t *testing.T) {
	cfg := SamplingConfig{
		Temperature: floatPtr(0.0),
		TopP:        floatPtr(1.0),
		TopK:        intPtr(1),
	}
	req, err := NewGenerationRequest("prompt", cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, req.Temperature)
	assert.Equal(t, 1.0, req.TopP)
	assert.Equal(t, 1, req.TopK)
}

func TestNewGenerationRequestRejectsOutOfBoundsValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  SamplingConfig
	}{
		{"temperature above 1", SamplingConfig{Temperature: floatPtr(1.5)}},
		{"temperature below 0", SamplingConfig{Temperature: floatPtr(-0.1)}},
		{"top_p above 1", SamplingConfig{TopP: floatPtr(1.01)}},
		{"top_p below 0", SamplingConfig{TopP: floatPtr(-1)}},
		{"top_k zero", SamplingConfig{TopK: intPtr(0)}},
		{"top_k negative", SamplingConfig{TopK: intPtr(-3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGenerationRequest("prompt", tc.cfg, nil)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestNewGenerationRequestRejectsEmptyPrompt(t *testing.T) {
	_, err := NewGenerationRequest("   ", SamplingConfig{}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTruncateAtStop(t *testing.T) {
	req, err := NewGenerationRequest("prompt", SamplingConfig{StopSequences: []string{"2."}}, nil)
	require.NoError(t, err)

	got := req.TruncateAtStop(" first market the app via social media\n2. then run referrals")
	assert.Equal(t, " first market the app via social media\n", got)

	// No stop sequences means pass-through.
	plain, err := NewGenerationRequest("prompt", SamplingConfig{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", plain.TruncateAtStop("unchanged"))
}

func TestNewGenerationRequestMarksStructuredMode(t *testing.T) {
	schema := StartupIdeaSchema()
	req, err := NewGenerationRequest("prompt", SamplingConfig{}, schema)
	require.NoError(t, err)

	assert.True(t, req.Structured())
	assert.Same(t, schema, req.Schema)
}
