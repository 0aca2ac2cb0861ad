package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaField describes one expected field of a structured response.
type SchemaField struct {
	Name        string
	Description string
	Required    bool
}

// OutputSchema declares the shape a structured response must conform to.
// It is attached to the outbound request as a machine-checked output
// contract and used again locally to validate whatever comes back.
type OutputSchema struct {
	Fields []SchemaField
}

// StartupIdea is the structured result of the startup-idea template.
type StartupIdea struct {
	StartupName          string `json:"startup_name"`
	Concept              string `json:"concept"`
	MonetizationStrategy string `json:"monetization_strategy"`
}

// StartupIdeaSchema returns the output contract for the startup-idea
// template: a catchy name, a one-sentence elevator pitch, and a brief
// monetization strategy, all required.
func StartupIdeaSchema() *OutputSchema {
	return &OutputSchema{Fields: []SchemaField{
		{Name: "startup_name", Description: "A catchy name for the business", Required: true},
		{Name: "concept", Description: "A one-sentence elevator pitch", Required: true},
		{Name: "monetization_strategy", Description: "A brief explanation of how it would make money", Required: true},
	}}
}

// Decode parses text as a JSON object and validates it against the schema:
// every required field must be present and non-empty, and no undeclared
// keys are allowed. Any failure wraps ErrOutputSchemaViolation; there is no
// fallback to plain text.
func (s *OutputSchema) Decode(text string) (map[string]string, error) {
	raw := stripCodeFence(text)

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON object: %v", ErrOutputSchemaViolation, err)
	}

	declared := make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		declared[field.Name] = true
	}
	for key := range parsed {
		if !declared[key] {
			return nil, fmt.Errorf("%w: undeclared field %q", ErrOutputSchemaViolation, key)
		}
	}

	values := make(map[string]string, len(parsed))
	for _, field := range s.Fields {
		msg, ok := parsed[field.Name]
		if !ok {
			if field.Required {
				return nil, fmt.Errorf("%w: missing required field %q", ErrOutputSchemaViolation, field.Name)
			}
			continue
		}
		var value string
		if err := json.Unmarshal(msg, &value); err != nil {
			return nil, fmt.Errorf("%w: field %q is not a string", ErrOutputSchemaViolation, field.Name)
		}
		if field.Required && strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: required field %q is empty", ErrOutputSchemaViolation, field.Name)
		}
		values[field.Name] = value
	}

	return values, nil
}

// stripCodeFence removes a surrounding markdown code block, which some
// backends wrap around JSON output even when asked not to.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
