package domain

import (
	"fmt"
	"strings"
)

// Technique identifies the prompting strategy a template demonstrates.
type Technique string

const (
	TechniqueZeroShot         Technique = "zero_shot"
	TechniqueOneShot          Technique = "one_shot"
	TechniqueMultiShot        Technique = "multi_shot"
	TechniqueChainOfThought   Technique = "chain_of_thought"
	TechniqueStructuredOutput Technique = "structured_output"
)

// PromptID identifies one registered prompt template.
type PromptID string

const (
	PromptStartupIdea     PromptID = "startup_idea"
	PromptTagline         PromptID = "tagline"
	PromptHeadline        PromptID = "headline"
	PromptFeatures        PromptID = "features"
	PromptIdeaValidation  PromptID = "idea_validation"
	PromptNameBrainstorm  PromptID = "name_brainstorm"
	PromptMarketingAngles PromptID = "marketing_angles"
	PromptFAQ             PromptID = "faq"
	PromptFirstStep       PromptID = "first_step"
)

// Field names accepted by the registered templates.
const (
	FieldSkills      = "skills"
	FieldInterests   = "interests"
	FieldConcept     = "concept"
	FieldDescription = "description"
	FieldIdea        = "idea"
)

// PromptSpec names a registered template and carries the field values it
// needs. It is built per request from validated caller input and never
// mutated afterwards.
type PromptSpec struct {
	ID     PromptID
	Fields map[string]string
}

// promptTemplate is one registry entry: the technique it demonstrates, the
// fields it requires (in the order they are interpolated), and the pure
// render function producing the finished prompt.
type promptTemplate struct {
	technique Technique
	fields    []string
	render    func(fields map[string]string) string
}

const startupIdeaPrompt = `Role: You are AutoMentor, an expert startup advisor and business strategist with a knack for identifying innovative, monetizable business ideas.

Task: Your task is to generate a unique and practical startup idea based on the user's provided skills and interests. You must analyze their input and create a concept that logically combines them.

Context: The user is an aspiring entrepreneur who is in the early stages of brainstorming. Your tone should be encouraging and professional. The ideas should be suitable for a solo founder or a small team to start as a Minimum Viable Product (MVP).

User's Skills: %s. User's Interests: %s.`

const taglinePrompt = `You are a sharp branding copywriter for early-stage startups.
Write one short, memorable tagline (under ten words) for the startup concept below. Respond with the tagline only.

Concept: %s

Tagline:`

const headlinePrompt = `You are a conversion-focused landing page copywriter.
Write a single compelling headline for the startup described below, following the style of the example.

Example:
Description: An app that matches home cooks with hungry neighbors for affordable, homemade meals.
Headline: Dinner From Next Door: Real Home Cooking, Minus the Cooking

Description: %s
Headline:`

const featuresPrompt = `You are a senior product manager writing launch copy for startups.
List exactly three key features for the product described below. Follow the format of the examples precisely: a bulleted list where each item starts with a bolded feature name followed by a one-sentence benefit.

Example 1:
Description: A subscription service that delivers curated houseplants.
Features:
- **Plant Matchmaker:** A short quiz pairs every subscriber with plants suited to their light and lifestyle.
- **Care Reminders:** Personalized watering and feeding nudges keep every plant thriving.
- **Swap Guarantee:** Any plant that fails within 30 days is replaced free of charge.

Example 2:
Description: A mobile app that turns daily budgeting into a cooperative game.
Features:
- **Savings Quests:** Weekly challenges turn cutting expenses into shared missions with friends.
- **Streak Rewards:** Consecutive on-budget days unlock badges and real cashback perks.
- **Money Talks:** Built-in prompts make it easy to discuss finances without the awkwardness.

Description: %s
Features:`

const ideaValidationPrompt = `You are a pragmatic startup advisor evaluating an idea. Analyze it by reasoning through the following steps in order:
First, identify the target customer and the specific problem the idea solves for them.
Second, list the three biggest risks or obstacles this idea would face.
Third, suggest one concrete way to test the idea cheaply within two weeks.
Finally, summarize the idea's overall viability in two sentences.

Work through each step explicitly before giving the summary.

Startup idea: %s`

const nameBrainstormPrompt = `You are a naming consultant for new companies.
Brainstorm five distinct, catchy startup names for the business described below. Respond with one name per line and nothing else.

Description: %s

Names:`

const marketingAnglesPrompt = `You are a growth marketer planning a launch campaign.
Propose three distinct marketing angles for the startup described below. Each angle should name the audience it targets and the emotional hook it uses, in one sentence each.

Description: %s

Marketing angles:`

const faqPrompt = `You are writing the FAQ section for a startup's landing page.
Write three frequently asked questions a potential customer would have about the product described below, each followed by a short, reassuring answer.

Description: %s

FAQ:`

const firstStepPrompt = `You are a no-nonsense startup coach.
List the numbered steps a founder should take to launch the business described below, starting from step 1.

Description: %s

Steps:
1.`

// promptRegistry maps every prompt ID to its template. Templates are fixed
// constants; rendering is deterministic and performs no I/O.
var promptRegistry = map[PromptID]promptTemplate{
	PromptStartupIdea: {
		technique: TechniqueStructuredOutput,
		fields:    []string{FieldSkills, FieldInterests},
		render: func(f map[string]string) string {
			return fmt.Sprintf(startupIdeaPrompt, f[FieldSkills], f[FieldInterests])
		},
	},
	PromptTagline: {
		technique: TechniqueZeroShot,
		fields:    []string{FieldConcept},
		render: func(f map[string]string) string {
			return fmt.Sprintf(taglinePrompt, f[FieldConcept])
		},
	},
	PromptHeadline: {
		technique: TechniqueOneShot,
		fields:    []string{FieldDescription},
		render: func(f map[string]string) string {
			return fmt.Sprintf(headlinePrompt, f[FieldDescription])
		},
	},
	PromptFeatures: {
		technique: TechniqueMultiShot,
		fields:    []string{FieldDescription},
		render: func(f map[string]string) string {
			return fmt.Sprintf(featuresPrompt, f[FieldDescription])
		},
	},
	PromptIdeaValidation: {
		technique: TechniqueChainOfThought,
		fields:    []string{FieldIdea},
		render: func(f map[string]string) string {
			return fmt.Sprintf(ideaValidationPrompt, f[FieldIdea])
		},
	},
	PromptNameBrainstorm: {
		technique: TechniqueZeroShot,
		fields:    []string{FieldDescription},
		render: func(f map[string]string) string {
			return fmt.Sprintf(nameBrainstormPrompt, f[FieldDescription])
		},
	},
	PromptMarketingAngles: {
		technique: TechniqueZeroShot,
		fields:    []string{FieldDescription},
		render: func(f map[string]string) string {
			return fmt.Sprintf(marketingAnglesPrompt, f[FieldDescription])
		},
	},
	PromptFAQ: {
		technique: TechniqueZeroShot,
		fields:    []string{FieldDescription},
		render: func(f map[string]string) string {
			return fmt.Sprintf(faqPrompt, f[FieldDescription])
		},
	},
	PromptFirstStep: {
		technique: TechniqueZeroShot,
		fields:    []string{FieldDescription},
		render: func(f map[string]string) string {
			return fmt.Sprintf(firstStepPrompt, f[FieldDescription])
		},
	},
}

// RenderPrompt produces the finished prompt string for the given spec.
// It rejects unknown prompt IDs and missing or whitespace-only fields with
// ErrInvalidInput before any rendering happens.
func RenderPrompt(spec PromptSpec) (string, error) {
	tpl, ok := promptRegistry[spec.ID]
	if !ok {
		return "", fmt.Errorf("%w: unknown prompt %q", ErrInvalidInput, spec.ID)
	}
	for _, name := range tpl.fields {
		if strings.TrimSpace(spec.Fields[name]) == "" {
			return "", fmt.Errorf("%w: field %q must not be empty", ErrInvalidInput, name)
		}
	}
	return tpl.render(spec.Fields), nil
}

// PromptTechnique reports the technique a registered template demonstrates.
func PromptTechnique(id PromptID) (Technique, error) {
	tpl, ok := promptRegistry[id]
	if !ok {
		return "", fmt.Errorf("%w: unknown prompt %q", ErrInvalidInput, id)
	}
	return tpl.technique, nil
}
