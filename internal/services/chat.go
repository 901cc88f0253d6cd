package services

import (
	"context"
	"fmt"

	"clau-backend/internal/models"
)

// TextGenerator is the outbound text-generation call. The production
// implementation lives in internal/gemini; tests substitute a fake.
type TextGenerator interface {
	Generate(ctx context.Context, contents []models.Turn) (string, error)
}

// ChatService relays a conversation to the model after injecting the
// advisor persona into the first user turn.
type ChatService struct {
	generator    TextGenerator
	systemPrompt string
}

func NewChatService(generator TextGenerator, systemPrompt string) *ChatService {
	return &ChatService{
		generator:    generator,
		systemPrompt: systemPrompt,
	}
}

// Ask validates the conversation, injects the persona prompt and forwards
// the result upstream, returning the model's reply text. Exactly one
// outbound call is made per invocation; no retries, no caching.
func (s *ChatService) Ask(ctx context.Context, contents []models.Turn) (string, error) {
	if err := validateContents(contents); err != nil {
		return "", err
	}

	injected := injectSystemPrompt(contents, s.systemPrompt)

	return s.generator.Generate(ctx, injected)
}

// validateContents rejects structurally invalid conversations before any
// outbound call: a missing contents field, a turn without a role or parts,
// or a part without a text field. An empty contents list and empty role or
// text strings are all valid.
func validateContents(contents []models.Turn) error {
	if contents == nil {
		return &ValidationError{Fields: map[string]string{"contents": "Contents is required"}}
	}

	// Validate all fields at once
	fieldErrors := make(map[string]string)

	for i, turn := range contents {
		if turn.Role == nil {
			fieldErrors[fmt.Sprintf("contents[%d].role", i)] = "Role is required"
		}
		if turn.Parts == nil {
			fieldErrors[fmt.Sprintf("contents[%d].parts", i)] = "Parts is required"
		}
		for j, part := range turn.Parts {
			if part.Text == nil {
				fieldErrors[fmt.Sprintf("contents[%d].parts[%d].text", i, j)] = "Text is required"
			}
		}
	}

	if len(fieldErrors) > 0 {
		return &ValidationError{Fields: fieldErrors}
	}
	return nil
}

// injectSystemPrompt returns the conversation with the persona prompt
// prepended to the first user turn's first part. Only the first turn whose
// role is "user" is considered: if that turn has no parts or an empty text,
// the conversation is returned unchanged (no later user turn is consulted).
// The input slices are never mutated; the injected copy shares every turn
// except the one it rewrites.
func injectSystemPrompt(contents []models.Turn, prompt string) []models.Turn {
	for i, turn := range contents {
		if turn.Role == nil || *turn.Role != "user" {
			continue
		}
		if len(turn.Parts) == 0 || turn.Parts[0].Text == nil || *turn.Parts[0].Text == "" {
			return contents
		}

		injected := make([]models.Turn, len(contents))
		copy(injected, contents)

		parts := make([]models.Part, len(turn.Parts))
		copy(parts, turn.Parts)

		combined := prompt + "\n" + *turn.Parts[0].Text
		parts[0].Text = &combined
		injected[i].Parts = parts

		return injected
	}
	return contents
}
