package completion

import (
	"context"

	"travel-planner/internal/travel"
)

// Service is the single capability the dialogue uses to reach a language model.
type Service interface {
	// Generate phrases a free-text reply to the conversation.
	Generate(ctx context.Context, instruction string, turns []travel.Turn) (string, error)

	// Extract asks for a JSON document about the conversation and decodes it into out.
	Extract(ctx context.Context, instruction string, turns []travel.Turn, out any) error

	// Classify asks for a JSON verdict about a single text and decodes it into out.
	Classify(ctx context.Context, instruction, text string, out any) error
}
