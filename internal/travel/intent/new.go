package intent

import (
	"context"

	"travel-planner/internal/travel/completion"
	pkgLog "travel-planner/pkg/log"
)

// Classifier is the interface for intent classification.
type Classifier interface {
	Classify(ctx context.Context, message, previousAssistant string, hasPlan bool) (Result, error)
}

// SemanticClassifier classifies user intent using the completion service.
type SemanticClassifier struct {
	llm completion.Service
	l   pkgLog.Logger
}

var _ Classifier = (*SemanticClassifier)(nil)

// New creates a new SemanticClassifier.
func New(llm completion.Service, l pkgLog.Logger) *SemanticClassifier {
	return &SemanticClassifier{llm: llm, l: l}
}
