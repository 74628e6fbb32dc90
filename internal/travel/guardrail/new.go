package guardrail

import (
	"context"
	"regexp"

	"travel-planner/internal/travel/completion"
	pkgLog "travel-planner/pkg/log"
)

// Gate checks a user message before any other node runs.
type Gate interface {
	Check(ctx context.Context, message string) Result
}

type compiledRule struct {
	category Category
	re       *regexp.Regexp
}

// Guardrail is the two-stage Gate: a lexical blocklist, then an optional
// semantic classifier.
type Guardrail struct {
	llm   completion.Service
	l     pkgLog.Logger
	rules []compiledRule
}

var _ Gate = (*Guardrail)(nil)

// New creates a Guardrail. llm may be nil to run the lexical stage only.
func New(llm completion.Service, l pkgLog.Logger) *Guardrail {
	g := &Guardrail{llm: llm, l: l}
	for _, group := range blocklist {
		for _, p := range group.patterns {
			g.rules = append(g.rules, compiledRule{category: group.category, re: regexp.MustCompile(p)})
		}
	}
	return g
}
