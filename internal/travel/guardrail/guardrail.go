package guardrail

import (
	"context"

	"travel-planner/pkg/textutil"
)

// Check runs the lexical blocklist and, when it passes, the semantic
// classifier. A classifier failure lets the message through.
func (g *Guardrail) Check(ctx context.Context, message string) Result {
	if category, ok := g.lexical(message); ok {
		g.l.Warnf(ctx, "%s: lexical violation: %s", LogPrefixCheck, category)
		return violation(category, StageLexical, 1.0, "")
	}

	if g.llm == nil {
		return Result{Safe: true, Confidence: 1.0}
	}

	var v semanticVerdict
	if err := g.llm.Classify(ctx, PromptSemantic, message, &v); err != nil {
		g.l.Warnf(ctx, "%s: classifier failed, passing: %v", LogPrefixSemantic, err)
		return Result{Safe: true}
	}
	if !v.IsViolation || v.Confidence < MinConfidence {
		return Result{Safe: true, Confidence: v.Confidence}
	}

	g.l.Warnf(ctx, "%s: semantic violation: %s (confidence: %.2f)", LogPrefixCheck, v.ViolationType, v.Confidence)
	return violation(v.ViolationType, StageSemantic, v.Confidence, v.Reason)
}

func (g *Guardrail) lexical(message string) (Category, bool) {
	text := textutil.Normalize(message)
	for _, r := range g.rules {
		if r.re.MatchString(text) {
			return r.category, true
		}
	}
	return "", false
}

// Message returns the canned reply for a category, off_topic for unknown ones.
func Message(c Category) string {
	if m, ok := messages[c]; ok {
		return m
	}
	return messages[CategoryOffTopic]
}

func violation(c Category, stage Stage, confidence float64, reason string) Result {
	if _, ok := messages[c]; !ok {
		c = CategoryOffTopic
	}
	return Result{
		Category:   c,
		Stage:      stage,
		Confidence: confidence,
		Reason:     reason,
		Message:    Message(c),
	}
}
