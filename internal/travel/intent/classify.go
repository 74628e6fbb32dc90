package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travel-planner/internal/travel/completion"
)

// Classify determines the intent of message. previousAssistant is the
// assistant turn the user is answering. Unusable output falls back to
// {general, 0.5}; a provider failure returns the fallback with the error.
func (c *SemanticClassifier) Classify(ctx context.Context, message, previousAssistant string, hasPlan bool) (Result, error) {
	status := PlanStatusMissing
	if hasPlan {
		status = PlanStatusExists
	}
	instruction := fmt.Sprintf(PromptClassify, status)

	var text strings.Builder
	if previousAssistant != "" {
		fmt.Fprintf(&text, PromptPreviousAssistant, previousAssistant)
	}
	fmt.Fprintf(&text, PromptUserMessage, message)

	var raw rawResult
	if err := c.llm.Classify(ctx, instruction, text.String(), &raw); err != nil {
		switch {
		case errors.Is(err, completion.ErrEmptyOutput):
			c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ReasonEmptyResponse)
			return fallback(ReasonEmptyResponse), nil
		case errors.Is(err, completion.ErrMalformedOutput):
			c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ReasonParsingError, err)
			return fallback(ReasonParsingError), nil
		default:
			return fallback(ReasonLLMError), fmt.Errorf("%s: %w", LogPrefixClassify, err)
		}
	}

	label, ok := Normalize(raw.PrimaryIntent)
	if !ok {
		c.l.Warnf(ctx, "%s: unknown intent %q", LogPrefixClassify, raw.PrimaryIntent)
		return fallback(ReasonParsingError), nil
	}

	confidence := raw.Confidence
	if confidence > 1 {
		confidence /= 100
	}
	if confidence < 0 {
		confidence = 0
	}

	result := Result{
		Label:                   label,
		Confidence:              confidence,
		Keywords:                raw.KeywordsDetected,
		RequiresPlan:            raw.RequiresPlan,
		IsAffirmativeToPrevious: raw.IsAffirmativeToPrevious,
		Reasoning:               raw.ContextAnalysis,
	}
	c.l.Infof(ctx, "%s: classified as %s (confidence: %.2f)", LogPrefixClassify, result.Label, result.Confidence)
	return result, nil
}

// Normalize maps a raw label to a canonical Label.
func Normalize(raw string) (Label, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	lower := strings.ToLower(s)

	switch l := Label(strings.ReplaceAll(lower, " ", "_")); l {
	case LabelPlanCreate, LabelPlanModify, LabelPlanQuestion,
		LabelCalendarCreate, LabelCalendarView, LabelCalendarModify, LabelCalendarDelete,
		LabelAffirmative, LabelNegative, LabelGeneral:
		return l, true
	}

	for _, a := range aliases {
		if lower == a.alias {
			return a.label, true
		}
	}
	// Numbered or decorated forms such as "1. 여행 계획 생성 요청".
	for _, a := range aliases {
		if strings.Contains(lower, a.alias) {
			return a.label, true
		}
	}
	return "", false
}

func fallback(reason string) Result {
	return Result{Label: FallbackLabel, Confidence: FallbackConfidence, Reasoning: reason}
}
