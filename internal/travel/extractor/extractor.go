package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/completion"
	"travel-planner/internal/travel/slots"
	"travel-planner/pkg/datemath"
	pkgLog "travel-planner/pkg/log"
)

// Extractor turns recent turns into a slots.Delta.
type Extractor struct {
	llm    completion.Service
	l      pkgLog.Logger
	window int
	now    func() time.Time
}

// New creates an Extractor that analyzes the last window turns.
func New(llm completion.Service, l pkgLog.Logger, window int) *Extractor {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Extractor{llm: llm, l: l, window: window, now: time.Now}
}

// Extract analyzes the last turns. A malformed reply yields
// travel.ErrExtractionParse so the caller can keep the prior slots.
func (e *Extractor) Extract(ctx context.Context, turns []travel.Turn) (slots.Delta, error) {
	if len(turns) > e.window {
		turns = turns[len(turns)-e.window:]
	}

	var raw rawDelta
	prompt := fmt.Sprintf(PromptAnalyze, e.now().Year())
	if err := e.llm.Extract(ctx, prompt, turns, &raw); err != nil {
		if errors.Is(err, completion.ErrMalformedOutput) || errors.Is(err, completion.ErrEmptyOutput) {
			e.l.Warnf(ctx, "%s: %v", LogPrefixExtract, err)
			return slots.Delta{}, fmt.Errorf("%w: %v", travel.ErrExtractionParse, err)
		}
		return slots.Delta{}, fmt.Errorf("%s: %w", LogPrefixExtract, err)
	}

	d := normalize(raw)
	if d.DateValidation == nil && d.Dates != "" {
		if v, ok := datemath.ValidateKoreanDate(d.Dates); ok {
			d.DateValidation = &slots.DateValidation{IsValid: v.IsValid, Original: v.Original, Corrected: v.Corrected}
		}
	}

	e.l.Debug(ctx, LogPrefixExtract+": extracted",
		"destination", d.Destination,
		"dates", d.Dates,
		"duration", d.DurationDays,
		"required", strings.Join(d.RequiredInfo, ","),
	)
	return d, nil
}

func normalize(r rawDelta) slots.Delta {
	d := slots.Delta{
		Destination:        deref(r.Destination),
		Dates:              deref(r.Dates),
		DurationDays:       int(r.DurationDays),
		DateValidation:     r.DateValidation.toDelta(),
		Preferences:        r.Preferences,
		CurrentTopic:       deref(r.CurrentTopic),
		RelatedToPrevious:  r.RelatedToPrevious,
		UserInterests:      r.UserInterests,
		RequiredInfo:       r.RequiredInfo,
		SuggestedQuestions: r.SuggestedQuestions,
		Recommendations:    r.Recommendations,
	}

	if c := r.CoreInfo; c != nil {
		d.Destination = deref(c.Destination)
		d.Dates = deref(c.Dates)
		d.DurationDays = int(c.Duration)
		d.DateValidation = c.DateValidation.toDelta()
		d.Preferences = c.Preferences
	}
	if c := r.Context; c != nil {
		d.CurrentTopic = deref(c.CurrentTopic)
		d.RelatedToPrevious = c.RelatedToPrevious
		d.UserInterests = c.UserInterests
	}
	if n := r.NextSteps; n != nil {
		d.RequiredInfo = n.RequiredInfo
		d.SuggestedQuestions = n.SuggestedQuestions
		d.Recommendations = n.Recommendations
	}

	if strings.EqualFold(d.Destination, "null") {
		d.Destination = ""
	}
	if strings.EqualFold(d.Dates, "null") {
		d.Dates = ""
	}
	return d
}

func (v *rawDateValidation) toDelta() *slots.DateValidation {
	if v == nil {
		return nil
	}
	valid := true
	switch {
	case v.IsValid != nil:
		valid = *v.IsValid
	case v.IsValid2 != nil:
		valid = *v.IsValid2
	}
	return &slots.DateValidation{IsValid: valid, Original: deref(v.Original), Corrected: deref(v.Corrected)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
