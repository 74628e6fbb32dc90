package usecase

import (
	"context"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/calendarflow"
	"travel-planner/internal/travel/intent"
	"travel-planner/internal/travel/planner"
	"travel-planner/internal/travel/router"
	"travel-planner/internal/travel/slots"
)

// Extractor turns recent turns into a slot delta.
type Extractor interface {
	Extract(ctx context.Context, turns []travel.Turn) (slots.Delta, error)
}

// Classifier labels the latest user message.
type Classifier interface {
	Classify(ctx context.Context, message, previousAssistant string, hasPlan bool) (intent.Result, error)
}

// Planner generates, refines and reads plans.
type Planner interface {
	Generate(ctx context.Context, state travel.SessionState) (*travel.PlanArtifact, error)
	Refine(ctx context.Context, state travel.SessionState) (*travel.PlanArtifact, error)
	Registration(a *travel.PlanArtifact) (planner.Registration, error)
}

// CalendarFlow runs calendar lookups and the modify/delete sub-machines.
type CalendarFlow interface {
	View(ctx context.Context, message, destination string) (calendarflow.ViewResult, error)
	Step(ctx context.Context, spec calendarflow.Spec, in calendarflow.Input) calendarflow.Outcome
}

// nodeFunc runs one workflow node. It returns the updated state and the reply.
type nodeFunc func(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error)

type preferenceAnalysis struct {
	Preferences []struct {
		Category   string  `json:"category"`
		Value      string  `json:"value"`
		Confidence float64 `json:"confidence"`
		Evidence   string  `json:"evidence"`
	} `json:"preferences"`
}
