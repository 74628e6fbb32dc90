package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/planner"
	"travel-planner/internal/travel/repository"
	"travel-planner/internal/travel/slots"
)

// CreateSession starts a conversation. Trip facts and a plan supplied by the
// client are merged as if they had been collected in the dialogue.
func (uc *implUseCase) CreateSession(ctx context.Context, input travel.CreateSessionInput) (travel.SessionState, error) {
	now := uc.now()
	state := travel.NewSession(uc.newID(), now)

	switch {
	case input.Plan != nil:
		plan := *input.Plan
		state.Plan = &travel.PlanArtifact{
			Format:    travel.PlanFormatJSON,
			Plan:      &plan,
			Text:      planner.Render(&plan),
			CreatedAt: now,
		}
	case strings.TrimSpace(input.PlanText) != "":
		state.Plan = &travel.PlanArtifact{
			Format:    travel.PlanFormatText,
			Text:      strings.TrimSpace(input.PlanText),
			CreatedAt: now,
		}
	}

	if d, ok := seedDelta(input); ok {
		state = slots.Merge(state, d, now)
	}

	if err := uc.sessions.Save(ctx, state); err != nil {
		uc.l.Errorf(ctx, "%s: save %s failed: %v", LogPrefixCreateSession, state.ID, err)
		return travel.SessionState{}, err
	}
	uc.l.Infof(ctx, "%s: session=%s confirmed=%v plan=%t", LogPrefixCreateSession, state.ID, state.ConfirmedInfo, state.HasPlan())
	return state, nil
}

// seedDelta turns client-supplied facts into a delta. A structured plan
// supplies the destination when none is given. ok is false when there is
// nothing to seed.
func seedDelta(input travel.CreateSessionInput) (slots.Delta, bool) {
	d := slots.Delta{
		Destination:     strings.TrimSpace(input.Destination),
		Preferences:     input.Preferences,
		Accommodation:   input.Accommodation,
		Transportation:  input.Transportation,
		SpecialRequests: input.SpecialRequests,
	}
	if d.Destination == "" && input.Plan != nil {
		d.Destination = strings.TrimSpace(input.Plan.TravelOverview.Destination)
	}
	start, end := strings.TrimSpace(input.StartDate), strings.TrimSpace(input.EndDate)
	if start != "" && end != "" {
		d.Dates = start + " ~ " + end
	}

	facts := append([]string{d.Destination, d.Dates, d.Accommodation, d.Transportation, d.SpecialRequests}, d.Preferences...)
	return d, lo.SomeBy(facts, func(v string) bool { return strings.TrimSpace(v) != "" })
}

// GetSession returns the stored state of a conversation.
func (uc *implUseCase) GetSession(ctx context.Context, id string) (travel.SessionState, error) {
	state, err := uc.sessions.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return travel.SessionState{}, travel.ErrSessionNotFound
	}
	return state, err
}

// EndSession discards a conversation.
func (uc *implUseCase) EndSession(ctx context.Context, id string) error {
	err := uc.sessions.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return travel.ErrSessionNotFound
	}
	return err
}

// load returns the stored session or a fresh one under id.
func (uc *implUseCase) load(ctx context.Context, id string) (travel.SessionState, error) {
	state, err := uc.sessions.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return travel.NewSession(id, uc.now()), nil
	}
	return state, err
}
