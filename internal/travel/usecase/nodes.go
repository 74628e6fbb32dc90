package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/calendarflow"
	"travel-planner/internal/travel/repository"
	"travel-planner/internal/travel/router"
	"travel-planner/internal/travel/slots"
)

// phrase asks the model for a reply. The known slots ride along as a
// context note.
func (uc *implUseCase) phrase(ctx context.Context, state travel.SessionState, instruction string) (string, error) {
	parts := []string{PromptPersona}
	if summary := slots.ContextSummary(state.Slots); summary != "" {
		parts = append(parts, summary)
	}
	parts = append(parts, instruction)
	return uc.llm.Generate(ctx, strings.Join(parts, "\n\n"), state.RecentTurns(uc.window))
}

func (uc *implUseCase) understandRequest(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error) {
	instruction := PromptContinue
	if next := slots.NextQuestion(state.PendingQuestions); next != "" && !mentionsAny(next, state.ConfirmedInfo) {
		instruction = fmt.Sprintf(PromptNextQuestion, next)
	}
	reply, err := uc.phrase(ctx, state, instruction)
	return state, reply, err
}

func (uc *implUseCase) askDestination(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error) {
	if prefs := uc.analyzePreferences(ctx, state); len(prefs) > 0 {
		state.Slots.Preferences = lo.Union(state.Slots.Preferences, prefs)
		state = slots.Confirm(state, travel.SlotPreferences)
	}

	instruction := PromptAskDestination
	if len(state.Slots.Preferences) > 0 {
		instruction = fmt.Sprintf(PromptRecommend, strings.Join(state.Slots.Preferences, ", "))
	}
	reply, err := uc.phrase(ctx, state, instruction)
	return state, reply, err
}

// analyzePreferences infers preferences and keeps the confident ones as
// "category: value". Failures yield nothing.
func (uc *implUseCase) analyzePreferences(ctx context.Context, state travel.SessionState) []string {
	turns := state.RecentTurns(uc.window)
	if len(turns) == 0 {
		return nil
	}
	var out preferenceAnalysis
	if err := uc.llm.Extract(ctx, PromptPreferences, turns, &out); err != nil {
		uc.l.Warnf(ctx, "%s: %v", LogPrefixPreferences, err)
		return nil
	}

	var prefs []string
	for _, p := range out.Preferences {
		if p.Confidence < PreferenceConfidence || strings.TrimSpace(p.Value) == "" {
			continue
		}
		prefs = append(prefs, fmt.Sprintf("%s: %s", strings.TrimSpace(p.Category), strings.TrimSpace(p.Value)))
	}
	return lo.Uniq(prefs)
}

func (uc *implUseCase) collectDetails(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error) {
	c := slots.Check(state)
	var missing []string
	if !c.Dates {
		missing = append(missing, missingDates)
	}
	if !c.Preferences {
		missing = append(missing, missingPreferences)
	}
	if len(missing) == 0 {
		return uc.understandRequest(ctx, state, d)
	}
	reply, err := uc.phrase(ctx, state, fmt.Sprintf(PromptCollectDetails, strings.Join(missing, ", ")))
	return state, reply, err
}

func (uc *implUseCase) generatePlan(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error) {
	a, err := uc.planner.Generate(ctx, state)
	if err != nil {
		uc.l.Errorf(ctx, "%s: generate failed: %v", LogPrefixNode, err)
		return state, msgPlanFailure, nil
	}
	state.Plan = a
	return state, withNote(d.SystemNote, a.Text+msgPlanFollowUp), nil
}

func (uc *implUseCase) refinePlan(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error) {
	a, err := uc.planner.Refine(ctx, state)
	switch {
	case errors.Is(err, travel.ErrNoPlan):
		d.SystemNote = router.NoteNoPlanForRefine
		state.CurrentNode = travel.NodeGeneratePlan
		return uc.generatePlan(ctx, state, d)
	case err != nil:
		uc.l.Errorf(ctx, "%s: refine failed: %v", LogPrefixNode, err)
		return state, msgPlanFailure, nil
	}
	state.Plan = a
	return state, a.Text + msgPlanFollowUp, nil
}

// registerCalendar writes the current plan as one all-day event. Without a
// plan it answers with a hint and hands the next turn back to
// understand_request.
func (uc *implUseCase) registerCalendar(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error) {
	if !state.HasPlan() {
		state.CurrentNode = travel.NodeUnderstandRequest
		return state, msgRegisterNoPlan, nil
	}
	if uc.calendar == nil {
		return state, msgCalendarUnavailable, nil
	}

	reg, err := uc.planner.Registration(state.Plan)
	if err != nil {
		return state, "", err
	}
	ev, err := uc.calendar.CreateEvent(ctx, repository.CreateEventOptions{
		Summary:     reg.Summary,
		Description: reg.Description,
		Location:    reg.Location,
		StartDate:   reg.StartDate,
		EndDate:     reg.EndDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: create event failed: %v", LogPrefixNode, err)
		return state, fmt.Sprintf(msgRegisterFailureFmt, err), nil
	}

	reply := msgRegisterSuccess
	if ev.HtmlLink != "" {
		reply += fmt.Sprintf(msgRegisterLinkFmt, ev.HtmlLink)
	}
	return state, reply, nil
}

func (uc *implUseCase) viewCalendar(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error) {
	result, err := uc.flow.View(ctx, state.LastText(travel.RoleUser), state.Slots.Destination)
	switch {
	case errors.Is(err, travel.ErrCalendarUnavailable):
		return state, msgCalendarUnavailable, nil
	case err != nil:
		uc.l.Errorf(ctx, "%s: view failed: %v", LogPrefixNode, err)
		return state, fmt.Sprintf(msgViewFailureFmt, err), nil
	}
	return state, calendarflow.FormatEvents(result), nil
}

func (uc *implUseCase) modifyCalendar(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error) {
	return uc.stepCalendar(ctx, travel.CalendarFlowModify, state)
}

func (uc *implUseCase) deleteCalendar(ctx context.Context, state travel.SessionState, d router.Decision) (travel.SessionState, string, error) {
	return uc.stepCalendar(ctx, travel.CalendarFlowDelete, state)
}

func (uc *implUseCase) stepCalendar(ctx context.Context, flow travel.CalendarFlow, state travel.SessionState) (travel.SessionState, string, error) {
	spec, ok := calendarflow.SpecFor(flow)
	if !ok {
		return state, "", fmt.Errorf("%s: unknown calendar flow %q", LogPrefixNode, flow)
	}
	out := uc.flow.Step(ctx, spec, calendarflow.Input{
		Sub:         state.Calendar,
		Message:     state.LastText(travel.RoleUser),
		Destination: state.Slots.Destination,
	})
	state.Calendar = out.Sub
	return state, out.Reply, nil
}

func withNote(note, reply string) string {
	if note == "" {
		return reply
	}
	return note + "\n\n" + reply
}

func mentionsAny(question string, confirmed []string) bool {
	q := strings.ToLower(question)
	return lo.SomeBy(confirmed, func(c string) bool { return c != "" && strings.Contains(q, c) })
}
