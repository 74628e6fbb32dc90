package calendarflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travel-planner/internal/travel"
	"travel-planner/pkg/textutil"
)

// Step advances the sub-machine described by spec by one user turn. A
// sub-state that belongs to another flow or has finished starts over.
func (m *Machine) Step(ctx context.Context, spec Spec, in Input) Outcome {
	sub := in.Sub.Clone()
	if sub.Flow != spec.Flow || sub.Step == "" || sub.Step.Terminal() {
		sub = travel.CalendarSubState{Flow: spec.Flow, Step: travel.StepStart}
	}

	m.l.Infof(ctx, "%s: flow=%s step=%s", LogPrefixStep, spec.Flow, sub.Step)

	if m.calendar == nil {
		return Outcome{Sub: advance(sub, travel.StepError), Reply: msgUnavailable}
	}

	switch sub.Step {
	case travel.StepStart:
		return m.start(ctx, spec, sub, in)
	case travel.StepSelectEvent:
		return m.selectEvent(ctx, spec, sub, in.Message)
	case spec.ActionStep:
		ev, ok := sub.SelectedEvent()
		if !ok {
			return Outcome{Sub: advance(sub, travel.StepError), Reply: fmt.Sprintf(msgSelectionLost, spec.Verb)}
		}
		out, _ := spec.act(m, ctx, sub, ev, in.Message)
		return out
	}

	m.l.Warnf(ctx, "%s: unexpected step %s for flow %s", LogPrefixStep, sub.Step, spec.Flow)
	return Outcome{Sub: advance(sub, travel.StepError), Reply: fmt.Sprintf(msgSelectionLost, spec.Verb)}
}

func (m *Machine) start(ctx context.Context, spec Spec, sub travel.CalendarSubState, in Input) Outcome {
	result, err := m.View(ctx, in.Message, in.Destination)
	if err != nil {
		m.l.Errorf(ctx, "%s: lookup failed: %v", LogPrefixStep, err)
		reply := fmt.Sprintf(msgErrorFmt, spec.Verb, err)
		if errors.Is(err, travel.ErrCalendarUnavailable) {
			reply = msgUnavailable
		}
		return Outcome{Sub: advance(sub, travel.StepError), Reply: reply}
	}
	if len(result.Events) == 0 {
		return Outcome{Sub: advance(sub, travel.StepError), Reply: fmt.Sprintf(msgNoEventsFmt, spec.Verb)}
	}
	sub.FoundEvents = result.Events

	n := ParseOrdinal(in.Message)
	switch {
	case n >= 1 && n <= len(sub.FoundEvents):
	case len(sub.FoundEvents) == 1:
		n = 0
	default:
		sub = advance(sub, travel.StepSelectEvent)
		return Outcome{Sub: sub, Reply: fmt.Sprintf(msgSelectFmt, spec.Verb, listEvents(sub.FoundEvents))}
	}

	return m.enterAction(ctx, spec, sub, n, in.Message)
}

// selectEvent resolves an ordinal against the listed events. A single
// candidate is taken without one. A cancel keyword ends the flow.
func (m *Machine) selectEvent(ctx context.Context, spec Spec, sub travel.CalendarSubState, message string) Outcome {
	n := ParseOrdinal(message)
	switch {
	case n == 0 && textutil.ContainsAny(message, cancelKeywords...):
		return Outcome{Sub: advance(sub, travel.StepCancelled), Reply: fmt.Sprintf(msgSelectCancelledFmt, spec.Verb)}
	case n >= 1 && n <= len(sub.FoundEvents):
	case len(sub.FoundEvents) == 1:
		n = 0
	default:
		return Outcome{Sub: sub, Reply: msgInvalidSelection}
	}

	return m.enterAction(ctx, spec, sub, n, message)
}

// enterAction selects the n-th found event and moves to the action step.
// Flows that act on entry apply message right away when it already says
// what to do; otherwise the user is prompted.
func (m *Machine) enterAction(ctx context.Context, spec Spec, sub travel.CalendarSubState, n int, message string) Outcome {
	ev := pick(sub.FoundEvents, n)
	sub.SelectedEventID = ev.ID
	sub = advance(sub, spec.ActionStep)

	if spec.actOnEntry {
		if out, acted := spec.act(m, ctx, sub, ev, message); acted {
			return out
		}
	}
	return Outcome{Sub: sub, Reply: spec.prompt(ev, n)}
}

// applyModification runs the diff extractor and applies it. It reports
// false, with a clarifying reply, when the message names nothing to change.
func (m *Machine) applyModification(ctx context.Context, sub travel.CalendarSubState, ev travel.Event, message string) (Outcome, bool) {
	diff := m.extractDiff(ctx, message, ev)
	opt, ok := m.updateOptions(ctx, ev.ID, diff)
	if !ok {
		return Outcome{Sub: sub, Reply: msgModifyNoDiff}, false
	}
	sub.PendingModification = diff

	if _, err := m.calendar.UpdateEvent(ctx, opt); err != nil {
		m.l.Errorf(ctx, "%s: update %s failed: %v", LogPrefixStep, ev.ID, err)
		return Outcome{Sub: advance(sub, travel.StepCompleted), Reply: fmt.Sprintf(msgModifyFailureFmt, err)}, true
	}
	return Outcome{
		Sub:   advance(sub, travel.StepCompleted),
		Reply: fmt.Sprintf(msgModifySuccessFmt, titleOf(ev), FormatModification(diff)),
	}, true
}

// confirmDeletion waits for an explicit yes or no. Cancellation is checked
// first. Anything else re-prompts in place.
func (m *Machine) confirmDeletion(ctx context.Context, sub travel.CalendarSubState, ev travel.Event, message string) (Outcome, bool) {
	switch {
	case textutil.ContainsAny(message, cancelKeywords...):
		sub.SelectedEventID = ""
		return Outcome{Sub: advance(sub, travel.StepCancelled), Reply: msgDeleteCancelled}, true

	case textutil.ContainsAny(message, confirmKeywords...):
		sub.SelectedEventID = ""
		if err := m.calendar.DeleteEvent(ctx, ev.ID); err != nil {
			m.l.Errorf(ctx, "%s: delete %s failed: %v", LogPrefixStep, ev.ID, err)
			return Outcome{Sub: advance(sub, travel.StepCompleted), Reply: fmt.Sprintf(msgDeleteFailureFmt, err)}, true
		}
		return Outcome{Sub: advance(sub, travel.StepCompleted), Reply: fmt.Sprintf(msgDeleteSuccessFmt, titleOf(ev))}, true
	}
	return Outcome{Sub: sub, Reply: msgDeleteReprompt}, false
}

func modifyPrompt(ev travel.Event, ordinal int) string {
	header := "**선택된 일정:**"
	if ordinal > 0 {
		header = fmt.Sprintf("**%d번 일정 선택됨:**", ordinal)
	}
	return header + "\n\n" + eventCard(ev) + "\n\n" + msgModifyPromptSuffix
}

func deletePrompt(ev travel.Event, ordinal int) string {
	header := "**다음 일정을 삭제하시겠습니까?**"
	if ordinal > 0 {
		header = fmt.Sprintf("**%d번 일정을 삭제하시겠습니까?**", ordinal)
	}
	return header + "\n\n" + eventCard(ev) + "\n\n" + msgDeletePromptSuffix
}

func eventCard(ev travel.Event) string {
	return fmt.Sprintf("**제목:** %s  \n**기간:** %s ~ %s  \n**장소:** %s  ",
		titleOf(ev), ev.StartDate, ev.EndDate, locationOf(ev))
}

func listEvents(events []travel.Event) string {
	lines := make([]string, 0, len(events))
	for i, e := range events {
		lines = append(lines, fmt.Sprintf("**%d.** %s (%s)", i+1, titleOf(e), datePart(e.StartDate)))
	}
	return strings.Join(lines, "\n")
}

// pick returns the n-th event (1-based), or the only one when n is 0.
func pick(events []travel.Event, n int) travel.Event {
	if n <= 0 {
		return events[0]
	}
	return events[n-1]
}

// advance moves to step unless that would go backward.
func advance(sub travel.CalendarSubState, step travel.CalendarStep) travel.CalendarSubState {
	if step.Rank() >= sub.Step.Rank() {
		sub.Step = step
	}
	return sub
}
