package calendarflow

import (
	"context"

	"travel-planner/internal/travel"
)

// Input is one turn handed to a sub-machine.
type Input struct {
	Sub         travel.CalendarSubState
	Message     string
	Destination string // known trip destination, narrows the lookup
}

// Outcome is the sub-state to persist and the reply for the turn.
type Outcome struct {
	Sub   travel.CalendarSubState
	Reply string
}

// ViewResult is one calendar lookup.
type ViewResult struct {
	Label  string
	Events []travel.Event
}

// Spec parametrizes the shared view, select and act machine.
type Spec struct {
	Flow travel.CalendarFlow
	Verb string

	// ActionStep is entered once an event is selected.
	ActionStep travel.CalendarStep

	// actOnEntry lets the turn that selected an event also act on it.
	actOnEntry bool

	prompt func(ev travel.Event, ordinal int) string
	act    func(m *Machine, ctx context.Context, sub travel.CalendarSubState, ev travel.Event, message string) (Outcome, bool)
}

// Modify edits one event's fields after a free-text diff.
var Modify = Spec{
	Flow:       travel.CalendarFlowModify,
	Verb:       "수정",
	ActionStep: travel.StepGetModificationDetails,
	actOnEntry: true,
	prompt:     modifyPrompt,
	act:        (*Machine).applyModification,
}

// Delete removes one event after explicit confirmation.
var Delete = Spec{
	Flow:       travel.CalendarFlowDelete,
	Verb:       "삭제",
	ActionStep: travel.StepConfirmDeletion,
	prompt:     deletePrompt,
	act:        (*Machine).confirmDeletion,
}

// SpecFor returns the Spec for a flow.
func SpecFor(flow travel.CalendarFlow) (Spec, bool) {
	switch flow {
	case travel.CalendarFlowModify:
		return Modify, true
	case travel.CalendarFlowDelete:
		return Delete, true
	}
	return Spec{}, false
}
