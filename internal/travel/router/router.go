package router

import (
	"fmt"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/intent"
	"travel-planner/internal/travel/slots"
	"travel-planner/pkg/textutil"
)

// Decide selects the next node. Rules apply in priority order:
// guardrail, confident intent, low-confidence keyword scan, slot completeness.
// A confident classifier result always suppresses the keyword scan, even when
// its label maps to no node.
func Decide(in Input) (travel.Node, Decision) {
	d := decide(in)
	return d.Node, d
}

// SafeDecide is Decide with panics mapped to END and an apology.
func SafeDecide(in Input) (travel.Node, Decision) {
	return safeDecide(decide, in)
}

func safeDecide(fn func(Input) Decision, in Input) (node travel.Node, d Decision) {
	defer func() {
		if r := recover(); r != nil {
			d = Decision{
				Node:    travel.NodeEnd,
				Reason:  fmt.Sprintf("%s: %v", ReasonPanic, r),
				Message: MessageRouterFailure,
			}
			node = d.Node
		}
	}()
	d = fn(in)
	return d.Node, d
}

func decide(in Input) Decision {
	if in.GuardrailBlocked {
		return Decision{Node: travel.NodeEnd, Reason: ReasonGuardrail, Message: in.GuardrailMessage}
	}

	threshold := in.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	complete := slots.CheckSlots(in.Slots, in.ConfirmedInfo)

	// Nothing known and nothing planned: the destination comes first whatever
	// the user asked for.
	if !complete.Destination && !complete.Dates && !complete.Preferences && !in.HasPlan {
		return Decision{Node: travel.NodeAskDestination, Reason: ReasonCompleteness}
	}

	if in.Confidence >= threshold {
		if d, ok := byIntent(in, complete); ok {
			return d
		}
	} else if d, ok := byKeyword(in, complete); ok {
		return d
	}

	return byCompleteness(complete)
}

func byIntent(in Input, c slots.Completeness) (Decision, bool) {
	intentDecision := func(n travel.Node, note string) (Decision, bool) {
		return Decision{Node: n, Reason: ReasonIntent, SystemNote: note}, true
	}

	switch in.Intent {
	case intent.LabelCalendarView:
		return intentDecision(travel.NodeViewCalendar, "")
	case intent.LabelCalendarModify:
		return intentDecision(travel.NodeModifyCalendar, "")
	case intent.LabelCalendarDelete:
		return intentDecision(travel.NodeDeleteCalendar, "")
	case intent.LabelCalendarCreate:
		if in.HasPlan {
			return intentDecision(travel.NodeRegisterCalendar, "")
		}
		if c.All() {
			return intentDecision(travel.NodeGeneratePlan, NoteNoPlanForCalendar)
		}
	case intent.LabelPlanCreate:
		if c.All() {
			return intentDecision(travel.NodeGeneratePlan, "")
		}
	case intent.LabelPlanModify:
		if in.HasPlan {
			return intentDecision(travel.NodeRefinePlan, "")
		}
		if c.All() {
			return intentDecision(travel.NodeGeneratePlan, NoteNoPlanForRefine)
		}
	case intent.LabelAffirmative:
		if in.IsAffirmativeToPrevious {
			return byAffirmative(in, c)
		}
	}
	return Decision{}, false
}

// byAffirmative follows a "yes" to whatever the previous assistant turn offered.
func byAffirmative(in Input, c slots.Completeness) (Decision, bool) {
	prev := in.PreviousAssistantText
	affirm := func(n travel.Node, note string) (Decision, bool) {
		return Decision{Node: n, Reason: ReasonAffirmative, SystemNote: note}, true
	}

	switch {
	case textutil.ContainsAny(prev, calendarTriggers...):
		if in.HasPlan {
			return affirm(travel.NodeRegisterCalendar, "")
		}
		if c.All() {
			return affirm(travel.NodeGeneratePlan, NoteNoPlanForCalendar)
		}
	case textutil.ContainsAny(prev, refineTriggers...):
		if in.HasPlan {
			return affirm(travel.NodeRefinePlan, "")
		}
		if c.All() {
			return affirm(travel.NodeGeneratePlan, NoteNoPlanForRefine)
		}
	case textutil.ContainsAny(prev, planTriggers...):
		if c.All() {
			return affirm(travel.NodeGeneratePlan, "")
		}
	}
	return Decision{}, false
}

func byKeyword(in Input, c slots.Completeness) (Decision, bool) {
	if !c.All() {
		return Decision{}, false
	}
	text := in.LatestUserText
	planAsked := textutil.ContainsAny(text, planKeywords...)
	goAhead := textutil.ContainsAny(text, asIsKeywords...) && textutil.ContainsAny(text, proceedKeywords...)
	if planAsked || goAhead {
		return Decision{Node: travel.NodeGeneratePlan, Reason: ReasonKeyword}, true
	}
	return Decision{}, false
}

func byCompleteness(c slots.Completeness) Decision {
	node := travel.NodeUnderstandRequest
	switch {
	case !c.Destination:
		node = travel.NodeAskDestination
	case !c.Dates, !c.Preferences:
		node = travel.NodeCollectDetails
	}
	return Decision{Node: node, Reason: ReasonCompleteness}
}
