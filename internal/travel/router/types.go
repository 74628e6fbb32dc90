package router

import (
	"travel-planner/internal/travel"
	"travel-planner/internal/travel/intent"
)

// Input is everything the router looks at. Decide is a pure function of it.
type Input struct {
	Slots                   travel.Slots
	ConfirmedInfo           []string
	Intent                  intent.Label
	Confidence              float64
	IsAffirmativeToPrevious bool
	PreviousAssistantText   string
	LatestUserText          string
	HasPlan                 bool

	GuardrailBlocked bool
	GuardrailMessage string

	// Threshold overrides DefaultThreshold when positive.
	Threshold float64
}

// Decision explains the chosen node.
type Decision struct {
	Node       travel.Node
	Reason     string
	SystemNote string // optional note for the node's reply phrasing
	Message    string // user-visible text for END decisions
}
