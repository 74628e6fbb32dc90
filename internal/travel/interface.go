package travel

import "context"

// UseCase defines the dialogue engine.
type UseCase interface {
	// ProcessTurn runs one user turn through the guardrail, the router and
	// the selected node, and persists the session before returning.
	ProcessTurn(ctx context.Context, input ProcessTurnInput) (TurnOutput, error)

	// CreateSession starts a conversation, optionally seeded with known facts.
	CreateSession(ctx context.Context, input CreateSessionInput) (SessionState, error)

	// GetSession returns the current state of a conversation.
	GetSession(ctx context.Context, id string) (SessionState, error)

	// EndSession discards a conversation.
	EndSession(ctx context.Context, id string) error
}

// ProcessTurnInput is one inbound user message.
type ProcessTurnInput struct {
	SessionID string
	Text      string
}

// TurnOutput is the result of ProcessTurn.
type TurnOutput struct {
	SessionID string
	Reply     string
	Node      Node
	HasPlan   bool
	Plan      *PlanArtifact
	Violation string // guardrail category, empty when the turn passed
}

// CreateSessionInput seeds a new session. Travel dates are seeded only when
// both ends are given.
type CreateSessionInput struct {
	Destination     string
	StartDate       string
	EndDate         string
	Preferences     []string
	Accommodation   string
	Transportation  string
	SpecialRequests string
	Plan            *TravelPlan
	PlanText        string
}
