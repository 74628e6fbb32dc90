package usecase

import (
	"context"
	"strings"
	"time"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/router"
	"travel-planner/internal/travel/slots"
	pkgLog "travel-planner/pkg/log"
)

// ProcessTurn runs one user message through the dialogue graph and persists
// the session before returning. An empty session id starts a new session.
func (uc *implUseCase) ProcessTurn(ctx context.Context, input travel.ProcessTurnInput) (travel.TurnOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return travel.TurnOutput{}, travel.ErrEmptyInput
	}
	id := input.SessionID
	if id == "" {
		id = uc.newID()
	}
	ctx = pkgLog.WithSessionID(ctx, id)
	started := uc.now()

	unlock := uc.locks.lock(id)
	defer unlock()

	state, err := uc.load(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "%s: load failed: %v", LogPrefixProcessTurn, err)
		uc.observeTurn(outcomeError, started)
		return travel.TurnOutput{}, err
	}
	state = state.AppendTurn(travel.Turn{Role: travel.RoleUser, Text: text, Timestamp: uc.now()})

	state, reply, violation := uc.step(ctx, state, text)

	state = state.AppendTurn(travel.Turn{Role: travel.RoleAssistant, Text: reply, Timestamp: uc.now()})
	if err := uc.sessions.Save(ctx, state); err != nil {
		uc.l.Errorf(ctx, "%s: save failed: %v", LogPrefixProcessTurn, err)
		uc.observeTurn(outcomeError, started)
		return travel.TurnOutput{}, err
	}

	outcome := outcomeOK
	if violation != "" {
		outcome = outcomeBlocked
	}
	uc.observeTurn(outcome, started)
	uc.l.Infof(ctx, "%s: node=%s plan=%t", LogPrefixProcessTurn, state.CurrentNode, state.HasPlan())

	return travel.TurnOutput{
		SessionID: id,
		Reply:     reply,
		Node:      state.CurrentNode,
		HasPlan:   state.HasPlan(),
		Plan:      state.Plan,
		Violation: violation,
	}, nil
}

// step is the graph pass: guardrail, resume or understand, route, run.
func (uc *implUseCase) step(ctx context.Context, state travel.SessionState, text string) (travel.SessionState, string, string) {
	verdict := uc.guard.Check(ctx, text)
	if !verdict.Safe {
		_, d := router.SafeDecide(router.Input{GuardrailBlocked: true, GuardrailMessage: verdict.Message})
		uc.l.Warnf(ctx, "%s: blocked category=%s stage=%s", LogPrefixProcessTurn, verdict.Category, verdict.Stage)
		if uc.metrics != nil {
			uc.metrics.GuardrailBlocks.WithLabelValues(string(verdict.Category), string(verdict.Stage)).Inc()
		}
		state.CurrentNode = d.Node
		return state, d.Message, string(verdict.Category)
	}

	if state.Calendar.Active() {
		node := travel.NodeModifyCalendar
		if state.Calendar.Flow == travel.CalendarFlowDelete {
			node = travel.NodeDeleteCalendar
		}
		next, reply := uc.runNode(ctx, node, router.Decision{Node: node, Reason: reasonResume}, state)
		return next, reply, ""
	}

	state = uc.understand(ctx, state)

	res, err := uc.classifier.Classify(ctx, text, state.PreviousAssistantText(), state.HasPlan())
	if err != nil {
		uc.l.Warnf(ctx, "%s: classify failed, using fallback: %v", LogPrefixProcessTurn, err)
	}

	node, d := router.SafeDecide(router.Input{
		Slots:                   state.Slots,
		ConfirmedInfo:           state.ConfirmedInfo,
		Intent:                  res.Label,
		Confidence:              res.Confidence,
		IsAffirmativeToPrevious: res.IsAffirmativeToPrevious,
		PreviousAssistantText:   state.PreviousAssistantText(),
		LatestUserText:          text,
		HasPlan:                 state.HasPlan(),
		Threshold:               uc.threshold,
	})
	uc.l.Infof(ctx, "%s: intent=%s confidence=%.2f route=%s reason=%s", LogPrefixProcessTurn, res.Label, res.Confidence, node, d.Reason)

	if node == travel.NodeEnd {
		state.CurrentNode = node
		return state, d.Message, ""
	}
	next, reply := uc.runNode(ctx, node, d, state)
	return next, reply, ""
}

// understand merges what the latest turns tell about the trip. A failed
// extraction keeps the prior slots.
func (uc *implUseCase) understand(ctx context.Context, state travel.SessionState) travel.SessionState {
	delta, err := uc.extractor.Extract(ctx, state.RecentTurns(uc.window))
	if err != nil {
		uc.l.Warnf(ctx, "%s: extraction skipped: %v", LogPrefixProcessTurn, err)
		return state
	}
	return slots.Merge(state, delta, uc.now())
}

// runNode executes node. A node error ends the turn with an apology and
// leaves the state as it was before the node ran.
func (uc *implUseCase) runNode(ctx context.Context, node travel.Node, d router.Decision, state travel.SessionState) (travel.SessionState, string) {
	fn, ok := uc.nodes[node]
	if !ok {
		uc.l.Errorf(ctx, "%s: no handler for node %s", LogPrefixNode, node)
		state.CurrentNode = travel.NodeEnd
		return state, msgNodeFailure
	}
	if uc.metrics != nil {
		uc.metrics.NodeVisits.WithLabelValues(string(node)).Inc()
	}

	before := state
	state.CurrentNode = node
	next, reply, err := fn(ctx, state, d)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %s failed: %v", LogPrefixNode, node, err)
		before.CurrentNode = travel.NodeEnd
		return before, msgNodeFailure
	}
	return next, reply
}

func (uc *implUseCase) observeTurn(outcome string, started time.Time) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.Turns.WithLabelValues(outcome).Inc()
	uc.metrics.TurnDuration.Observe(uc.now().Sub(started).Seconds())
}
