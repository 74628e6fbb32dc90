package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/completion"
)

// Generate produces a new plan artifact from the collected slots.
// The itinerary is requested as a JSON document first; a free-text reply is
// the fallback and becomes a text artifact when it does not parse either.
func (p *Planner) Generate(ctx context.Context, state travel.SessionState) (*travel.PlanArtifact, error) {
	groups := p.Enrich(ctx, state.Slots)
	instruction := fmt.Sprintf(PromptGenerate, collectedInfo(state.Slots), placeBlock(groups))

	return p.compose(ctx, LogPrefixGenerate, instruction, state.RecentTurns(p.window), travel.NodeGeneratePlan, len(groups) > 0)
}

// Refine revises the current plan with the latest user feedback. The new
// artifact links the one it supersedes; older generations are dropped.
func (p *Planner) Refine(ctx context.Context, state travel.SessionState) (*travel.PlanArtifact, error) {
	prev := state.Plan
	if prev == nil {
		return nil, travel.ErrNoPlan
	}

	var groups []PlaceGroup
	if !prev.PlacesEnriched {
		groups = p.Enrich(ctx, state.Slots)
	}
	instruction := fmt.Sprintf(PromptRefine, priorPlan(prev), placeBlock(groups))

	var turns []travel.Turn
	if last := state.LastText(travel.RoleUser); last != "" {
		turns = []travel.Turn{{Role: travel.RoleUser, Text: last}}
	}
	a, err := p.compose(ctx, LogPrefixRefine, instruction, turns, travel.NodeRefinePlan, prev.PlacesEnriched || len(groups) > 0)
	if err != nil {
		return nil, err
	}
	parent := *prev
	parent.Previous = nil
	a.Previous = &parent
	return a, nil
}

// compose asks for the plan in JSON mode and falls back to a free-text
// completion when the document is missing or empty. Only a failure of the
// fallback is returned.
func (p *Planner) compose(ctx context.Context, prefix, instruction string, turns []travel.Turn, node travel.Node, enriched bool) (*travel.PlanArtifact, error) {
	var plan travel.TravelPlan
	err := p.llm.Extract(ctx, instruction, turns, &plan)
	if err == nil {
		err = checkPlan(&plan)
	}
	if err == nil {
		return &travel.PlanArtifact{
			Format:         travel.PlanFormatJSON,
			Plan:           &plan,
			Text:           Render(&plan),
			SourceNode:     node,
			PlacesEnriched: enriched,
			CreatedAt:      p.now(),
		}, nil
	}
	p.l.Warnf(ctx, "%s: structured plan unavailable, asking for text: %v", prefix, err)

	text, err := p.llm.Generate(ctx, instruction, turns)
	if err != nil {
		p.l.Errorf(ctx, "%s: completion failed: %v", prefix, err)
		return nil, err
	}
	return p.artifact(ctx, prefix, text, node, enriched), nil
}

// priorPlan is the plan handed back to the model for revision. Structured
// plans go back as their JSON document.
func priorPlan(a *travel.PlanArtifact) string {
	if a.Format != travel.PlanFormatJSON || a.Plan == nil {
		return a.Text
	}
	raw, err := json.MarshalIndent(a.Plan, "", "  ")
	if err != nil {
		return a.Text
	}
	return string(raw)
}

func (p *Planner) artifact(ctx context.Context, prefix, text string, node travel.Node, enriched bool) *travel.PlanArtifact {
	a := &travel.PlanArtifact{
		Format:         travel.PlanFormatText,
		Text:           strings.TrimSpace(text),
		SourceNode:     node,
		PlacesEnriched: enriched,
		CreatedAt:      p.now(),
	}
	plan, err := ParsePlan(text)
	if err != nil {
		p.l.Warnf(ctx, "%s: %v, keeping text plan", prefix, err)
		return a
	}
	a.Format = travel.PlanFormatJSON
	a.Plan = plan
	a.Text = Render(plan)
	return a
}

// ParsePlan decodes a structured itinerary from model output. A document with
// neither a destination nor any itinerary day is rejected.
func ParsePlan(text string) (*travel.TravelPlan, error) {
	var plan travel.TravelPlan
	if err := json.Unmarshal([]byte(completion.SanitizeJSON(text)), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", travel.ErrPlanParse, err)
	}
	if err := checkPlan(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func checkPlan(plan *travel.TravelPlan) error {
	if strings.TrimSpace(plan.TravelOverview.Destination) == "" && len(plan.Itinerary) == 0 {
		return fmt.Errorf("%w: empty document", travel.ErrPlanParse)
	}
	return nil
}

func collectedInfo(s travel.Slots) string {
	dates := s.TravelDates
	if dates == "" && s.Duration > 0 {
		dates = fmt.Sprintf("%d일", s.Duration)
	}
	prefs := strings.Join(s.Preferences, ", ")
	return fmt.Sprintf(collectedInfoFmt, orUnknown(s.Destination), orUnknown(dates), orUnknown(prefs))
}

func orUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return unknownValue
	}
	return v
}
