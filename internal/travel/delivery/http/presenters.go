package http

import (
	"strings"
	"unicode/utf8"

	"travel-planner/internal/travel"
	"travel-planner/pkg/response"
)

// --- Request DTOs ---

type travelDatesReq struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type createSessionReq struct {
	Destination     string             `json:"destination"`
	TravelDates     travelDatesReq     `json:"travel_dates"`
	Preferences     []string           `json:"preferences"`
	Accommodation   string             `json:"accommodation"`
	Transportation  string             `json:"transportation"`
	SpecialRequests string             `json:"special_requests"`
	Plan            *travel.TravelPlan `json:"plan"`
	PlanText        string             `json:"plan_text"`
}

func (r createSessionReq) validate() error {
	if r.Plan != nil && strings.TrimSpace(r.PlanText) != "" {
		return errPlanConflict
	}
	if utf8.RuneCountInString(r.PlanText) > maxPlanTextRunes {
		return errPlanTextTooLong
	}
	return nil
}

func (r createSessionReq) toInput() travel.CreateSessionInput {
	return travel.CreateSessionInput{
		Destination:     r.Destination,
		StartDate:       r.TravelDates.Start,
		EndDate:         r.TravelDates.End,
		Preferences:     r.Preferences,
		Accommodation:   r.Accommodation,
		Transportation:  r.Transportation,
		SpecialRequests: r.SpecialRequests,
		Plan:            r.Plan,
		PlanText:        r.PlanText,
	}
}

// ---

type turnReq struct {
	SessionID string `json:"-"` // populated from URI param
	Text      string `json:"text"`
}

func (r turnReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

func (r turnReq) toInput() travel.ProcessTurnInput {
	return travel.ProcessTurnInput{
		SessionID: r.SessionID,
		Text:      r.Text,
	}
}

// --- Response DTOs ---

type planResp struct {
	Format         string             `json:"format"`
	Text           string             `json:"text"`
	Plan           *travel.TravelPlan `json:"plan,omitempty"`
	SourceNode     string             `json:"source_node"`
	PlacesEnriched bool               `json:"places_enriched"`
	CreatedAt      response.DateTime  `json:"created_at"`
}

func newPlanResp(a *travel.PlanArtifact) *planResp {
	if a == nil {
		return nil
	}
	return &planResp{
		Format:         string(a.Format),
		Text:           a.Text,
		Plan:           a.Plan,
		SourceNode:     string(a.SourceNode),
		PlacesEnriched: a.PlacesEnriched,
		CreatedAt:      response.DateTime(a.CreatedAt),
	}
}

type calendarResp struct {
	Flow string `json:"flow"`
	Step string `json:"step"`
}

type sessionResp struct {
	ID               string            `json:"id"`
	CurrentNode      string            `json:"current_node"`
	Slots            travel.Slots      `json:"slots"`
	ConfirmedInfo    []string          `json:"confirmed_info"`
	PendingQuestions []string          `json:"pending_questions"`
	TurnCount        int               `json:"turn_count"`
	HasPlan          bool              `json:"has_plan"`
	Plan             *planResp         `json:"plan,omitempty"`
	Calendar         *calendarResp     `json:"calendar,omitempty"`
	CreatedAt        response.DateTime `json:"created_at"`
	UpdatedAt        response.DateTime `json:"updated_at"`
}

func (h *handler) newSessionResp(s travel.SessionState) sessionResp {
	resp := sessionResp{
		ID:               s.ID,
		CurrentNode:      string(s.CurrentNode),
		Slots:            s.Slots,
		ConfirmedInfo:    nonNil(s.ConfirmedInfo),
		PendingQuestions: nonNil(s.PendingQuestions),
		TurnCount:        len(s.Turns),
		HasPlan:          s.HasPlan(),
		Plan:             newPlanResp(s.Plan),
		CreatedAt:        response.DateTime(s.CreatedAt),
		UpdatedAt:        response.DateTime(s.UpdatedAt),
	}
	if s.Calendar.Flow != travel.CalendarFlowNone {
		resp.Calendar = &calendarResp{Flow: string(s.Calendar.Flow), Step: string(s.Calendar.Step)}
	}
	return resp
}

type turnResp struct {
	SessionID string    `json:"session_id"`
	Reply     string    `json:"reply"`
	Node      string    `json:"node"`
	HasPlan   bool      `json:"has_plan"`
	Plan      *planResp `json:"plan,omitempty"`
	Violation string    `json:"violation,omitempty"`
}

func (h *handler) newTurnResp(out travel.TurnOutput) turnResp {
	return turnResp{
		SessionID: out.SessionID,
		Reply:     out.Reply,
		Node:      string(out.Node),
		HasPlan:   out.HasPlan,
		Plan:      newPlanResp(out.Plan),
		Violation: out.Violation,
	}
}

// --- SSE payloads ---

type statusEvent struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
}

type chunkEvent struct {
	Text string `json:"text"`
}

type planEvent struct {
	HasPlan bool      `json:"has_plan"`
	Plan    *planResp `json:"plan"`
}

type doneEvent struct {
	SessionID string `json:"session_id"`
	Node      string `json:"node"`
	Violation string `json:"violation,omitempty"`
}

type errorEvent struct {
	Message string `json:"message"`
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
