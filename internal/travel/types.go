package travel

import "time"

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is one message in the conversation.
type Turn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Node is a workflow node of the dialogue graph.
type Node string

const (
	NodeCheckGuardrail    Node = "check_guardrail"
	NodeUnderstandRequest Node = "understand_request"
	NodeAskDestination    Node = "ask_destination"
	NodeCollectDetails    Node = "collect_details"
	NodeGeneratePlan      Node = "generate_plan"
	NodeRefinePlan        Node = "refine_plan"
	NodeRegisterCalendar  Node = "register_calendar"
	NodeViewCalendar      Node = "view_calendar"
	NodeModifyCalendar    Node = "modify_calendar"
	NodeDeleteCalendar    Node = "delete_calendar"
	NodeEnd               Node = "end"
)

// Slot names used in requiredInfo, confirmedInfo and pendingQuestions.
const (
	SlotDestination    = "destination"
	SlotTravelDates    = "travel_dates"
	SlotPreferences    = "preferences"
	SlotAccommodation  = "accommodation"
	SlotTransportation = "transportation"
)

// Slots are the trip facts extracted so far. Empty values mean unknown.
type Slots struct {
	Destination     string   `json:"destination,omitempty"`
	TravelDates     string   `json:"travel_dates,omitempty"`
	Duration        int      `json:"duration,omitempty"`
	Preferences     []string `json:"preferences,omitempty"`
	Accommodation   string   `json:"accommodation,omitempty"`
	Transportation  string   `json:"transportation,omitempty"`
	SpecialRequests string   `json:"special_requests,omitempty"`
}

// HistoryEntry records what one extraction pass learned.
type HistoryEntry struct {
	Timestamp     time.Time `json:"timestamp"`
	Topic         string    `json:"topic"`
	CollectedInfo []string  `json:"collected_info"`
}

// PlanFormat tells consumers how to read a PlanArtifact.
type PlanFormat string

const (
	PlanFormatJSON PlanFormat = "json"
	PlanFormatText PlanFormat = "text"
)

// PlanArtifact is an itinerary produced by generate or refine.
// An artifact is never mutated after creation; refine links the new one to
// the one it supersedes through Previous.
type PlanArtifact struct {
	Format         PlanFormat    `json:"format"`
	Plan           *TravelPlan   `json:"plan,omitempty"`
	Text           string        `json:"text"`
	SourceNode     Node          `json:"source_node"`
	PlacesEnriched bool          `json:"places_enriched"`
	CreatedAt      time.Time     `json:"created_at"`
	Previous       *PlanArtifact `json:"previous,omitempty"`
}

// TravelPlan is the structured itinerary document.
type TravelPlan struct {
	TravelOverview TravelOverview `json:"travelOverview"`
	Itinerary      []DayPlan      `json:"itinerary"`
	Preparation    Preparation    `json:"preparation"`
	Alternatives   Alternatives   `json:"alternatives"`
}

type TravelOverview struct {
	Destination  string `json:"destination"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	DurationDays int    `json:"durationDays"`
	Summary      string `json:"summary"`
}

type DayPlan struct {
	Date       string     `json:"date"`
	DayOfWeek  string     `json:"dayOfWeek"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time            string `json:"time"`
	Title           string `json:"title"`
	Location        string `json:"location"`
	Address         string `json:"address"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"durationMinutes"`
}

type Preparation struct {
	EssentialItems     []string `json:"essentialItems"`
	ReservationsNeeded []string `json:"reservationsNeeded"`
	LocalTips          []string `json:"localTips"`
	Warnings           []string `json:"warnings"`
}

type Alternatives struct {
	RainyDayOptions    []string `json:"rainyDayOptions"`
	OptionalActivities []string `json:"optionalActivities"`
}

// Event is a calendar entry as seen by the dialogue.
type Event struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	HtmlLink    string `json:"html_link,omitempty"`
}

// CalendarFlow names the nested calendar sub-machine in progress.
type CalendarFlow string

const (
	CalendarFlowNone   CalendarFlow = ""
	CalendarFlowModify CalendarFlow = "modify"
	CalendarFlowDelete CalendarFlow = "delete"
)

// CalendarStep is a sub-machine step. Steps only move forward.
type CalendarStep string

const (
	StepStart                  CalendarStep = "start"
	StepSelectEvent            CalendarStep = "select_event"
	StepGetModificationDetails CalendarStep = "get_modification_details"
	StepConfirmDeletion        CalendarStep = "confirm_deletion"
	StepCompleted              CalendarStep = "completed"
	StepCancelled              CalendarStep = "cancelled"
	StepError                  CalendarStep = "error"
)

var stepOrder = map[CalendarStep]int{
	StepStart:                  0,
	StepSelectEvent:            1,
	StepGetModificationDetails: 2,
	StepConfirmDeletion:        2,
	StepCompleted:              3,
	StepCancelled:              3,
	StepError:                  3,
}

// Rank orders steps; a transition is valid when the rank does not decrease.
func (s CalendarStep) Rank() int {
	return stepOrder[s]
}

// Terminal reports whether the sub-machine has finished.
func (s CalendarStep) Terminal() bool {
	return s == StepCompleted || s == StepCancelled || s == StepError
}

// CalendarSubState persists a calendar sub-machine across turns.
type CalendarSubState struct {
	Flow                CalendarFlow      `json:"flow,omitempty"`
	Step                CalendarStep      `json:"step,omitempty"`
	SelectedEventID     string            `json:"selected_event_id,omitempty"`
	PendingModification map[string]string `json:"pending_modification,omitempty"`
	FoundEvents         []Event           `json:"found_events,omitempty"`
}

// Active reports whether a sub-machine is mid-flight and owns the next turn.
func (c CalendarSubState) Active() bool {
	return c.Flow != CalendarFlowNone && c.Step != "" && !c.Step.Terminal()
}

// SelectedEvent returns the selected event from FoundEvents.
func (c CalendarSubState) SelectedEvent() (Event, bool) {
	for _, e := range c.FoundEvents {
		if e.ID == c.SelectedEventID {
			return e, true
		}
	}
	return Event{}, false
}

// SessionState is everything one conversation owns.
type SessionState struct {
	ID                 string           `json:"id"`
	Turns              []Turn           `json:"turns"`
	Slots              Slots            `json:"slots"`
	PendingQuestions   []string         `json:"pending_questions"`
	ConfirmedInfo      []string         `json:"confirmed_info"`
	ContextKeywords    []string         `json:"context_keywords"`
	LastTopic          string           `json:"last_topic,omitempty"`
	InteractionHistory []HistoryEntry   `json:"interaction_history"`
	CurrentNode        Node             `json:"current_node"`
	Plan               *PlanArtifact    `json:"plan,omitempty"`
	Calendar           CalendarSubState `json:"calendar"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// NewSession returns an empty session positioned at the guardrail.
func NewSession(id string, now time.Time) SessionState {
	return SessionState{
		ID:          id,
		CurrentNode: NodeCheckGuardrail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasPlan reports whether a plan artifact exists.
func (s SessionState) HasPlan() bool {
	return s.Plan != nil
}

// IsConfirmed reports whether slot is in ConfirmedInfo.
func (s SessionState) IsConfirmed(slot string) bool {
	for _, c := range s.ConfirmedInfo {
		if c == slot {
			return true
		}
	}
	return false
}

// RecentTurns returns the last n user and assistant turns.
func (s SessionState) RecentTurns(n int) []Turn {
	var out []Turn
	for i := len(s.Turns) - 1; i >= 0 && len(out) < n; i-- {
		if s.Turns[i].Role == RoleSystem {
			continue
		}
		out = append(out, s.Turns[i])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// LastText returns the text of the most recent turn by role.
func (s SessionState) LastText(role Role) string {
	for i := len(s.Turns) - 1; i >= 0; i-- {
		if s.Turns[i].Role == role {
			return s.Turns[i].Text
		}
	}
	return ""
}

// PreviousAssistantText returns the assistant turn before the latest user turn.
func (s SessionState) PreviousAssistantText() string {
	seenUser := false
	for i := len(s.Turns) - 1; i >= 0; i-- {
		switch s.Turns[i].Role {
		case RoleUser:
			seenUser = true
		case RoleAssistant:
			if seenUser {
				return s.Turns[i].Text
			}
		}
	}
	return ""
}

// AppendTurn returns a copy of s with t appended.
func (s SessionState) AppendTurn(t Turn) SessionState {
	out := s.Clone()
	out.Turns = append(out.Turns, t)
	out.UpdatedAt = t.Timestamp
	return out
}

// Clone deep-copies every collection. Plan artifacts are immutable and shared.
func (s SessionState) Clone() SessionState {
	out := s
	out.Turns = cloneSlice(s.Turns)
	out.Slots.Preferences = cloneSlice(s.Slots.Preferences)
	out.PendingQuestions = cloneSlice(s.PendingQuestions)
	out.ConfirmedInfo = cloneSlice(s.ConfirmedInfo)
	out.ContextKeywords = cloneSlice(s.ContextKeywords)
	if s.InteractionHistory != nil {
		out.InteractionHistory = make([]HistoryEntry, len(s.InteractionHistory))
		for i, h := range s.InteractionHistory {
			h.CollectedInfo = cloneSlice(h.CollectedInfo)
			out.InteractionHistory[i] = h
		}
	}
	out.Calendar = s.Calendar.Clone()
	return out
}

// Clone deep-copies the sub-state.
func (c CalendarSubState) Clone() CalendarSubState {
	out := c
	out.FoundEvents = cloneSlice(c.FoundEvents)
	if c.PendingModification != nil {
		out.PendingModification = make(map[string]string, len(c.PendingModification))
		for k, v := range c.PendingModification {
			out.PendingModification[k] = v
		}
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Place is a map lookup hit used to ground generated plans.
type Place struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Address  string `json:"address"`
	Phone    string `json:"phone,omitempty"`
	URL      string `json:"url,omitempty"`
}
