package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/intent"
)

var fullSlots = travel.Slots{
	Destination: "제주도",
	TravelDates: "2025년 6월 7일 (토)",
	Preferences: []string{"맛집"},
}

func TestDecide_PriorityOrder(t *testing.T) {
	tests := []struct {
		name       string
		in         Input
		wantNode   travel.Node
		wantReason string
		wantNote   string
	}{
		{
			name:       "guardrail wins over everything",
			in:         Input{Slots: fullSlots, Intent: intent.LabelPlanCreate, Confidence: 0.99, GuardrailBlocked: true, GuardrailMessage: "blocked"},
			wantNode:   travel.NodeEnd,
			wantReason: ReasonGuardrail,
		},
		{
			name:       "calendar view",
			in:         Input{Slots: fullSlots, Intent: intent.LabelCalendarView, Confidence: 0.7},
			wantNode:   travel.NodeViewCalendar,
			wantReason: ReasonIntent,
		},
		{
			name:       "calendar modify",
			in:         Input{Slots: fullSlots, Intent: intent.LabelCalendarModify, Confidence: 0.8},
			wantNode:   travel.NodeModifyCalendar,
			wantReason: ReasonIntent,
		},
		{
			name:       "calendar delete",
			in:         Input{Slots: fullSlots, Intent: intent.LabelCalendarDelete, Confidence: 0.8},
			wantNode:   travel.NodeDeleteCalendar,
			wantReason: ReasonIntent,
		},
		{
			name:       "calendar create with plan",
			in:         Input{Slots: fullSlots, Intent: intent.LabelCalendarCreate, Confidence: 0.9, HasPlan: true},
			wantNode:   travel.NodeRegisterCalendar,
			wantReason: ReasonIntent,
		},
		{
			name:       "calendar create without plan generates first",
			in:         Input{Slots: fullSlots, Intent: intent.LabelCalendarCreate, Confidence: 0.9},
			wantNode:   travel.NodeGeneratePlan,
			wantReason: ReasonIntent,
			wantNote:   NoteNoPlanForCalendar,
		},
		{
			name:       "calendar create without plan and incomplete slots",
			in:         Input{Slots: travel.Slots{Destination: "부산"}, Intent: intent.LabelCalendarCreate, Confidence: 0.9},
			wantNode:   travel.NodeCollectDetails,
			wantReason: ReasonCompleteness,
		},
		{
			name:       "plan create",
			in:         Input{Slots: fullSlots, Intent: intent.LabelPlanCreate, Confidence: 0.75},
			wantNode:   travel.NodeGeneratePlan,
			wantReason: ReasonIntent,
		},
		{
			name:       "plan modify with plan",
			in:         Input{Slots: fullSlots, Intent: intent.LabelPlanModify, Confidence: 0.9, HasPlan: true},
			wantNode:   travel.NodeRefinePlan,
			wantReason: ReasonIntent,
		},
		{
			name:       "plan modify without plan",
			in:         Input{Slots: fullSlots, Intent: intent.LabelPlanModify, Confidence: 0.9},
			wantNode:   travel.NodeGeneratePlan,
			wantReason: ReasonIntent,
			wantNote:   NoteNoPlanForRefine,
		},
		{
			name: "affirmative to calendar offer",
			in: Input{Slots: fullSlots, Intent: intent.LabelAffirmative, Confidence: 0.9, IsAffirmativeToPrevious: true,
				HasPlan: true, PreviousAssistantText: "이 일정을 캘린더에 등록해드릴까요?"},
			wantNode:   travel.NodeRegisterCalendar,
			wantReason: ReasonAffirmative,
		},
		{
			name: "affirmative to refine offer",
			in: Input{Slots: fullSlots, Intent: intent.LabelAffirmative, Confidence: 0.9, IsAffirmativeToPrevious: true,
				HasPlan: true, PreviousAssistantText: "둘째 날 일정을 변경해드릴까요?"},
			wantNode:   travel.NodeRefinePlan,
			wantReason: ReasonAffirmative,
		},
		{
			name: "affirmative to plan offer",
			in: Input{Slots: fullSlots, Intent: intent.LabelAffirmative, Confidence: 0.9, IsAffirmativeToPrevious: true,
				PreviousAssistantText: "이제 여행 계획을 세워볼까요?"},
			wantNode:   travel.NodeGeneratePlan,
			wantReason: ReasonAffirmative,
		},
		{
			name: "affirmative not tied to previous",
			in: Input{Slots: fullSlots, Intent: intent.LabelAffirmative, Confidence: 0.9,
				PreviousAssistantText: "이제 여행 계획을 세워볼까요?"},
			wantNode:   travel.NodeUnderstandRequest,
			wantReason: ReasonCompleteness,
		},
		{
			name:       "low confidence plan keyword",
			in:         Input{Slots: fullSlots, Intent: intent.LabelGeneral, Confidence: 0.65, LatestUserText: "일정 짜줘"},
			wantNode:   travel.NodeGeneratePlan,
			wantReason: ReasonKeyword,
		},
		{
			name:       "low confidence as-is phrasing",
			in:         Input{Slots: fullSlots, Intent: intent.LabelGeneral, Confidence: 0.5, LatestUserText: "이대로 진행해"},
			wantNode:   travel.NodeGeneratePlan,
			wantReason: ReasonKeyword,
		},
		{
			name:       "low confidence keyword needs complete slots",
			in:         Input{Slots: travel.Slots{Destination: "제주도"}, Confidence: 0.5, LatestUserText: "계획 짜줘"},
			wantNode:   travel.NodeCollectDetails,
			wantReason: ReasonCompleteness,
		},
		{
			name:       "confident general suppresses keyword scan",
			in:         Input{Slots: fullSlots, Intent: intent.LabelGeneral, Confidence: 0.9, LatestUserText: "일정이 기대돼요"},
			wantNode:   travel.NodeUnderstandRequest,
			wantReason: ReasonCompleteness,
		},
		{
			name:       "missing dates",
			in:         Input{Slots: travel.Slots{Destination: "부산", Preferences: []string{"맛집"}}, Confidence: 0.5},
			wantNode:   travel.NodeCollectDetails,
			wantReason: ReasonCompleteness,
		},
		{
			name:       "duration confirmation counts as dates",
			in:         Input{Slots: travel.Slots{Destination: "부산", Duration: 2, Preferences: []string{"맛집"}}, ConfirmedInfo: []string{travel.SlotTravelDates}, Confidence: 0.5},
			wantNode:   travel.NodeUnderstandRequest,
			wantReason: ReasonCompleteness,
		},
		{
			name:       "missing preferences",
			in:         Input{Slots: travel.Slots{Destination: "부산", TravelDates: "내일"}, Confidence: 0.5},
			wantNode:   travel.NodeCollectDetails,
			wantReason: ReasonCompleteness,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, d := Decide(tt.in)
			assert.Equal(t, tt.wantNode, node)
			assert.Equal(t, tt.wantNode, d.Node)
			assert.Equal(t, tt.wantReason, d.Reason)
			assert.Equal(t, tt.wantNote, d.SystemNote)
		})
	}
}

func TestDecide_EmptySlotsAlwaysAskDestination(t *testing.T) {
	labels := []intent.Label{
		intent.LabelPlanCreate, intent.LabelPlanModify, intent.LabelPlanQuestion,
		intent.LabelCalendarCreate, intent.LabelCalendarView, intent.LabelCalendarModify,
		intent.LabelCalendarDelete, intent.LabelAffirmative, intent.LabelNegative, intent.LabelGeneral,
	}
	for _, label := range labels {
		for _, conf := range []float64{0.1, 0.7, 1.0} {
			node, _ := Decide(Input{
				Intent:                  label,
				Confidence:              conf,
				IsAffirmativeToPrevious: true,
				PreviousAssistantText:   "캘린더에 등록할까요?",
				LatestUserText:          "계획 짜줘",
			})
			assert.Equal(t, travel.NodeAskDestination, node, "label=%s conf=%.1f", label, conf)
		}
	}
}

func TestSafeDecide_PassesThrough(t *testing.T) {
	node, d := SafeDecide(Input{Slots: fullSlots, Intent: intent.LabelCalendarView, Confidence: 0.9})
	assert.Equal(t, travel.NodeViewCalendar, node)
	assert.Equal(t, ReasonIntent, d.Reason)
}

func TestDecide_Pure(t *testing.T) {
	in := Input{Slots: fullSlots, Intent: intent.LabelCalendarCreate, Confidence: 0.9, LatestUserText: "등록해줘"}
	n1, d1 := Decide(in)
	n2, d2 := Decide(in)
	assert.Equal(t, n1, n2)
	assert.Equal(t, d1, d2)
}

func TestDecide_CustomThreshold(t *testing.T) {
	in := Input{Slots: fullSlots, Intent: intent.LabelCalendarView, Confidence: 0.75, Threshold: 0.8}
	node, _ := Decide(in)
	assert.Equal(t, travel.NodeUnderstandRequest, node)
}

func TestSafeDecide_RecoversPanic(t *testing.T) {
	node, d := safeDecide(func(Input) Decision { panic("boom") }, Input{})
	assert.Equal(t, travel.NodeEnd, node)
	assert.Equal(t, MessageRouterFailure, d.Message)
	assert.Contains(t, d.Reason, ReasonPanic)
}
