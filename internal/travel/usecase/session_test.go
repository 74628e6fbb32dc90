package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/router"
)

func TestCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		h := newHarness(t)
		state, err := h.uc.CreateSession(ctx, travel.CreateSessionInput{})
		require.NoError(t, err)
		assert.Equal(t, "session-1", state.ID)
		assert.Equal(t, travel.NodeCheckGuardrail, state.CurrentNode)
		assert.False(t, state.HasPlan())
	})

	t.Run("seeded with preferences and a structured plan", func(t *testing.T) {
		h := newHarness(t)
		plan := &travel.TravelPlan{TravelOverview: travel.TravelOverview{Destination: "제주도", StartDate: "2025-06-07", EndDate: "2025-06-09"}}
		state, err := h.uc.CreateSession(ctx, travel.CreateSessionInput{
			Preferences: []string{"맛집", " 맛집 ", "", "휴식"},
			Plan:        plan,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"맛집", "휴식"}, state.Slots.Preferences)
		assert.Equal(t, "제주도", state.Slots.Destination)
		assert.ElementsMatch(t, []string{travel.SlotPreferences, travel.SlotDestination}, state.ConfirmedInfo)
		require.NotNil(t, state.Plan)
		assert.Equal(t, travel.PlanFormatJSON, state.Plan.Format)
		assert.Contains(t, state.Plan.Text, "목적지: 제주도")

		stored, err := h.uc.GetSession(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, state.Slots, stored.Slots)
	})

	t.Run("seeded with trip facts", func(t *testing.T) {
		h := newHarness(t)
		state, err := h.uc.CreateSession(ctx, travel.CreateSessionInput{
			Destination:     " 강릉 ",
			StartDate:       "2025-06-07",
			EndDate:         "2025-06-09",
			Accommodation:   "게스트하우스",
			Transportation:  "KTX",
			SpecialRequests: "반려견 동반",
		})
		require.NoError(t, err)

		assert.Equal(t, "강릉", state.Slots.Destination)
		assert.Equal(t, "2025-06-07 ~ 2025-06-09", state.Slots.TravelDates)
		assert.Equal(t, "게스트하우스", state.Slots.Accommodation)
		assert.Equal(t, "KTX", state.Slots.Transportation)
		assert.Equal(t, "반려견 동반", state.Slots.SpecialRequests)
		assert.ElementsMatch(t, []string{
			travel.SlotDestination, travel.SlotTravelDates, travel.SlotAccommodation, travel.SlotTransportation,
		}, state.ConfirmedInfo)
		assert.Empty(t, state.PendingQuestions)
	})

	t.Run("start date alone is not seeded", func(t *testing.T) {
		h := newHarness(t)
		state, err := h.uc.CreateSession(ctx, travel.CreateSessionInput{StartDate: "2025-06-07"})
		require.NoError(t, err)
		assert.Empty(t, state.Slots.TravelDates)
		assert.Empty(t, state.ConfirmedInfo)
		assert.Empty(t, state.InteractionHistory)
	})

	t.Run("seeded destination skips the destination question", func(t *testing.T) {
		h := newHarness(t)
		state, err := h.uc.CreateSession(ctx, travel.CreateSessionInput{Destination: "부산"})
		require.NoError(t, err)

		out := h.turn(t, state.ID, "안녕하세요")
		assert.Equal(t, travel.NodeCollectDetails, out.Node)
		assert.Contains(t, h.llm.lastInstr, "목적지: 부산")
	})

	t.Run("seeded with a text plan", func(t *testing.T) {
		h := newHarness(t)
		state, err := h.uc.CreateSession(ctx, travel.CreateSessionInput{PlanText: "  목적지: 부산\n"})
		require.NoError(t, err)
		require.NotNil(t, state.Plan)
		assert.Equal(t, travel.PlanFormatText, state.Plan.Format)
		assert.Equal(t, "목적지: 부산", state.Plan.Text)
	})
}

func TestGetAndEndSession(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.uc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, travel.ErrSessionNotFound)
	assert.ErrorIs(t, h.uc.EndSession(ctx, "missing"), travel.ErrSessionNotFound)

	h.turn(t, "s1", "안녕")
	require.NoError(t, h.uc.EndSession(ctx, "s1"))
	_, err = h.uc.GetSession(ctx, "s1")
	assert.ErrorIs(t, err, travel.ErrSessionNotFound)
}

func TestRegisterCalendar_WithoutPlan(t *testing.T) {
	h := newHarness(t)
	state := travel.NewSession("s1", fixedNow)

	next, reply, err := h.uc.registerCalendar(context.Background(), state, router.Decision{Node: travel.NodeRegisterCalendar})
	require.NoError(t, err)
	assert.Equal(t, msgRegisterNoPlan, reply)
	assert.Equal(t, travel.NodeUnderstandRequest, next.CurrentNode)
	assert.Empty(t, h.calendar.created)
}

func TestRefinePlan_WithoutPlanGenerates(t *testing.T) {
	h := newHarness(t)
	state := travel.NewSession("s1", fixedNow)

	next, reply, err := h.uc.refinePlan(context.Background(), state, router.Decision{Node: travel.NodeRefinePlan})
	require.NoError(t, err)
	assert.Equal(t, travel.NodeGeneratePlan, next.CurrentNode)
	assert.Contains(t, reply, router.NoteNoPlanForRefine)
	assert.True(t, next.HasPlan())
}

func TestSessionLocks(t *testing.T) {
	locks := newSessionLocks()

	release := locks.lock("a")
	acquired := make(chan struct{})
	go func() {
		defer close(acquired)
		locks.lock("a")()
	}()

	other := locks.lock("b")
	other()

	select {
	case <-acquired:
		t.Fatal("second lock on the same id must wait")
	default:
	}
	release()
	<-acquired
	assert.Zero(t, locks.size())
}

func TestStepCalendar(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.calendar.events = []travel.Event{{ID: "e1", Summary: "제주도 여행", StartDate: "2025-06-07", EndDate: "2025-06-09"}}

	state := travel.NewSession("s1", fixedNow)
	state.Turns = append(state.Turns, travel.Turn{Role: travel.RoleUser, Text: "제주도 일정 삭제해줘"})

	next, reply, err := h.uc.stepCalendar(ctx, travel.CalendarFlowDelete, state)
	require.NoError(t, err)
	assert.Equal(t, travel.CalendarFlowDelete, next.Calendar.Flow)
	assert.Equal(t, travel.StepConfirmDeletion, next.Calendar.Step)
	assert.Contains(t, reply, "제주도 여행")

	_, _, err = h.uc.stepCalendar(ctx, travel.CalendarFlow("rename"), state)
	assert.Error(t, err)
}
