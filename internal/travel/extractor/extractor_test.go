package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/completion"
	pkgLog "travel-planner/pkg/log"
)

// stubLLM answers Extract with a canned document.
type stubLLM struct {
	doc       string
	err       error
	lastTurns []travel.Turn
	lastInstr string
}

func (s *stubLLM) Generate(ctx context.Context, instruction string, turns []travel.Turn) (string, error) {
	return "", errors.New("not used")
}

func (s *stubLLM) Extract(ctx context.Context, instruction string, turns []travel.Turn, out any) error {
	s.lastTurns = turns
	s.lastInstr = instruction
	if s.err != nil {
		return s.err
	}
	if err := json.Unmarshal([]byte(s.doc), out); err != nil {
		return fmt.Errorf("%w: %v", completion.ErrMalformedOutput, err)
	}
	return nil
}

func (s *stubLLM) Classify(ctx context.Context, instruction, text string, out any) error {
	return errors.New("not used")
}

func newExtractor(llm completion.Service) *Extractor {
	e := New(llm, pkgLog.NewNop(), 3)
	e.now = func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }
	return e
}

func turns(n int) []travel.Turn {
	out := make([]travel.Turn, n)
	for i := range out {
		out[i] = travel.Turn{Role: travel.RoleUser, Text: fmt.Sprintf("turn %d", i)}
	}
	return out
}

func TestExtract_FlatDocument(t *testing.T) {
	llm := &stubLLM{doc: `{
		"destination": "제주도",
		"dates": null,
		"durationDays": 2,
		"preferences": ["맛집"],
		"currentTopic": "일정",
		"userInterests": ["해변"],
		"requiredInfo": ["preferences", "accommodation"]
	}`}

	d, err := newExtractor(llm).Extract(context.Background(), turns(5))
	require.NoError(t, err)

	assert.Equal(t, "제주도", d.Destination)
	assert.Empty(t, d.Dates)
	assert.Equal(t, 2, d.DurationDays)
	assert.Equal(t, []string{"맛집"}, d.Preferences)
	assert.Equal(t, []string{"preferences", "accommodation"}, d.RequiredInfo)
	assert.Len(t, llm.lastTurns, 3, "only the window is sent")
	assert.Equal(t, "turn 4", llm.lastTurns[2].Text)
	assert.Contains(t, llm.lastInstr, "2025년")
}

func TestExtract_NestedDocument(t *testing.T) {
	llm := &stubLLM{doc: `{
		"core_info": {
			"destination": "부산",
			"dates": "2025년 6월 7일 (금)",
			"duration": "2박",
			"date_validation": {"is_valid": false, "original": "2025년 6월 7일 (금)", "corrected": "2025년 6월 7일 (토)"},
			"preferences": ["쇼핑"]
		},
		"context": {"current_topic": "날짜", "related_to_previous": true, "user_interests": ["야경"]},
		"next_steps": {"required_info": ["accommodation"], "suggested_questions": [], "recommendations": []}
	}`}

	d, err := newExtractor(llm).Extract(context.Background(), turns(1))
	require.NoError(t, err)

	assert.Equal(t, "부산", d.Destination)
	assert.Equal(t, 2, d.DurationDays)
	require.NotNil(t, d.DateValidation)
	assert.False(t, d.DateValidation.IsValid)
	assert.Equal(t, "2025년 6월 7일 (토)", d.DateValidation.Corrected)
	assert.Equal(t, "날짜", d.CurrentTopic)
	assert.True(t, d.RelatedToPrevious)
	assert.Equal(t, []string{"야경"}, d.UserInterests)
	assert.Equal(t, []string{"accommodation"}, d.RequiredInfo)
}

func TestExtract_LocalDateValidation(t *testing.T) {
	llm := &stubLLM{doc: `{"dates": "2025-06-07(Fri)"}`}

	d, err := newExtractor(llm).Extract(context.Background(), turns(1))
	require.NoError(t, err)

	require.NotNil(t, d.DateValidation)
	assert.False(t, d.DateValidation.IsValid)
	assert.Equal(t, "2025-06-07(Sat)", d.DateValidation.Corrected)
}

func TestExtract_ParseFailure(t *testing.T) {
	_, err := newExtractor(&stubLLM{doc: "I think you want Busan"}).Extract(context.Background(), turns(1))
	assert.ErrorIs(t, err, travel.ErrExtractionParse)

	boom := errors.New("provider down")
	_, err = newExtractor(&stubLLM{err: boom}).Extract(context.Background(), turns(1))
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, travel.ErrExtractionParse)
}
