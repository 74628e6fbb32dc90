package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/travel"
	"travel-planner/pkg/llmprovider"
	pkgLog "travel-planner/pkg/log"
)

type fakeProvider struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: f.text}}}}, nil
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-1" }

func TestSanitizeJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "fenced json", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "prose around", in: "결과입니다: {\"a\":1} 감사합니다", want: `{"a":1}`},
		{name: "no json", in: "안녕하세요", want: "안녕하세요"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeJSON(tt.in))
		})
	}
}

func TestExtract(t *testing.T) {
	p := &fakeProvider{text: "```json\n{\"destination\":\"부산\"}\n```"}
	svc := New(p, pkgLog.NewNop())

	var out struct {
		Destination string `json:"destination"`
	}
	err := svc.Extract(context.Background(), "analyze", []travel.Turn{
		{Role: travel.RoleSystem, Text: "context note"},
		{Role: travel.RoleUser, Text: "부산 가고 싶어"},
		{Role: travel.RoleAssistant, Text: "좋아요"},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "부산", out.Destination)
	assert.True(t, p.lastReq.JSONMode)
	assert.Equal(t, "analyze\n\ncontext note", p.lastReq.SystemInstruction.Parts[0].Text)
	require.Len(t, p.lastReq.Messages, 2)
	assert.Equal(t, llmprovider.RoleAssistant, p.lastReq.Messages[1].Role)
}

func TestExtract_Malformed(t *testing.T) {
	svc := New(&fakeProvider{text: "not json at all"}, pkgLog.NewNop())
	var out map[string]any
	err := svc.Extract(context.Background(), "analyze", []travel.Turn{{Role: travel.RoleUser, Text: "x"}}, &out)
	assert.ErrorIs(t, err, ErrMalformedOutput)

	svc = New(&fakeProvider{text: "  "}, pkgLog.NewNop())
	err = svc.Classify(context.Background(), "classify", "x", &out)
	assert.ErrorIs(t, err, ErrEmptyOutput)
}

func TestGenerate(t *testing.T) {
	p := &fakeProvider{text: " 안녕하세요! "}
	svc := New(p, pkgLog.NewNop())

	got, err := svc.Generate(context.Background(), "reply kindly", nil)
	require.NoError(t, err)
	assert.Equal(t, "안녕하세요!", got)
	assert.Nil(t, p.lastReq.SystemInstruction, "instruction becomes the user message when there are no turns")
	assert.False(t, p.lastReq.JSONMode)

	boom := errors.New("boom")
	_, err = New(&fakeProvider{err: boom}, pkgLog.NewNop()).Generate(context.Background(), "x", nil)
	assert.ErrorIs(t, err, boom)
}
