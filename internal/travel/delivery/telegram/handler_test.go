package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/travel"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type sent struct {
	chatID    int64
	text      string
	parseMode string
}

type mockSender struct {
	ch chan sent
}

func newMockSender() *mockSender {
	return &mockSender{ch: make(chan sent, 8)}
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string, parseMode string) error {
	m.ch <- sent{chatID: chatID, text: text, parseMode: parseMode}
	return nil
}

func (m *mockSender) next(t *testing.T) sent {
	t.Helper()
	select {
	case s := <-m.ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a message")
		return sent{}
	}
}

type mockUseCase struct {
	mu     sync.Mutex
	out    travel.TurnOutput
	err    error
	inputs []travel.ProcessTurnInput
	ended  []string
	endErr error
}

func (m *mockUseCase) ProcessTurn(ctx context.Context, in travel.ProcessTurnInput) (travel.TurnOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, in)
	return m.out, m.err
}

func (m *mockUseCase) CreateSession(ctx context.Context, in travel.CreateSessionInput) (travel.SessionState, error) {
	return travel.SessionState{}, nil
}

func (m *mockUseCase) GetSession(ctx context.Context, id string) (travel.SessionState, error) {
	return travel.SessionState{}, nil
}

func (m *mockUseCase) EndSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ended = append(m.ended, id)
	return m.endErr
}

func post(h Handler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func update(text string) string {
	return `{"update_id":1,"message":{"message_id":7,"from":{"id":42,"first_name":"Min"},"chat":{"id":42,"type":"private"},"date":0,"text":"` + text + `"}}`
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook(t *testing.T) {
	t.Run("turn is routed to the chat session", func(t *testing.T) {
		uc := &mockUseCase{out: travel.TurnOutput{SessionID: "telegram_42", Reply: "어디로 가시나요?", Node: travel.NodeAskDestination}}
		bot := newMockSender()
		w := post(New(&mockLogger{}, uc, bot), update("여행 가고 싶어"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "accepted")

		assert.Equal(t, msgProcessing, bot.next(t).text)
		reply := bot.next(t)
		assert.Equal(t, int64(42), reply.chatID)
		assert.Equal(t, "어디로 가시나요?", reply.text)
		assert.Equal(t, "Markdown", reply.parseMode)

		uc.mu.Lock()
		defer uc.mu.Unlock()
		require.Len(t, uc.inputs, 1)
		assert.Equal(t, travel.ProcessTurnInput{SessionID: "telegram_42", Text: "여행 가고 싶어"}, uc.inputs[0])
	})

	t.Run("start resets the session", func(t *testing.T) {
		uc := &mockUseCase{endErr: travel.ErrSessionNotFound}
		bot := newMockSender()
		post(New(&mockLogger{}, uc, bot), update("/start@travel_bot"))

		assert.Equal(t, msgWelcome, bot.next(t).text)
		uc.mu.Lock()
		defer uc.mu.Unlock()
		assert.Equal(t, []string{"telegram_42"}, uc.ended)
		assert.Empty(t, uc.inputs)
	})

	t.Run("help", func(t *testing.T) {
		bot := newMockSender()
		post(New(&mockLogger{}, &mockUseCase{}, bot), update("/help"))
		assert.Equal(t, msgHelp, bot.next(t).text)
	})

	t.Run("use case failure notifies the user", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("boom")}
		bot := newMockSender()
		post(New(&mockLogger{}, uc, bot), update("안녕"))

		assert.Equal(t, msgProcessing, bot.next(t).text)
		assert.Equal(t, msgFailure, bot.next(t).text)
	})

	t.Run("non-message update is ignored", func(t *testing.T) {
		bot := newMockSender()
		w := post(New(&mockLogger{}, &mockUseCase{}, bot), `{"update_id":2}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ignored")
	})

	t.Run("malformed update", func(t *testing.T) {
		w := post(New(&mockLogger{}, &mockUseCase{}, newMockSender()), `{"update_id":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCommand(t *testing.T) {
	assert.Equal(t, "/start", command("/start"))
	assert.Equal(t, "/start", command("/start@trip_bot"))
	assert.Equal(t, "/help", command("/help me"))
	assert.Equal(t, "", command("제주도 가고 싶어"))
}
