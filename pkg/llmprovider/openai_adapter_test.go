package llmprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go/option"
)

func TestOpenAIAdapter_GenerateContent(t *testing.T) {
	var captured map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		captured = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&captured)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"intent\":\"plan_request\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 7, "total_tokens": 27}
		}`))
	}))
	defer ts.Close()

	adapter := NewOpenAIAdapter(OpenAIConfig{
		Name:    "deepseek",
		APIKey:  "sk-test",
		BaseURL: ts.URL,
		Model:   "deepseek-chat",
		Options: []option.RequestOption{option.WithMaxRetries(0)},
	})

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: SystemText("classify"),
		Messages: []Message{
			UserText("부산 가고 싶어"),
			{Role: RoleAssistant, Parts: []Part{{Text: "언제 가시나요?"}}},
		},
		Temperature: 0.1,
		JSONMode:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text() != `{"intent":"plan_request"}` {
		t.Errorf("unexpected text: %q", resp.Text())
	}
	if resp.ProviderName != "deepseek" || resp.Usage.TotalTokens != 27 {
		t.Errorf("unexpected response metadata: %+v %+v", resp, resp.Usage)
	}

	msgs := captured["messages"].([]any)
	if len(msgs) != 3 {
		t.Fatalf("expected system + 2 messages, got %d", len(msgs))
	}
	if role := msgs[0].(map[string]any)["role"]; role != "system" {
		t.Errorf("expected system message first, got %v", role)
	}
	if role := msgs[2].(map[string]any)["role"]; role != "assistant" {
		t.Errorf("expected assistant role, got %v", role)
	}
	format := captured["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("expected json_object response format, got %v", format)
	}
}

func TestOpenAIAdapter_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer ts.Close()

	adapter := NewOpenAIAdapter(OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: ts.URL,
		Model:   "gpt-4o-mini",
		Options: []option.RequestOption{option.WithMaxRetries(0)},
	})

	if _, err := adapter.GenerateContent(context.Background(), &Request{Messages: []Message{UserText("hi")}}); err == nil {
		t.Fatal("expected error on 500")
	}
	if adapter.Name() != "openai" {
		t.Errorf("expected default name openai, got %s", adapter.Name())
	}
}
