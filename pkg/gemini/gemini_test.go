package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-planner/pkg/gemini"
)

func TestNew_Validation(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}
}

func TestClient_GenerateContent(t *testing.T) {
	var captured map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		captured = map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := captured["contents"].([]any)
		first := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"]
		if first == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "부산 여행 좋아요"}], "role": "model"}, "finishReason": "STOP"}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 5, "totalTokenCount": 17}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "system"}}},
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "안녕"}}},
				{Role: "assistant", Parts: []gemini.Part{{Text: "안녕하세요"}}},
			},
			Temperature:      0.2,
			ResponseMIMEType: gemini.MIMETypeJSON,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Parts[0].Text != "부산 여행 좋아요" {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.Usage.TotalTokens != 17 {
			t.Errorf("expected usage to be mapped, got %+v", resp.Usage)
		}

		contents := captured["contents"].([]any)
		if role := contents[1].(map[string]any)["role"]; role != "model" {
			t.Errorf("assistant role must be sent as model, got %v", role)
		}
		genCfg := captured["generationConfig"].(map[string]any)
		if genCfg["responseMimeType"] != gemini.MIMETypeJSON {
			t.Errorf("expected JSON mime type, got %v", genCfg["responseMimeType"])
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
	})
}
