package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
)

const sampleYAML = `
environment:
  name: test
llm:
  fallback_enabled: true
  retry_attempts: 2
  retry_delay: 250ms
  max_total_timeout: 30s
  providers:
    - name: openai
      enabled: true
      priority: 1
      api_key: ${TRAVEL_OPENAI_KEY}
      model: gpt-4o-mini
      timeout: 20s
    - name: gemini
      enabled: false
      priority: 2
      api_key: literal-key
      model: gemini-2.5-flash
session:
  backend: redis
  ttl: 30m
`

func loadFromString(t *testing.T, raw string) (*Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	if err := v.ReadConfig(bytes.NewBufferString(raw)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	return build(v)
}

func TestBuild_DecodesProvidersAndDurations(t *testing.T) {
	t.Setenv("TRAVEL_OPENAI_KEY", "sk-from-env")

	cfg, err := loadFromString(t, sampleYAML)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	openai := cfg.LLM.Providers[0]
	if openai.APIKey != "sk-from-env" {
		t.Errorf("expected env expansion, got %q", openai.APIKey)
	}
	if openai.Timeout != 20*time.Second {
		t.Errorf("expected 20s timeout, got %v", openai.Timeout)
	}
	if cfg.LLM.RetryDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms retry delay, got %v", cfg.LLM.RetryDelay)
	}
	if cfg.LLM.Providers[1].APIKey != "literal-key" {
		t.Errorf("literal keys must be kept as-is")
	}
	if cfg.Session.Backend != "redis" || cfg.Session.TTL != 30*time.Minute {
		t.Errorf("unexpected session config: %+v", cfg.Session)
	}
}

func TestBuild_Defaults(t *testing.T) {
	cfg, err := loadFromString(t, sampleYAML)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cfg.Dialogue.MemoryWindow != 10 {
		t.Errorf("expected memory window 10, got %d", cfg.Dialogue.MemoryWindow)
	}
	if cfg.Dialogue.ConfidenceThreshold != 0.7 {
		t.Errorf("expected threshold 0.7, got %v", cfg.Dialogue.ConfidenceThreshold)
	}
	if cfg.Kakao.CacheTTL != time.Hour {
		t.Errorf("expected 1h kakao cache, got %v", cfg.Kakao.CacheTTL)
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"empty", LLMConfig{}, true},
		{"none enabled", LLMConfig{Providers: []ProviderConfig{{Name: "a", Model: "m"}}}, true},
		{"duplicate priority", LLMConfig{Providers: []ProviderConfig{
			{Name: "a", Model: "m", Enabled: true, Priority: 1},
			{Name: "b", Model: "m", Enabled: true, Priority: 1},
		}}, true},
		{"missing model", LLMConfig{Providers: []ProviderConfig{{Name: "a", Enabled: true, Priority: 1}}}, true},
		{"valid", LLMConfig{Providers: []ProviderConfig{{Name: "a", Model: "m", Enabled: true, Priority: 1}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
