package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Travel planner specifics
	Dialogue       DialogueConfig
	Session        SessionConfig
	GoogleCalendar GoogleCalendarConfig
	Kakao          KakaoConfig
	Telegram       TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	MaxTrackedKeys int
	KeyTTL         time.Duration
}

// DialogueConfig tunes the conversation engine.
type DialogueConfig struct {
	MemoryWindow        int
	ConfidenceThreshold float64
	Timezone            string
	StreamChunkSize     int
}

// SessionConfig selects and tunes the session repository.
type SessionConfig struct {
	Backend       string // memory | redis
	TTL           time.Duration
	MaxSessions   int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type KakaoConfig struct {
	APIKey   string
	BaseURL  string
	CacheTTL time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `mapstructure:"providers"`
	FallbackEnabled bool             `mapstructure:"fallback_enabled"`
	RetryAttempts   int              `mapstructure:"retry_attempts"`
	RetryDelay      time.Duration    `mapstructure:"retry_delay"`
	MaxTotalTimeout time.Duration    `mapstructure:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string        `mapstructure:"name"`
	Enabled  bool          `mapstructure:"enabled"`
	Priority int           `mapstructure:"priority"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedKeys = v.GetInt("rate_limit.max_tracked_keys")
	cfg.RateLimit.KeyTTL = v.GetDuration("rate_limit.key_ttl")

	// Dialogue
	cfg.Dialogue.MemoryWindow = v.GetInt("dialogue.memory_window")
	cfg.Dialogue.ConfidenceThreshold = v.GetFloat64("dialogue.confidence_threshold")
	cfg.Dialogue.Timezone = v.GetString("dialogue.timezone")
	cfg.Dialogue.StreamChunkSize = v.GetInt("dialogue.stream_chunk_size")

	// Sessions
	cfg.Session.Backend = v.GetString("session.backend")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Session.RedisAddr = v.GetString("session.redis_addr")
	cfg.Session.RedisPassword = v.GetString("session.redis_password")
	cfg.Session.RedisDB = v.GetInt("session.redis_db")
	cfg.Session.RedisPrefix = v.GetString("session.redis_prefix")
	if redisURL := v.GetString("redis_addr"); redisURL != "" {
		cfg.Session.RedisAddr = redisURL
	}

	// Collaborators
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Kakao.APIKey = expandEnvVar(v, v.GetString("kakao.api_key"))
	cfg.Kakao.BaseURL = v.GetString("kakao.base_url")
	cfg.Kakao.CacheTTL = v.GetDuration("kakao.cache_ttl")
	if kakaoKey := v.GetString("kakao_api_key"); kakaoKey != "" {
		cfg.Kakao.APIKey = kakaoKey
	}

	cfg.Telegram.BotToken = expandEnvVar(v, v.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	if err := decodeLLM(v, &cfg.LLM); err != nil {
		return nil, err
	}
	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(v, cfg.LLM.Providers[i].APIKey)
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeLLM decodes the llm section. Durations are accepted as strings ("1s").
// AllSettings is used so that defaults for keys missing from the file apply.
func decodeLLM(v *viper.Viper, out *LLMConfig) error {
	raw, _ := v.AllSettings()["llm"].(map[string]any)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to build llm decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode llm config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("rate_limit.max_tracked_keys", 1000)
	v.SetDefault("rate_limit.key_ttl", "5m")

	v.SetDefault("dialogue.memory_window", 10)
	v.SetDefault("dialogue.confidence_threshold", 0.7)
	v.SetDefault("dialogue.timezone", "Asia/Seoul")
	v.SetDefault("dialogue.stream_chunk_size", 8)

	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("session.max_sessions", 10000)
	v.SetDefault("session.redis_prefix", "travel:session:")

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("kakao.base_url", "https://dapi.kakao.com/v2/local")
	v.SetDefault("kakao.cache_ttl", "1h")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}

		enabledCount++
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}
