package llmprovider

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Well-known OpenAI-compatible endpoints.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// OpenAIAdapter serves any OpenAI-compatible chat completions endpoint.
type OpenAIAdapter struct {
	client openai.Client
	name   string
	model  string
}

// OpenAIConfig configures an OpenAIAdapter.
type OpenAIConfig struct {
	Name    string
	APIKey  string
	BaseURL string
	Model   string
	Options []option.RequestOption
}

// NewOpenAIAdapter creates an adapter for an OpenAI-compatible provider.
func NewOpenAIAdapter(cfg OpenAIConfig) *OpenAIAdapter {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, cfg.Options...)

	name := cfg.Name
	if name == "" {
		name = "openai"
	}
	return &OpenAIAdapter{
		client: openai.NewClient(opts...),
		name:   name,
		model:  cfg.Model,
	}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: toOpenAIMessages(req),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: completion.Choices[0].Message.Content}},
		},
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}, nil
}

// Name implements Provider interface
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model implements Provider interface
func (a *OpenAIAdapter) Model() string {
	return a.model
}

func toOpenAIMessages(req *Request) []openai.ChatCompletionMessageParamUnion {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.SystemMessage(joinParts(req.SystemInstruction.Parts)))
	}
	for _, m := range req.Messages {
		text := joinParts(m.Parts)
		switch m.Role {
		case RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(text))
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(text))
		default:
			msgs = append(msgs, openai.UserMessage(text))
		}
	}
	return msgs
}

func joinParts(parts []Part) string {
	r := Response{Content: Message{Parts: parts}}
	return r.Text()
}
