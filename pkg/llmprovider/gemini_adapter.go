package llmprovider

import (
	"context"

	"travel-planner/pkg/gemini"
)

// GeminiAdapter wraps gemini client to implement Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{Parts: toGeminiParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, gemini.Content{
			Role:  msg.Role,
			Parts: toGeminiParts(msg.Parts),
		})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: make([]Part, len(resp.Content.Parts))},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}
	for i, p := range resp.Content.Parts {
		out.Content.Parts[i] = Part{Text: p.Text}
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name implements Provider interface
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model implements Provider interface
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}
