package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"travel-planner/internal/travel"
	"travel-planner/pkg/llmprovider"
)

// Generate implements Service.
func (s *implService) Generate(ctx context.Context, instruction string, turns []travel.Turn) (string, error) {
	req := buildRequest(instruction, turns)
	req.Temperature = GenerateTemperature
	req.MaxTokens = GenerateMaxTokens

	resp, err := s.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixGenerate, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyOutput
	}
	return text, nil
}

// Extract implements Service.
func (s *implService) Extract(ctx context.Context, instruction string, turns []travel.Turn, out any) error {
	req := buildRequest(instruction, turns)
	req.Temperature = ExtractTemperature
	req.MaxTokens = ExtractMaxTokens
	req.JSONMode = true

	resp, err := s.llm.GenerateContent(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", LogPrefixExtract, err)
	}
	return s.decode(ctx, LogPrefixExtract, resp.Text(), out)
}

// Classify implements Service.
func (s *implService) Classify(ctx context.Context, instruction, text string, out any) error {
	req := &llmprovider.Request{
		SystemInstruction: llmprovider.SystemText(instruction),
		Messages:          []llmprovider.Message{llmprovider.UserText(text)},
		Temperature:       ClassifyTemperature,
		MaxTokens:         ClassifyMaxTokens,
		JSONMode:          true,
	}

	resp, err := s.llm.GenerateContent(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", LogPrefixClassify, err)
	}
	return s.decode(ctx, LogPrefixClassify, resp.Text(), out)
}

func (s *implService) decode(ctx context.Context, prefix, raw string, out any) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyOutput
	}
	cleaned := SanitizeJSON(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		s.l.Warnf(ctx, "%s: failed to parse model output. Raw=%q Cleaned=%q", prefix, raw, cleaned)
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return nil
}

// buildRequest folds system turns into the instruction; providers take a
// single system prompt.
func buildRequest(instruction string, turns []travel.Turn) *llmprovider.Request {
	system := []string{instruction}
	msgs := make([]llmprovider.Message, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case travel.RoleSystem:
			system = append(system, t.Text)
		case travel.RoleAssistant:
			msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: t.Text}}})
		default:
			msgs = append(msgs, llmprovider.UserText(t.Text))
		}
	}
	if len(msgs) == 0 {
		msgs = append(msgs, llmprovider.UserText(instruction))
		system = system[1:]
	}

	req := &llmprovider.Request{Messages: msgs}
	if joined := strings.TrimSpace(strings.Join(system, "\n\n")); joined != "" {
		req.SystemInstruction = llmprovider.SystemText(joined)
	}
	return req
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// SanitizeJSON removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func SanitizeJSON(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
