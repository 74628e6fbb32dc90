package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"travel-planner/internal/travel"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	wordWrap = 100
)

func validFormat(f string) bool {
	return f == formatText || f == formatJSON || f == formatYAML
}

// newRenderer returns a markdown renderer for replies. It falls back to the
// raw text when glamour cannot start or plain output was requested.
func newRenderer(plain bool) func(string) string {
	identity := func(s string) string { return s }
	if plain {
		return identity
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return identity
	}
	return func(markdown string) string {
		out, err := r.Render(markdown)
		if err != nil {
			return markdown
		}
		return out
	}
}

// exportPlan formats an artifact for /plan. Structured formats need a
// structured plan; text artifacts are always shown as text.
func exportPlan(a *travel.PlanArtifact, format string) (string, error) {
	if a == nil {
		return "", nil
	}
	if format == formatText || a.Plan == nil {
		return a.Text, nil
	}

	raw, err := json.MarshalIndent(a.Plan, "", "  ")
	if err != nil {
		return "", err
	}
	if format == formatJSON {
		return string(raw), nil
	}

	// Go through a generic document so YAML keys match the JSON field names.
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// loadPlanFile reads a seed plan. JSON and YAML files must decode into a
// plan document; anything else is taken as plan text.
func loadPlanFile(path string) (*travel.TravelPlan, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read plan file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var plan travel.TravelPlan
		if err := json.Unmarshal(data, &plan); err != nil {
			return nil, "", fmt.Errorf("decode plan file: %w", err)
		}
		return &plan, "", nil
	case ".yaml", ".yml":
		plan, err := decodeYAMLPlan(data)
		if err != nil {
			return nil, "", err
		}
		return plan, "", nil
	}
	return nil, string(data), nil
}

func decodeYAMLPlan(data []byte) (*travel.TravelPlan, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode plan file: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("decode plan file: %w", err)
	}
	var plan travel.TravelPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("decode plan file: %w", err)
	}
	return &plan, nil
}
