package calendarflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/repository"
)

const diffDateLayout = "2006-01-02"

// extractDiff asks which event fields the message wants to change. Nulls,
// blanks and unknown keys are dropped; a failed call yields no diff.
func (m *Machine) extractDiff(ctx context.Context, message string, ev travel.Event) map[string]string {
	if m.llm == nil || strings.TrimSpace(message) == "" {
		return nil
	}

	current := fmt.Sprintf("- 제목: %s\n- 시작일: %s\n- 종료일: %s\n- 장소: %s\n- 설명: %s",
		ev.Summary, ev.StartDate, ev.EndDate, ev.Location, ev.Description)
	instruction := fmt.Sprintf(PromptDiff, current, m.now().In(m.loc).Format("2006년 01월 02일"))

	var raw map[string]any
	if err := m.llm.Classify(ctx, instruction, message, &raw); err != nil {
		m.l.Warnf(ctx, "%s: %v", LogPrefixDiff, err)
		return nil
	}

	diff := make(map[string]string)
	for _, field := range diffFields {
		s, ok := raw[field].(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" && s != "null" {
			diff[field] = s
		}
	}
	if len(diff) == 0 {
		return nil
	}
	return diff
}

// updateOptions turns a diff into an update request. Dates may be ISO,
// Korean ("12월 25일") or relative ("내일") and are rewritten in ISO form;
// unparseable ones are dropped. It reports false when nothing is left to
// change.
func (m *Machine) updateOptions(ctx context.Context, eventID string, diff map[string]string) (repository.UpdateEventOptions, bool) {
	opt := repository.UpdateEventOptions{EventID: eventID}
	changed := false

	str := func(field string) *string {
		if v, ok := diff[field]; ok {
			changed = true
			return &v
		}
		return nil
	}
	date := func(field string) *time.Time {
		v, ok := diff[field]
		if !ok {
			return nil
		}
		t, err := m.dates.ParseDate(v, m.now())
		if err != nil {
			m.l.Debugf(ctx, "%s: dropping %s %q: %v", LogPrefixDiff, field, v, err)
			delete(diff, field)
			return nil
		}
		diff[field] = t.Format(diffDateLayout)
		changed = true
		return &t
	}

	opt.Summary = str(FieldSummary)
	opt.Location = str(FieldLocation)
	opt.Description = str(FieldDescription)
	opt.StartDate = date(FieldStartDate)
	opt.EndDate = date(FieldEndDate)
	return opt, changed
}

// FormatModification renders a diff for the user.
func FormatModification(diff map[string]string) string {
	var parts []string

	start, end := diff[FieldStartDate], diff[FieldEndDate]
	switch {
	case start != "" && end != "":
		parts = append(parts, fmt.Sprintf("날짜: %s ~ %s", start, end))
	case start != "":
		parts = append(parts, "시작일: "+start)
	case end != "":
		parts = append(parts, "종료일: "+end)
	}
	if v := diff[FieldSummary]; v != "" {
		parts = append(parts, "제목: "+v)
	}
	if v := diff[FieldLocation]; v != "" {
		parts = append(parts, "장소: "+v)
	}
	if v := diff[FieldDescription]; v != "" {
		parts = append(parts, "설명: "+v)
	}

	if len(parts) == 0 {
		return "변경 사항 없음"
	}
	return strings.Join(parts, ", ")
}
