package slots

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"travel-planner/internal/travel"
	"travel-planner/pkg/datemath"
)

// Merge folds an extraction delta into a copy of state.
//
// Scalars overwrite when present, sets are unioned, pendingQuestions is
// recomputed as requiredInfo minus confirmedInfo and one history entry is
// appended. Merging the same delta twice yields the same state as merging it
// once; identical consecutive history entries are collapsed.
func Merge(state travel.SessionState, d Delta, now time.Time) travel.SessionState {
	s := state.Clone()
	var confirm []string

	if dest := strings.TrimSpace(d.Destination); dest != "" {
		s.Slots.Destination = dest
		confirm = append(confirm, travel.SlotDestination)
	}

	switch {
	case d.DateValidation != nil && !d.DateValidation.IsValid && strings.TrimSpace(d.DateValidation.Corrected) != "":
		s.Slots.TravelDates = strings.TrimSpace(d.DateValidation.Corrected)
		confirm = append(confirm, travel.SlotTravelDates)
	case strings.TrimSpace(d.Dates) != "":
		s.Slots.TravelDates = strings.TrimSpace(d.Dates)
		confirm = append(confirm, travel.SlotTravelDates)
	}

	if d.DurationDays > 0 {
		s.Slots.Duration = d.DurationDays
		confirm = append(confirm, travel.SlotTravelDates)
	}

	s.Slots.Preferences = union(s.Slots.Preferences, d.Preferences)
	if len(s.Slots.Preferences) > 0 {
		confirm = append(confirm, travel.SlotPreferences)
	}

	if v := strings.TrimSpace(d.Accommodation); v != "" {
		s.Slots.Accommodation = v
		confirm = append(confirm, travel.SlotAccommodation)
	}
	if v := strings.TrimSpace(d.Transportation); v != "" {
		s.Slots.Transportation = v
		confirm = append(confirm, travel.SlotTransportation)
	}
	if v := strings.TrimSpace(d.SpecialRequests); v != "" {
		s.Slots.SpecialRequests = v
	}

	s.ContextKeywords = union(s.ContextKeywords, d.UserInterests)
	if topic := strings.TrimSpace(d.CurrentTopic); topic != "" {
		s.LastTopic = topic
	}

	s.ConfirmedInfo = union(s.ConfirmedInfo, confirm)

	required := lo.Uniq(lo.Compact(trimAll(d.RequiredInfo)))
	s.PendingQuestions = lo.Filter(required, func(q string, _ int) bool {
		return !lo.Contains(s.ConfirmedInfo, q)
	})

	entry := travel.HistoryEntry{
		Timestamp: now,
		Topic:     strings.TrimSpace(d.CurrentTopic),
		CollectedInfo: lo.Filter(required, func(q string, _ int) bool {
			return lo.Contains(s.ConfirmedInfo, q)
		}),
	}
	if n := len(s.InteractionHistory); n == 0 || !sameEntry(s.InteractionHistory[n-1], entry) {
		s.InteractionHistory = append(s.InteractionHistory, entry)
	}

	return s
}

// Confirm returns a copy of state with names confirmed and no longer pending.
func Confirm(state travel.SessionState, names ...string) travel.SessionState {
	s := state.Clone()
	s.ConfirmedInfo = union(s.ConfirmedInfo, names)
	s.PendingQuestions = lo.Without(s.PendingQuestions, s.ConfirmedInfo...)
	return s
}

func sameEntry(a, b travel.HistoryEntry) bool {
	return a.Topic == b.Topic && slices.Equal(a.CollectedInfo, b.CollectedInfo)
}

func union(base, add []string) []string {
	merged := lo.Union(base, lo.Compact(trimAll(add)))
	if len(merged) == 0 {
		return base
	}
	return merged
}

func trimAll(in []string) []string {
	return lo.Map(in, func(s string, _ int) string { return strings.TrimSpace(s) })
}

// Check reports slot completeness. Dates count as known when a date string
// was extracted or a duration confirmed travel_dates.
func Check(s travel.SessionState) Completeness {
	return CheckSlots(s.Slots, s.ConfirmedInfo)
}

// CheckSlots is Check over bare slots and confirmedInfo.
func CheckSlots(s travel.Slots, confirmed []string) Completeness {
	return Completeness{
		Destination: s.Destination != "",
		Dates:       s.TravelDates != "" || lo.Contains(confirmed, travel.SlotTravelDates),
		Preferences: len(s.Preferences) > 0,
	}
}

// NextQuestion picks the pending question to ask next.
func NextQuestion(pending []string) string {
	for _, priority := range questionPriority {
		for _, q := range pending {
			if strings.Contains(strings.ToLower(q), priority) {
				return q
			}
		}
	}
	if len(pending) > 0 {
		return pending[0]
	}
	return ""
}

// ContextSummary renders the known slots as a Korean note for reply phrasing.
// It returns "" when nothing is known yet.
func ContextSummary(s travel.Slots) string {
	var parts []string
	if s.Destination != "" {
		parts = append(parts, fmt.Sprintf(summaryDestination, s.Destination))
	}
	switch {
	case s.TravelDates != "":
		parts = append(parts, fmt.Sprintf(summaryDates, s.TravelDates))
	case s.Duration > 0:
		parts = append(parts, fmt.Sprintf(summaryDates, datemath.FormatDuration(s.Duration)))
	}
	if len(s.Preferences) > 0 {
		parts = append(parts, fmt.Sprintf(summaryPreferences, strings.Join(s.Preferences, ", ")))
	}
	if s.Accommodation != "" {
		parts = append(parts, fmt.Sprintf(summaryAccommodation, s.Accommodation))
	}
	if s.Transportation != "" {
		parts = append(parts, fmt.Sprintf(summaryTransportation, s.Transportation))
	}
	if s.SpecialRequests != "" {
		parts = append(parts, fmt.Sprintf(summarySpecialRequests, s.SpecialRequests))
	}
	if len(parts) == 0 {
		return ""
	}
	return summaryHeader + "\n" + strings.Join(parts, "\n")
}
