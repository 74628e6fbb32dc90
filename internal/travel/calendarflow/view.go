package calendarflow

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/repository"
	"travel-planner/pkg/textutil"
)

// View looks up trips. The latest message picks the lookup: upcoming trips
// when it mentions what is ahead, otherwise trips to the known destination,
// otherwise every trip.
func (m *Machine) View(ctx context.Context, message, destination string) (ViewResult, error) {
	if m.calendar == nil {
		return ViewResult{}, travel.ErrCalendarUnavailable
	}
	now := m.now().In(m.loc)

	switch {
	case textutil.ContainsAny(message, upcomingKeywords...):
		events, err := m.calendar.SearchEvents(ctx, repository.SearchEventsOptions{
			TimeMin: now,
			TimeMax: now.Add(UpcomingWindow),
			Limit:   SearchLimit,
		})
		if err != nil {
			return ViewResult{}, err
		}
		events = lo.Filter(events, func(e travel.Event, _ int) bool {
			return textutil.ContainsAny(e.Summary+" "+e.Description, travelKeywords...)
		})
		return ViewResult{Label: LabelUpcoming, Events: events}, nil

	case destination != "":
		events, err := m.search(ctx, destination, now)
		if err != nil {
			return ViewResult{}, err
		}
		events = lo.Filter(events, func(e travel.Event, _ int) bool {
			return textutil.ContainsAny(e.Summary+" "+e.Description+" "+e.Location, destination)
		})
		return ViewResult{Label: fmt.Sprintf(labelDestinationFmt, destination), Events: events}, nil

	default:
		events, err := m.search(ctx, defaultQuery, now)
		if err != nil {
			return ViewResult{}, err
		}
		return ViewResult{Label: LabelAll, Events: events}, nil
	}
}

func (m *Machine) search(ctx context.Context, query string, now time.Time) ([]travel.Event, error) {
	return m.calendar.SearchEvents(ctx, repository.SearchEventsOptions{
		Query:   query,
		TimeMin: now.Add(-LookbackWindow),
		Limit:   SearchLimit,
	})
}

// FormatEvents renders a lookup as a Markdown listing.
func FormatEvents(r ViewResult) string {
	if len(r.Events) == 0 {
		return fmt.Sprintf("%s 조회 결과, 등록된 일정이 없습니다.\n\n"+
			"새로운 여행 계획을 세워보시겠어요? 원하시는 여행지나 기간을 말씀해주시면 계획을 도와드리겠습니다.", r.Label)
	}

	blocks := make([]string, 0, len(r.Events))
	for i, e := range r.Events {
		lines := []string{
			fmt.Sprintf("**%d. %s**  ", i+1, titleOf(e)),
			fmt.Sprintf("🏷️ **유형:** %s · **여행지:** %s  ", TravelType(e.Summary, e.Description), DestinationFromSummary(e.Summary)),
			fmt.Sprintf("📅 **기간:** %s ~ %s  ", datePart(e.StartDate), datePart(e.EndDate)),
			fmt.Sprintf("📍 **장소:** %s  ", locationOf(e)),
		}
		if e.HtmlLink != "" {
			lines = append(lines, fmt.Sprintf("🔗 **링크:** [Calendar에서 보기](%s)  ", e.HtmlLink))
		}
		if e.Description != "" {
			lines = append(lines, fmt.Sprintf("📝 **설명:** %s  ", textutil.Truncate(e.Description, DescriptionPreviewRunes, "...")))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return fmt.Sprintf("%s 조회 결과입니다:\n\n**총 %d개의 일정을 찾았습니다.**\n\n%s\n\n---\n\n"+
		"모든 일정은 Calendar에서 자세히 확인하실 수 있습니다.  \n"+
		"특정 일정을 수정하거나 삭제하고 싶으시면 말씀해주세요.",
		r.Label, len(r.Events), strings.Join(blocks, "\n\n---\n\n"))
}

var travelTypes = []struct {
	label    string
	keywords []string
}{
	{"해외여행", []string{"해외", "국외", "international", "overseas"}},
	{"국내여행", []string{"국내", "domestic", "한국"}},
	{"출장", []string{"출장", "business", "회사"}},
	{"휴가", []string{"휴가", "vacation", "휴식"}},
}

// TravelType classifies an event by keywords in its text.
func TravelType(summary, description string) string {
	content := summary + " " + description
	for _, t := range travelTypes {
		if textutil.ContainsAny(content, t.keywords...) {
			return t.label
		}
	}
	return "일반여행"
}

var summaryDestinationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(.+?)\s*여행`),
	regexp.MustCompile(`(?i)(.+?)\s*-\s*`),
	regexp.MustCompile(`(?i)(.+?)\s*trip`),
	regexp.MustCompile(`(?i)(.+?)\s*투어`),
}

// DestinationFromSummary guesses the destination from an event title.
func DestinationFromSummary(summary string) string {
	for _, re := range summaryDestinationRes {
		if m := re.FindStringSubmatch(summary); m != nil {
			if d := strings.TrimSpace(m[1]); d != "" {
				return d
			}
		}
	}
	if fields := strings.Fields(summary); len(fields) > 0 {
		return fields[0]
	}
	return "미상"
}

func titleOf(e travel.Event) string {
	if e.Summary == "" {
		return msgNoTitle
	}
	return e.Summary
}

func locationOf(e travel.Event) string {
	if e.Location == "" {
		return msgNoLocation
	}
	return e.Location
}

// datePart drops the time of day from RFC3339 values.
func datePart(s string) string {
	if i := strings.Index(s, "T"); i >= 0 {
		return s[:i]
	}
	return s
}
