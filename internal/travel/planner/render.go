package planner

import (
	"fmt"
	"strings"

	"travel-planner/internal/travel"
)

// Render formats a structured plan as markdown. Section titles mirror the
// text format so registration can read either one.
func Render(plan *travel.TravelPlan) string {
	if plan == nil {
		return ""
	}
	var b strings.Builder
	o := plan.TravelOverview

	b.WriteString("## 여행 개요\n")
	if o.StartDate != "" || o.EndDate != "" {
		fmt.Fprintf(&b, "- 기간: %s ~ %s", o.StartDate, o.EndDate)
		if o.DurationDays > 0 {
			fmt.Fprintf(&b, " (%d일)", o.DurationDays)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "- 목적지: %s\n", orUnknown(o.Destination))
	if o.Summary != "" {
		fmt.Fprintf(&b, "- 주요 일정 개요: %s\n", o.Summary)
	}

	if len(plan.Itinerary) > 0 {
		b.WriteString("\n## 일자별 세부 일정\n")
		for i, day := range plan.Itinerary {
			fmt.Fprintf(&b, "\n### %d일차 %s", i+1, day.Date)
			if day.DayOfWeek != "" {
				fmt.Fprintf(&b, " (%s)", day.DayOfWeek)
			}
			b.WriteString("\n")
			for _, a := range day.Activities {
				writeActivity(&b, a)
			}
		}
	}

	p := plan.Preparation
	writeList(&b, "\n## 준비사항\n", []section{
		{"필수 준비물", p.EssentialItems},
		{"사전 예약", p.ReservationsNeeded},
		{"현지 정보", p.LocalTips},
		{"주의사항", p.Warnings},
	})
	alt := plan.Alternatives
	writeList(&b, "\n## 대체 옵션\n", []section{
		{"우천시", alt.RainyDayOptions},
		{"선택 활동", alt.OptionalActivities},
	})

	return strings.TrimSpace(b.String())
}

type section struct {
	title string
	items []string
}

func writeActivity(b *strings.Builder, a travel.Activity) {
	b.WriteString("- ")
	if a.Time != "" {
		fmt.Fprintf(b, "%s ", a.Time)
	}
	fmt.Fprintf(b, "**%s**", a.Title)
	if a.Location != "" {
		fmt.Fprintf(b, " @ %s", a.Location)
	}
	if a.DurationMinutes > 0 {
		fmt.Fprintf(b, " (%d분)", a.DurationMinutes)
	}
	b.WriteString("\n")
	if a.Address != "" {
		fmt.Fprintf(b, "  - 주소: %s\n", a.Address)
	}
	if a.Description != "" {
		fmt.Fprintf(b, "  - %s\n", a.Description)
	}
}

func writeList(b *strings.Builder, header string, sections []section) {
	wrote := false
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		if !wrote {
			b.WriteString(header)
			wrote = true
		}
		fmt.Fprintf(b, "- %s: %s\n", s.title, strings.Join(s.items, ", "))
	}
}
