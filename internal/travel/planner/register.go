package planner

import (
	"regexp"
	"strings"
	"time"

	"travel-planner/internal/travel"
)

var (
	periodRe      = regexp.MustCompile(`기간[:\s]*([^\n]*?부터[^\n]*)`)
	destinationRe = regexp.MustCompile(`목적지[:\s]*([\p{L}\p{N}_ \t]+)`)
	overviewRe    = regexp.MustCompile(`주요 일정 개요[:\s]*([^\n]*)`)
)

const isoDate = "2006-01-02"

// Registration extracts calendar fields from a plan artifact. The structured
// overview is preferred; text plans are pattern-matched. Missing dates
// default to today through today+DefaultTripDays.
func (p *Planner) Registration(a *travel.PlanArtifact) (Registration, error) {
	if a == nil {
		return Registration{}, travel.ErrNoPlan
	}
	today := p.dateMath.Today(p.now())
	if a.Format == travel.PlanFormatJSON && a.Plan != nil {
		return p.fromPlan(a, today), nil
	}
	return p.fromText(a.Text, today), nil
}

func (p *Planner) fromPlan(a *travel.PlanArtifact, today time.Time) Registration {
	o := a.Plan.TravelOverview
	dest := strings.TrimSpace(o.Destination)
	if dest == "" {
		dest = defaultDestination
	}

	loc := p.dateMath.Location()
	start, okStart := parseISO(o.StartDate, loc)
	if !okStart {
		start = today
	}
	end, okEnd := parseISO(o.EndDate, loc)
	if !okEnd || end.Before(start) {
		end = start.AddDate(0, 0, DefaultTripDays)
	}

	summary := dest + " 여행"
	if s := strings.TrimSpace(o.Summary); s != "" {
		summary = dest + " - " + s
	}
	return Registration{
		Summary:     summary,
		Description: a.Text,
		Location:    dest,
		StartDate:   start,
		EndDate:     end,
	}
}

func (p *Planner) fromText(text string, today time.Time) Registration {
	dest := defaultDestination
	if m := destinationRe.FindStringSubmatch(text); m != nil {
		if d := strings.TrimSpace(m[1]); d != "" {
			dest = d
		}
	}

	summary := dest + " 여행"
	if m := overviewRe.FindStringSubmatch(text); m != nil {
		if o := strings.TrimSpace(m[1]); o != "" {
			summary = dest + " - " + o
		}
	}

	start, end, ok := p.textDates(text, today)
	if !ok {
		start, end = today, today.AddDate(0, 0, DefaultTripDays)
	}
	return Registration{
		Summary:     summary,
		Description: text,
		Location:    dest,
		StartDate:   start,
		EndDate:     end,
	}
}

// textDates reads the trip span from a "기간: … 부터 …" line, or else from
// the first and last dates in the text. A lone date is not a span.
func (p *Planner) textDates(text string, today time.Time) (start, end time.Time, ok bool) {
	if m := periodRe.FindStringSubmatch(text); m != nil {
		if r, found := p.dateMath.FindRange(m[1], today); found && r.End.After(r.Start) {
			return r.Start, r.End, true
		}
	}
	dates := p.dateMath.FindDates(text, today)
	if len(dates) < 2 {
		return time.Time{}, time.Time{}, false
	}
	return dates[0], dates[len(dates)-1], true
}

func parseISO(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(isoDate, strings.TrimSpace(s), loc)
	return t, err == nil
}
