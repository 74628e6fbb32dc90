package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

var englishWeekdays = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

var (
	koreanLongDateRe = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일\s*\(\s*([일월화수목금토])(?:요일)?\s*\)`)
	isoDateWeekdayRe = regexp.MustCompile(`(?i)(\d{4})-(\d{1,2})-(\d{1,2})\s*\(\s*([일월화수목금토]|(?:sun|mon|tue|wed|thu|fri|sat)[a-z]*)\s*\)`)

	isoDateRe        = regexp.MustCompile(`(\d{4})[-./](\d{1,2})[-./](\d{1,2})`)
	koreanFullDateRe = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`)
	koreanDateRe     = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)
)

// KoreanWeekday returns the one-letter Korean weekday name, e.g. "토".
func KoreanWeekday(d time.Weekday) string {
	return koreanWeekdays[d]
}

// ValidateKoreanDate checks a date string that carries a weekday, such as
// "2025년 6월 7일 (토)" or "2025-06-07(Sat)". ok is false when the text
// holds no such date. When the weekday is wrong, Corrected is the same text
// with the true weekday in the same script.
func ValidateKoreanDate(text string) (v Validation, ok bool) {
	if m := koreanLongDateRe.FindStringSubmatchIndex(text); m != nil {
		return validateMatch(text, m, func(d time.Weekday) string { return KoreanWeekday(d) })
	}
	if m := isoDateWeekdayRe.FindStringSubmatchIndex(text); m != nil {
		stated := text[m[8]:m[9]]
		if _, english := parseEnglishWeekday(stated); english {
			return validateMatch(text, m, func(d time.Weekday) string {
				if len(stated) > 3 {
					return d.String()
				}
				return d.String()[:3]
			})
		}
		return validateMatch(text, m, func(d time.Weekday) string { return KoreanWeekday(d) })
	}
	return Validation{}, false
}

func validateMatch(text string, m []int, render func(time.Weekday) string) (Validation, bool) {
	year, _ := strconv.Atoi(text[m[2]:m[3]])
	month, _ := strconv.Atoi(text[m[4]:m[5]])
	day, _ := strconv.Atoi(text[m[6]:m[7]])
	stated := text[m[8]:m[9]]

	date, err := civilDate(year, month, day, time.UTC)
	if err != nil {
		return Validation{}, false
	}

	v := Validation{IsValid: true, Original: text}
	want, ok := parseWeekday(stated)
	if !ok || want == date.Weekday() {
		return v, true
	}

	v.IsValid = false
	v.Corrected = text[:m[8]] + render(date.Weekday()) + text[m[9]:]
	return v, true
}

func parseWeekday(s string) (time.Weekday, bool) {
	for i, name := range koreanWeekdays {
		if s == name {
			return time.Weekday(i), true
		}
	}
	return parseEnglishWeekday(s)
}

func parseEnglishWeekday(s string) (time.Weekday, bool) {
	if len(s) < 3 {
		return 0, false
	}
	d, ok := englishWeekdays[strings.ToLower(s[:3])]
	return d, ok
}

// civilDate builds a date and rejects overflow such as 2월 30일.
func civilDate(year, month, day int, loc *time.Location) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, month, day)
	}
	return t, nil
}

// FindDates returns every absolute date mentioned in text, in order of
// appearance. Dates without a year take the year of base, rolling to the
// next year when that day has already passed.
func (p *Parser) FindDates(text string, base time.Time) []time.Time {
	type hit struct {
		pos  int
		date time.Time
	}
	var hits []hit
	covered := make([]bool, len(text)+1)

	mark := func(start, end int) {
		for i := start; i < end; i++ {
			covered[i] = true
		}
	}

	for _, m := range koreanFullDateRe.FindAllStringSubmatchIndex(text, -1) {
		y, _ := strconv.Atoi(text[m[2]:m[3]])
		mo, _ := strconv.Atoi(text[m[4]:m[5]])
		d, _ := strconv.Atoi(text[m[6]:m[7]])
		if t, err := civilDate(y, mo, d, p.location); err == nil {
			hits = append(hits, hit{m[0], t})
			mark(m[0], m[1])
		}
	}
	for _, m := range isoDateRe.FindAllStringSubmatchIndex(text, -1) {
		if covered[m[0]] {
			continue
		}
		y, _ := strconv.Atoi(text[m[2]:m[3]])
		mo, _ := strconv.Atoi(text[m[4]:m[5]])
		d, _ := strconv.Atoi(text[m[6]:m[7]])
		if t, err := civilDate(y, mo, d, p.location); err == nil {
			hits = append(hits, hit{m[0], t})
			mark(m[0], m[1])
		}
	}
	today := p.startOfDay(base)
	for _, m := range koreanDateRe.FindAllStringSubmatchIndex(text, -1) {
		if covered[m[0]] {
			continue
		}
		mo, _ := strconv.Atoi(text[m[2]:m[3]])
		d, _ := strconv.Atoi(text[m[4]:m[5]])
		t, err := civilDate(today.Year(), mo, d, p.location)
		if err != nil {
			continue
		}
		if t.Before(today) {
			t = t.AddDate(1, 0, 0)
		}
		hits = append(hits, hit{m[0], t})
	}

	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	dates := make([]time.Time, len(hits))
	for i, h := range hits {
		dates[i] = h.date
	}
	return dates
}

// ParseDate parses a single date in YYYY-MM-DD, "YYYY년 M월 D일", "M월 D일"
// or a relative Korean form such as "내일" or "3일 후".
func (p *Parser) ParseDate(text string, base time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if dates := p.FindDates(text, base); len(dates) > 0 {
		return dates[0], nil
	}
	return p.parseRelative(text, base)
}

// FindRange extracts a date range from free text. A single date yields a
// one-day range. ok is false when no date is found.
func (p *Parser) FindRange(text string, base time.Time) (Range, bool) {
	dates := p.FindDates(text, base)
	if len(dates) == 0 {
		return Range{}, false
	}
	r := Range{Start: dates[0], End: dates[len(dates)-1]}
	if r.End.Before(r.Start) {
		r.Start, r.End = r.End, r.Start
	}
	return r, true
}

// FormatDuration renders a stay as "N박 N+1일".
func FormatDuration(nights int) string {
	return fmt.Sprintf("%d박 %d일", nights, nights+1)
}
