package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts Korean date expressions to absolute dates in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns midnight of base in the parser's timezone.
func (p *Parser) Today(base time.Time) time.Time {
	return p.startOfDay(base)
}

var (
	inDurationRe  = regexp.MustCompile(`(\d+)\s*(일|주|개월|달)\s*(?:후|뒤)`)
	nextWeekdayRe = regexp.MustCompile(`(다음\s*주|이번\s*주)\s*([일월화수목금토])요일`)
)

// parseRelative handles 오늘/내일/모레/어제, "N일 후", "N주 뒤", "N개월 후"
// and "다음주 X요일".
func (p *Parser) parseRelative(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.TrimSpace(relative)

	switch relative {
	case "오늘", "today":
		return p.startOfDay(baseTime), nil
	case "내일", "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "모레":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "어제", "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if m := inDurationRe.FindStringSubmatch(relative); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "일":
			return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
		case "주":
			return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
		default:
			return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
		}
	}

	if m := nextWeekdayRe.FindStringSubmatch(relative); m != nil {
		return p.parseWeekday(strings.ReplaceAll(m[1], " ", ""), m[2], baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized date: %q", relative)
}

// parseWeekday resolves "다음주 금요일" to the given weekday of the following
// week (Monday-based) and "이번주 금요일" to the current week.
func (p *Parser) parseWeekday(week, dayName string, baseTime time.Time) (time.Time, error) {
	target, ok := parseWeekday(dayName)
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	today := p.startOfDay(baseTime)
	monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	offset := (int(target) + 6) % 7
	if week == "다음주" {
		offset += 7
	}
	return monday.AddDate(0, 0, offset), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
