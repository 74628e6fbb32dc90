package calendarflow

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	numberedRe = regexp.MustCompile(`(\d+)\s*번`)
	digitsRe   = regexp.MustCompile(`\d+`)
)

// Checked in order; longer forms come before the bare counters they contain.
var ordinalNames = []struct {
	name string
	n    int
}{
	{"첫번째", 1}, {"첫째", 1}, {"하나", 1}, {"1번째", 1},
	{"두번째", 2}, {"둘째", 2}, {"둘", 2}, {"2번째", 2},
	{"세번째", 3}, {"셋째", 3}, {"셋", 3}, {"3번째", 3},
	{"네번째", 4}, {"넷째", 4}, {"넷", 4}, {"4번째", 4},
	{"다섯번째", 5}, {"다섯째", 5}, {"다섯", 5}, {"5번째", 5},
}

// ParseOrdinal finds an event reference such as "2번", "첫번째" or a bare
// number. It returns 0 when the message names none.
func ParseOrdinal(message string) int {
	if m := numberedRe.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}

	for _, o := range ordinalNames {
		if strings.Contains(message, o.name) {
			return o.n
		}
	}

	for _, loc := range digitsRe.FindAllStringIndex(message, -1) {
		if !standalone(message, loc[0], loc[1]) {
			continue
		}
		if n, err := strconv.Atoi(message[loc[0]:loc[1]]); err == nil {
			return n
		}
	}
	return 0
}

// standalone reports whether s[start:end] is not glued to a letter, so "3" in
// "3 부탁해" counts but "12" in "12월" does not.
func standalone(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
