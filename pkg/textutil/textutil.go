// Package textutil holds Korean-aware text helpers shared by the dialogue packages.
package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds text to NFC and lower case so that decomposed Hangul
// (e.g. from macOS clients) matches composed keywords.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// ContainsAny reports whether text contains at least one keyword.
func ContainsAny(text string, keywords ...string) bool {
	return FirstMatch(text, keywords...) != ""
}

// FirstMatch returns the first keyword contained in text, or "".
func FirstMatch(text string, keywords ...string) string {
	normalized := Normalize(text)
	match, _ := lo.Find(keywords, func(k string) bool {
		return k != "" && strings.Contains(normalized, Normalize(k))
	})
	return match
}

// Truncate cuts s to at most n runes, appending suffix when cut.
func Truncate(s string, n int, suffix string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + suffix
}

// Chunks splits s into pieces of at most size runes.
func Chunks(s string, size int) []string {
	if size <= 0 {
		size = 1
	}
	runes := []rune(s)
	return lo.Map(lo.Chunk(runes, size), func(c []rune, _ int) string {
		return string(c)
	})
}
