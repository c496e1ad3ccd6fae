package outline

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/layout"
)

// Assemble classifies every line and collects the headings into an
// outline. Duplicate heading text keeps only its first occurrence, and
// the result is stably ordered by page.
func Assemble(lines []layout.LineRecord, th Thresholds, title string, m *Matcher) Result {
	entries := []Entry{}
	seen := make(map[string]bool)

	for _, l := range lines {
		level := Classify(l, th, m)
		if level == LevelNone || level == LevelTitle {
			continue
		}
		text := NormalizeSpace(l.Text)
		if utf8.RuneCountInString(text) <= 2 || seen[text] {
			continue
		}
		seen[text] = true
		entries = append(entries, Entry{Level: level, Text: text, Page: l.Page})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Page < entries[j].Page
	})

	return Result{Title: title, Outline: entries}
}

// NormalizeSpace trims text and collapses whitespace runs to one space.
func NormalizeSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
