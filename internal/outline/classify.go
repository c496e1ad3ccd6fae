package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/layout"
)

// Numeric prefixes, deepest first.
var (
	prefixDepth3 = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	prefixDepth2 = regexp.MustCompile(`^\d+\.\d+`)
	prefixDepth1 = regexp.MustCompile(`^\d+\.`)
)

// Loose acceptance for lines no pattern recognizes.
const maxLooseHeadingWords = 10

// Classify assigns a heading level to a single line. Font size decides
// first; numeric prefixes only matter when the line is smaller than every
// threshold. A nil matcher uses the default patterns.
func Classify(line layout.LineRecord, th Thresholds, m *Matcher) Level {
	if m == nil {
		m = defaultMatcher
	}
	text := strings.TrimSpace(line.Text)
	if text == "" {
		return LevelNone
	}

	if !m.IsHeadingCandidate(text) && !looseHeading(text) {
		return LevelNone
	}

	switch {
	case line.FontSize >= th.Title && line.Page == 1:
		return LevelTitle
	case line.FontSize >= th.H1:
		return LevelH1
	case line.FontSize >= th.H2:
		return LevelH2
	case line.FontSize >= th.H3:
		return LevelH3
	}

	switch {
	case prefixDepth3.MatchString(text):
		return LevelH3
	case prefixDepth2.MatchString(text):
		return LevelH2
	case prefixDepth1.MatchString(text):
		return LevelH1
	case isUpper(text) && len(strings.Fields(text)) <= 5:
		return LevelH1
	}
	return LevelNone
}

func looseHeading(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsUpper(r) && len(strings.Fields(text)) <= maxLooseHeadingWords
}

// isUpper reports whether text has at least one cased letter and every
// cased letter is uppercase. Titlecase letters such as U+01C5 do not count.
func isUpper(text string) bool {
	cased := false
	for _, r := range text {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
