package outline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Length limits for a line to be considered a heading at all.
const (
	minHeadingLen = 3
	maxHeadingLen = 200
)

// Pattern recognizes text that looks like a heading.
type Pattern interface {
	Name() string
	Match(text string) bool
}

type regexPattern struct {
	name string
	re   *regexp.Regexp
}

func (p regexPattern) Name() string           { return p.name }
func (p regexPattern) Match(text string) bool { return p.re.MatchString(text) }

// NewRegexPattern wraps a regular expression as a Pattern.
func NewRegexPattern(name, expr string) Pattern {
	return regexPattern{name: name, re: regexp.MustCompile(expr)}
}

// sp matches any whitespace including Unicode space separators such as
// U+00A0, which PDF text extraction produces often.
const sp = `[\s\p{Zs}]`

// DefaultPatterns returns the built-in heading patterns in match order.
func DefaultPatterns() []Pattern {
	return []Pattern{
		NewRegexPattern("numbered", `^\d+\.?`+sp+`+[A-Z][^.!?]*?$`),
		NewRegexPattern("all-caps", `^[A-Z][A-Z\s\p{Zs}]{2,}[A-Z]$`),
		NewRegexPattern("title-case", `^[A-Z][a-z]+(?:`+sp+`+[A-Z][a-z]+)*:?`+sp+`*$`),
		NewRegexPattern("chapter", `^Chapter`+sp+`+\d+[:\s\p{Zs}]+[^.!?]*?$`),
		NewRegexPattern("section", `^Section`+sp+`+\d+[:\s\p{Zs}]+[^.!?]*?$`),
		NewRegexPattern("numbered-2", `^\d+\.\d+\.?`+sp+`+[A-Z][^.!?]*?$`),
		NewRegexPattern("numbered-3", `^\d+\.\d+\.\d+\.?`+sp+`+[A-Z][^.!?]*?$`),
	}
}

// Matcher decides from text alone whether a line is plausibly a heading.
// It is immutable once built and safe for concurrent use.
type Matcher struct {
	patterns []Pattern
}

// NewMatcher builds a Matcher over the given patterns, or the defaults
// when none are given.
func NewMatcher(patterns ...Pattern) *Matcher {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &Matcher{patterns: patterns}
}

var defaultMatcher = NewMatcher()

// Match reports the name of the first pattern that accepts text.
func (m *Matcher) Match(text string) (string, bool) {
	text = strings.TrimSpace(text)
	n := utf8.RuneCountInString(text)
	if n < minHeadingLen || n > maxHeadingLen {
		return "", false
	}
	for _, p := range m.patterns {
		if p.Match(text) {
			return p.Name(), true
		}
	}
	return "", false
}

// IsHeadingCandidate reports whether any pattern accepts text.
func (m *Matcher) IsHeadingCandidate(text string) bool {
	_, ok := m.Match(text)
	return ok
}

// IsHeadingCandidate checks text against the default patterns.
func IsHeadingCandidate(text string) bool {
	return defaultMatcher.IsHeadingCandidate(text)
}
