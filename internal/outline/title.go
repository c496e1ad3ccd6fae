package outline

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/layout"
)

var (
	leadingEnumRe = regexp.MustCompile(`^\d+\.?` + sp + `*`)
	digitsOnlyRe  = regexp.MustCompile(`^\d+$`)
)

// Number of leading page-1 lines inspected when no large line qualifies.
const titleScanLines = 10

var titleSkipPrefixes = []string{"Page", "Chapter", "Section"}

// SelectTitle picks the document title from page-1 lines. The first line
// set in the largest page-1 font wins; otherwise the first plausible
// line near the top of the page.
func SelectTitle(lines []layout.LineRecord) string {
	var first []layout.LineRecord
	for _, l := range lines {
		if l.Page == 1 {
			first = append(first, l)
		}
	}
	if len(first) == 0 {
		return TitleUntitled
	}

	maxSize := first[0].FontSize
	for _, l := range first[1:] {
		maxSize = max(maxSize, l.FontSize)
	}
	for _, l := range first {
		if l.FontSize == maxSize && utf8.RuneCountInString(l.Text) > 3 {
			return strings.TrimSpace(leadingEnumRe.ReplaceAllString(l.Text, ""))
		}
	}

	for _, l := range first[:min(titleScanLines, len(first))] {
		text := strings.TrimSpace(l.Text)
		n := utf8.RuneCountInString(text)
		if n <= 5 || n >= 100 || hasAnyPrefix(text, titleSkipPrefixes) || digitsOnlyRe.MatchString(text) {
			continue
		}
		return text
	}
	return TitleUntitled
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
