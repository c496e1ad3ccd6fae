package outline

import (
	"slices"

	"github.com/dgallion1/docoutline/internal/layout"
)

// Thresholds are the minimum font sizes for each heading level.
// Title >= H1 >= H2 >= H3 always holds.
type Thresholds struct {
	Title float64 `json:"title"`
	H1    float64 `json:"h1"`
	H2    float64 `json:"h2"`
	H3    float64 `json:"h3"`
}

// EstimateThresholds derives the cutoffs from the four largest distinct
// font sizes. With fewer distinct sizes the missing levels collapse onto
// the next larger cutoff.
func EstimateThresholds(lines []layout.LineRecord) Thresholds {
	if len(lines) == 0 {
		return Thresholds{}
	}

	seen := make(map[float64]bool, len(lines))
	sizes := make([]float64, 0, 8)
	for _, l := range lines {
		if !seen[l.FontSize] {
			seen[l.FontSize] = true
			sizes = append(sizes, l.FontSize)
		}
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)

	th := Thresholds{Title: sizes[0]}
	th.H1 = th.Title
	if len(sizes) > 1 {
		th.H1 = sizes[1]
	}
	th.H2 = th.H1
	if len(sizes) > 2 {
		th.H2 = sizes[2]
	}
	th.H3 = th.H2
	if len(sizes) > 3 {
		th.H3 = sizes[3]
	}
	return th
}
