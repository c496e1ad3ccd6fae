package outline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/layout"
)

func TestEstimateThresholds(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		want  Thresholds
	}{
		{"four distinct", []float64{10, 24, 18, 14, 10}, Thresholds{24, 18, 14, 10}},
		{"more than four", []float64{8, 10, 12, 14, 16, 20}, Thresholds{20, 16, 14, 12}},
		{"one size", []float64{11, 11, 11}, Thresholds{11, 11, 11, 11}},
		{"two sizes", []float64{18, 14, 14}, Thresholds{18, 14, 14, 14}},
		{"three sizes", []float64{9, 18, 12}, Thresholds{18, 12, 9, 9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var lines []layout.LineRecord
			for _, s := range tc.sizes {
				lines = append(lines, line("Text", s, 1))
			}
			if got := EstimateThresholds(lines); got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	got := Extract(nil)
	if got.Title != TitleEmpty {
		t.Errorf("expected title %q, got %q", TitleEmpty, got.Title)
	}
	if got.Outline == nil || len(got.Outline) != 0 {
		t.Errorf("expected empty non-nil outline, got %#v", got.Outline)
	}
}

func TestExtract_SingleTitleLine(t *testing.T) {
	got := Extract([]layout.LineRecord{line("ANNUAL REPORT", 24, 1)})
	if got.Title != "ANNUAL REPORT" {
		t.Errorf("expected title %q, got %q", "ANNUAL REPORT", got.Title)
	}
	if len(got.Outline) != 0 {
		t.Errorf("expected empty outline, got %+v", got.Outline)
	}
}

func TestExtract_DuplicateAcrossPages(t *testing.T) {
	lines := []layout.LineRecord{
		line("1. Introduction", 18, 1),
		line("1.1 Background", 14, 1),
		line("1.1 Background", 14, 2),
	}
	got := Extract(lines)

	if got.Title != "Introduction" {
		t.Errorf("expected title %q, got %q", "Introduction", got.Title)
	}
	// Two distinct sizes give h1=h2=h3=14, so the 14pt line lands on H1.
	want := []Entry{{Level: LevelH1, Text: "1.1 Background", Page: 1}}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, got.Outline)
	}
}

func TestExtract_FullDocument(t *testing.T) {
	lines := []layout.LineRecord{
		line("Annual Report 2024", 24, 1),
		line("Prepared for the board of directors and shareholders.", 10, 1),
		line("1. Overview", 18, 1),
		line("This year the company grew in every region it operates in.", 10, 1),
		line("1.1 Revenue", 14, 2),
		line("Revenue rose by twelve percent compared to the prior year.", 10, 2),
		line("1.1.1 Product   Lines", 12, 2),
		line("2. Outlook", 18, 3),
		line("1. Overview", 18, 3),
	}
	got := Extract(lines)

	if got.Title != "Annual Report 2024" {
		t.Errorf("expected title %q, got %q", "Annual Report 2024", got.Title)
	}
	want := []Entry{
		{Level: LevelH1, Text: "1. Overview", Page: 1},
		{Level: LevelH2, Text: "1.1 Revenue", Page: 2},
		{Level: LevelH3, Text: "1.1.1 Product Lines", Page: 2},
		{Level: LevelH1, Text: "2. Outlook", Page: 3},
	}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, got.Outline)
	}
}

func TestAssemble_StableSortByPage(t *testing.T) {
	th := Thresholds{Title: 30, H1: 16, H2: 12, H3: 10}
	lines := []layout.LineRecord{
		line("Appendix", 16, 3),
		line("Findings", 16, 1),
		line("Methods", 12, 1),
		line("Summary", 12, 3),
	}
	got := Assemble(lines, th, "T", nil)
	var texts []string
	for _, e := range got.Outline {
		texts = append(texts, e.Text)
	}
	want := []string{"Findings", "Methods", "Appendix", "Summary"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("expected order %v, got %v", want, texts)
	}
}

func TestAssemble_DedupIsCaseSensitive(t *testing.T) {
	th := Thresholds{Title: 30, H1: 16, H2: 12, H3: 10}
	lines := []layout.LineRecord{
		line("RESULTS", 16, 1),
		line("Results", 16, 1),
		line("RESULTS", 12, 2),
	}
	got := Assemble(lines, th, "T", nil)
	if len(got.Outline) != 2 {
		t.Fatalf("expected 2 entries, got %+v", got.Outline)
	}
	if got.Outline[0].Level != LevelH1 || got.Outline[0].Page != 1 {
		t.Errorf("expected first occurrence to win, got %+v", got.Outline[0])
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  1.1\t Product \n Lines "); got != "1.1 Product Lines" {
		t.Errorf("expected %q, got %q", "1.1 Product Lines", got)
	}
}

func randomDocument(r *rand.Rand) []layout.LineRecord {
	words := []string{"Introduction", "RESULTS", "methods", "1.", "2.1", "3.1.4", "Data", "the", "Scope", "OF", "a", "Chapter", "Section", "7"}
	sizes := []float64{8, 10, 10, 10, 12, 14, 18, 24}
	n := r.IntN(40)
	lines := make([]layout.LineRecord, 0, n)
	page := 1
	for range n {
		if r.IntN(6) == 0 {
			page++
		}
		var sb strings.Builder
		for w := range 1 + r.IntN(6) {
			if w > 0 {
				sb.WriteString(strings.Repeat(" ", 1+r.IntN(2)))
			}
			sb.WriteString(words[r.IntN(len(words))])
		}
		lines = append(lines, line(sb.String(), sizes[r.IntN(len(sizes))], page))
	}
	return lines
}

func TestExtract_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	for i := range 500 {
		lines := randomDocument(r)
		t.Run(fmt.Sprintf("doc%d", i), func(t *testing.T) {
			if len(lines) > 0 {
				th := EstimateThresholds(lines)
				if th.Title < th.H1 || th.H1 < th.H2 || th.H2 < th.H3 {
					t.Fatalf("thresholds not monotone: %+v", th)
				}
			}

			got := Extract(lines)
			seen := map[string]bool{}
			for j, e := range got.Outline {
				if j > 0 && got.Outline[j-1].Page > e.Page {
					t.Errorf("outline not sorted by page at %d: %+v", j, got.Outline)
				}
				if seen[e.Text] {
					t.Errorf("duplicate entry %q", e.Text)
				}
				seen[e.Text] = true
				if utf8.RuneCountInString(e.Text) <= 2 {
					t.Errorf("entry text too short: %q", e.Text)
				}
				if e.Level.Depth() == 0 {
					t.Errorf("unexpected level %q in outline", e.Level)
				}
			}

			again := Extract(lines)
			if !reflect.DeepEqual(got, again) {
				t.Errorf("extraction not deterministic:\n%+v\n%+v", got, again)
			}
		})
	}
}

func TestExtractor_Process(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := NewExtractor(log)

	res, err := e.Process(SourceFunc(func() ([]layout.LineRecord, error) {
		return []layout.LineRecord{line("Annual Report", 20, 1), line("1. Scope", 12, 2)}, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != "Annual Report" || len(res.Outline) != 1 {
		t.Errorf("unexpected result %+v", res)
	}

	boom := errors.New("corrupt xref table")
	res, err = e.Process(SourceFunc(func() ([]layout.LineRecord, error) {
		return nil, boom
	}))
	if !errors.Is(err, boom) {
		t.Errorf("expected source error, got %v", err)
	}
	if !reflect.DeepEqual(res, ErrorResult()) {
		t.Errorf("expected error result, got %+v", res)
	}
}

func TestExtractor_CustomPatterns(t *testing.T) {
	e := NewExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)),
		NewRegexPattern("appendix", `^appendix [a-z]$`))
	lines := []layout.LineRecord{
		line("Report", 20, 1),
		line("appendix a", 12, 2),
	}
	got := e.Extract(lines)
	if len(got.Outline) != 1 || got.Outline[0].Text != "appendix a" {
		t.Errorf("expected custom pattern heading, got %+v", got.Outline)
	}
}
