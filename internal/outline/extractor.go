package outline

import (
	"log/slog"

	"github.com/dgallion1/docoutline/internal/layout"
)

// Source yields the ordered line records of one document.
type Source interface {
	Lines() ([]layout.LineRecord, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func() ([]layout.LineRecord, error)

func (f SourceFunc) Lines() ([]layout.LineRecord, error) { return f() }

// Extract runs the full pipeline over one document using the default patterns.
func Extract(lines []layout.LineRecord) Result {
	return extract(lines, defaultMatcher)
}

func extract(lines []layout.LineRecord, m *Matcher) Result {
	if len(lines) == 0 {
		return EmptyResult()
	}
	th := EstimateThresholds(lines)
	title := SelectTitle(lines)
	return Assemble(lines, th, title, m)
}

// Extractor runs the outline pipeline and logs per-document results.
type Extractor struct {
	matcher *Matcher
	log     *slog.Logger
}

// NewExtractor returns an Extractor using the given patterns, or the
// defaults when none are given.
func NewExtractor(log *slog.Logger, patterns ...Pattern) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	m := defaultMatcher
	if len(patterns) > 0 {
		m = NewMatcher(patterns...)
	}
	return &Extractor{matcher: m, log: log}
}

// Extract computes the outline of already extracted lines.
func (e *Extractor) Extract(lines []layout.LineRecord) Result {
	if len(lines) > 0 {
		e.log.Debug("font thresholds", "thresholds", EstimateThresholds(lines))
	}
	res := extract(lines, e.matcher)
	e.log.Info("outline extracted", "title", res.Title, "headings", len(res.Outline))
	return res
}

// Process pulls lines from src and computes the outline. When src fails
// the error result is returned together with the error so one unreadable
// document never aborts its caller.
func (e *Extractor) Process(src Source) (Result, error) {
	lines, err := src.Lines()
	if err != nil {
		return ErrorResult(), err
	}
	return e.Extract(lines), nil
}
