package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/docoutline/internal/layout"
	pdflib "github.com/ledongthuc/pdf"
)

// A horizontal gap wider than this fraction of the font size separates words.
const wordGapRatio = 0.15

// PDFParser handles PDF files. It reads glyph runs with their font sizes
// through the Go library and, when that fails, falls back to pdftotext
// (losing font information) if enabled.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Extract(r io.Reader, filename string) ([]layout.LineRecord, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docoutline-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	lines, err := extractPDFLines(tmpPath)
	if (err != nil || len(lines) == 0) && p.FallbackPdftotext {
		if text, ferr := extractPdftotext(tmpPath); ferr == nil {
			return (&TextParser{}).Extract(strings.NewReader(text), filename)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return lines, nil
}

func extractPDFLines(path string) (lines []layout.LineRecord, err error) {
	// The library panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			if l, ok := rowLine(row.Content, i); ok {
				lines = append(lines, l)
			}
		}
	}
	return lines, nil
}

type span struct {
	font string
	size float64
	text strings.Builder
}

// rowLine merges the glyph runs of one row into a line. Runs sharing a
// font and size form a span; the line's size is the mean span size.
func rowLine(runs pdflib.TextHorizontal, page int) (layout.LineRecord, bool) {
	var (
		spans []*span
		cur   *span
		box   layout.BBox
		end   float64
	)
	for _, t := range runs {
		if t.S == "" {
			continue
		}
		if cur == nil || t.Font != cur.font || t.FontSize != cur.size {
			cur = &span{font: t.Font, size: t.FontSize}
			spans = append(spans, cur)
		} else if t.X-end > t.FontSize*wordGapRatio {
			cur.text.WriteByte(' ')
		}
		cur.text.WriteString(t.S)
		end = t.X + t.W
		box = box.Union(layout.BBox{X0: t.X, Y0: t.Y, X1: t.X + t.W, Y1: t.Y + t.FontSize})
	}

	var (
		parts []string
		sum   float64
	)
	for _, s := range spans {
		text := strings.TrimSpace(s.text.String())
		if text == "" {
			continue
		}
		parts = append(parts, text)
		sum += s.size
	}
	if len(parts) == 0 {
		return layout.LineRecord{}, false
	}
	return layout.LineRecord{
		Text:     strings.Join(parts, " "),
		FontSize: sum / float64(len(parts)),
		Page:     page,
		BBox:     box,
	}, true
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
