package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/docoutline/internal/layout"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Paragraph styles stand in for font
// sizes; the library does not expose page breaks, so all text is page 1.
type DOCXParser struct{}

func (p *DOCXParser) Extract(r io.Reader, filename string) ([]layout.LineRecord, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "docoutline-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var lines []layout.LineRecord
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		lines = appendLine(lines, docxParagraphText(para), docxParagraphSize(para), 1)
	}
	return lines, nil
}

func docxParagraphSize(para *docx.Paragraph) float64 {
	if para.Properties == nil || para.Properties.Style == nil {
		return bodySize
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if style == "title" {
		return titleSize
	}
	if level := docxHeadingLevel(style); level > 0 {
		return headingSize(level)
	}
	return bodySize
}

// docxHeadingLevel parses "heading1".."heading6" from a normalized style id.
func docxHeadingLevel(style string) int {
	rest, ok := strings.CutPrefix(style, "heading")
	if !ok || len(rest) != 1 || rest[0] < '1' || rest[0] > '6' {
		return 0
	}
	return int(rest[0] - '0')
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
