package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docoutline/internal/layout"
)

// Extractor turns raw document bytes into laid-out text lines in reading order.
type Extractor interface {
	Extract(r io.Reader, filename string) ([]layout.LineRecord, error)
}

// ErrUnsupported is returned for file types without an extractor.
var ErrUnsupported = errors.New("unsupported file extension")

// Options tunes extractor construction.
type Options struct {
	// FallbackPdftotext runs pdftotext when the PDF library cannot read a file.
	FallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// Synthetic point sizes for formats that carry structure but no layout.
const (
	titleSize = 28
	bodySize  = 10
)

// headingSize maps a structural heading level (1-6) to a point size.
func headingSize(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 18
	case 3:
		return 14
	}
	return 12
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string, opts Options) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.FallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// appendLine adds a trimmed, non-empty line.
func appendLine(lines []layout.LineRecord, text string, size float64, page int) []layout.LineRecord {
	text = strings.TrimSpace(text)
	if text == "" {
		return lines
	}
	return append(lines, layout.LineRecord{Text: text, FontSize: size, Page: page})
}
