package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/docoutline/internal/layout"
)

// TextParser handles plain text files. Every non-blank line is one record
// at body size; a form feed starts a new page, as in pdftotext output.
type TextParser struct{}

func (p *TextParser) Extract(r io.Reader, filename string) ([]layout.LineRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []layout.LineRecord
	page := 1
	for scanner.Scan() {
		for i, part := range strings.Split(scanner.Text(), "\f") {
			if i > 0 {
				page++
			}
			lines = appendLine(lines, part, bodySize, page)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
