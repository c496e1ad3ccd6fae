package parser

import (
	"io"

	"github.com/dgallion1/docoutline/internal/layout"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings are sized
// by level and every other block line is body text. Markdown has no pages,
// so everything lands on page 1.
type MarkdownParser struct{}

func (p *MarkdownParser) Extract(r io.Reader, filename string) ([]layout.LineRecord, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var lines []layout.LineRecord
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		lines = blockLines(lines, n, src)
	}
	return lines, nil
}

// blockLines appends the lines of a block, descending into container
// blocks such as lists and blockquotes. Headings are sized by level at
// any depth.
func blockLines(lines []layout.LineRecord, n ast.Node, src []byte) []layout.LineRecord {
	if n.Type() != ast.TypeBlock {
		return lines
	}
	if h, ok := n.(*ast.Heading); ok {
		return appendLine(lines, string(h.Text(src)), headingSize(h.Level), 1)
	}
	if segs := n.Lines(); segs != nil && segs.Len() > 0 {
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			lines = appendLine(lines, string(seg.Value(src)), bodySize, 1)
		}
		return lines
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		lines = blockLines(lines, c, src)
	}
	return lines
}
