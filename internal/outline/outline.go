// Package outline infers a document outline (title plus H1/H2/H3 headings)
// from the font sizes and text of a document's laid-out lines.
package outline

// Level is the heading level assigned to a line.
type Level string

const (
	LevelNone  Level = ""
	LevelTitle Level = "title"
	LevelH1    Level = "H1"
	LevelH2    Level = "H2"
	LevelH3    Level = "H3"
)

// Depth returns the nesting depth of a heading level (H1=1), or 0 for
// levels that never appear in an outline.
func (l Level) Depth() int {
	switch l {
	case LevelH1:
		return 1
	case LevelH2:
		return 2
	case LevelH3:
		return 3
	}
	return 0
}

// Fixed titles used when no real title can be produced.
const (
	TitleEmpty    = "Empty Document"
	TitleError    = "Error Processing Document"
	TitleUntitled = "Untitled Document"
)

// Entry is one heading in an outline.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the outline of one document.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// EmptyResult is returned for documents without any text lines.
func EmptyResult() Result {
	return Result{Title: TitleEmpty, Outline: []Entry{}}
}

// ErrorResult stands in for documents that could not be read.
func ErrorResult() Result {
	return Result{Title: TitleError, Outline: []Entry{}}
}
