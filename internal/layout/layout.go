package layout

// LineRecord is one visual line of text as laid out in the source document.
type LineRecord struct {
	Text     string  // Trimmed line text, never empty
	FontSize float64 // Mean size of the glyph runs on the line, in points
	Page     int     // 1-based page number
	BBox     BBox    // Layout rectangle (not used for classification)
}

// BBox is a layout rectangle in page coordinates.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// Union returns the smallest box that contains both b and o.
// A zero box is treated as empty.
func (b BBox) Union(o BBox) BBox {
	if b == (BBox{}) {
		return o
	}
	if o == (BBox{}) {
		return b
	}
	return BBox{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
	}
}
