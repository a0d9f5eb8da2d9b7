package model

// StyleTag identifies the paragraph style a serialization backend should apply.
type StyleTag int

const (
	StyleBody StyleTag = iota
	StyleHeading2
	StyleHeading3
	StyleBulletList
	StyleNumberList
)

// String returns a string representation of the style tag.
func (s StyleTag) String() string {
	switch s {
	case StyleHeading2:
		return "heading-2"
	case StyleHeading3:
		return "heading-3"
	case StyleBulletList:
		return "bullet-list"
	case StyleNumberList:
		return "number-list"
	default:
		return "body"
	}
}

// IsHeading reports whether the tag is one of the heading styles.
func (s StyleTag) IsHeading() bool {
	return s == StyleHeading2 || s == StyleHeading3
}

// IsList reports whether the tag is one of the list styles.
func (s StyleTag) IsList() bool {
	return s == StyleBulletList || s == StyleNumberList
}

// Run is a single styled run of text within a paragraph.
type Run struct {
	Text     string
	FontName string
	// SizePt is the font size in points. Zero means the style default.
	SizePt float64
	Bold   bool
}

// Paragraph is one paragraph specification in the output document.
// The document is write-only in this pipeline: backends consume paragraphs
// in order and never read them back.
type Paragraph struct {
	// Style selects the paragraph style.
	Style StyleTag

	// IndentInches is the paragraph's left indent in inches. Zero means none.
	IndentInches float64

	// SpaceBeforePt is the vertical space before the paragraph in points.
	// Zero means none.
	SpaceBeforePt float64

	// PageBreakBefore inserts an explicit page break before this paragraph.
	PageBreakBefore bool

	// Runs is the paragraph's styled text content.
	Runs []Run
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var out string
	for _, r := range p.Runs {
		out += r.Text
	}
	return out
}

// Document is the ordered sequence of paragraphs produced by the layout
// engine, ready for a serialization backend.
type Document struct {
	Paragraphs []Paragraph
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Paragraphs: make([]Paragraph, 0),
	}
}

// AddParagraph appends a paragraph to the document.
func (d *Document) AddParagraph(p Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}

// ParagraphCount returns the number of paragraphs.
func (d *Document) ParagraphCount() int {
	return len(d.Paragraphs)
}

// PageBreakCount returns the number of explicit page breaks.
func (d *Document) PageBreakCount() int {
	count := 0
	for _, p := range d.Paragraphs {
		if p.PageBreakBefore {
			count++
		}
	}
	return count
}

// PageCount returns the number of page segments: one more than the number
// of explicit page breaks for a non-empty document, zero otherwise.
func (d *Document) PageCount() int {
	if len(d.Paragraphs) == 0 {
		return 0
	}
	return d.PageBreakCount() + 1
}

// ExtractText returns all paragraph text joined by newlines, mainly for
// debugging and tests.
func (d *Document) ExtractText() string {
	var out string
	for i, p := range d.Paragraphs {
		if i > 0 {
			out += "\n"
		}
		out += p.Text()
	}
	return out
}
