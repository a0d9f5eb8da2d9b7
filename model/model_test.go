package model

import "testing"

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 100, 30)

	if b.Left() != 10 {
		t.Errorf("Left: expected 10, got %f", b.Left())
	}
	if b.Right() != 110 {
		t.Errorf("Right: expected 110, got %f", b.Right())
	}
	if b.Top() != 20 {
		t.Errorf("Top: expected 20, got %f", b.Top())
	}
	if b.Bottom() != 50 {
		t.Errorf("Bottom: expected 50, got %f", b.Bottom())
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 50, 20)
	b := NewBBox(200, 5, 50, 25)

	u := a.Union(b)

	if u.X != 0 || u.Y != 0 {
		t.Errorf("Union origin: expected (0,0), got (%f,%f)", u.X, u.Y)
	}
	if u.Width != 250 {
		t.Errorf("Union width: expected 250, got %f", u.Width)
	}
	if u.Height != 30 {
		t.Errorf("Union height: expected 30, got %f", u.Height)
	}
}

func TestBBoxIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want bool
	}{
		{"overlapping", NewBBox(0, 0, 10, 10), NewBBox(5, 5, 10, 10), true},
		{"touching edges", NewBBox(0, 0, 10, 10), NewBBox(10, 0, 10, 10), true},
		{"disjoint horizontal", NewBBox(0, 0, 10, 10), NewBBox(20, 0, 10, 10), false},
		{"disjoint vertical", NewBBox(0, 0, 10, 10), NewBBox(0, 20, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWordValid(t *testing.T) {
	tests := []struct {
		name string
		word Word
		want bool
	}{
		{"normal word", Word{Text: "Hello", Confidence: 90}, true},
		{"zero confidence", Word{Text: "Hello", Confidence: 0}, true},
		{"negative confidence", Word{Text: "Hello", Confidence: -1}, false},
		{"empty text", Word{Text: "", Confidence: 90}, false},
		{"whitespace only", Word{Text: "   ", Confidence: 90}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.word.Valid(); got != tt.want {
				t.Errorf("Valid: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStyleTagString(t *testing.T) {
	tests := []struct {
		tag  StyleTag
		want string
	}{
		{StyleBody, "body"},
		{StyleHeading2, "heading-2"},
		{StyleHeading3, "heading-3"},
		{StyleBulletList, "bullet-list"},
		{StyleNumberList, "number-list"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("String: expected %q, got %q", tt.want, got)
		}
	}
}

func TestStyleTagPredicates(t *testing.T) {
	if !StyleHeading2.IsHeading() || !StyleHeading3.IsHeading() {
		t.Error("heading tags should report IsHeading")
	}
	if StyleBody.IsHeading() || StyleBulletList.IsHeading() {
		t.Error("non-heading tags should not report IsHeading")
	}
	if !StyleBulletList.IsList() || !StyleNumberList.IsList() {
		t.Error("list tags should report IsList")
	}
	if StyleBody.IsList() || StyleHeading2.IsList() {
		t.Error("non-list tags should not report IsList")
	}
}

func TestDocumentPageCount(t *testing.T) {
	doc := NewDocument()
	if doc.PageCount() != 0 {
		t.Errorf("empty document: expected page count 0, got %d", doc.PageCount())
	}

	doc.AddParagraph(Paragraph{Runs: []Run{{Text: "page one"}}})
	if doc.PageCount() != 1 {
		t.Errorf("expected page count 1, got %d", doc.PageCount())
	}

	doc.AddParagraph(Paragraph{PageBreakBefore: true, Runs: []Run{{Text: "page two"}}})
	doc.AddParagraph(Paragraph{Runs: []Run{{Text: "still page two"}}})
	if doc.PageCount() != 2 {
		t.Errorf("expected page count 2, got %d", doc.PageCount())
	}
	if doc.PageBreakCount() != 1 {
		t.Errorf("expected 1 page break, got %d", doc.PageBreakCount())
	}
}

func TestDocumentExtractText(t *testing.T) {
	doc := NewDocument()
	doc.AddParagraph(Paragraph{Runs: []Run{{Text: "Hello"}}})
	doc.AddParagraph(Paragraph{Runs: []Run{{Text: "World"}}})

	if got := doc.ExtractText(); got != "Hello\nWorld" {
		t.Errorf("ExtractText: expected %q, got %q", "Hello\nWorld", got)
	}
}
