package layout

import (
	"reflect"
	"testing"

	"github.com/pagelift/pagelift/model"
)

func TestReconstructPage_EmptyPageEmitsPlaceholder(t *testing.T) {
	engine := NewEngine()
	doc := model.NewDocument()

	engine.ReconstructPage(doc, nil, false)

	if doc.ParagraphCount() != 1 {
		t.Fatalf("Expected 1 placeholder paragraph, got %d", doc.ParagraphCount())
	}
	if doc.Paragraphs[0].Text() != DefaultConfig().EmptyPageText {
		t.Errorf("Expected placeholder text, got %q", doc.Paragraphs[0].Text())
	}
	if doc.Paragraphs[0].PageBreakBefore {
		t.Error("First page placeholder should not carry a page break")
	}
}

func TestReconstructPage_Styles(t *testing.T) {
	engine := NewEngine()
	doc := model.NewDocument()

	words := []model.Word{
		// Display-sized title (height 40 vs median 20).
		makeWord("Title", 0, 0, 100, 40, 1, 1, 1),
		// Body lines.
		makeWord("plain", 0, 60, 60, 20, 1, 2, 1),
		makeWord("body", 70, 60, 50, 20, 1, 2, 1),
		makeWord("more", 0, 90, 60, 20, 1, 2, 2),
		makeWord("text", 70, 90, 50, 20, 1, 2, 2),
		// Bullet item.
		makeWord("-", 0, 120, 10, 20, 1, 3, 1),
		makeWord("first", 15, 120, 50, 20, 1, 3, 1),
		// Numbered item.
		makeWord("1.", 0, 150, 15, 20, 1, 3, 2),
		makeWord("second", 20, 150, 60, 20, 1, 3, 2),
	}

	engine.ReconstructPage(doc, words, false)

	if doc.ParagraphCount() != 5 {
		t.Fatalf("Expected 5 paragraphs, got %d", doc.ParagraphCount())
	}

	expected := []model.StyleTag{
		model.StyleHeading2,
		model.StyleBody,
		model.StyleBody,
		model.StyleBulletList,
		model.StyleNumberList,
	}
	for i, want := range expected {
		if doc.Paragraphs[i].Style != want {
			t.Errorf("Paragraph %d: expected style %s, got %s",
				i, want, doc.Paragraphs[i].Style)
		}
	}

	// Heading run is bold and boosted.
	title := doc.Paragraphs[0].Runs[0]
	if !title.Bold {
		t.Error("Expected bold heading run")
	}
	if title.SizePt < DefaultConfig().HeadingMinPt || title.SizePt > DefaultConfig().HeadingMaxPt {
		t.Errorf("Heading size %f outside heading clamp", title.SizePt)
	}

	// Body runs stay in the body clamp.
	body := doc.Paragraphs[1].Runs[0]
	if body.Bold {
		t.Error("Body run should not be bold")
	}
	if body.SizePt < DefaultConfig().BodyMinPt || body.SizePt > DefaultConfig().BodyMaxPt {
		t.Errorf("Body size %f outside body clamp", body.SizePt)
	}

	// Bullet marker is canonicalized.
	if got := doc.Paragraphs[3].Text(); got != "• first" {
		t.Errorf("Expected canonical bullet '• first', got %q", got)
	}

	// Numbered prefix is preserved verbatim.
	if got := doc.Paragraphs[4].Text(); got != "1. second" {
		t.Errorf("Expected '1. second', got %q", got)
	}

	// Every run carries the configured font.
	for i, p := range doc.Paragraphs {
		if p.Runs[0].FontName != "Arial" {
			t.Errorf("Paragraph %d: expected Arial, got %q", i, p.Runs[0].FontName)
		}
	}
}

func TestReconstructDocument_PageCountInvariant(t *testing.T) {
	engine := NewEngine()

	pages := []model.Page{
		{Index: 0, Words: []model.Word{makeWord("one", 0, 0, 40, 20, 1, 1, 1)}},
		{Index: 1, Words: nil}, // empty page still counts
		{Index: 2, Words: []model.Word{makeWord("three", 0, 0, 50, 20, 1, 1, 1)}},
	}

	doc, warnings := engine.ReconstructDocument(pages)

	if len(warnings) != 0 {
		t.Fatalf("Expected no warnings, got %v", warnings)
	}
	if doc.PageCount() != 3 {
		t.Errorf("Expected 3 page segments, got %d", doc.PageCount())
	}
	if doc.PageBreakCount() != 2 {
		t.Errorf("Expected 2 page breaks, got %d", doc.PageBreakCount())
	}

	// The empty middle page is a placeholder, not silently skipped.
	var placeholders int
	for _, p := range doc.Paragraphs {
		if p.Text() == DefaultConfig().EmptyPageText {
			placeholders++
		}
	}
	if placeholders != 1 {
		t.Errorf("Expected exactly 1 placeholder paragraph, got %d", placeholders)
	}
}

func TestReconstructDocument_SinglePageNoBreaks(t *testing.T) {
	engine := NewEngine()

	doc, _ := engine.ReconstructDocument([]model.Page{
		{Words: []model.Word{makeWord("solo", 0, 0, 40, 20, 1, 1, 1)}},
	})

	if doc.PageBreakCount() != 0 {
		t.Errorf("Single page: expected 0 breaks, got %d", doc.PageBreakCount())
	}
}

func TestReconstructDocument_Idempotent(t *testing.T) {
	engine := NewEngine()

	pages := []model.Page{
		{Words: []model.Word{
			makeWord("HEADING", 0, 0, 100, 40, 1, 1, 1),
			makeWord("body", 0, 60, 50, 20, 1, 2, 1),
			makeWord("text", 60, 60, 50, 20, 1, 2, 1),
			makeWord("-", 0, 100, 10, 20, 1, 3, 1),
			makeWord("item", 15, 100, 40, 20, 1, 3, 1),
		}},
		{Words: nil},
	}

	first, _ := engine.ReconstructDocument(pages)
	second, _ := engine.ReconstructDocument(pages)

	if !reflect.DeepEqual(first, second) {
		t.Error("Pipeline is not idempotent: repeated runs differ")
	}
}

func TestReconstructPage_PageBreakOnFirstParagraph(t *testing.T) {
	engine := NewEngine()
	doc := model.NewDocument()

	words := []model.Word{
		makeWord("first", 0, 0, 50, 20, 1, 1, 1),
		makeWord("second", 0, 30, 60, 20, 1, 1, 2),
	}

	engine.ReconstructPage(doc, words, true)

	if !doc.Paragraphs[0].PageBreakBefore {
		t.Error("Expected page break on the page's first paragraph")
	}
	if doc.Paragraphs[1].PageBreakBefore {
		t.Error("Only the first paragraph of a page should carry the break")
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Page: 1, Message: "layout fault: boom"}
	if got := w.String(); got != "page 2: layout fault: boom" {
		t.Errorf("Warning string: got %q", got)
	}
}
