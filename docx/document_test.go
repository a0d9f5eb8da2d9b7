package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pagelift/pagelift/layout"
	"github.com/pagelift/pagelift/model"
)

// Minimal mirrors of the WordprocessingML vocabulary, enough to verify
// what the writer emits.
type testDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    struct {
		Paragraphs []testParagraph `xml:"p"`
	} `xml:"body"`
}

type testParagraph struct {
	Props struct {
		Style struct {
			Val string `xml:"val,attr"`
		} `xml:"pStyle"`
		Spacing struct {
			Before string `xml:"before,attr"`
		} `xml:"spacing"`
		Indent struct {
			Left string `xml:"left,attr"`
		} `xml:"ind"`
	} `xml:"pPr"`
	Runs []testRun `xml:"r"`
}

type testRun struct {
	Props struct {
		Bold  *struct{} `xml:"b"`
		Fonts struct {
			ASCII    string `xml:"ascii,attr"`
			EastAsia string `xml:"eastAsia,attr"`
			CS       string `xml:"cs,attr"`
		} `xml:"rFonts"`
		Size struct {
			Val string `xml:"val,attr"`
		} `xml:"sz"`
	} `xml:"rPr"`
	Breaks []struct {
		Type string `xml:"type,attr"`
	} `xml:"br"`
	Text []string `xml:"t"`
}

func extractPart(t *testing.T, archive []byte, name string) []byte {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("Output is not a valid ZIP archive: %v", err)
	}
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open part %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("Failed to read part %s: %v", name, err)
		}
		return data
	}
	t.Fatalf("Part %s not found in archive", name)
	return nil
}

func parseBody(t *testing.T, archive []byte) testDocument {
	t.Helper()
	var parsed testDocument
	if err := xml.Unmarshal(extractPart(t, archive, "word/document.xml"), &parsed); err != nil {
		t.Fatalf("Failed to parse document.xml: %v", err)
	}
	return parsed
}

func bodyParagraph(text string) model.Paragraph {
	return model.Paragraph{
		Style: model.StyleBody,
		Runs:  []model.Run{{Text: text, FontName: "Arial", SizePt: 11}},
	}
}

func TestBytes_ContainsRequiredParts(t *testing.T) {
	doc := &model.Document{}
	doc.AddParagraph(bodyParagraph("Hello"))

	data, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
	}
	for _, name := range required {
		extractPart(t, data, name)
	}
}

func TestBytes_NilDocument(t *testing.T) {
	if _, err := NewWriter().Bytes(nil); err == nil {
		t.Error("Expected error for nil document")
	}
}

func TestBytes_StyleMapping(t *testing.T) {
	tests := []struct {
		style     model.StyleTag
		wantStyle string
	}{
		{model.StyleBody, ""},
		{model.StyleHeading2, "Heading2"},
		{model.StyleHeading3, "Heading3"},
		{model.StyleBulletList, "ListBullet"},
		{model.StyleNumberList, "ListNumber"},
	}

	doc := &model.Document{}
	for _, tt := range tests {
		doc.AddParagraph(model.Paragraph{
			Style: tt.style,
			Runs:  []model.Run{{Text: "x"}},
		})
	}

	data, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	parsed := parseBody(t, data)
	if len(parsed.Body.Paragraphs) != len(tests) {
		t.Fatalf("Expected %d paragraphs, got %d", len(tests), len(parsed.Body.Paragraphs))
	}

	for i, tt := range tests {
		p := parsed.Body.Paragraphs[i]
		if p.Props.Style.Val != tt.wantStyle {
			t.Errorf("Paragraph %d: expected style %q, got %q", i, tt.wantStyle, p.Props.Style.Val)
		}
	}
}

// List markers are part of the run text, so neither the document body
// nor the style sheet may attach numbering. A word processor that saw
// both would draw the marker twice.
func TestBytes_ListMarkerAppearsOnce(t *testing.T) {
	word := func(text string, left float64, line int) model.Word {
		return model.Word{
			Text:       text,
			Confidence: 90,
			BBox:       model.NewBBox(left, float64(line)*100, 60, 20),
			Key:        model.HierarchyKey{Block: 1, Paragraph: 1, Line: line},
		}
	}
	words := []model.Word{
		word("-", 0, 1), word("Buy", 30, 1), word("milk", 100, 1),
		word("1)", 0, 2), word("Call", 40, 2), word("bank", 120, 2),
	}

	engine := layout.NewEngine()
	doc := &model.Document{}
	engine.EmitPage(doc, engine.GroupWords(words), false)

	data, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	parsed := parseBody(t, data)
	if len(parsed.Body.Paragraphs) != 2 {
		t.Fatalf("Expected 2 paragraphs, got %d", len(parsed.Body.Paragraphs))
	}
	bullet := parsed.Body.Paragraphs[0]
	if bullet.Props.Style.Val != "ListBullet" {
		t.Errorf("Expected ListBullet style, got %q", bullet.Props.Style.Val)
	}
	if got := bullet.Runs[0].Text[0]; got != "• Buy milk" {
		t.Errorf("Expected bullet text %q, got %q", "• Buy milk", got)
	}
	numbered := parsed.Body.Paragraphs[1]
	if got := numbered.Runs[0].Text[0]; got != "1) Call bank" {
		t.Errorf("Expected numbered text %q, got %q", "1) Call bank", got)
	}

	for _, part := range []string{"word/document.xml", "word/styles.xml"} {
		if raw := string(extractPart(t, data, part)); strings.Contains(raw, "<w:numPr") {
			t.Errorf("Part %s attaches numbering; the marker is already in the run text", part)
		}
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Output is not a valid ZIP archive: %v", err)
	}
	for _, f := range r.File {
		if f.Name == "word/numbering.xml" {
			t.Error("Archive carries a numbering part no paragraph references")
		}
	}
}

func TestBytes_SpacingAndIndent(t *testing.T) {
	doc := &model.Document{}
	doc.AddParagraph(model.Paragraph{
		Style:         model.StyleBody,
		IndentInches:  0.5,
		SpaceBeforePt: 6,
		Runs:          []model.Run{{Text: "indented"}},
	})

	data, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	p := parseBody(t, data).Body.Paragraphs[0]

	if p.Props.Indent.Left != "720" {
		t.Errorf("Expected indent 720 twips for half an inch, got %q", p.Props.Indent.Left)
	}
	if p.Props.Spacing.Before != "120" {
		t.Errorf("Expected spacing 120 twentieths for 6pt, got %q", p.Props.Spacing.Before)
	}
}

func TestBytes_RunFormatting(t *testing.T) {
	doc := &model.Document{}
	doc.AddParagraph(model.Paragraph{
		Style: model.StyleHeading2,
		Runs:  []model.Run{{Text: "Title", FontName: "Arial", SizePt: 16, Bold: true}},
	})

	data, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	run := parseBody(t, data).Body.Paragraphs[0].Runs[0]

	if run.Props.Bold == nil {
		t.Error("Expected bold run")
	}
	if run.Props.Size.Val != "32" {
		t.Errorf("Expected size 32 half-points for 16pt, got %q", run.Props.Size.Val)
	}
	if run.Props.Fonts.ASCII != "Arial" || run.Props.Fonts.EastAsia != "Arial" || run.Props.Fonts.CS != "Arial" {
		t.Errorf("Expected Arial on all font slots, got %+v", run.Props.Fonts)
	}
	if len(run.Text) != 1 || run.Text[0] != "Title" {
		t.Errorf("Expected run text %q, got %v", "Title", run.Text)
	}
}

func TestBytes_PageBreak(t *testing.T) {
	doc := &model.Document{}
	doc.AddParagraph(bodyParagraph("page one"))
	doc.AddParagraph(model.Paragraph{
		Style:           model.StyleBody,
		PageBreakBefore: true,
		Runs:            []model.Run{{Text: "page two"}},
	})

	data, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	parsed := parseBody(t, data)

	first := parsed.Body.Paragraphs[0]
	for _, r := range first.Runs {
		if len(r.Breaks) != 0 {
			t.Error("First paragraph should not contain a break")
		}
	}

	second := parsed.Body.Paragraphs[1]
	found := false
	for _, r := range second.Runs {
		for _, br := range r.Breaks {
			if br.Type == "page" {
				found = true
			}
		}
	}
	if !found {
		t.Error("Second paragraph should start with a page break")
	}
}

func TestBytes_EscapesMarkup(t *testing.T) {
	doc := &model.Document{}
	doc.AddParagraph(bodyParagraph(`<b> & "quotes"`))

	data, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	raw := string(extractPart(t, data, "word/document.xml"))
	if strings.Contains(raw, "<b>") {
		t.Error("Markup in text was not escaped")
	}

	run := parseBody(t, data).Body.Paragraphs[0].Runs[0]
	if len(run.Text) != 1 || run.Text[0] != `<b> & "quotes"` {
		t.Errorf("Escaped text did not round-trip, got %v", run.Text)
	}
}

func TestBytes_PreservesCyrillic(t *testing.T) {
	doc := &model.Document{}
	doc.AddParagraph(bodyParagraph("Привет мир"))

	data, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	run := parseBody(t, data).Body.Paragraphs[0].Runs[0]
	if len(run.Text) != 1 || run.Text[0] != "Привет мир" {
		t.Errorf("Cyrillic text did not round-trip, got %v", run.Text)
	}
}

func TestWriteFile(t *testing.T) {
	doc := &model.Document{}
	doc.AddParagraph(bodyParagraph("saved"))

	path := filepath.Join(t.TempDir(), "out.docx")
	if err := NewWriter().WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	extractPart(t, data, "word/document.xml")
}
