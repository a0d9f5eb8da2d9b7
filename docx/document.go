package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pagelift/pagelift/model"
)

// XML namespaces used in DOCX files
const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Writer serializes a document model into a DOCX archive.
type Writer struct{}

// NewWriter creates a new DOCX writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes renders the document and returns the complete DOCX archive.
func (w *Writer) Bytes(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.WriteTo(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders the document to a file at the given path.
func (w *Writer) WriteFile(path string, doc *model.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := w.WriteTo(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo renders the document as a DOCX archive to the given writer.
func (w *Writer) WriteTo(out io.Writer, doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("document is nil")
	}

	archive := zip.NewWriter(out)

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/document.xml", buildDocumentXML(doc)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/styles.xml", []byte(stylesXML)},
	}

	for _, part := range parts {
		f, err := archive.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create archive entry %s: %w", part.name, err)
		}
		if _, err := f.Write(part.content); err != nil {
			return fmt.Errorf("failed to write archive entry %s: %w", part.name, err)
		}
	}

	if err := archive.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

// buildDocumentXML renders word/document.xml from the document model.
func buildDocumentXML(doc *model.Document) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<w:document xmlns:w="%s" xmlns:r="%s">`, nsW, nsR)
	buf.WriteString(`<w:body>`)

	for _, para := range doc.Paragraphs {
		writeParagraph(&buf, para)
	}

	// Section properties close the body: US Letter with one inch margins.
	buf.WriteString(`<w:sectPr>` +
		`<w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720"/>` +
		`</w:sectPr>`)

	buf.WriteString(`</w:body></w:document>`)
	return buf.Bytes()
}

// writeParagraph renders a single <w:p> element with its properties and runs.
func writeParagraph(buf *bytes.Buffer, para model.Paragraph) {
	buf.WriteString(`<w:p>`)
	writeParagraphProps(buf, para)

	if para.PageBreakBefore {
		buf.WriteString(`<w:r><w:br w:type="page"/></w:r>`)
	}
	for _, run := range para.Runs {
		writeRun(buf, run)
	}

	buf.WriteString(`</w:p>`)
}

// writeParagraphProps renders <w:pPr> for the paragraph. The element is
// omitted entirely when the paragraph carries no formatting.
func writeParagraphProps(buf *bytes.Buffer, para model.Paragraph) {
	var props bytes.Buffer

	if styleID := styleIDFor(para.Style); styleID != "" {
		fmt.Fprintf(&props, `<w:pStyle w:val="%s"/>`, styleID)
	}
	if para.SpaceBeforePt > 0 {
		// Spacing is measured in twentieths of a point.
		fmt.Fprintf(&props, `<w:spacing w:before="%d"/>`, int(para.SpaceBeforePt*20))
	}
	if para.IndentInches > 0 {
		// Indentation is measured in twips (1440 per inch).
		fmt.Fprintf(&props, `<w:ind w:left="%d"/>`, int(para.IndentInches*1440))
	}

	if props.Len() > 0 {
		buf.WriteString(`<w:pPr>`)
		buf.Write(props.Bytes())
		buf.WriteString(`</w:pPr>`)
	}
}

// writeRun renders a <w:r> element with run properties and text.
func writeRun(buf *bytes.Buffer, run model.Run) {
	buf.WriteString(`<w:r>`)

	var props bytes.Buffer
	if run.FontName != "" {
		font := escapeAttr(run.FontName)
		fmt.Fprintf(&props, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:eastAsia="%s" w:cs="%s"/>`,
			font, font, font, font)
	}
	if run.Bold {
		props.WriteString(`<w:b/>`)
	}
	if run.SizePt > 0 {
		// Font size is measured in half-points.
		fmt.Fprintf(&props, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`,
			int(run.SizePt*2), int(run.SizePt*2))
	}
	if props.Len() > 0 {
		buf.WriteString(`<w:rPr>`)
		buf.Write(props.Bytes())
		buf.WriteString(`</w:rPr>`)
	}

	buf.WriteString(`<w:t xml:space="preserve">`)
	buf.WriteString(escapeText(run.Text))
	buf.WriteString(`</w:t></w:r>`)
}

// styleIDFor maps a style tag to its sheet style ID. Body paragraphs
// use the default style and carry no reference.
func styleIDFor(style model.StyleTag) string {
	switch style {
	case model.StyleHeading2:
		return "Heading2"
	case model.StyleHeading3:
		return "Heading3"
	case model.StyleBulletList:
		return "ListBullet"
	case model.StyleNumberList:
		return "ListNumber"
	default:
		return ""
	}
}

// escapeText escapes character data for XML element content.
func escapeText(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// escapeAttr escapes a value for use inside a double-quoted attribute.
func escapeAttr(s string) string {
	return strings.NewReplacer(
		`&`, "&amp;",
		`<`, "&lt;",
		`>`, "&gt;",
		`"`, "&quot;",
	).Replace(s)
}
