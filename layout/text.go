package layout

import (
	"strings"

	"github.com/pagelift/pagelift/model"
)

// ReconstructText builds a document from plain text, using the same list and
// heading heuristics as the geometric pipeline but without any pixel
// measurements: runs get the configured default size, and blank lines in the
// input become empty spacer paragraphs.
//
// This is the degraded path for input that only exists as text (e.g. OCR
// output that was already flattened); the geometric pipeline produces better
// results whenever word boxes are available.
func (e *Engine) ReconstructText(text string) *model.Document {
	doc := model.NewDocument()

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")

	if strings.TrimSpace(text) == "" {
		doc.AddParagraph(model.Paragraph{
			Style: model.StyleBody,
			Runs:  []model.Run{{Text: "", FontName: e.config.FontName, SizePt: e.config.DefaultFontPt}},
		})
		return doc
	}

	blank := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			blank = true
			continue
		}

		if blank && doc.ParagraphCount() > 0 {
			// A blank input line reads as paragraph spacing.
			doc.AddParagraph(model.Paragraph{
				Style: model.StyleBody,
				Runs:  []model.Run{{Text: "", FontName: e.config.FontName, SizePt: e.config.DefaultFontPt}},
			})
		}
		blank = false

		doc.AddParagraph(e.textParagraph(line))
	}

	return doc
}

// textHeadingPt is the run size for headings on the plain-text path.
// With no pixel heights to map there is nothing to derive it from, so
// every heading gets the same fixed size.
const textHeadingPt = 14

// textParagraph classifies one plain-text line and builds its paragraph.
// Without geometry the height ratio is neutral, so only the uppercase
// branch of the heading rule can fire. Headings take the Heading 2
// style, matching the level the geometric pipeline assigns to its most
// prominent lines.
func (e *Engine) textParagraph(line string) model.Paragraph {
	run := model.Run{
		FontName: e.config.FontName,
		SizePt:   e.config.DefaultFontPt,
	}
	p := model.Paragraph{Style: model.StyleBody}

	isList, kind := e.detectList(line)
	isHeading := e.detectHeading(line, 1.0)

	if isList && isHeading {
		if e.config.HeadingBeforeList {
			isList = false
		} else {
			isHeading = false
		}
	}

	switch {
	case isList && kind == ListKindBullet:
		p.Style = model.StyleBulletList
		line = e.canonicalBullet(line)
	case isList && kind == ListKindNumber:
		p.Style = model.StyleNumberList
	case isHeading:
		p.Style = model.StyleHeading2
		run.Bold = true
		run.SizePt = clamp(textHeadingPt, e.config.HeadingMinPt, e.config.HeadingMaxPt)
	}

	run.Text = line
	p.Runs = []model.Run{run}
	return p
}
