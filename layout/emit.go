package layout

import (
	"strings"

	"github.com/pagelift/pagelift/model"
)

// EmitPage appends one page's reconstructed lines to the document in order.
// When pageBreakBefore is set, the page's first paragraph carries an explicit
// page break. A page with no lines still emits a single placeholder
// paragraph, so the output's page count always matches the input's.
func (e *Engine) EmitPage(doc *model.Document, lines []*Line, pageBreakBefore bool) {
	if len(lines) == 0 {
		doc.AddParagraph(model.Paragraph{
			Style:           model.StyleBody,
			PageBreakBefore: pageBreakBefore,
			Runs: []model.Run{{
				Text:     e.config.EmptyPageText,
				FontName: e.config.FontName,
				SizePt:   e.config.DefaultFontPt,
			}},
		})
		return
	}

	pageLeft := minLeft(lines)

	var prev *Line
	for i, line := range lines {
		c := e.Classify(line, prev, pageLeft)
		p := e.paragraphFor(line, c)
		if i == 0 && pageBreakBefore {
			p.PageBreakBefore = true
		}
		doc.AddParagraph(p)
		prev = line
	}
}

// paragraphFor builds the paragraph specification for a classified line.
func (e *Engine) paragraphFor(line *Line, c Classification) model.Paragraph {
	text := strings.TrimSpace(line.Text)

	run := model.Run{
		FontName: e.config.FontName,
		SizePt:   e.bodySizePt(line.BBox.Height),
	}

	p := model.Paragraph{
		Style:         model.StyleBody,
		IndentInches:  c.IndentInches,
		SpaceBeforePt: c.SpaceBeforePt,
	}

	switch {
	case c.IsList && c.ListKind == ListKindBullet:
		p.Style = model.StyleBulletList
		text = e.canonicalBullet(text)
	case c.IsList && c.ListKind == ListKindNumber:
		p.Style = model.StyleNumberList
	case c.IsHeading:
		if c.HeadingLevel == 2 {
			p.Style = model.StyleHeading2
		} else {
			p.Style = model.StyleHeading3
		}
		run.Bold = true
		run.SizePt = e.headingSizePt(line.BBox.Height)
	}

	run.Text = text
	p.Runs = []model.Run{run}
	return p
}

// canonicalBullet normalizes a bullet line's visible marker to a single "• "
// prefix, stripping whatever glyph the OCR picked up. The bullet paragraph
// style does not render a marker of its own, so the canonical glyph is the
// one the reader sees; normalizing here avoids a mix of scanned marker
// shapes within one document.
func (e *Engine) canonicalBullet(text string) string {
	cutset := string(e.config.BulletRunes) + " "
	return "• " + strings.TrimSpace(strings.TrimLeft(text, cutset))
}
