package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ListKind distinguishes bullet lists from numbered lists.
type ListKind int

const (
	ListKindNone ListKind = iota
	ListKindBullet
	ListKindNumber
)

// String returns a string representation of the list kind.
func (k ListKind) String() string {
	switch k {
	case ListKindBullet:
		return "bullet"
	case ListKindNumber:
		return "number"
	default:
		return "none"
	}
}

// Classification is the per-line layout decision: style plus measured
// formatting in document units.
type Classification struct {
	// IsHeading is true when the line classifies as a heading.
	IsHeading bool

	// HeadingLevel is 2 for markedly oversized lines, 3 otherwise.
	// Zero when IsHeading is false.
	HeadingLevel int

	// IsList is true when the line carries a bullet or number marker.
	IsList bool

	// ListKind is the marker kind when IsList is true.
	ListKind ListKind

	// IndentInches is the paragraph indent derived from the line's left
	// offset against the page margin. Always zero for list items: the
	// marker itself provides the visual indent.
	IndentInches float64

	// SpaceBeforePt is the extra vertical spacing in points implied by the
	// gap to the previous line. Zero for the first line of a page.
	SpaceBeforePt float64
}

// Classify decides a line's structural role and formatting measurements.
// pageMinLeft is the smallest left edge among the page's lines, and prev is
// the immediately preceding line in top-to-bottom order (nil for the first).
//
// When a line matches both the list and heading heuristics, the precedence
// is fixed by Config.HeadingBeforeList; by default the explicit list marker
// wins over the capitalization/size heuristics.
func (e *Engine) Classify(line *Line, prev *Line, pageMinLeft float64) Classification {
	var c Classification

	text := strings.TrimSpace(line.Text)

	isList, kind := e.detectList(text)
	isHeading := e.detectHeading(text, line.HeightRatio)

	if isList && isHeading {
		if e.config.HeadingBeforeList {
			isList = false
		} else {
			isHeading = false
		}
	}

	if isList {
		c.IsList = true
		c.ListKind = kind
	} else if isHeading {
		c.IsHeading = true
		if line.HeightRatio >= e.config.HeadingRatio {
			c.HeadingLevel = 2
		} else {
			c.HeadingLevel = 3
		}
	}

	if !c.IsList {
		c.IndentInches = e.indentInches(line.BBox.Left(), pageMinLeft)
	}

	if prev != nil {
		c.SpaceBeforePt = e.spaceBefore(line, prev)
	}

	return c
}

// detectHeading reports whether a line of the given text and height ratio is
// a heading. Two branches: a line markedly taller than the page median is a
// heading regardless of casing, and a short line dense with uppercase
// letters is a heading regardless of size. The two-branch rule is
// deliberately chosen over the ratio-only variant: it catches ALL-CAPS
// headings set in body-sized type, at the cost of occasionally promoting a
// short shouted body line.
func (e *Engine) detectHeading(text string, heightRatio float64) bool {
	if text == "" {
		return false
	}

	length := utf8.RuneCountInString(text)
	if length > e.config.HeadingMaxLength {
		return false
	}

	if heightRatio >= e.config.HeadingRatio {
		return true
	}

	if length <= e.config.UppercaseMaxLength {
		upper := 0
		for _, r := range text {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		need := int(float64(length) * e.config.UppercaseShare)
		if need < e.config.UppercaseMinCount {
			need = e.config.UppercaseMinCount
		}
		if upper >= need {
			return true
		}
	}

	return false
}

// detectList reports whether the trimmed text starts with a list marker.
// Bullet markers take precedence over numbered: a leading dash is always a
// bullet, never a truncated number.
func (e *Engine) detectList(text string) (bool, ListKind) {
	if text == "" {
		return false, ListKindNone
	}

	first, _ := utf8.DecodeRuneInString(text)
	for _, bullet := range e.config.BulletRunes {
		if first == bullet {
			return true, ListKindBullet
		}
	}

	// Numbered: one or two digits followed by '.', ')' or a space, covering
	// "1." through "99)" style prefixes.
	runes := []rune(text)
	if len(runes) >= 2 && unicode.IsDigit(runes[0]) {
		if isNumberTerminator(runes[1]) {
			return true, ListKindNumber
		}
		if len(runes) >= 3 && unicode.IsDigit(runes[1]) && isNumberTerminator(runes[2]) {
			return true, ListKindNumber
		}
	}

	return false, ListKindNone
}

// isNumberTerminator reports whether r ends a numbered-list prefix.
func isNumberTerminator(r rune) bool {
	return r == '.' || r == ')' || r == ' '
}

// indentInches converts a line's left offset against the page margin into
// inches of paragraph indent, clamped to Config.MaxIndentInches.
func (e *Engine) indentInches(left, pageMinLeft float64) float64 {
	px := left - pageMinLeft
	if px <= 0 {
		return 0
	}
	inches := px / e.config.IndentPixelsPerInch
	if inches > e.config.MaxIndentInches {
		inches = e.config.MaxIndentInches
	}
	return inches
}

// spaceBefore derives extra paragraph spacing from the vertical gap between
// a line and its predecessor. Gaps at or below the page-relative threshold
// imply normal line flow and get no extra space; larger gaps map to points
// proportionally, clamped to a readable range. The mapping is monotonic in
// the gap up to the clamp.
func (e *Engine) spaceBefore(line, prev *Line) float64 {
	gap := line.BBox.Top() - prev.BBox.Bottom()
	if gap <= line.MedianHeight*e.config.SpaceGapRatio {
		return 0
	}

	pt := gap / e.config.SpaceDivisor
	if pt < e.config.MinSpacePt {
		pt = e.config.MinSpacePt
	}
	if pt > e.config.MaxSpacePt {
		pt = e.config.MaxSpacePt
	}
	return pt
}
