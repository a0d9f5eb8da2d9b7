package layout

import (
	"strings"

	"github.com/pagelift/pagelift/model"
)

// Line represents a single reconstructed line of text on a page.
type Line struct {
	// Words are the line's words, sorted by ascending left edge.
	Words []model.Word

	// Text is the assembled text content of the line.
	Text string

	// BBox is the union bounding box of the line's words.
	BBox model.BBox

	// Key is the hierarchy key shared by the line's words.
	Key model.HierarchyKey

	// MedianHeight is the median line height of the page this line belongs
	// to. It is a page-level statistic, computed once per page and attached
	// to every line for relative comparisons.
	MedianHeight float64

	// HeightRatio is the line's height relative to the page median
	// (1.0 when the median is zero).
	HeightRatio float64
}

// IsEmpty returns true if the line has no text content.
func (l *Line) IsEmpty() bool {
	if l == nil {
		return true
	}
	return strings.TrimSpace(l.Text) == ""
}

// WordCount returns the number of words in the line.
func (l *Line) WordCount() int {
	if l == nil {
		return 0
	}
	return len(l.Words)
}

// minLeft returns the smallest left edge among lines, used as the page's
// text margin for indentation measurement.
func minLeft(lines []*Line) float64 {
	if len(lines) == 0 {
		return 0
	}
	min := lines[0].BBox.Left()
	for _, line := range lines[1:] {
		if line.BBox.Left() < min {
			min = line.BBox.Left()
		}
	}
	return min
}
