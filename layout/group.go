package layout

import (
	"sort"

	"github.com/pagelift/pagelift/model"
)

// GroupWords groups recognized words into lines by their hierarchy key,
// assembles each line's text, and returns the lines sorted top-to-bottom,
// then left-to-right for same-row ties.
//
// Words with empty text or negative confidence are filtered out, so the
// grouper upholds its contract even when the caller skipped the filter.
// An empty input produces an empty (nil) slice, which downstream stages
// treat as a valid page with no content, not an error.
func (e *Engine) GroupWords(words []model.Word) []*Line {
	groups := make(map[model.HierarchyKey]*Line)

	for _, word := range words {
		if !word.Valid() {
			continue
		}

		line, ok := groups[word.Key]
		if !ok {
			line = &Line{
				Key:  word.Key,
				BBox: word.BBox,
			}
			groups[word.Key] = line
		} else {
			// Union box: min left, min top, max height. Width is
			// recomputed from the rightmost word after sorting.
			if word.BBox.Left() < line.BBox.X {
				line.BBox.X = word.BBox.Left()
			}
			if word.BBox.Top() < line.BBox.Y {
				line.BBox.Y = word.BBox.Top()
			}
			if word.BBox.Height > line.BBox.Height {
				line.BBox.Height = word.BBox.Height
			}
		}
		line.Words = append(line.Words, word)
	}

	// Map iteration order is incidental; build an explicit ordering before
	// anything downstream consumes the lines.
	lines := make([]*Line, 0, len(groups))
	for _, line := range groups {
		sortWordsByLeft(line.Words)
		line.BBox.Width = lineRight(line.Words) - line.BBox.X
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].BBox.Top() != lines[j].BBox.Top() {
			return lines[i].BBox.Top() < lines[j].BBox.Top()
		}
		return lines[i].BBox.Left() < lines[j].BBox.Left()
	})

	attachMedianHeight(lines)

	// Assemble text against the page median; a line's own height stands in
	// when the median is degenerate.
	assembled := lines[:0]
	for _, line := range lines {
		ref := line.MedianHeight
		if ref <= 0 {
			ref = line.BBox.Height
		}
		line.Text = e.AssembleText(line.Words, ref)
		if line.IsEmpty() {
			continue
		}
		assembled = append(assembled, line)
	}

	if len(assembled) == 0 {
		return nil
	}
	return assembled
}

// sortWordsByLeft orders a line's words by ascending left edge. The hierarchy
// key guarantees line membership but not word order.
func sortWordsByLeft(words []model.Word) {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].BBox.Left() < words[j].BBox.Left()
	})
}

// lineRight returns the rightmost right edge among the words.
func lineRight(words []model.Word) float64 {
	if len(words) == 0 {
		return 0
	}
	right := words[0].BBox.Right()
	for _, w := range words[1:] {
		if w.BBox.Right() > right {
			right = w.BBox.Right()
		}
	}
	return right
}

// attachMedianHeight computes the page's median line height and stamps it,
// with the derived height ratio, onto every line. The median is robust
// against a few oversized headings, unlike an average.
func attachMedianHeight(lines []*Line) {
	if len(lines) == 0 {
		return
	}

	heights := make([]float64, len(lines))
	for i, line := range lines {
		heights[i] = line.BBox.Height
	}
	sort.Float64s(heights)
	median := heights[len(heights)/2]

	for _, line := range lines {
		line.MedianHeight = median
		if median > 0 {
			line.HeightRatio = line.BBox.Height / median
		} else {
			line.HeightRatio = 1.0
		}
	}
}
