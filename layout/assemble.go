package layout

import (
	"strings"

	"github.com/pagelift/pagelift/model"
)

// AssembleText joins a line's words into a single string, ordered left to
// right. Words separated by a normal inter-word gap get a single space; a
// gap of at least Config.WideGapRatio times refHeight gets a double space,
// approximating a tab stop or column break. refHeight is normally the page's
// median line height.
//
// The words must already be sorted by ascending left edge. An empty word
// list returns the empty string; callers skip emitting such lines.
func (e *Engine) AssembleText(words []model.Word, refHeight float64) string {
	if len(words) == 0 {
		return ""
	}

	wideGap := refHeight * e.config.WideGapRatio

	var sb strings.Builder
	prevRight := 0.0

	for i, word := range words {
		if i > 0 {
			gap := word.BBox.Left() - prevRight
			if wideGap > 0 && gap >= wideGap {
				sb.WriteString("  ")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(word.Text)
		prevRight = word.BBox.Right()
	}

	return strings.TrimSpace(sb.String())
}
