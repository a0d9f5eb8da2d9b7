package model

import "strings"

// HierarchyKey is the (block, paragraph, line) triple an OCR engine assigns
// to each recognized word. Words sharing a key belong to the same visual line.
// The key does not order words within a line; that order must be re-derived
// from the words' left edges.
type HierarchyKey struct {
	Block     int
	Paragraph int
	Line      int
}

// Word is a single recognized word as reported by the OCR engine.
type Word struct {
	// Text is the recognized text, whitespace-trimmed.
	Text string

	// Confidence is the recognition confidence score. Engines report
	// values below zero for entries that are not real words (layout
	// artifacts); those must be filtered out before layout analysis.
	Confidence float64

	// BBox is the word's bounding box in pixel coordinates.
	BBox BBox

	// Key is the word's position in the engine's block/paragraph/line hierarchy.
	Key HierarchyKey
}

// Valid reports whether the word should enter layout analysis: non-empty
// text after trimming and a non-negative confidence score.
func (w Word) Valid() bool {
	return strings.TrimSpace(w.Text) != "" && w.Confidence >= 0
}

// Page holds the recognized words of a single page image. Pages own their
// statistics independently; nothing is shared between pages of a document.
type Page struct {
	// Index is the page's zero-based position in the input order.
	Index int

	// Words are the recognized words, in no particular order.
	Words []Word
}
