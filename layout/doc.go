// Package layout reconstructs document structure from positioned OCR output.
//
// The layout engine takes the per-word records an OCR engine produces (text
// plus pixel bounding boxes and a block/paragraph/line hierarchy key) and
// rebuilds lines, headings, list items, indentation and paragraph spacing,
// mapping pixel measurements to document formatting units. The result is a
// model.Document ready for a serialization backend.
//
// The pipeline runs strictly forward:
//
//	words -> grouped lines -> assembled text -> classified lines -> emitted document
//
// Every threshold the heuristics depend on lives in Config; the engine itself
// holds no other state, performs no I/O, and is safe to call repeatedly and
// concurrently with one engine per goroutine or a shared engine, since all
// per-page statistics are local to a single Reconstruct call.
//
// Basic usage:
//
//	engine := layout.NewEngine()
//	doc, warnings := engine.ReconstructDocument(pages)
package layout
