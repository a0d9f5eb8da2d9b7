package layout

import (
	"fmt"

	"github.com/pagelift/pagelift/model"
)

// Engine is the layout reconstruction engine. It carries the configuration
// and nothing else: every Reconstruct call computes its page statistics
// locally, so one engine may serve any number of pages or goroutines.
type Engine struct {
	config Config
}

// NewEngine creates a layout engine with default configuration.
func NewEngine() *Engine {
	return &Engine{
		config: DefaultConfig(),
	}
}

// NewEngineWithConfig creates a layout engine with custom configuration.
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{
		config: config,
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Warning describes a non-fatal problem encountered while reconstructing a
// page. A warning means the page was replaced by a placeholder; the rest of
// the document is unaffected.
type Warning struct {
	// Page is the zero-based index of the affected page.
	Page int

	// Message describes what went wrong.
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s", w.Page+1, w.Message)
}

// ReconstructPage runs the full pipeline for one page's recognized words and
// appends the result to doc. The transformation is pure and synchronous:
// words in, paragraphs out, no I/O and no retained state.
func (e *Engine) ReconstructPage(doc *model.Document, words []model.Word, pageBreakBefore bool) {
	lines := e.GroupWords(words)
	e.EmitPage(doc, lines, pageBreakBefore)
}

// ReconstructDocument reconstructs a multi-page document. Pages are emitted
// in input order with an explicit page break between every two consecutive
// pages. A fault on one page is contained: that page becomes a placeholder
// paragraph and a warning, and the remaining pages still emit, so the
// page-count invariant holds even for partially failed runs.
func (e *Engine) ReconstructDocument(pages []model.Page) (*model.Document, []Warning) {
	doc := model.NewDocument()

	var warnings []Warning
	for i, page := range pages {
		breakBefore := i > 0
		if err := e.reconstructPageSafe(doc, page.Words, breakBefore); err != nil {
			warnings = append(warnings, Warning{Page: i, Message: err.Error()})
			e.EmitPage(doc, nil, breakBefore)
		}
	}

	return doc, warnings
}

// reconstructPageSafe runs one page through the pipeline, converting a panic
// from a contract violation into an error local to that page. The page is
// built into a scratch document and spliced in only on success, so a fault
// never leaves half a page behind.
func (e *Engine) reconstructPageSafe(doc *model.Document, words []model.Word, pageBreakBefore bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("layout fault: %v", r)
		}
	}()

	scratch := model.NewDocument()
	e.ReconstructPage(scratch, words, pageBreakBefore)

	doc.Paragraphs = append(doc.Paragraphs, scratch.Paragraphs...)
	return nil
}
