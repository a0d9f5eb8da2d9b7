// Package pagelift provides a fluent API for turning scanned page images
// into formatted word-processor documents.
//
// Basic usage:
//
//	data, warnings, err := pagelift.Open("scan.jpg").DocxBytes()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagelift.FormatWarnings(warnings))
//	}
//
// With options:
//
//	data, _, err := pagelift.Open("page1.jpg", "page2.jpg").
//	    Language("eng+rus").
//	    FastMode().
//	    DocxBytes()
//
// Recognition requires a Tesseract installation and the ocr build tag.
// Word data produced elsewhere can be fed in directly via FromWords, and
// FromText reconstructs a document from already-recognized plain text;
// neither path touches the OCR engine. The lower-level layout, preprocess,
// ocr, and docx packages are also available for advanced use.
package pagelift

import (
	"strings"

	"github.com/pagelift/pagelift/layout"
	"github.com/pagelift/pagelift/model"
)

// Warning reports a non-fatal problem encountered while converting,
// such as a page whose recognition failed.
type Warning = layout.Warning

// Recognizer recognizes text and word geometry on a prepared page
// image. ocr.Client is the production implementation.
type Recognizer interface {
	SetLanguages(hint string) error
	RecognizeText(imageData []byte) (string, error)
	RecognizeWords(imageData []byte) ([]model.Word, error)
	Close() error
}

// Open creates a Converter for one or more page image files. Pages
// appear in the output in the order given, separated by page breaks.
//
// Example:
//
//	data, warnings, err := pagelift.Open("scan.jpg").DocxBytes()
func Open(paths ...string) *Converter {
	return &Converter{
		paths:   append([]string(nil), paths...),
		options: defaultOptions(),
	}
}

// FromWords creates a Converter from word data that has already been
// recognized, bypassing preprocessing and OCR.
func FromWords(pages ...model.Page) *Converter {
	return &Converter{
		pages:   append([]model.Page(nil), pages...),
		options: defaultOptions(),
	}
}

// FromText creates a Converter from plain text. Only line-level
// heuristics apply; geometry-based formatting needs word data.
func FromText(text string) *Converter {
	return &Converter{
		text:    text,
		hasText: true,
		options: defaultOptions(),
	}
}

// FormatWarnings renders warnings as a newline-separated string for
// logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	data := pagelift.MustConvert(pagelift.Open("scan.jpg").DocxBytes())
func MustConvert[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
