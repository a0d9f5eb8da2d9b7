package pagelift

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pagelift/pagelift/docx"
	"github.com/pagelift/pagelift/layout"
	"github.com/pagelift/pagelift/model"
	"github.com/pagelift/pagelift/ocr"
	"github.com/pagelift/pagelift/preprocess"
)

// Converter provides a fluent interface for converting page images into
// documents. Each configuration method returns a new Converter instance,
// making it safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source (exactly one is used)
	paths   []string
	pages   []model.Page
	text    string
	hasText bool

	// Configuration
	options convertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability, each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		paths:   append([]string(nil), c.paths...),
		pages:   append([]model.Page(nil), c.pages...),
		text:    c.text,
		hasText: c.hasText,
		options: c.options.clone(),
		err:     c.err,
	}
}

// Language sets the recognition language hint. Accepts Tesseract codes
// ("eng", "eng+rus"), ISO two-letter codes ("en", "ru"), or "auto" for
// the full multilingual set.
func (c *Converter) Language(hint string) *Converter {
	newConv := c.clone()
	newConv.options.language = hint
	return newConv
}

// FastMode trades recognition quality for speed by skipping the
// expensive preprocessing steps.
func (c *Converter) FastMode() *Converter {
	newConv := c.clone()
	newConv.options.fastMode = true
	return newConv
}

// SkipPreprocess feeds images to recognition untouched. Use it when the
// input is already clean, such as rendered rather than scanned pages.
func (c *Converter) SkipPreprocess() *Converter {
	newConv := c.clone()
	newConv.options.skipPrepare = true
	return newConv
}

// WithLayout replaces the layout thresholds used for reconstruction.
func (c *Converter) WithLayout(config layout.Config) *Converter {
	newConv := c.clone()
	newConv.options.layout = config
	return newConv
}

// WithRecognizer replaces the OCR engine. Useful for tests and for
// callers that manage their own client lifecycle; the converter will
// not close a recognizer it did not create.
func (c *Converter) WithRecognizer(r Recognizer) *Converter {
	newConv := c.clone()
	newConv.options.recognizer = r
	return newConv
}

// Document runs the conversion and returns the reconstructed document
// model. Warnings report pages whose recognition or reconstruction
// failed; such pages appear as placeholders in the output.
func (c *Converter) Document() (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	engine := layout.NewEngineWithConfig(c.options.layout)

	if c.hasText {
		return engine.ReconstructText(c.text), nil, nil
	}

	pages := c.pages
	var recognitionWarnings []Warning
	if pages == nil {
		if len(c.paths) == 0 {
			return nil, nil, fmt.Errorf("no input specified")
		}
		var err error
		pages, recognitionWarnings, err = c.recognizePages()
		if err != nil {
			return nil, nil, err
		}
	}

	doc, warnings := engine.ReconstructDocument(pages)
	return doc, append(recognitionWarnings, warnings...), nil
}

// Text runs recognition and returns plain text, pages separated by
// blank lines. Word-data and plain-text sources are reconstructed
// first and then flattened.
func (c *Converter) Text() (string, []Warning, error) {
	if c.err != nil {
		return "", nil, c.err
	}

	if c.hasText {
		return ocr.NormalizeText(c.text), nil, nil
	}
	if c.pages != nil {
		doc, warnings, err := c.Document()
		if err != nil {
			return "", warnings, err
		}
		return doc.ExtractText(), warnings, nil
	}
	if len(c.paths) == 0 {
		return "", nil, fmt.Errorf("no input specified")
	}

	recognizer, closeRecognizer, err := c.openRecognizer()
	if err != nil {
		return "", nil, err
	}
	defer closeRecognizer()

	var warnings []Warning
	texts := make([]string, 0, len(c.paths))
	for i, path := range c.paths {
		data, err := c.prepareImage(path)
		if err == nil {
			var text string
			text, err = recognizer.RecognizeText(data)
			if err == nil {
				texts = append(texts, text)
				continue
			}
		}
		if isFatal(err) {
			return "", warnings, err
		}
		warnings = append(warnings, Warning{Page: i, Message: err.Error()})
		texts = append(texts, "")
	}
	return strings.TrimSpace(strings.Join(texts, "\n\n")), warnings, nil
}

// DocxBytes runs the conversion and returns the document as a DOCX
// archive.
func (c *Converter) DocxBytes() ([]byte, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return nil, warnings, err
	}
	data, err := docx.NewWriter().Bytes(doc)
	if err != nil {
		return nil, warnings, err
	}
	return data, warnings, nil
}

// DocxFile runs the conversion and writes the document to a DOCX file
// at the given path.
func (c *Converter) DocxFile(path string) ([]Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return warnings, err
	}
	if err := docx.NewWriter().WriteFile(path, doc); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// recognizePages runs preprocessing and word recognition over every
// input image. A page that fails produces a warning and an empty word
// list, so the layout engine emits a placeholder and later pages keep
// their position.
func (c *Converter) recognizePages() ([]model.Page, []Warning, error) {
	recognizer, closeRecognizer, err := c.openRecognizer()
	if err != nil {
		return nil, nil, err
	}
	defer closeRecognizer()

	var warnings []Warning
	pages := make([]model.Page, 0, len(c.paths))
	for i, path := range c.paths {
		words, err := c.recognizeImage(recognizer, path)
		if err != nil {
			if isFatal(err) {
				return nil, warnings, err
			}
			warnings = append(warnings, Warning{Page: i, Message: err.Error()})
			words = nil
		}
		pages = append(pages, model.Page{Index: i, Words: words})
	}
	return pages, warnings, nil
}

func (c *Converter) recognizeImage(recognizer Recognizer, path string) ([]model.Word, error) {
	data, err := c.prepareImage(path)
	if err != nil {
		return nil, err
	}
	return recognizer.RecognizeWords(data)
}

func (c *Converter) prepareImage(path string) ([]byte, error) {
	if c.options.skipPrepare {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return data, nil
	}

	prepConfig := preprocess.DefaultConfig()
	prepConfig.FastMode = c.options.fastMode
	return preprocess.NewPreprocessorWithConfig(prepConfig).PrepareFile(path)
}

// openRecognizer returns the configured recognizer, or builds an OCR
// client. The returned closer is a no-op for injected recognizers.
func (c *Converter) openRecognizer() (Recognizer, func(), error) {
	if c.options.recognizer != nil {
		if err := c.options.recognizer.SetLanguages(c.options.language); err != nil {
			return nil, nil, err
		}
		return c.options.recognizer, func() {}, nil
	}

	client, err := ocr.New()
	if err != nil {
		return nil, nil, err
	}
	if err := client.SetLanguages(c.options.language); err != nil {
		client.Close()
		return nil, nil, err
	}
	return client, func() { client.Close() }, nil
}

// isFatal reports whether a per-page failure should abort the whole
// conversion instead of degrading to a placeholder page. A disabled
// OCR build can never produce output, so it aborts.
func isFatal(err error) bool {
	return errors.Is(err, ocr.ErrOCRNotEnabled)
}
