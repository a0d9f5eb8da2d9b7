//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) capabilities
// for extracting recognized words, with their pixel geometry, from scanned
// page images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Language packs for non-English scripts must be installed separately
// (e.g. tesseract-ocr-rus, tesseract-ocr-uzb, tesseract-ocr-uzb-cyrl).
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/pagelift/pagelift/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client with the default language set.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()

	c := &Client{client: client}
	if err := c.SetLanguages(DefaultLanguages); err != nil {
		client.Close()
		return nil, err
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(DefaultDPI)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set dpi: %w", err)
	}

	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguages sets the language(s) for OCR recognition. The hint may be
// "auto", a single tag, or a "+" separated list; tags are resolved to
// Tesseract trained-data codes via ResolveLanguages.
func (c *Client) SetLanguages(hint string) error {
	langs := strings.Split(ResolveLanguages(hint), "+")
	if err := c.client.SetLanguage(langs...); err != nil {
		return fmt.Errorf("failed to set languages %q: %w", hint, err)
	}
	return nil
}

// RecognizeText performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns the recognized plain text, normalized for whitespace.
func (c *Client) RecognizeText(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return NormalizeText(text), nil
}

// RecognizeWords performs OCR on image data and returns the recognized words
// with their bounding boxes and block/paragraph/line hierarchy keys. Entries
// with empty text or negative confidence are filtered out, satisfying the
// layout engine's input contract.
func (c *Client) RecognizeWords(imageData []byte) ([]model.Word, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]model.Word, 0, len(boxes))
	for _, box := range boxes {
		word := model.Word{
			Text:       strings.TrimSpace(box.Word),
			Confidence: box.Confidence,
			BBox: model.NewBBox(
				float64(box.Box.Min.X),
				float64(box.Box.Min.Y),
				float64(box.Box.Dx()),
				float64(box.Box.Dy()),
			),
			Key: model.HierarchyKey{
				Block:     box.BlockNum,
				Paragraph: box.ParNum,
				Line:      box.LineNum,
			},
		}
		if !word.Valid() {
			continue
		}
		words = append(words, word)
	}

	return words, nil
}
