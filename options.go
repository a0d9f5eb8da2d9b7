package pagelift

import "github.com/pagelift/pagelift/layout"

// convertOptions holds configuration for a conversion.
type convertOptions struct {
	// Recognition
	language string

	// Preprocessing
	fastMode    bool
	skipPrepare bool

	// Layout
	layout layout.Config

	// Injected recognizer; nil means build an ocr.Client on demand.
	recognizer Recognizer
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		language: "auto",
		layout:   layout.DefaultConfig(),
	}
}

// clone creates a copy of convertOptions. The bullet rune slice inside
// the layout config is copied so chained converters never share state.
func (o convertOptions) clone() convertOptions {
	newOpts := o
	if o.layout.BulletRunes != nil {
		newOpts.layout.BulletRunes = append([]rune(nil), o.layout.BulletRunes...)
	}
	return newOpts
}
