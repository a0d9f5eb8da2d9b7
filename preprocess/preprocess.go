// Package preprocess prepares raster page images for OCR.
//
// Scanned and photographed documents arrive at wildly varying resolutions
// and quality. The preprocessor normalizes them: EXIF orientation is
// honored on decode, the image is converted to grayscale, scaled into the
// resolution band where the OCR engine performs best, contrast-boosted,
// denoised, and binarized. All steps are tunable via Config; FastMode skips
// the expensive cleanup steps for a roughly 2x faster path at lower quality.
package preprocess

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Config holds the preprocessing parameters.
type Config struct {
	// UpscaleBelow is the max dimension in pixels under which the image is
	// upscaled by UpscaleFactor. Small phone crops OCR badly without this.
	// Default: 1000
	UpscaleBelow int

	// UpscaleFactor is the scale applied below UpscaleBelow. Default: 2.0
	UpscaleFactor float64

	// MidscaleBelow is the max dimension under which a gentler
	// MidscaleFactor upscale applies (skipped in FastMode). Default: 1400
	MidscaleBelow int

	// MidscaleFactor is the scale applied below MidscaleBelow. Default: 1.5
	MidscaleFactor float64

	// DownscaleAbove is the max dimension above which the image is scaled
	// down to DownscaleTarget, trading resolution for speed. Default: 3000
	DownscaleAbove int

	// DownscaleTarget is the max dimension after downscaling. Default: 2000
	DownscaleTarget int

	// ContrastBoost is the contrast adjustment percentage applied before
	// binarization (skipped in FastMode). Default: 15
	ContrastBoost float64

	// MedianRadius is the window size of the median denoise filter
	// (skipped in FastMode). Default: 3
	MedianRadius float64

	// ThresholdLevel is the grayscale cutoff for binarization: pixels
	// above it become white, the rest black. Default: 160
	ThresholdLevel uint8

	// FastMode skips the mid-band upscale, contrast boost and denoise.
	FastMode bool
}

// DefaultConfig returns the default preprocessing parameters.
func DefaultConfig() Config {
	return Config{
		UpscaleBelow:    1000,
		UpscaleFactor:   2.0,
		MidscaleBelow:   1400,
		MidscaleFactor:  1.5,
		DownscaleAbove:  3000,
		DownscaleTarget: 2000,
		ContrastBoost:   15,
		MedianRadius:    3,
		ThresholdLevel:  160,
	}
}

// Preprocessor prepares images for OCR.
type Preprocessor struct {
	config Config
}

// NewPreprocessor creates a preprocessor with default configuration.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{
		config: DefaultConfig(),
	}
}

// NewPreprocessorWithConfig creates a preprocessor with custom configuration.
func NewPreprocessorWithConfig(config Config) *Preprocessor {
	return &Preprocessor{
		config: config,
	}
}

// PrepareFile reads an image file, applies the preprocessing pipeline and
// returns the result as PNG bytes ready for the OCR engine.
func (p *Preprocessor) PrepareFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return p.Prepare(f)
}

// Prepare decodes an image from r, applies the preprocessing pipeline and
// returns the result as PNG bytes. Camera EXIF orientation is applied
// during decode.
func (p *Preprocessor) Prepare(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	processed := p.Process(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, processed, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Process applies the preprocessing pipeline to an already-decoded image:
// grayscale, resolution normalization, optional contrast and denoise, then
// binarization.
func (p *Preprocessor) Process(img image.Image) image.Image {
	out := imaging.Grayscale(img)

	out = p.normalizeScale(out)

	if !p.config.FastMode {
		if p.config.ContrastBoost > 0 {
			out = imaging.AdjustContrast(out, p.config.ContrastBoost)
		}
		if p.config.MedianRadius > 0 {
			out = imaging.Clone(effect.Median(out, p.config.MedianRadius))
		}
	}

	return segment.Threshold(out, p.config.ThresholdLevel)
}

// normalizeScale moves the image into the resolution band the OCR engine
// likes: small images are upscaled, very large ones downscaled.
func (p *Preprocessor) normalizeScale(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	maxDim := w
	if h > maxDim {
		maxDim = h
	}
	if maxDim == 0 {
		return img
	}

	switch {
	case maxDim < p.config.UpscaleBelow:
		return imaging.Resize(img,
			int(float64(w)*p.config.UpscaleFactor),
			int(float64(h)*p.config.UpscaleFactor),
			imaging.Lanczos)

	case maxDim < p.config.MidscaleBelow && !p.config.FastMode:
		return imaging.Resize(img,
			int(float64(w)*p.config.MidscaleFactor),
			int(float64(h)*p.config.MidscaleFactor),
			imaging.Lanczos)

	case maxDim > p.config.DownscaleAbove:
		scale := float64(p.config.DownscaleTarget) / float64(maxDim)
		return imaging.Resize(img,
			int(float64(w)*scale),
			int(float64(h)*scale),
			imaging.Lanczos)
	}

	return img
}
