package layout

// Config holds every tunable threshold used by the layout engine. The same
// heuristics historically existed in several near-duplicate variants with
// slightly different constants; collecting them here turns "which variant is
// correct" into a configuration question.
type Config struct {
	// WideGapRatio is the horizontal gap between two words, as a multiple
	// of the reference line height, beyond which the assembler emits a
	// double space (approximating a tab or column break). Default: 1.2
	WideGapRatio float64

	// HeadingRatio is the minimum height ratio (line height vs. page median)
	// for a line to classify as a heading on size alone. Lines at or above
	// this ratio become level-2 headings; uppercase-density headings below
	// it become level-3. Default: 1.5
	HeadingRatio float64

	// HeadingMaxLength is the maximum text length (in runes) for any heading.
	// Default: 100
	HeadingMaxLength int

	// UppercaseMaxLength is the maximum text length for the uppercase-density
	// heading branch. Default: 60
	UppercaseMaxLength int

	// UppercaseMinCount is the floor on the uppercase-letter count for the
	// uppercase-density branch. Default: 3
	UppercaseMinCount int

	// UppercaseShare is the minimum share of uppercase letters for the
	// uppercase-density branch. Default: 0.3
	UppercaseShare float64

	// HeadingBeforeList checks the heading heuristics before the list
	// heuristics when a line could match both. Explicit list markers are the
	// stronger structural signal, so the default is false (list wins).
	HeadingBeforeList bool

	// BulletRunes are the characters recognized as bullet markers when they
	// lead a trimmed line.
	BulletRunes []rune

	// IndentPixelsPerInch is the calibration constant converting a left
	// offset in pixels into inches of paragraph indent. Default: 200
	IndentPixelsPerInch float64

	// MaxIndentInches caps the computed paragraph indent. Default: 1.5
	MaxIndentInches float64

	// SpaceGapRatio is the vertical gap to the previous line, as a multiple
	// of the page median height, beyond which the line receives extra
	// space-before. Default: 0.8
	SpaceGapRatio float64

	// SpaceDivisor converts a qualifying vertical gap in pixels into
	// space-before points. Default: 5
	SpaceDivisor float64

	// MinSpacePt and MaxSpacePt clamp the computed space-before.
	// Defaults: 3 and 12 points.
	MinSpacePt float64
	MaxSpacePt float64

	// DPI is the assumed raster resolution for converting pixel heights to
	// font point sizes. Default: 300
	DPI float64

	// MinFontPt and MaxFontPt clamp the raw pixel-to-point mapping.
	// Defaults: 9 and 28 points.
	MinFontPt float64
	MaxFontPt float64

	// BodyMinPt and BodyMaxPt clamp body run sizes. Defaults: 10 and 14.
	BodyMinPt float64
	BodyMaxPt float64

	// HeadingBoostPt is added to the mapped size for heading runs. Default: 2
	HeadingBoostPt float64

	// HeadingMinPt and HeadingMaxPt clamp heading run sizes.
	// Defaults: 12 and 18.
	HeadingMinPt float64
	HeadingMaxPt float64

	// FontName is the font applied to every emitted run. Default: Arial,
	// which covers both Latin and Cyrillic scripts.
	FontName string

	// DefaultFontPt is the run size used where no pixel measurement is
	// available, e.g. plain-text input. Default: 11
	DefaultFontPt float64

	// EmptyPageText is the placeholder paragraph text emitted for a page
	// with no recognized words, so page counts survive into the output.
	EmptyPageText string
}

// DefaultConfig returns the engine's default thresholds.
func DefaultConfig() Config {
	return Config{
		WideGapRatio:       1.2,
		HeadingRatio:       1.5,
		HeadingMaxLength:   100,
		UppercaseMaxLength: 60,
		UppercaseMinCount:  3,
		UppercaseShare:     0.3,
		HeadingBeforeList:  false,
		BulletRunes: []rune{
			'•', '●', '◦', // Circles
			'○', '■', '▪', // Shapes
			'-', '–', '—', // Dashes
			'*', '·', // Asterisk, middle dot
			'►', '▶', '→', '➤', '‣', // Arrows and triangle bullets
		},
		IndentPixelsPerInch: 200,
		MaxIndentInches:     1.5,
		SpaceGapRatio:       0.8,
		SpaceDivisor:        5,
		MinSpacePt:          3,
		MaxSpacePt:          12,
		DPI:                 300,
		MinFontPt:           9,
		MaxFontPt:           28,
		BodyMinPt:           10,
		BodyMaxPt:           14,
		HeadingBoostPt:      2,
		HeadingMinPt:        12,
		HeadingMaxPt:        18,
		FontName:            "Arial",
		DefaultFontPt:       11,
		EmptyPageText:       "(no text recognized)",
	}
}
