package ocr

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultLanguages is the language hint used when the caller does not supply
// one. "auto" covers the Latin and Cyrillic scripts this system is most
// often fed.
const DefaultLanguages = "auto"

// DefaultDPI is the resolution hint passed to the OCR engine.
const DefaultDPI = 300

// autoLanguages is what the "auto" hint expands to.
const autoLanguages = "eng+rus+uzb+uzb_cyrl"

// isoAliases maps two-letter language tags to Tesseract trained-data codes.
// Anything not listed here passes through unchanged, since Tesseract codes
// are already three-letter (plus script suffixes like uzb_cyrl).
var isoAliases = map[string]string{
	"en": "eng",
	"ru": "rus",
	"uz": "uzb",
	"uk": "ukr",
	"kk": "kaz",
	"de": "deu",
	"fr": "fra",
	"es": "spa",
	"it": "ita",
	"tr": "tur",
}

// ResolveLanguages turns a caller-supplied language hint into a "+"-joined
// list of Tesseract trained-data codes. The hint may be empty or "auto"
// (expanding to eng+rus+uzb+uzb_cyrl), a Tesseract code, a BCP-47-ish tag
// such as "en" or "en-US", or a "+" separated combination of those.
// Unrecognizable parts are dropped; an all-invalid hint falls back to the
// auto set.
func ResolveLanguages(hint string) string {
	hint = strings.TrimSpace(strings.ToLower(hint))
	if hint == "" || hint == "auto" {
		return autoLanguages
	}

	var resolved []string
	for _, part := range strings.Split(hint, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if code := resolveTag(part); code != "" {
			resolved = append(resolved, code)
		}
	}

	if len(resolved) == 0 {
		return autoLanguages
	}
	return strings.Join(resolved, "+")
}

// resolveTag resolves a single language tag to a Tesseract code, or ""
// when the tag is unusable.
func resolveTag(tag string) string {
	// Tesseract-style codes (three letters, optionally a script suffix)
	// pass through as-is.
	if len(tag) >= 3 && !strings.Contains(tag, "-") {
		return tag
	}

	if alias, ok := isoAliases[tag]; ok {
		return alias
	}

	// Regional tags like "en-US" reduce to their base language first.
	parsed, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	base, conf := parsed.Base()
	if conf == language.No {
		return ""
	}
	if alias, ok := isoAliases[base.String()]; ok {
		return alias
	}
	return ""
}

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText cleans up raw OCR plain-text output: CRLF becomes LF, runs
// of spaces and tabs collapse to one space, more than two consecutive
// newlines collapse to two, and the result is trimmed.
func NormalizeText(text string) string {
	t := strings.ReplaceAll(text, "\r\n", "\n")
	t = strings.ReplaceAll(t, "\r", "\n")
	t = spaceRuns.ReplaceAllString(t, " ")
	t = newlineRuns.ReplaceAllString(t, "\n\n")
	return strings.TrimSpace(t)
}
