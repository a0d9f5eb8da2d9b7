package layout

// FontSizePt maps a pixel line height to a font point size under the
// engine's DPI calibration: pt = height / DPI * 72, clamped to the
// configured readable range. One calibration is used for the whole
// document; mixing strategies across lines produces visually inconsistent
// sizing.
func (e *Engine) FontSizePt(heightPx float64) float64 {
	pt := heightPx / e.config.DPI * 72
	return clamp(pt, e.config.MinFontPt, e.config.MaxFontPt)
}

// bodySizePt returns the run size for body text derived from a pixel height.
func (e *Engine) bodySizePt(heightPx float64) float64 {
	return clamp(e.FontSizePt(heightPx), e.config.BodyMinPt, e.config.BodyMaxPt)
}

// headingSizePt returns the run size for heading text derived from a pixel
// height: the raw mapping plus a boost, clamped to the heading range.
func (e *Engine) headingSizePt(heightPx float64) float64 {
	return clamp(e.FontSizePt(heightPx)+e.config.HeadingBoostPt, e.config.HeadingMinPt, e.config.HeadingMaxPt)
}

// clamp limits v to the range [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
