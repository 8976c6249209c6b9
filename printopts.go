package printtopdf

// PrintOptions holds the print-to-PDF parameters this tool controls.
// A nil field is left unset so the browser applies its own default.
// Margins, header/footer templates and page ranges are never set.
type PrintOptions struct {
	Landscape         *bool
	PrintBackground   *bool
	Scale             *float64
	PaperWidthInches  *float64
	PaperHeightInches *float64
	PreferCSSPageSize *bool
}

// Preset dimensions in inches.
const (
	legalPaperWidth      = 8.5
	legalPaperHeight     = 11.0
	slideshowPaperWidth  = 16.0
	slideshowPaperHeight = 9.0
	defaultScale         = 1.0
)

// BuildPrintOptions returns the preset for layout with scale replacing the
// preset scale when non-nil. The result depends on nothing else.
func BuildPrintOptions(layout PageLayout, scale *float64) PrintOptions {
	var opts PrintOptions
	switch layout {
	case Slideshow:
		opts = slideshowPreset()
	default:
		opts = legalPreset()
	}

	if scale != nil {
		opts.Scale = floatPtr(*scale)
	}
	return opts
}

func legalPreset() PrintOptions {
	return PrintOptions{
		PrintBackground:   boolPtr(true),
		Scale:             floatPtr(defaultScale),
		PaperWidthInches:  floatPtr(legalPaperWidth),
		PaperHeightInches: floatPtr(legalPaperHeight),
		PreferCSSPageSize: boolPtr(true),
	}
}

func slideshowPreset() PrintOptions {
	opts := legalPreset()
	opts.Landscape = boolPtr(true)
	opts.PaperWidthInches = floatPtr(slideshowPaperWidth)
	opts.PaperHeightInches = floatPtr(slideshowPaperHeight)
	return opts
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

// deref helpers used by the backends.
func boolValue(p *bool) bool {
	return p != nil && *p
}
