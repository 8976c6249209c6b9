package printtopdf

import (
	"fmt"

	"github.com/joshuaclayton/print-to-pdf/internal/fileutil"
)

// ConversionRequest is a resolved unit of work: which page to load, how to
// print it and where to write the result. It is immutable once built.
type ConversionRequest struct {
	fileURL    string
	sourcePath string
	options    PrintOptions
	outputPath string
}

// NewConversionRequest resolves htmlPath against the working directory and
// returns a request for it. Missing or unreadable paths wrap ErrPathResolution.
// Nothing is launched here.
func NewConversionRequest(htmlPath, outputPath string, opts PrintOptions) (ConversionRequest, error) {
	abs, fileURL, err := fileutil.ResolveFileURL(htmlPath)
	if err != nil {
		return ConversionRequest{}, fmt.Errorf("%w: %s: %v", ErrPathResolution, htmlPath, err)
	}
	if outputPath == "" {
		return ConversionRequest{}, fmt.Errorf("%w: %v", ErrOutputWrite, fileutil.ErrEmptyPath)
	}

	return ConversionRequest{
		fileURL:    fileURL,
		sourcePath: abs,
		options:    copyOptions(opts),
		outputPath: outputPath,
	}, nil
}

// FileURL returns the file:// URL the browser navigates to.
func (r ConversionRequest) FileURL() string { return r.fileURL }

// SourcePath returns the canonical absolute path of the HTML input.
func (r ConversionRequest) SourcePath() string { return r.sourcePath }

// Options returns a copy of the print options.
func (r ConversionRequest) Options() PrintOptions { return copyOptions(r.options) }

// OutputPath returns where the PDF is written.
func (r ConversionRequest) OutputPath() string { return r.outputPath }

// copyOptions deep-copies the optional fields so callers cannot mutate a
// request through shared pointers.
func copyOptions(o PrintOptions) PrintOptions {
	var c PrintOptions
	if o.Landscape != nil {
		c.Landscape = boolPtr(*o.Landscape)
	}
	if o.PrintBackground != nil {
		c.PrintBackground = boolPtr(*o.PrintBackground)
	}
	if o.Scale != nil {
		c.Scale = floatPtr(*o.Scale)
	}
	if o.PaperWidthInches != nil {
		c.PaperWidthInches = floatPtr(*o.PaperWidthInches)
	}
	if o.PaperHeightInches != nil {
		c.PaperHeightInches = floatPtr(*o.PaperHeightInches)
	}
	if o.PreferCSSPageSize != nil {
		c.PreferCSSPageSize = boolPtr(*o.PreferCSSPageSize)
	}
	return c
}
