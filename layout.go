package printtopdf

import (
	"fmt"
	"strings"
)

// PageLayout selects one of the fixed print presets.
type PageLayout int

// Supported layouts.
const (
	Legal PageLayout = iota
	Slideshow
)

// Layout names as accepted on the command line and in config files.
const (
	LayoutNameLegal     = "legal"
	LayoutNameSlideshow = "slideshow"
)

// DefaultLayout is used when no layout is given.
const DefaultLayout = Legal

// LayoutNames lists the accepted layout names in display order.
func LayoutNames() []string {
	return []string{LayoutNameLegal, LayoutNameSlideshow}
}

// ParseLayout maps a layout name to a PageLayout (case-insensitive).
// Anything else, including "" and padded names, wraps ErrInvalidLayout.
func ParseLayout(s string) (PageLayout, error) {
	switch strings.ToLower(s) {
	case LayoutNameLegal:
		return Legal, nil
	case LayoutNameSlideshow:
		return Slideshow, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be %s)", ErrInvalidLayout, s, strings.Join(LayoutNames(), " or "))
	}
}

// String returns the canonical lowercase name.
func (l PageLayout) String() string {
	switch l {
	case Legal:
		return LayoutNameLegal
	case Slideshow:
		return LayoutNameSlideshow
	default:
		return fmt.Sprintf("PageLayout(%d)", int(l))
	}
}

// Valid reports whether l is one of the defined layouts.
func (l PageLayout) Valid() bool {
	return l == Legal || l == Slideshow
}
