package config

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Default layout parameters
const (
	// Hex side length in pixels; every other measurement derives from it
	DefaultHexSide = 90

	DefaultLineWidth       = 10
	DefaultFontSize        = 20
	DefaultLabelLineHeight = 20
)

// ErrInvalidLayout is returned by Layout.Validate.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout holds the geometry and palette the map view draws with.
// Grid or Island may be nil to skip that stroke/fill.
type Layout struct {
	HexSide         float64
	LineWidth       float64
	FontSize        float64
	LabelLineHeight float64

	Background color.Color
	Grid       color.Color
	Island     color.Color
	Beach      color.Color
	Text       color.Color
}

// Default returns the standard layout: blue sea, green islands, yellow beaches
func Default() Layout {
	return Layout{
		HexSide:         DefaultHexSide,
		LineWidth:       DefaultLineWidth,
		FontSize:        DefaultFontSize,
		LabelLineHeight: DefaultLabelLineHeight,

		Background: colornames.Royalblue,
		Grid:       colornames.Dodgerblue,
		Island:     colornames.Green,
		Beach:      colornames.Yellow,
		Text:       colornames.White,
	}
}

// WithHexSide returns a copy of the layout using a different hex side
func (l Layout) WithHexSide(side float64) Layout {
	l.HexSide = side
	return l
}

// Validate checks that the layout can produce a drawable grid
func (l Layout) Validate() error {
	if !(l.HexSide > 0) {
		return fmt.Errorf("%w: hex side must be positive, got %g", ErrInvalidLayout, l.HexSide)
	}
	if l.LineWidth < 0 {
		return fmt.Errorf("%w: line width must not be negative, got %g", ErrInvalidLayout, l.LineWidth)
	}
	if l.FontSize <= 0 {
		return fmt.Errorf("%w: font size must be positive, got %g", ErrInvalidLayout, l.FontSize)
	}
	if l.Background == nil || l.Beach == nil || l.Text == nil {
		return fmt.Errorf("%w: background, beach and text colors are required", ErrInvalidLayout)
	}
	return nil
}
