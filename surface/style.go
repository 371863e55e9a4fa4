// Package surface holds the types shared by the map's drawing surfaces and
// a recorder that keeps every call for inspection. The ebiten backend lives
// in surface/ebitensurface.
//
// Surfaces follow the 2D canvas model: a path is built with BeginPath, MoveTo,
// LineTo and Arc, then filled and/or stroked. Angles are in radians and
// arcs run clockwise on screen (y grows downwards).
package surface

import "image/color"

// Align is the horizontal anchoring of a text run relative to its x position
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the canvas name of the alignment
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "unknown"
}

// TextStyle describes how FillText renders a string. Y is the baseline.
type TextStyle struct {
	Size  float64
	Align Align
	Color color.Color
}
