// Package view draws a hex map: background, grid lattice, islands with
// their labels, and beaches along island edges.
package view

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/charmbracelet/log"

	"hexmap/config"
	"hexmap/model"
	"hexmap/surface"
)

// ErrBeachNotSupported is returned for beaches the view has no shape for (three exits).
var ErrBeachNotSupported = errors.New("beach shape not supported")

// Surface is the drawing sink the view emits primitives to.
type Surface interface {
	Size() (width, height float64)
	FillRect(x, y, width, height float64, clr color.Color)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	Fill(clr color.Color)
	Stroke(clr color.Color, width float64)

	FillText(text string, x, y float64, style surface.TextStyle)
}

// View renders a map onto a surface. It keeps no state between frames.
type View struct {
	layout config.Layout
	dst    Surface
	logger *log.Logger
}

// New creates a view drawing onto dst with the given layout. A nil logger uses the default one.
func New(layout config.Layout, dst Surface, logger *log.Logger) (*View, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create view: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &View{
		layout: layout,
		dst:    dst,
		logger: logger,
	}, nil
}

// Layout returns the layout the view draws with
func (v *View) Layout() config.Layout {
	return v.layout
}

// HexCenter returns the pixel center of the hex at (col, row)
func (v *View) HexCenter(col, row int) Point {
	return Center(v.layout.HexSide, col, row)
}

// HexPoint returns corner pointNo (0-5) of the hex at (col, row). It panics when pointNo is out of range.
func (v *View) HexPoint(col, row, pointNo int) Point {
	return Corner(v.layout.HexSide, col, row, pointNo)
}

// EdgeCenter returns the midpoint of edge (0-5) of the hex at (col, row). It panics when edge is out of range.
func (v *View) EdgeCenter(col, row, edge int) Point {
	return EdgeCenter(v.layout.HexSide, col, row, edge)
}

// GridSize returns the number of columns and rows the background lattice needs to cover width x height
func (v *View) GridSize(width, height float64) (cols, rows int) {
	return Coverage(v.layout.HexSide, width, height)
}

// DrawMap draws one full frame: background, islands in map order, then the
// unfilled grid lattice on top. The map is validated before anything is drawn.
func (v *View) DrawMap(m model.Map) error {
	if err := m.Validate(); err != nil {
		return err
	}
	v.logger.Debug("drawing map", "map", m)

	width, height := v.dst.Size()
	v.dst.FillRect(0, 0, width, height, v.layout.Background)

	for _, island := range m.Islands {
		v.logger.Debug("drawing island", "name", island.Name, "col", island.Col, "row", island.Row)
		if err := v.DrawIsland(island); err != nil {
			return err
		}
	}

	cols, rows := v.GridSize(width, height)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			v.DrawHex(col, row, v.layout.HexSide, v.layout.Grid, nil)
		}
	}
	return nil
}

// ReportUnsupported warns about every beach of m the view will skip and
// returns how many there are. DrawMap only logs them at debug level, so
// callers drawing every frame report them once up front.
func (v *View) ReportUnsupported(m model.Map) int {
	n := 0
	for _, island := range m.Islands {
		for i, beach := range island.Beaches {
			if beach.Validate() != nil || len(beach.Exits) < model.MaxExits {
				continue
			}
			v.logger.Warn("beach not drawn", "island", island.Name, "beach", i, "exits", beach.Exits)
			n++
		}
	}
	return n
}

// DrawIsland draws the island hex, its label and its beaches. Beaches the
// view cannot draw are skipped.
func (v *View) DrawIsland(island model.Island) error {
	if err := island.Validate(); err != nil {
		return err
	}

	v.DrawHex(island.Col, island.Row, v.layout.HexSide, v.layout.Grid, v.layout.Island)
	v.WriteIslandLabel(island.Name, island.Value, island.Col, island.Row)

	for i, beach := range island.Beaches {
		err := v.DrawBeach(island.Col, island.Row, beach)
		if errors.Is(err, ErrBeachNotSupported) {
			v.logger.Debug("beach skipped", "island", island.Name, "beach", i, "exits", beach.Exits)
			continue
		}
		if err != nil {
			return fmt.Errorf("island %q beach %d: %w", island.Name, i, err)
		}
	}
	return nil
}

// WriteIslandLabel writes name centered on the hex and value one line below
func (v *View) WriteIslandLabel(name string, value int, col, row int) {
	center := v.HexCenter(col, row)
	style := surface.TextStyle{
		Size:  v.layout.FontSize,
		Align: surface.AlignCenter,
		Color: v.layout.Text,
	}
	v.dst.FillText(name, center.X, center.Y, style)
	v.dst.FillText(strconv.Itoa(value), center.X, center.Y+v.layout.LabelLineHeight, style)
}

// DrawBeach draws a beach of the hex at (col, row).
//
// A single exit is a half disc of radius side/3 on the edge midpoint. Two
// exits are a 120 degree wedge of radius 2*side/3 around the corner the two
// edges share. Three exits return ErrBeachNotSupported and draw nothing.
func (v *View) DrawBeach(col, row int, beach model.Beach) error {
	if err := beach.Validate(); err != nil {
		return err
	}

	side := v.layout.HexSide
	switch len(beach.Exits) {
	case 1:
		exit := beach.Exits[0]
		mid := v.EdgeCenter(col, row, exit)
		start := float64(exit) * math.Pi / 3

		v.dst.BeginPath()
		v.dst.Arc(mid.X, mid.Y, side/3, start, start+math.Pi)
		v.dst.Fill(v.layout.Beach)
	case 2:
		corner := beach.Exits[0] + 1
		p := v.HexPoint(col, row, corner)
		start := float64(corner) * math.Pi / 3

		v.dst.BeginPath()
		v.dst.MoveTo(p.X, p.Y)
		v.dst.Arc(p.X, p.Y, side*2/3, start, start+2*math.Pi/3)
		v.dst.Fill(v.layout.Beach)
	default:
		// TODO: pick a shape for three-exit beaches, e.g. a rounded cap over the middle edge.
		return fmt.Errorf("exits %v at (%d,%d): %w", beach.Exits, col, row, ErrBeachNotSupported)
	}
	return nil
}

// DrawHex outlines a hex with the given side around the center of cell
// (col, row). The hex is filled only when fill is set and stroked only when
// stroke is set.
func (v *View) DrawHex(col, row int, side float64, stroke, fill color.Color) {
	center := v.HexCenter(col, row)
	var points [model.EdgeCount]Point
	for n := range points {
		points[n] = center.Add(unitCorners[n].Scale(side))
	}

	v.dst.BeginPath()
	v.dst.MoveTo(points[5].X, points[5].Y)
	for _, p := range points {
		v.dst.LineTo(p.X, p.Y)
	}
	v.dst.LineTo(points[0].X, points[0].Y)

	if fill != nil {
		v.dst.Fill(fill)
	}
	if stroke != nil {
		v.dst.Stroke(stroke, v.layout.LineWidth)
	}
}
