package view

import (
	"fmt"
	"math"

	"hexmap/model"
)

var sqrt3 = math.Sqrt(3)

// Point is a position on the drawing surface in pixels
type Point struct {
	X, Y float64
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Corners of a flat-top hex with side 1, starting top-left and going clockwise.
var unitCorners = [model.EdgeCount]Point{
	{X: -0.5, Y: -sqrt3 / 2},
	{X: +0.5, Y: -sqrt3 / 2},
	{X: +1, Y: 0},
	{X: +0.5, Y: +sqrt3 / 2},
	{X: -0.5, Y: +sqrt3 / 2},
	{X: -1, Y: 0},
}

// Midpoints of the edges of a flat-top hex with side 1. Edge n joins
// corner n and corner n+1, so edge 0 is the top edge.
var unitEdgeCenters = [model.EdgeCount]Point{
	{X: 0, Y: -sqrt3 / 2},
	{X: +0.75, Y: -sqrt3 / 4},
	{X: +0.75, Y: +sqrt3 / 4},
	{X: 0, Y: +sqrt3 / 2},
	{X: -0.75, Y: +sqrt3 / 4},
	{X: -0.75, Y: -sqrt3 / 4},
}

// Center returns the pixel center of the hex at (col, row) for the given side.
// Columns are 1.5 sides apart; odd columns drop half a hex height.
func Center(side float64, col, row int) Point {
	x := 1.5 * side * float64(col)
	y := sqrt3 * side * float64(row)
	if (model.Coord{Col: col, Row: row}).IsOddColumn() {
		y += sqrt3 / 2 * side
	}
	return Point{X: x, Y: y}
}

// Corner returns corner n (0-5) of the hex at (col, row). It panics when n is out of range.
func Corner(side float64, col, row, n int) Point {
	mustIndex("corner", n)
	return Center(side, col, row).Add(unitCorners[n].Scale(side))
}

// EdgeCenter returns the midpoint of edge n (0-5) of the hex at (col, row). It panics when n is out of range.
func EdgeCenter(side float64, col, row, n int) Point {
	mustIndex("edge", n)
	return Center(side, col, row).Add(unitEdgeCenters[n].Scale(side))
}

// Coverage returns how many columns and rows of hexes it takes to tile a
// width x height area, one extra each way so the borders have no gaps.
// A non-positive side covers nothing.
func Coverage(side, width, height float64) (cols, rows int) {
	if !(side > 0) {
		return 0, 0
	}
	cols = int(math.Ceil(width/(1.5*side) + 1))
	rows = int(math.Ceil(height/(sqrt3*side) + 1))
	return cols, rows
}

func mustIndex(what string, n int) {
	if n < 0 || n >= model.EdgeCount {
		panic(fmt.Sprintf("view: %s index %d out of range [0,%d]", what, n, model.EdgeCount-1))
	}
}
