package view

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"hexmap/config"
	"hexmap/model"
	"hexmap/surface"
)

// ops per hex outline: BeginPath, MoveTo, seven LineTo
const hexPathOps = 9

func newTestView(t *testing.T) (*View, *surface.Recorder) {
	t.Helper()
	rec := surface.NewRecorder(640, 480)
	v, err := New(config.Default(), rec, log.New(io.Discard))
	require.NoError(t, err)
	return v, rec
}

func TestNewRejectsInvalidLayout(t *testing.T) {
	tests := []struct {
		name   string
		layout config.Layout
	}{
		{name: "zero side", layout: config.Default().WithHexSide(0)},
		{name: "negative side", layout: config.Default().WithHexSide(-90)},
		{name: "zero value", layout: config.Layout{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.layout, surface.NewRecorder(640, 480), nil)
			assert.ErrorIs(t, err, config.ErrInvalidLayout)
			assert.Nil(t, v)
		})
	}
}

func TestViewGeometryUsesLayoutSide(t *testing.T) {
	rec := surface.NewRecorder(100, 100)
	v, err := New(config.Default().WithHexSide(30), rec, nil)
	require.NoError(t, err)

	assert.Equal(t, Center(30, 3, 1), v.HexCenter(3, 1))
	assert.Equal(t, Corner(30, 3, 1, 4), v.HexPoint(3, 1, 4))
	assert.Equal(t, EdgeCenter(30, 3, 1, 2), v.EdgeCenter(3, 1, 2))
	assert.Panics(t, func() { v.HexPoint(0, 0, 6) })

	cols, rows := v.GridSize(100, 100)
	wantCols, wantRows := Coverage(30, 100, 100)
	assert.Equal(t, wantCols, cols)
	assert.Equal(t, wantRows, rows)
}

func TestDrawHexPath(t *testing.T) {
	v, rec := newTestView(t)

	v.DrawHex(2, 1, side, colornames.Dodgerblue, nil)

	require.Len(t, rec.Ops, hexPathOps+1)
	assert.Equal(t, surface.OpBeginPath, rec.Ops[0].Kind)

	move := rec.Ops[1]
	assert.Equal(t, surface.OpMoveTo, move.Kind)
	assertPointNear(t, v.HexPoint(2, 1, 5), Point{X: move.X, Y: move.Y})

	lines := rec.OfKind(surface.OpLineTo)
	require.Len(t, lines, 7)
	for n := 0; n < 6; n++ {
		assertPointNear(t, v.HexPoint(2, 1, n), Point{X: lines[n].X, Y: lines[n].Y}, "corner %d", n)
	}
	assertPointNear(t, v.HexPoint(2, 1, 0), Point{X: lines[6].X, Y: lines[6].Y}, "closing corner")

	stroke := rec.Ops[len(rec.Ops)-1]
	assert.Equal(t, surface.OpStroke, stroke.Kind)
	assert.Equal(t, colornames.Dodgerblue, stroke.Color)
	assert.Equal(t, 10.0, stroke.Width)
}

func TestDrawHexFillAndStroke(t *testing.T) {
	tests := []struct {
		name   string
		stroke bool
		fill   bool
		want   []surface.OpKind
	}{
		{name: "stroke only", stroke: true, want: []surface.OpKind{surface.OpStroke}},
		{name: "fill only", fill: true, want: []surface.OpKind{surface.OpFill}},
		{name: "fill then stroke", stroke: true, fill: true, want: []surface.OpKind{surface.OpFill, surface.OpStroke}},
		{name: "neither", want: []surface.OpKind{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rec := newTestView(t)

			var stroke, fill = v.layout.Grid, v.layout.Island
			if !tt.stroke {
				stroke = nil
			}
			if !tt.fill {
				fill = nil
			}
			v.DrawHex(0, 0, side, stroke, fill)

			assert.Equal(t, tt.want, rec.Kinds()[hexPathOps:])
		})
	}
}

func TestDrawHexSmallerSideKeepsCellCenter(t *testing.T) {
	v, rec := newTestView(t)

	v.DrawHex(1, 1, side/2, colornames.White, nil)

	center := v.HexCenter(1, 1)
	for _, op := range rec.OfKind(surface.OpLineTo) {
		assert.InDelta(t, side/2, math.Hypot(op.X-center.X, op.Y-center.Y), 1e-9)
	}
}

func TestDrawBeachSingleExit(t *testing.T) {
	for exit := 0; exit < 6; exit++ {
		v, rec := newTestView(t)

		require.NoError(t, v.DrawBeach(3, 2, model.Beach{Exits: []int{exit}}))

		require.Equal(t, []surface.OpKind{surface.OpBeginPath, surface.OpArc, surface.OpFill}, rec.Kinds())
		arc := rec.Ops[1]
		assertPointNear(t, v.EdgeCenter(3, 2, exit), Point{X: arc.X, Y: arc.Y}, "exit %d", exit)
		assert.InDelta(t, side/3, arc.Radius, 1e-9)
		assert.InDelta(t, float64(exit)*math.Pi/3, arc.Start, 1e-9)
		assert.InDelta(t, math.Pi+float64(exit)*math.Pi/3, arc.End, 1e-9)
		assert.Equal(t, colornames.Yellow, rec.Ops[2].Color)
	}
}

func TestDrawBeachTwoExits(t *testing.T) {
	for first := 0; first < 5; first++ {
		v, rec := newTestView(t)

		require.NoError(t, v.DrawBeach(1, 0, model.Beach{Exits: []int{first, first + 1}}))

		require.Equal(t,
			[]surface.OpKind{surface.OpBeginPath, surface.OpMoveTo, surface.OpArc, surface.OpFill},
			rec.Kinds())

		corner := v.HexPoint(1, 0, first+1)
		move, arc := rec.Ops[1], rec.Ops[2]
		assertPointNear(t, corner, Point{X: move.X, Y: move.Y})
		assertPointNear(t, corner, Point{X: arc.X, Y: arc.Y})
		assert.InDelta(t, 2*side/3, arc.Radius, 1e-9)
		assert.InDelta(t, float64(first+1)*math.Pi/3, arc.Start, 1e-9)
		assert.InDelta(t, float64(first+3)*math.Pi/3, arc.End, 1e-9)
		assert.Equal(t, colornames.Yellow, rec.Ops[3].Color)
	}
}

func TestDrawBeachThreeExitsDrawsNothing(t *testing.T) {
	v, rec := newTestView(t)

	err := v.DrawBeach(0, 0, model.Beach{Exits: []int{1, 2, 3}})

	assert.ErrorIs(t, err, ErrBeachNotSupported)
	assert.Empty(t, rec.Ops)
}

func TestDrawBeachRejectsInvalidExits(t *testing.T) {
	for _, exits := range [][]int{nil, {6}, {-1}, {0, 2}, {5, 0}, {0, 1, 2, 3}, {1, 2, 4}} {
		v, rec := newTestView(t)

		err := v.DrawBeach(0, 0, model.Beach{Exits: exits})

		assert.ErrorIs(t, err, model.ErrInvalidBeach, "exits %v", exits)
		assert.NotErrorIs(t, err, ErrBeachNotSupported, "exits %v", exits)
		assert.Empty(t, rec.Ops, "exits %v", exits)
	}
}

func TestWriteIslandLabel(t *testing.T) {
	v, rec := newTestView(t)

	v.WriteIslandLabel("Lemuria", -7, 1, 1)

	texts := rec.OfKind(surface.OpFillText)
	require.Len(t, texts, 2)
	center := v.HexCenter(1, 1)

	assert.Equal(t, "Lemuria", texts[0].Text)
	assertPointNear(t, center, Point{X: texts[0].X, Y: texts[0].Y})
	assert.Equal(t, "-7", texts[1].Text)
	assertPointNear(t, Point{X: center.X, Y: center.Y + 20}, Point{X: texts[1].X, Y: texts[1].Y})

	for _, text := range texts {
		assert.Equal(t, surface.TextStyle{Size: 20, Align: surface.AlignCenter, Color: colornames.White}, text.Style)
	}
}

func TestDrawIslandOrder(t *testing.T) {
	v, rec := newTestView(t)

	island := model.Island{
		Name: "Hy-Brasil", Value: 3, Col: 2, Row: 1,
		Beaches: []model.Beach{{Exits: []int{4}}, {Exits: []int{0, 1}}},
	}
	require.NoError(t, v.DrawIsland(island))

	kinds := rec.Kinds()
	assert.Equal(t, []surface.OpKind{surface.OpFill, surface.OpStroke}, kinds[hexPathOps:hexPathOps+2])
	assert.Equal(t, []surface.OpKind{surface.OpFillText, surface.OpFillText}, kinds[hexPathOps+2:hexPathOps+4])
	assert.Equal(t, []surface.OpKind{
		surface.OpBeginPath, surface.OpArc, surface.OpFill,
		surface.OpBeginPath, surface.OpMoveTo, surface.OpArc, surface.OpFill,
	}, kinds[hexPathOps+4:])

	fills := rec.OfKind(surface.OpFill)
	assert.Equal(t, colornames.Green, fills[0].Color)
}

func TestDrawIslandSkipsUnsupportedBeach(t *testing.T) {
	v, rec := newTestView(t)

	island := model.Island{
		Name: "Thule",
		Beaches: []model.Beach{
			{Exits: []int{0, 1, 2}},
			{Exits: []int{3}},
		},
	}
	require.NoError(t, v.DrawIsland(island))

	assert.Equal(t, 1, rec.Count(surface.OpArc), "the single-exit beach after the skipped one is still drawn")
}

func TestUnsupportedBeachWarnedOnce(t *testing.T) {
	var logs bytes.Buffer
	rec := surface.NewRecorder(640, 480)
	v, err := New(config.Default(), rec, log.New(&logs))
	require.NoError(t, err)

	m := model.Map{Islands: []model.Island{
		{Name: "Thule", Col: 1, Row: 1, Beaches: []model.Beach{{Exits: []int{0, 1, 2}}, {Exits: []int{3}}}},
		{Name: "Mu", Col: 3, Row: 0, Beaches: []model.Beach{{Exits: []int{4, 5}}}},
	}}

	assert.Equal(t, 1, v.ReportUnsupported(m))
	for frame := 0; frame < 60; frame++ {
		require.NoError(t, v.DrawMap(m))
	}

	assert.Equal(t, 1, strings.Count(logs.String(), "beach not drawn"))
	assert.Contains(t, logs.String(), "Thule")
	assert.NotContains(t, logs.String(), "beach skipped", "frames only log skipped beaches at debug level")
}

func TestReportUnsupported(t *testing.T) {
	tests := []struct {
		name    string
		beaches []model.Beach
		want    int
	}{
		{name: "no beaches", want: 0},
		{name: "drawable beaches", beaches: []model.Beach{{Exits: []int{0}}, {Exits: []int{2, 3}}}, want: 0},
		{name: "three exits", beaches: []model.Beach{{Exits: []int{1, 2, 3}}}, want: 1},
		{name: "two of three", beaches: []model.Beach{{Exits: []int{0, 1, 2}}, {Exits: []int{5}}, {Exits: []int{3, 4, 5}}}, want: 2},
		{name: "invalid beach is not counted", beaches: []model.Beach{{Exits: []int{1, 3, 5}}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rec := newTestView(t)

			got := v.ReportUnsupported(model.Map{Islands: []model.Island{{Name: "Avalon", Beaches: tt.beaches}}})

			assert.Equal(t, tt.want, got)
			assert.Empty(t, rec.Ops)
		})
	}
}

func TestDrawIslandInvalidDrawsNothing(t *testing.T) {
	v, rec := newTestView(t)

	err := v.DrawIsland(model.Island{Name: "Mu", Beaches: []model.Beach{{Exits: []int{2, 5}}}})

	assert.ErrorIs(t, err, model.ErrInvalidBeach)
	assert.Empty(t, rec.Ops)
}

func TestDrawMapAtlantis(t *testing.T) {
	v, rec := newTestView(t)

	m := model.Map{Islands: []model.Island{{
		Name: "Atlantis", Value: 42, Col: 0, Row: 0,
		Beaches: []model.Beach{{Exits: []int{0}}},
	}}}
	require.NoError(t, v.DrawMap(m))

	ops := rec.Ops
	require.NotEmpty(t, ops)

	// background
	assert.Equal(t, surface.Op{Kind: surface.OpFillRect, Width: 640, Height: 480, Color: colornames.Royalblue}, ops[0])

	// island hex, filled and stroked
	island := ops[1 : 1+hexPathOps+2]
	assert.Equal(t, surface.OpFill, island[hexPathOps].Kind)
	assert.Equal(t, colornames.Green, island[hexPathOps].Color)
	assert.Equal(t, surface.OpStroke, island[hexPathOps+1].Kind)

	// label
	label := ops[1+hexPathOps+2 : 1+hexPathOps+4]
	assert.Equal(t, surface.Op{Kind: surface.OpFillText, X: 0, Y: 0, Text: "Atlantis", Style: label[0].Style}, label[0])
	assert.Equal(t, surface.Op{Kind: surface.OpFillText, X: 0, Y: 20, Text: "42", Style: label[1].Style}, label[1])

	// beach
	beach := ops[1+hexPathOps+4 : 1+hexPathOps+7]
	assert.Equal(t, []surface.OpKind{surface.OpBeginPath, surface.OpArc, surface.OpFill}, []surface.OpKind{
		beach[0].Kind, beach[1].Kind, beach[2].Kind,
	})
	assert.InDelta(t, side/3, beach[1].Radius, 1e-9)

	// lattice: stroke-only hexes, column by column
	lattice := ops[1+hexPathOps+7:]
	cols, rows := v.GridSize(640, 480)
	require.Len(t, lattice, cols*rows*(hexPathOps+1))

	n := 0
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			hex := lattice[n*(hexPathOps+1) : (n+1)*(hexPathOps+1)]
			assertPointNear(t, v.HexPoint(col, row, 5), Point{X: hex[1].X, Y: hex[1].Y}, "hex (%d,%d)", col, row)
			assert.Equal(t, surface.OpStroke, hex[hexPathOps].Kind)
			n++
		}
	}

	assert.Equal(t, 2, rec.Count(surface.OpFill), "only the island and its beach are filled")
	assert.Equal(t, 1, rec.Count(surface.OpArc))
	assert.Equal(t, 1+cols*rows, rec.Count(surface.OpStroke))
}

func TestDrawMapKeepsIslandOrder(t *testing.T) {
	v, rec := newTestView(t)

	m := model.Map{Islands: []model.Island{
		{Name: "Second", Col: 3, Row: 0},
		{Name: "First", Col: 0, Row: 0},
	}}
	require.NoError(t, v.DrawMap(m))

	texts := rec.OfKind(surface.OpFillText)
	require.Len(t, texts, 4)
	assert.Equal(t, "Second", texts[0].Text)
	assert.Equal(t, "First", texts[2].Text)
}

func TestDrawMapEmpty(t *testing.T) {
	v, rec := newTestView(t)

	require.NoError(t, v.DrawMap(model.Map{}))

	cols, rows := v.GridSize(640, 480)
	assert.Equal(t, surface.OpFillRect, rec.Ops[0].Kind)
	assert.Equal(t, 0, rec.Count(surface.OpFill))
	assert.Equal(t, cols*rows, rec.Count(surface.OpStroke))
}

func TestDrawMapInvalidDrawsNothing(t *testing.T) {
	v, rec := newTestView(t)

	m := model.Map{Islands: []model.Island{
		{Name: "Fine", Beaches: []model.Beach{{Exits: []int{1}}}},
		{Name: "Broken", Beaches: []model.Beach{{Exits: []int{}}}},
	}}
	err := v.DrawMap(m)

	require.ErrorIs(t, err, model.ErrInvalidBeach)
	assert.Contains(t, err.Error(), "Broken")
	assert.Empty(t, rec.Ops)
}

func TestDrawMapWithoutGridStroke(t *testing.T) {
	layout := config.Default()
	layout.Grid = nil
	rec := surface.NewRecorder(300, 300)
	v, err := New(layout, rec, log.New(io.Discard))
	require.NoError(t, err)

	require.NoError(t, v.DrawMap(model.Map{Islands: []model.Island{{Name: "Quiet"}}}))

	assert.Equal(t, 0, rec.Count(surface.OpStroke))
	assert.Equal(t, 1, rec.Count(surface.OpFill))
}
