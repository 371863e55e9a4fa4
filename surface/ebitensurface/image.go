// Package ebitensurface draws the map onto an ebiten image.
package ebitensurface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"hexmap/surface"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidSource returns the 1x1 white source image triangles are filled from
func solidSource() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// LoadFontSource parses the bundled Go Regular font used for map labels
func LoadFontSource() (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	return source, nil
}

// Image draws onto an ebiten image. The target can change between frames,
// the current path and cached font faces are kept.
type Image struct {
	dst   *ebiten.Image
	path  vector.Path
	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

// NewImage creates a surface drawing onto dst (which may be nil until the first frame)
func NewImage(dst *ebiten.Image, font *text.GoTextFaceSource) *Image {
	return &Image{
		dst:   dst,
		font:  font,
		faces: make(map[float64]*text.GoTextFace),
	}
}

// SetTarget switches the image subsequent calls draw onto
func (s *Image) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Image) Size() (width, height float64) {
	if s.dst == nil {
		return 0, 0
	}
	bounds := s.dst.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

func (s *Image) FillRect(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (s *Image) BeginPath() {
	s.path = vector.Path{}
}

func (s *Image) MoveTo(x, y float64) {
	s.path.MoveTo(float32(x), float32(y))
}

func (s *Image) LineTo(x, y float64) {
	s.path.LineTo(float32(x), float32(y))
}

func (s *Image) Arc(x, y, radius, startAngle, endAngle float64) {
	s.path.Arc(float32(x), float32(y), float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)
}

func (s *Image) Fill(clr color.Color) {
	vs, is := s.path.AppendVerticesAndIndicesForFilling(nil, nil)
	s.drawTriangles(vs, is, clr, ebiten.FillRuleNonZero)
}

func (s *Image) Stroke(clr color.Color, width float64) {
	if width <= 0 {
		return
	}
	vs, is := s.path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:      float32(width),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})
	s.drawTriangles(vs, is, clr, ebiten.FillRuleFillAll)
}

// drawTriangles paints the tessellated path in a single solid color
func (s *Image) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color, rule ebiten.FillRule) {
	if len(is) == 0 {
		return
	}

	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = rule
	op.AntiAlias = true
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.dst.DrawTriangles(vs, is, solidSource(), op)
}

func (s *Image) FillText(str string, x, y float64, style surface.TextStyle) {
	face := s.face(style.Size)

	op := &text.DrawOptions{}
	// text/v2 positions the top of the line box, y is the baseline
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(style.Color)
	op.PrimaryAlign = textAlign(style.Align)

	text.Draw(s.dst, str, face, op)
}

// face returns a cached face of the given size
func (s *Image) face(size float64) *text.GoTextFace {
	if face, ok := s.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: s.font,
		Size:   size,
	}
	s.faces[size] = face
	return face
}

func textAlign(a surface.Align) text.Align {
	switch a {
	case surface.AlignCenter:
		return text.AlignCenter
	case surface.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
