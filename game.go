package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"hexmap/config"
	"hexmap/model"
	"hexmap/surface/ebitensurface"
	"hexmap/view"
)

// Game implements ebiten.Game interface.
type Game struct {
	world   model.Map
	surface *ebitensurface.Image
	view    *view.View
	logger  *log.Logger

	// set once a frame failed, so a broken map is reported a single time
	drawFailed bool
}

// NewGame creates a game drawing world with the given layout
func NewGame(world model.Map, layout config.Layout, logger *log.Logger) (*Game, error) {
	font, err := ebitensurface.LoadFontSource()
	if err != nil {
		return nil, err
	}

	dst := ebitensurface.NewImage(nil, font)
	v, err := view.New(layout, dst, logger)
	if err != nil {
		return nil, err
	}
	// frames skip these silently
	v.ReportUnsupported(world)

	return &Game{
		world:   world,
		surface: dst,
		view:    v,
		logger:  logger,
	}, nil
}

// Update updates the game state. The map is static, nothing to do.
func (g *Game) Update() error {
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)

	if err := g.view.DrawMap(g.world); err != nil && !g.drawFailed {
		g.drawFailed = true
		g.logger.Error("failed to draw map", "error", err)
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// The lattice grows with the window
	return outsideWidth, outsideHeight
}
