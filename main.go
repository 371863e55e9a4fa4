package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"hexmap/config"
	"hexmap/data"
	"hexmap/generation"
	"hexmap/model"
)

func main() {
	var (
		mapFile    = flag.String("map", "", "map file to draw (.json, .yaml); a random archipelago is generated when empty")
		seed       = flag.Int64("seed", 0, "seed for the generated archipelago (0 = random)")
		cols       = flag.Int("cols", generation.DefaultGenConfig().Cols, "columns of the generated archipelago")
		rows       = flag.Int("rows", generation.DefaultGenConfig().Rows, "rows of the generated archipelago")
		side       = flag.Float64("side", config.DefaultHexSide, "hex side in pixels")
		save       = flag.String("save", "", "write the drawn map to this file (.json, .yaml)")
		fullscreen = flag.Bool("fullscreen", false, "start in fullscreen mode")
		debug      = flag.Bool("debug", false, "log every frame")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "hexmap",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	layout := config.Default().WithHexSide(*side)
	if err := layout.Validate(); err != nil {
		logger.Fatal("invalid layout", "error", err)
	}

	world, err := loadWorld(*mapFile, *seed, *cols, *rows)
	if err != nil {
		logger.Fatal("failed to load map", "error", err)
	}
	logger.Info("map ready", "map", world)

	if *save != "" {
		if err := data.Save(*save, world); err != nil {
			logger.Fatal("failed to save map", "path", *save, "error", err)
		}
		logger.Info("map saved", "path", *save)
	}

	game, err := NewGame(world, layout, logger)
	if err != nil {
		logger.Fatal("failed to start", "error", err)
	}

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
}

// loadWorld reads the map file, or generates an archipelago when there is none
func loadWorld(path string, seed int64, cols, rows int) (model.Map, error) {
	if path != "" {
		return data.Load(path)
	}

	cfg := generation.DefaultGenConfig()
	cfg.Seed = seed
	cfg.Cols = cols
	cfg.Rows = rows
	return generation.Generate(cfg), nil
}
