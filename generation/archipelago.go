// Package generation builds random archipelagos from layered simplex noise.
package generation

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"hexmap/model"
)

// GenConfig holds archipelago generation parameters.
type GenConfig struct {
	Cols, Rows int     // Grid size in hexes
	Seed       int64   // Random seed (0 = random)
	LandLevel  float64 // Noise threshold (0.0–1.0) above which a hex is an island
	Frequency  float64 // Noise frequency per hex; higher gives smaller, scattered islands
	Octaves    int
	MaxValue   int // Island values are drawn from 1..MaxValue
}

// DefaultGenConfig returns a configuration that fills a 1280x720 window at the default hex side.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Cols:      10,
		Rows:      5,
		Seed:      0,
		LandLevel: 0.58,
		Frequency: 0.45,
		Octaves:   3,
		MaxValue:  100,
	}
}

// offsets across each edge, edge 0 at the top going clockwise
var (
	evenColumnNeighbors = [model.EdgeCount]model.Coord{
		{Col: 0, Row: -1}, {Col: 1, Row: -1}, {Col: 1, Row: 0},
		{Col: 0, Row: 1}, {Col: -1, Row: 0}, {Col: -1, Row: -1},
	}
	oddColumnNeighbors = [model.EdgeCount]model.Coord{
		{Col: 0, Row: -1}, {Col: 1, Row: 0}, {Col: 1, Row: 1},
		{Col: 0, Row: 1}, {Col: -1, Row: 1}, {Col: -1, Row: 0},
	}
)

// Neighbor returns the cell on the other side of the given edge (0-5) of c.
func Neighbor(c model.Coord, edge int) model.Coord {
	offsets := &evenColumnNeighbors
	if c.IsOddColumn() {
		offsets = &oddColumnNeighbors
	}
	d := offsets[edge]
	return model.Coord{Col: c.Col + d.Col, Row: c.Row + d.Row}
}

// Generate creates an archipelago. The same non-zero seed always gives the same map.
func Generate(cfg GenConfig) model.Map {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if cfg.Octaves < 1 {
		cfg.Octaves = 1
	}
	if cfg.MaxValue < 1 {
		cfg.MaxValue = 1
	}

	noise := opensimplex.NewNormalized(seed)
	rng := rand.New(rand.NewSource(seed))

	land := make(map[model.Coord]bool)
	for col := 0; col < cfg.Cols; col++ {
		for row := 0; row < cfg.Rows; row++ {
			c := model.Coord{Col: col, Row: row}
			// sample at the hex center in side units so the noise is not stretched
			x, y := 1.5*float64(col), math.Sqrt(3)*float64(row)
			if c.IsOddColumn() {
				y += math.Sqrt(3) / 2
			}
			if octaveNoise(noise, x, y, cfg.Octaves, cfg.Frequency, 0.5) >= cfg.LandLevel {
				land[c] = true
			}
		}
	}

	names := newNamer(rng)
	var m model.Map
	for col := 0; col < cfg.Cols; col++ {
		for row := 0; row < cfg.Rows; row++ {
			c := model.Coord{Col: col, Row: row}
			if !land[c] {
				continue
			}
			m.Islands = append(m.Islands, model.Island{
				Name:    names.next(),
				Value:   rng.Intn(cfg.MaxValue) + 1,
				Col:     col,
				Row:     row,
				Beaches: coastline(land, c),
			})
		}
	}
	return m
}

// coastline groups the water-facing edges of c into beaches. Contiguous
// runs are split into beaches of at most two exits; runs never wrap from
// edge 5 to edge 0.
func coastline(land map[model.Coord]bool, c model.Coord) []model.Beach {
	var beaches []model.Beach
	var run []int

	flush := func() {
		for len(run) > 0 {
			n := min(len(run), 2)
			beaches = append(beaches, model.Beach{Exits: append([]int(nil), run[:n]...)})
			run = run[n:]
		}
	}

	for edge := 0; edge < model.EdgeCount; edge++ {
		if land[Neighbor(c, edge)] {
			flush()
			continue
		}
		run = append(run, edge)
	}
	flush()

	return beaches
}

// octaveNoise sums several octaves of normalized noise, result in [0,1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxAmplitude := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxAmplitude
}
