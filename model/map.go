// Package model holds the map the view draws: islands on a hex grid and
// the beaches along their edges.
package model

import (
	"errors"
	"fmt"
)

const (
	// EdgeCount is the number of edges (and corners) of a hex
	EdgeCount = 6

	// MaxExits is the most edges a single beach may span
	MaxExits = 3
)

// ErrInvalidBeach is wrapped by every beach validation failure.
var ErrInvalidBeach = errors.New("invalid beach")

// Coord addresses a hex cell by column and row. Odd columns sit half a
// hex lower than even ones.
type Coord struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

// IsOddColumn reports whether the cell is in a column shifted down by half a hex
func (c Coord) IsOddColumn() bool {
	return c.Col%2 != 0
}

// Map is the list of islands to draw, in drawing order
type Map struct {
	Islands []Island `json:"tiles" yaml:"tiles"`
}

// Island is a land hex with a two-line label
type Island struct {
	Name    string  `json:"name" yaml:"name"`
	Value   int     `json:"value" yaml:"value"`
	Col     int     `json:"col" yaml:"col"`
	Row     int     `json:"row" yaml:"row"`
	Beaches []Beach `json:"beaches" yaml:"beaches"`
}

// Beach is a run of 1 to 3 contiguous hex edges, e.g. [2] or [3 4]
type Beach struct {
	Exits []int `json:"exits" yaml:"exits"`
}

// Coord returns the grid position of the island
func (i Island) Coord() Coord {
	return Coord{Col: i.Col, Row: i.Row}
}

// Validate checks the exit count, the edge range and contiguity
func (b Beach) Validate() error {
	n := len(b.Exits)
	if n < 1 || n > MaxExits {
		return fmt.Errorf("%w: %d exits, want 1 to %d", ErrInvalidBeach, n, MaxExits)
	}
	for i, exit := range b.Exits {
		if exit < 0 || exit >= EdgeCount {
			return fmt.Errorf("%w: exit %d outside [0,%d]", ErrInvalidBeach, exit, EdgeCount-1)
		}
		if i > 0 && exit != b.Exits[i-1]+1 {
			return fmt.Errorf("%w: exits %v are not contiguous", ErrInvalidBeach, b.Exits)
		}
	}
	return nil
}

// Validate checks every beach of the island
func (i Island) Validate() error {
	for n, beach := range i.Beaches {
		if err := beach.Validate(); err != nil {
			return fmt.Errorf("island %q beach %d: %w", i.Name, n, err)
		}
	}
	return nil
}

// Validate checks every island of the map
func (m Map) Validate() error {
	for _, island := range m.Islands {
		if err := island.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String returns a summary of the map.
func (m Map) String() string {
	beaches := 0
	for _, island := range m.Islands {
		beaches += len(island.Beaches)
	}
	return fmt.Sprintf("Map(islands=%d, beaches=%d)", len(m.Islands), beaches)
}
