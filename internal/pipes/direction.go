// Package pipes provides the core simulation for the Pipeworks puzzle game:
// the directional port model, board generation, the pipe queue, the water
// flow state machine, path analysis and scoring.
// This package is UI-agnostic and deterministic.
package pipes

import "fmt"

// Direction identifies one side of a tile through which a pipe can connect
// to its neighbor. The canonical cycle is [Top, Right, Bottom, Left].
type Direction uint8

const (
	DirTop Direction = iota
	DirRight
	DirBottom
	DirLeft
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirTop:
		return "Top"
	case DirRight:
		return "Right"
	case DirBottom:
		return "Bottom"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Top decreases Y, Bottom increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirTop:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirBottom:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the facing direction (Top<->Bottom, Left<->Right).
func (d Direction) Opposite() Direction {
	return Direction((uint8(d) + 2) % 4)
}

// Rotation is a clockwise quarter-turn step in 0..3 (0°, 90°, 180°, 270°).
type Rotation uint8

// Rotated returns the direction shifted by r quarter turns clockwise.
func (d Direction) Rotated(r Rotation) Direction {
	return Direction((uint8(d) + uint8(r)) % 4)
}

// Coord is a board position. Col increases to the right, Row downward.
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Step returns a new Coord one tile away in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{Col: c.Col + dx, Row: c.Row + dy}
}
