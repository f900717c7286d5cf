// Package grid defines coordinates, roles, marks, options and sentinel errors
// for the occupancy grid.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrEndpointWall indicates a Wall was requested on the Start or Goal cell.
	// The grid is left unchanged.
	ErrEndpointWall = errors.New("grid: cannot place a wall on start or goal")
)

// Default dimensions, matching the 30×20 board of the visualizer.
const (
	DefaultWidth  = 30
	DefaultHeight = 20
)

// Coord identifies a cell by row and column. It is a comparable value.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Role is the persistent state of a cell.
type Role uint8

const (
	// Empty is a traversable cell.
	Empty Role = iota
	// Wall is an obstacle; never returned by Neighbors.
	Wall
	// Start is the unique search origin.
	Start
	// Goal is the unique search target.
	Goal
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Mark is the transient presentation state of a cell, independent of its Role.
type Mark uint8

const (
	// MarkNone means the cell has not been revealed.
	MarkNone Mark = iota
	// MarkVisited means the cell was revealed as part of the visited order.
	MarkVisited
	// MarkPath means the cell was revealed as part of the final path.
	MarkPath
)

// String returns the lower-case mark name.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkVisited:
		return "visited"
	case MarkPath:
		return "path"
	default:
		return fmt.Sprintf("mark(%d)", uint8(m))
	}
}

// Orthogonal offsets in the fixed enumeration order: up, down, left, right.
var orthogonal = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Walls are placed after construction; out-of-bounds entries fail New.
	Walls []Coord
}

// Option is a functional option for New.
type Option func(*Options)

// WithWalls pre-populates the grid with walls.
func WithWalls(walls ...Coord) Option {
	return func(o *Options) {
		o.Walls = append(o.Walls, walls...)
	}
}

// DefaultOptions returns Options with no pre-placed walls.
func DefaultOptions() Options {
	return Options{}
}
