// Package grid provides the occupancy grid consumed by the search package.
//
// Cells hold either Empty or Wall; Start and Goal are tracked as coordinates
// on top of that layer, so setting an endpoint never loses track of the other
// and a degenerate Start == Goal grid stays representable.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size rectangular board of Width×Height cells.
// It is never resized after construction.
type Grid struct {
	width, height int
	cells         []Role // row-major; only Empty or Wall
	marks         []Mark // row-major transient layer
	start, goal   Coord
	hasStart      bool
	hasGoal       bool
}

// New constructs an empty grid of the given dimensions.
// Returns ErrBadDimensions if width or height is not positive, or
// ErrOutOfBounds if a WithWalls coordinate lies outside the grid.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Role, width*height),
		marks:  make([]Mark, width*height),
	}
	for _, w := range o.Walls {
		if err := g.SetRole(w, Wall); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

func (g *Grid) check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, c, g.height, g.width)
	}
	return nil
}

// Start returns the start coordinate and whether one is set.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// Goal returns the goal coordinate and whether one is set.
func (g *Grid) Goal() (Coord, bool) { return g.goal, g.hasGoal }

// Role returns the role of c. Start takes precedence over Goal when both
// endpoints share a cell. Out-of-bounds coordinates report Empty.
func (g *Grid) Role(c Coord) Role {
	if !g.InBounds(c) {
		return Empty
	}
	switch {
	case g.hasStart && g.start == c:
		return Start
	case g.hasGoal && g.goal == c:
		return Goal
	}
	return g.cells[g.index(c)]
}

// IsEndpoint reports whether c is the current Start or Goal.
func (g *Grid) IsEndpoint(c Coord) bool {
	return (g.hasStart && g.start == c) || (g.hasGoal && g.goal == c)
}

// SetRole assigns role to c.
//
//   - Start/Goal: the previous holder of that role reverts to Empty, and a wall
//     under c is removed.
//   - Wall: rejected with ErrEndpointWall (grid unchanged) if c is Start or Goal.
//   - Empty: equivalent to ClearRole.
//
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) SetRole(c Coord, role Role) error {
	if err := g.check(c); err != nil {
		return err
	}
	i := g.index(c)
	switch role {
	case Empty:
		g.clear(c)
	case Wall:
		if g.IsEndpoint(c) {
			return fmt.Errorf("%w: %s", ErrEndpointWall, c)
		}
		g.cells[i] = Wall
		g.marks[i] = MarkNone
	case Start:
		g.cells[i] = Empty
		g.marks[i] = MarkNone
		g.start, g.hasStart = c, true
	case Goal:
		g.cells[i] = Empty
		g.marks[i] = MarkNone
		g.goal, g.hasGoal = c, true
	default:
		return fmt.Errorf("grid: unknown role %s", role)
	}

	return nil
}

// ClearRole resets c to Empty, unsetting Start or Goal if c held either.
func (g *Grid) ClearRole(c Coord) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.clear(c)

	return nil
}

func (g *Grid) clear(c Coord) {
	if g.hasStart && g.start == c {
		g.start, g.hasStart = Coord{}, false
	}
	if g.hasGoal && g.goal == c {
		g.goal, g.hasGoal = Coord{}, false
	}
	g.cells[g.index(c)] = Empty
}

// Toggle applies one "click" to c and returns the resulting role:
// the first click places Start, the next places Goal, and afterwards
// clicks flip Empty and Wall. Clicking an endpoint once both exist is a no-op.
func (g *Grid) Toggle(c Coord) (Role, error) {
	if err := g.check(c); err != nil {
		return Empty, err
	}
	var next Role
	switch {
	case !g.hasStart:
		next = Start
	case !g.hasGoal:
		next = Goal
	case g.IsEndpoint(c):
		return g.Role(c), nil
	case g.cells[g.index(c)] == Wall:
		next = Empty
	default:
		next = Wall
	}
	if err := g.SetRole(c, next); err != nil {
		return g.Role(c), err
	}

	return g.Role(c), nil
}

// Configure replaces the whole layout with the given endpoints and walls.
// Every coordinate is validated before anything changes, so a failed call
// leaves the grid untouched. Walls on start or goal are skipped.
// Calling Configure twice with the same arguments equals calling it once.
func (g *Grid) Configure(start, goal Coord, walls []Coord) error {
	if err := g.check(start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := g.check(goal); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	for _, w := range walls {
		if err := g.check(w); err != nil {
			return fmt.Errorf("wall: %w", err)
		}
	}

	g.ClearAll()
	g.start, g.hasStart = start, true
	g.goal, g.hasGoal = goal, true
	for _, w := range walls {
		if g.IsEndpoint(w) {
			continue
		}
		g.cells[g.index(w)] = Wall
	}

	return nil
}

// Neighbors returns the orthogonally adjacent in-bounds cells of c that are
// not walls, in the order up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(orthogonal))
	for _, d := range orthogonal {
		n := c.Add(d)
		if !g.InBounds(n) || g.cells[g.index(n)] == Wall {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Walls lists all wall cells in row-major order.
func (g *Grid) Walls() []Coord {
	var out []Coord
	for i, r := range g.cells {
		if r == Wall {
			out = append(out, Coord{Row: i / g.width, Col: i % g.width})
		}
	}
	return out
}

// SetMark records a transient presentation mark on c.
// Marks on Start, Goal or Wall cells are ignored.
func (g *Grid) SetMark(c Coord, m Mark) error {
	if err := g.check(c); err != nil {
		return err
	}
	i := g.index(c)
	if g.IsEndpoint(c) || g.cells[i] == Wall {
		return nil
	}
	g.marks[i] = m

	return nil
}

// Mark returns the transient mark of c (MarkNone when out of bounds).
func (g *Grid) Mark(c Coord) Mark {
	if !g.InBounds(c) {
		return MarkNone
	}
	return g.marks[g.index(c)]
}

// ResetTransient clears every Visited/Path mark, leaving roles untouched.
// It is idempotent.
func (g *Grid) ResetTransient() {
	for i := range g.marks {
		g.marks[i] = MarkNone
	}
}

// ClearAll resets every cell to Empty, clears marks and unsets Start and Goal.
func (g *Grid) ClearAll() {
	for i := range g.cells {
		g.cells[i] = Empty
		g.marks[i] = MarkNone
	}
	g.start, g.hasStart = Coord{}, false
	g.goal, g.hasGoal = Coord{}, false
}

// Clone returns a deep copy, used to hand a static snapshot to a search.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = append([]Role(nil), g.cells...)
	c.marks = append([]Mark(nil), g.marks...)
	return &c
}

// String renders the grid one row per line:
// '.' empty, '#' wall, 'S' start, 'G' goal, 'o' visited, '*' path.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.width; col++ {
			sb.WriteByte(g.glyph(Coord{Row: r, Col: col}))
		}
	}
	return sb.String()
}

func (g *Grid) glyph(c Coord) byte {
	switch g.Role(c) {
	case Start:
		return 'S'
	case Goal:
		return 'G'
	case Wall:
		return '#'
	}
	switch g.marks[g.index(c)] {
	case MarkVisited:
		return 'o'
	case MarkPath:
		return '*'
	}
	return '.'
}

// Parse builds a grid from rows of glyphs as produced by String.
// 'o' and '*' are read back as marks. All rows must share one length.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrBadDimensions)
	}
	g, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		if len(line) != g.width {
			return nil, fmt.Errorf("grid: row %d has length %d, want %d", r, len(line), g.width)
		}
		for col := 0; col < len(line); col++ {
			c := Coord{Row: r, Col: col}
			switch line[col] {
			case '.':
			case '#':
				g.cells[g.index(c)] = Wall
			case 'S':
				g.start, g.hasStart = c, true
			case 'G':
				g.goal, g.hasGoal = c, true
			case 'o':
				g.marks[g.index(c)] = MarkVisited
			case '*':
				g.marks[g.index(c)] = MarkPath
			default:
				return nil, fmt.Errorf("grid: unknown glyph %q at %s", line[col], c)
			}
		}
	}

	return g, nil
}
