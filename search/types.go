// Package search defines the algorithm selector, result type, functional
// options and sentinel errors shared by A* and Greedy Best-First.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thalath/gridpath/grid"
)

// Sentinel errors returned by the search package.
var (
	// ErrNilGraph indicates that a nil Graph was passed to a search.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrMissingEndpoint indicates the start or goal cell is not set.
	ErrMissingEndpoint = errors.New("search: start and goal must both be set")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the closed set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvalidPath indicates a path whose steps are not 4-neighbors,
	// or which does not end at the goal.
	ErrInvalidPath = errors.New("search: invalid path")
)

// Graph is the read-only view a search needs. *grid.Grid satisfies it.
type Graph interface {
	Start() (grid.Coord, bool)
	Goal() (grid.Coord, bool)
	Neighbors(c grid.Coord) []grid.Coord
}

// Algorithm selects a search strategy. The set is closed.
type Algorithm uint8

const (
	// AStar is cost-optimal A* with the Manhattan heuristic.
	AStar Algorithm = iota
	// GreedyBestFirst expands the cell that looks closest to the goal.
	GreedyBestFirst
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AStar, GreedyBestFirst}
}

// String returns the canonical short name.
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case GreedyBestFirst:
		return "greedy"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a user-facing name onto the enum. Matching is
// case-insensitive and accepts a few common aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*", "a-star":
		return AStar, nil
	case "greedy", "gbfs", "greedy-best-first", "best-first":
		return GreedyBestFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	switch a {
	case AStar, GreedyBestFirst:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Result holds the outcome of one search invocation. It is owned by the
// caller and is independent of later grid changes.
//
//   - Predecessors: cell → the cell it was reached from; acyclic, rooted at Start.
//   - VisitedOrder: cells in the order they were pushed; the replay order.
//   - Path: Start-exclusive, Goal-inclusive; empty when Found is false.
//   - Expanded: number of cells popped and expanded (stale entries excluded).
type Result struct {
	Algorithm    Algorithm
	Start, Goal  grid.Coord
	Found        bool
	Predecessors map[grid.Coord]grid.Coord
	VisitedOrder []grid.Coord
	Path         []grid.Coord
	Expanded     int
}

// Cost returns the number of unit steps along Path.
func (r Result) Cost() int {
	return len(r.Path)
}

// Options configures a search.
type Options struct {
	// Ctx allows cancellation; checked once per frontier pop.
	Ctx context.Context

	// OnPush is called each time a cell enters the frontier.
	OnPush func(c grid.Coord, priority int)

	// OnExpand is called when a popped cell is about to be expanded.
	OnExpand func(c grid.Coord)

	// MaxExpansions, if > 0, ends the search unsuccessfully once that many
	// cells have been expanded. Zero means no limit.
	MaxExpansions int

	// FirstTouchOrder records each cell in VisitedOrder only once.
	FirstTouchOrder bool

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no-op hooks,
// no expansion limit and append-on-every-push visited order.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnPush:   func(grid.Coord, int) {},
		OnExpand: func(grid.Coord) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPush registers a callback for every frontier push.
func WithOnPush(fn func(c grid.Coord, priority int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers a callback for every expansion.
func WithOnExpand(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: stop after n expansions (Found=false unless the goal came first)
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithFirstTouchOrder makes VisitedOrder list each cell at first discovery
// only, dropping A* relaxation re-entries.
func WithFirstTouchOrder() Option {
	return func(o *Options) {
		o.FirstTouchOrder = true
	}
}
