package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/thalath/gridpath/grid"
)

// strategy is the common signature of every search implementation.
type strategy func(g Graph, opts ...Option) (*Result, error)

// strategies dispatches the closed Algorithm set without string comparison.
var strategies = map[Algorithm]strategy{
	AStar:           AStarSearch,
	GreedyBestFirst: GreedySearch,
}

// Run executes the selected algorithm over g.
// Returns ErrUnknownAlgorithm for values outside the enum, otherwise whatever
// the selected strategy returns.
func Run(g Graph, alg Algorithm, opts ...Option) (*Result, error) {
	run, ok := strategies[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
	return run(g, opts...)
}

// runner holds the mutable state shared by both algorithms for one invocation.
type runner struct {
	g        Graph
	opts     Options
	start    grid.Coord
	goal     grid.Coord
	frontier *frontier
	touched  mapset.Set[grid.Coord] // only used with FirstTouchOrder
	res      *Result
}

// newRunner validates inputs in order: options, graph, endpoints.
func newRunner(g Graph, alg Algorithm, opts []Option) (*runner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	start, ok := g.Start()
	if !ok {
		return nil, fmt.Errorf("%w: start is not set", ErrMissingEndpoint)
	}
	goal, ok := g.Goal()
	if !ok {
		return nil, fmt.Errorf("%w: goal is not set", ErrMissingEndpoint)
	}

	r := &runner{
		g:        g,
		opts:     o,
		start:    start,
		goal:     goal,
		frontier: newFrontier(64),
		res: &Result{
			Algorithm:    alg,
			Start:        start,
			Goal:         goal,
			Predecessors: make(map[grid.Coord]grid.Coord),
		},
	}
	if o.FirstTouchOrder {
		r.touched = mapset.New[grid.Coord]()
	}

	return r, nil
}

func (r *runner) push(c grid.Coord, priority, cost int) {
	r.frontier.push(c, priority, cost)
	r.opts.OnPush(c, priority)
}

// discover records c as reached from `from` and appends it to the visited order.
func (r *runner) discover(c, from grid.Coord) {
	r.res.Predecessors[c] = from
	if r.opts.FirstTouchOrder {
		if r.touched.Has(c) {
			return
		}
		r.touched.Put(c)
	}
	r.res.VisitedOrder = append(r.res.VisitedOrder, c)
}

// cancelled reports the context error, if any.
func (r *runner) cancelled() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// exhausted reports whether the expansion budget is spent.
func (r *runner) exhausted() bool {
	return r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions
}

func (r *runner) expand(c grid.Coord) {
	r.res.Expanded++
	r.opts.OnExpand(c)
}

// finish derives the path once the main loop has stopped.
func (r *runner) finish() *Result {
	if r.res.Found {
		r.res.Path = Reconstruct(r.res.Predecessors, r.start, r.goal)
	}
	return r.res
}
