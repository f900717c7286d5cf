package playback

import (
	"iter"

	"github.com/thalath/gridpath/grid"
	"github.com/thalath/gridpath/search"
)

// Sequencer is a finite, forward-only cursor over a replay.
// It is not safe for concurrent use.
type Sequencer struct {
	visited     []grid.Coord
	path        []grid.Coord
	start, goal grid.Coord

	vi, pi int // next unread index into visited / path
	step   int // index of the last emitted event
	total  int
}

// New builds a Sequencer over copies of visited and path. Cells equal to
// start or goal are skipped when emitting.
func New(visited, path []grid.Coord, start, goal grid.Coord) *Sequencer {
	s := &Sequencer{
		visited: append([]grid.Coord(nil), visited...),
		path:    append([]grid.Coord(nil), path...),
		start:   start,
		goal:    goal,
	}
	for _, list := range [][]grid.Coord{s.visited, s.path} {
		for _, c := range list {
			if !s.endpoint(c) {
				s.total++
			}
		}
	}
	return s
}

// FromResult builds a Sequencer replaying res. A nil result yields an
// empty sequence.
func FromResult(res *search.Result) *Sequencer {
	if res == nil {
		return New(nil, nil, grid.Coord{}, grid.Coord{})
	}
	return New(res.VisitedOrder, res.Path, res.Start, res.Goal)
}

func (s *Sequencer) endpoint(c grid.Coord) bool {
	return c == s.start || c == s.goal
}

// Next emits the next event and advances the cursor. It returns false once
// the sequence is exhausted, and keeps returning false afterwards.
func (s *Sequencer) Next() (Event, bool) {
	for s.vi < len(s.visited) {
		c := s.visited[s.vi]
		s.vi++
		if s.endpoint(c) {
			continue
		}
		s.step++
		return Event{Kind: Visited, Coord: c, Step: s.step}, true
	}
	for s.pi < len(s.path) {
		c := s.path[s.pi]
		s.pi++
		if s.endpoint(c) {
			continue
		}
		s.step++
		return Event{Kind: Path, Coord: c, Step: s.step}, true
	}
	return Event{}, false
}

// Peek returns up to n upcoming Visited events, with the step numbers they
// will receive, without moving the cursor. It returns nil once the visited
// phase is over or n <= 0.
func (s *Sequencer) Peek(n int) []Event {
	if n <= 0 {
		return nil
	}
	var out []Event
	step := s.step
	for i := s.vi; i < len(s.visited) && len(out) < n; i++ {
		c := s.visited[i]
		if s.endpoint(c) {
			continue
		}
		step++
		out = append(out, Event{Kind: Visited, Coord: c, Step: step})
	}
	return out
}

// Step returns the index of the last emitted event, 0 before the first.
func (s *Sequencer) Step() int { return s.step }

// Total returns the number of events the sequence emits overall.
func (s *Sequencer) Total() int { return s.total }

// Remaining returns how many events are still to be emitted.
func (s *Sequencer) Remaining() int { return s.total - s.step }

// Done reports whether the sequence is exhausted.
func (s *Sequencer) Done() bool { return s.step >= s.total }

// Events drains the remaining events. Breaking out of the loop leaves the
// unread events in place for a later Next.
func (s *Sequencer) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			e, ok := s.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}
