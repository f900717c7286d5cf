// Package session is the command surface a presentation layer drives:
// configure the grid, run a search, step through its replay, reset.
//
// A Session owns one grid and at most one in-flight playback. While a
// playback is in progress, layout commands are refused with
// ErrPlaybackActive so the grid cannot change under a replay; Reset, ClearAll
// and a new RunSearch cancel the playback instead.
//
// All methods are safe for concurrent use; a single mutex serializes them,
// which lets a UI event loop and a playback ticker share one Session.
package session

import (
	"errors"
	"sync"

	"github.com/thalath/gridpath/grid"
	"github.com/thalath/gridpath/playback"
	"github.com/thalath/gridpath/search"
)

// ErrPlaybackActive is returned by layout commands issued mid-playback.
var ErrPlaybackActive = errors.New("session: playback in progress")

// Options configures a Session.
type Options struct {
	// Search options applied to every RunSearch.
	Search []search.Option
}

// Option is a functional option for New.
type Option func(*Options)

// WithSearchOptions appends options passed to every search.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// Session couples a grid with the most recent search and its replay.
type Session struct {
	mu     sync.Mutex
	opts   Options
	grid   *grid.Grid
	result *search.Result
	seq    *playback.Sequencer
}

// New creates a session over an empty width×height grid.
func New(width, height int, opts ...Option) (*Session, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{opts: o, grid: g}, nil
}

// playingLocked reports whether a replay still has events to emit.
func (s *Session) playingLocked() bool {
	return s.seq != nil && !s.seq.Done()
}

// Playing reports whether a replay is in progress.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playingLocked()
}

// Configure replaces the layout with start, goal and walls.
// Returns ErrPlaybackActive mid-playback or grid.ErrOutOfBounds for bad
// coordinates, in which case nothing changes.
func (s *Session) Configure(start, goal grid.Coord, walls []grid.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playingLocked() {
		return ErrPlaybackActive
	}
	if err := s.grid.Configure(start, goal, walls); err != nil {
		return err
	}
	s.result, s.seq = nil, nil
	return nil
}

// SetRole assigns a single cell's role; see grid.Grid.SetRole.
func (s *Session) SetRole(c grid.Coord, role grid.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playingLocked() {
		return ErrPlaybackActive
	}
	return s.grid.SetRole(c, role)
}

// Toggle applies one click to c; see grid.Grid.Toggle.
func (s *Session) Toggle(c grid.Coord) (grid.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playingLocked() {
		return s.grid.Role(c), ErrPlaybackActive
	}
	return s.grid.Toggle(c)
}

// RunSearch clears previous marks, runs alg to completion and prepares a new
// replay, replacing any replay in progress.
// Returns search.ErrMissingEndpoint if start or goal is unset.
func (s *Session) RunSearch(alg search.Algorithm) (*search.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid.ResetTransient()
	s.result, s.seq = nil, nil
	res, err := search.Run(s.grid, alg, s.opts.Search...)
	if err != nil {
		return nil, err
	}
	s.result = res
	s.seq = playback.FromResult(res)
	return res, nil
}

// StepPlayback reveals the next replay event and marks its cell on the grid.
// Returns false when there is nothing (left) to play.
func (s *Session) StepPlayback() (playback.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == nil {
		return playback.Event{}, false
	}
	e, ok := s.seq.Next()
	if !ok {
		return playback.Event{}, false
	}
	_ = s.grid.SetMark(e.Coord, e.Kind.Mark())
	return e, true
}

// Lookahead returns up to n upcoming visited cells without advancing.
func (s *Session) Lookahead(n int) []playback.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == nil {
		return nil
	}
	return s.seq.Peek(n)
}

// Step returns the index of the last revealed event.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == nil {
		return 0
	}
	return s.seq.Step()
}

// Progress returns the last revealed step and the total replay length.
func (s *Session) Progress() (step, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == nil {
		return 0, 0
	}
	return s.seq.Step(), s.seq.Total()
}

// Result returns the latest search result, or nil.
func (s *Session) Result() *search.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Reset cancels any replay and clears Visited/Path marks, keeping the layout.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.ResetTransient()
	s.result, s.seq = nil, nil
}

// ClearAll cancels any replay and empties the grid, unsetting Start and Goal.
func (s *Session) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.ClearAll()
	s.result, s.seq = nil, nil
}

// Grid returns a snapshot copy of the grid.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// View calls fn with the live grid while holding the session lock.
// fn must not retain g or call back into the Session.
func (s *Session) View(fn func(g *grid.Grid)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
}
