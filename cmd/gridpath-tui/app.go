package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/thalath/gridpath/config"
	"github.com/thalath/gridpath/grid"
	"github.com/thalath/gridpath/render"
	"github.com/thalath/gridpath/search"
	"github.com/thalath/gridpath/session"
)

// App is the terminal front end for one Session.
type App struct {
	screen    tcell.Screen
	sess      *session.Session
	alg       search.Algorithm
	interval  time.Duration
	lookahead int

	rows, cols int
	cursor     grid.Coord
	mouseDown  bool

	// steps holds the replay step number shown on each revealed cell
	steps  map[grid.Coord]int
	status string

	snapshotDir string
}

// NewApp creates an App drawing onto an initialized screen.
func NewApp(screen tcell.Screen, cfg config.Config) (*App, error) {
	sess, err := session.New(cfg.GridWidth, cfg.GridHeight)
	if err != nil {
		return nil, err
	}
	return &App{
		screen:    screen,
		sess:      sess,
		alg:       cfg.Algorithm,
		interval:  cfg.StepInterval,
		lookahead: cfg.Lookahead,
		rows:      cfg.GridHeight,
		cols:      cfg.GridWidth,
		steps:     make(map[grid.Coord]int),
		status:    "click to place start",

		snapshotDir: ".",
	}, nil
}

// Run processes input and advances playback until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			if a.tick() {
				a.draw()
			}
		}
	}
}

// tick reveals one playback step and reports whether anything changed.
func (a *App) tick() bool {
	e, ok := a.sess.StepPlayback()
	if !ok {
		return false
	}
	a.steps[e.Coord] = e.Step
	if !a.sess.Playing() {
		a.status = a.summary()
	}
	return true
}

// handleInput returns false when the app should exit.
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.move(-1, 0)
		case tcell.KeyDown:
			a.move(1, 0)
		case tcell.KeyLeft:
			a.move(0, -1)
		case tcell.KeyRight:
			a.move(0, 1)
		case tcell.KeyEnter:
			a.click(a.cursor)
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.mouseDown {
			if c, ok := a.cellAt(ev.Position()); ok {
				a.cursor = c
				a.click(c)
			}
		}
		a.mouseDown = down

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'k':
		a.move(-1, 0)
	case 'j':
		a.move(1, 0)
	case 'h':
		a.move(0, -1)
	case 'l':
		a.move(0, 1)
	case ' ':
		a.click(a.cursor)
	case 'a':
		a.nextAlgorithm()
	case 'g':
		a.run()
	case 'r':
		a.sess.Reset()
		clear(a.steps)
		a.status = "reset"
	case 'p':
		a.snapshot()
	case 'c':
		a.sess.ClearAll()
		clear(a.steps)
		a.status = "cleared, click to place start"
	}
	return true
}

func (a *App) move(dr, dc int) {
	r := min(max(a.cursor.Row+dr, 0), a.rows-1)
	c := min(max(a.cursor.Col+dc, 0), a.cols-1)
	a.cursor = grid.C(r, c)
}

func (a *App) click(c grid.Coord) {
	role, err := a.sess.Toggle(c)
	switch {
	case errors.Is(err, session.ErrPlaybackActive):
		a.status = "playback in progress, press r to reset"
	case err != nil:
		a.status = err.Error()
	default:
		a.status = fmt.Sprintf("%s %s", c, role)
	}
}

func (a *App) nextAlgorithm() {
	algs := search.Algorithms()
	for i, alg := range algs {
		if alg == a.alg {
			a.alg = algs[(i+1)%len(algs)]
			break
		}
	}
	a.status = "algorithm " + a.alg.String()
}

func (a *App) run() {
	clear(a.steps)
	if _, err := a.sess.RunSearch(a.alg); err != nil {
		if errors.Is(err, search.ErrMissingEndpoint) {
			a.status = "place start and goal first"
		} else {
			a.status = err.Error()
		}
		return
	}
	a.status = "searching"
	if !a.sess.Playing() {
		a.status = a.summary()
	}
}

// snapshot writes the grid as currently revealed to a PNG file. The route is
// drawn once its replay has finished.
func (a *App) snapshot() {
	var path []grid.Coord
	if res := a.sess.Result(); res != nil && !a.sess.Playing() {
		path = res.Path
	}
	name := filepath.Join(a.snapshotDir, fmt.Sprintf("gridpath-%s.png", time.Now().Format("20060102-150405")))
	if err := render.SavePNG(name, a.sess.Grid(), path, render.DefaultScale); err != nil {
		a.status = err.Error()
		return
	}
	a.status = "saved " + name
}

// summary describes the latest result once its replay is over.
func (a *App) summary() string {
	res := a.sess.Result()
	if res == nil {
		return ""
	}
	if !res.Found {
		return fmt.Sprintf("no path, %d cells visited", len(res.VisitedOrder))
	}
	return fmt.Sprintf("path found, cost %d, %d cells visited", res.Cost(), len(res.VisitedOrder))
}
