// Command gridpath-tui is a terminal visualizer for A* and greedy best-first
// search on an editable grid.
//
// Keys:
//
//	arrows, hjkl   move the cursor
//	space, enter   click the cell under the cursor (start, goal, then wall/empty)
//	mouse button   click the cell under the pointer
//	a              switch algorithm
//	g              run the search and start playback
//	r              reset the search, keep the layout
//	c              clear the grid
//	p              save a PNG snapshot to the working directory
//	q, esc, ^C     quit
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/thalath/gridpath/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseButtonEvents)

	app, err := NewApp(screen, cfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	defer screen.Fini()

	app.Run()
}
