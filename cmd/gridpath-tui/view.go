package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/thalath/gridpath/grid"
)

const (
	headerRows = 1
	cellWidth  = 2
)

var (
	styleEmpty   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleWall    = tcell.StyleDefault.Background(tcell.ColorDimGray)
	styleStart   = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleGoal    = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
	styleVisited = tcell.StyleDefault.Background(tcell.ColorLightBlue).Foreground(tcell.ColorBlack)
	stylePath    = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	// lookaheadStyles colors the next visited cells; the last entry repeats.
	lookaheadStyles = []tcell.Style{
		tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),
		tcell.StyleDefault.Background(tcell.ColorPink).Foreground(tcell.ColorBlack),
	}
)

// cellAt maps a screen position to a grid cell.
func (a *App) cellAt(x, y int) (grid.Coord, bool) {
	c := grid.C(y-headerRows, x/cellWidth)
	if x < 0 || c.Row < 0 || c.Row >= a.rows || c.Col >= a.cols {
		return grid.Coord{}, false
	}
	return c, true
}

// cellStyle picks the style for c from its role, falling back to its mark.
func cellStyle(g *grid.Grid, c grid.Coord) tcell.Style {
	switch g.Role(c) {
	case grid.Wall:
		return styleWall
	case grid.Start:
		return styleStart
	case grid.Goal:
		return styleGoal
	}
	switch g.Mark(c) {
	case grid.MarkVisited:
		return styleVisited
	case grid.MarkPath:
		return stylePath
	}
	return styleEmpty
}

func (a *App) draw() {
	a.screen.Clear()

	ahead := make(map[grid.Coord]tcell.Style)
	for i, e := range a.sess.Lookahead(a.lookahead) {
		ahead[e.Coord] = lookaheadStyles[min(i, len(lookaheadStyles)-1)]
	}

	a.sess.View(func(g *grid.Grid) {
		for r := 0; r < a.rows; r++ {
			for c := 0; c < a.cols; c++ {
				cell := grid.C(r, c)
				style := cellStyle(g, cell)
				if s, ok := ahead[cell]; ok {
					style = s
				}
				if cell == a.cursor {
					style = style.Reverse(true)
				}
				label := "  "
				if n, ok := a.steps[cell]; ok && g.Mark(cell) != grid.MarkNone {
					label = fmt.Sprintf("%2d", n%100)
				}
				a.drawText(c*cellWidth, r+headerRows, label, style)
			}
		}
	})

	step, total := a.sess.Progress()
	header := fmt.Sprintf(" %s  step %d/%d  %s", a.alg, step, total, a.status)
	a.drawText(0, 0, header, styleStatus)

	a.screen.Show()
}

func (a *App) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
