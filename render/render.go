// Package render draws grid snapshots as PNG images.
//
// Each cell is a scale×scale square colored by role, or by mark for open
// cells. A found path is stroked through cell centers from Start to Goal,
// and the endpoints are drawn as discs on top.
package render

import (
	"errors"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/thalath/gridpath/grid"
)

// ErrBadScale indicates a non-positive pixel scale.
var ErrBadScale = errors.New("render: scale must be positive")

// DefaultScale is the side of one cell in pixels.
const DefaultScale = 16

// Palette of the snapshot.
var (
	ColorEmpty   = color.RGBA{255, 255, 255, 255}
	ColorWall    = color.RGBA{64, 64, 64, 255}
	ColorStart   = color.RGBA{0, 160, 0, 255}
	ColorGoal    = color.RGBA{200, 0, 0, 255}
	ColorVisited = color.RGBA{173, 216, 230, 255}
	ColorPath    = color.RGBA{255, 255, 0, 255}
	ColorRoute   = color.RGBA{0, 0, 0, 255}
)

// Draw renders g and the optional path (Start-exclusive, Goal-inclusive) into
// a new drawing context.
func Draw(g *grid.Grid, path []grid.Coord, scale int) (*gg.Context, error) {
	if scale <= 0 {
		return nil, ErrBadScale
	}
	s := float64(scale)
	dc := gg.NewContext(g.Width()*scale, g.Height()*scale)
	dc.SetColor(ColorEmpty)
	dc.Clear()

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := grid.C(r, c)
			fill, ok := cellColor(g, cell)
			if !ok {
				continue
			}
			dc.SetColor(fill)
			dc.DrawRectangle(float64(c)*s, float64(r)*s, s, s)
			dc.Fill()
		}
	}

	start, hasStart := g.Start()
	goal, hasGoal := g.Goal()
	center := func(c grid.Coord) (float64, float64) {
		return float64(c.Col)*s + s/2, float64(c.Row)*s + s/2
	}

	if hasStart && len(path) > 0 {
		dc.SetColor(ColorRoute)
		dc.SetLineWidth(s / 5)
		dc.MoveTo(center(start))
		for _, c := range path {
			dc.LineTo(center(c))
		}
		dc.Stroke()
	}

	if hasStart {
		x, y := center(start)
		dc.SetColor(ColorStart)
		dc.DrawCircle(x, y, s/2)
		dc.Fill()
	}
	if hasGoal && goal != start {
		x, y := center(goal)
		dc.SetColor(ColorGoal)
		dc.DrawCircle(x, y, s/2)
		dc.Fill()
	}

	return dc, nil
}

// PNG renders g and path and encodes the image to w.
func PNG(w io.Writer, g *grid.Grid, path []grid.Coord, scale int) error {
	dc, err := Draw(g, path, scale)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders g and path to the named file.
func SavePNG(filename string, g *grid.Grid, path []grid.Coord, scale int) error {
	dc, err := Draw(g, path, scale)
	if err != nil {
		return err
	}
	return dc.SavePNG(filename)
}

// cellColor returns the fill for non-empty cells. Endpoints are left to the
// disc pass.
func cellColor(g *grid.Grid, c grid.Coord) (color.Color, bool) {
	switch g.Role(c) {
	case grid.Wall:
		return ColorWall, true
	case grid.Start, grid.Goal:
		return nil, false
	}
	switch g.Mark(c) {
	case grid.MarkVisited:
		return ColorVisited, true
	case grid.MarkPath:
		return ColorPath, true
	}
	return nil, false
}
