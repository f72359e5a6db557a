// Package term hosts the maze generator in a terminal using tcell. Every maze
// cell occupies one screen cell at odd coordinates; the even rows and columns
// between them hold walls.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"prims-maze/internal/maze"
	"prims-maze/internal/palette"
	"prims-maze/internal/render"
)

// WallRune is drawn wherever a wall or wall corner stands.
const WallRune = '█'

// CellPixels is the pixel size handed to the generator so that a terminal of
// w x h cells maps to a grid that fits with its walls and a status row.
const CellPixels = 2

// Surface converts a terminal size into the surface passed to
// generator.Resize.
func Surface(cols, rows int) (int, int) {
	return cols - 1, rows - 2
}

// Renderer draws a maze onto a tcell screen.
type Renderer struct {
	screen tcell.Screen

	wall       tcell.Style
	background tcell.Style
	status     tcell.Style
}

// NewRenderer binds a renderer to screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:     screen,
		wall:       tcell.StyleDefault.Foreground(toTcell(render.WallColor)).Background(toTcell(render.Background)),
		background: tcell.StyleDefault.Background(toTcell(render.Background)),
		status:     tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	}
}

// Draw paints m and a status line, then shows the screen.
func (r *Renderer) Draw(m *maze.Model, pal palette.Palette, now int64, status string) {
	r.screen.Clear()
	if m != nil {
		r.drawMaze(m, pal, now)
	}
	_, h := r.screen.Size()
	r.drawText(0, h-1, status, r.status)
	r.screen.Show()
}

func (r *Renderer) drawMaze(m *maze.Model, pal palette.Palette, now int64) {
	g := m.Grid()
	maxDistance := m.MaxDistance()

	for y := 0; y <= 2*g.H; y += 2 {
		for x := 0; x <= 2*g.W; x += 2 {
			r.screen.SetContent(x, y, WallRune, nil, r.wall)
		}
	}

	for i, c := range m.Cells() {
		sx, sy := 2*c.X+1, 2*c.Y+1
		style := r.background
		if render.CellFilled(m, i) {
			col := palette.Shade(pal.Select(c.Distance, maxDistance, now), 0.8)
			style = tcell.StyleDefault.Background(toTcell(col))
		}
		r.screen.SetContent(sx, sy, ' ', nil, style)

		walls := m.Walls(i)
		r.edge(sx, sy-1, walls[maze.North], style)
		r.edge(sx-1, sy, walls[maze.West], style)
		if c.X == g.W-1 || walls[maze.East] {
			r.edge(sx+1, sy, walls[maze.East], style)
		}
		if c.Y == g.H-1 || walls[maze.South] {
			r.edge(sx, sy+1, walls[maze.South], style)
		}
	}

	// Corners surrounded by one room belong to its open floor.
	for y := 1; y < g.H; y++ {
		for x := 1; x < g.W; x++ {
			i := g.Index(x, y)
			id := m.Cell(i).Structure
			if m.Cell(g.Index(x-1, y)).Structure != id ||
				m.Cell(g.Index(x, y-1)).Structure != id ||
				m.Cell(g.Index(x-1, y-1)).Structure != id {
				continue
			}
			_, _, style, _ := r.screen.GetContent(2*x+1, 2*y+1)
			r.screen.SetContent(2*x, 2*y, ' ', nil, style)
		}
	}
}

// edge draws the screen cell between two maze cells: a wall, or the passage
// in the color of the cell it opens from.
func (r *Renderer) edge(x, y int, wall bool, passage tcell.Style) {
	if wall {
		r.screen.SetContent(x, y, WallRune, nil, r.wall)
		return
	}
	r.screen.SetContent(x, y, ' ', nil, passage)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
