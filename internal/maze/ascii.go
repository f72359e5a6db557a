package maze

import "strings"

// String draws the maze with '+' corners, "--" and '|' walls. Unvisited
// cells are shown as "..".
func (m *Model) String() string {
	var b strings.Builder
	w, h := m.grid.W, m.grid.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.WriteByte('+')
			if m.WallAt(m.grid.Index(x, y), North) {
				b.WriteString("--")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("+\n")
		for x := 0; x < w; x++ {
			i := m.grid.Index(x, y)
			if m.WallAt(i, West) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			if m.cells[i].Visited {
				b.WriteString("  ")
			} else {
				b.WriteString("..")
			}
		}
		if m.WallAt(m.grid.Index(w-1, y), East) {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	for x := 0; x < w; x++ {
		b.WriteByte('+')
		if m.WallAt(m.grid.Index(x, h-1), South) {
			b.WriteString("--")
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("+\n")
	return b.String()
}
