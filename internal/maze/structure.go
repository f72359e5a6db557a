package maze

import "prims-maze/internal/core"

// Kind distinguishes one-cell structures from multi-cell rooms.
type Kind uint8

const (
	KindSingle Kind = iota
	KindRoom
)

func (k Kind) String() string {
	if k == KindRoom {
		return "room"
	}
	return "single"
}

// StructureID addresses a Structure in the model's arena.
type StructureID int

// Perimeter is one outer edge of a structure: the boundary cell, the side it
// faces and whether a wall still blocks it.
type Perimeter struct {
	Dir  Direction
	Cell int
	Wall bool
}

// Structure groups the cells of a rectangular footprint that share one set of
// perimeter walls. Every cell inside the footprint points at the same
// StructureID.
type Structure struct {
	X, Y int
	W, H int
	Kind Kind

	Perimeter []Perimeter

	entered bool
}

// newStructure builds a structure whose perimeter holds one record per exposed
// outer side of every boundary cell, all walled.
func newStructure(kind Kind, x, y, w, h int, grid core.Grid) Structure {
	s := Structure{X: x, Y: y, W: w, H: h, Kind: kind}
	s.Perimeter = make([]Perimeter, 0, 2*(w+h))
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cell := grid.Index(x+dx, y+dy)
			if dx == 0 {
				s.Perimeter = append(s.Perimeter, Perimeter{Dir: West, Cell: cell, Wall: true})
			}
			if dx == w-1 {
				s.Perimeter = append(s.Perimeter, Perimeter{Dir: East, Cell: cell, Wall: true})
			}
			if dy == 0 {
				s.Perimeter = append(s.Perimeter, Perimeter{Dir: North, Cell: cell, Wall: true})
			}
			if dy == h-1 {
				s.Perimeter = append(s.Perimeter, Perimeter{Dir: South, Cell: cell, Wall: true})
			}
		}
	}
	return s
}

// Contains reports whether grid position (x, y) lies in the footprint.
func (s *Structure) Contains(x, y int) bool {
	return x >= s.X && y >= s.Y && x < s.X+s.W && y < s.Y+s.H
}

// Area returns the number of cells covered.
func (s *Structure) Area() int { return s.W * s.H }

// Entered reports whether any cell of the structure has been visited.
func (s *Structure) Entered() bool { return s.entered }

// find returns the index of the perimeter record for cell on side d, or -1.
func (s *Structure) find(cell int, d Direction) int {
	for i := range s.Perimeter {
		if s.Perimeter[i].Cell == cell && s.Perimeter[i].Dir == d {
			return i
		}
	}
	return -1
}

// HasSide reports whether cell owns a perimeter record on side d.
func (s *Structure) HasSide(cell int, d Direction) bool { return s.find(cell, d) >= 0 }

// OpenCount returns how many perimeter records have had their wall removed.
func (s *Structure) OpenCount() int {
	n := 0
	for _, p := range s.Perimeter {
		if !p.Wall {
			n++
		}
	}
	return n
}
