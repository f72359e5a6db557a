// Package maze builds perfect mazes over a rectangular grid with a randomized
// Prim's variant that can merge blocks of cells into rooms. A Model can be
// advanced one cell at a time (Step) or run to completion (Run); both share
// the same step logic so the result only depends on the random sequence.
package maze

import (
	"math/rand/v2"

	"prims-maze/internal/core"
)

const (
	// Unset marks a cell that has not been generated yet.
	Unset int64 = -1
	// Instant is the generation time recorded for batch-generated cells and
	// the start cell.
	Instant int64 = 0
)

// Cell is one grid position.
type Cell struct {
	X, Y  int
	Index int

	Visited        bool
	Distance       int
	GenerationTime int64

	Structure StructureID
}

// Options controls how a Model is laid out.
type Options struct {
	Cols, Rows int

	Rooms      int
	RoomWidth  int
	RoomHeight int

	// Start is the linear index of the first visited cell. Values outside
	// the grid (conventionally -1) pick a random cell.
	Start int
}

// DefaultOptions returns options for a cols x rows grid without rooms and a
// random start cell.
func DefaultOptions(cols, rows int) Options {
	return Options{Cols: cols, Rows: rows, RoomWidth: 5, RoomHeight: 5, Start: -1}
}

// Model owns the cells, the structure arena and the frontier of one maze.
type Model struct {
	grid       core.Grid
	cells      []Cell
	structures []Structure
	rooms      []StructureID
	frontier   Frontier
	rng        *rand.Rand

	start       int
	maxDistance int
	visited     int

	scratch []int
}

// New lays out a fresh maze: one single-cell structure per cell, up to
// opts.Rooms rooms carved on top, and the start cell visited with its
// connectable neighbours seeded into the frontier.
func New(opts Options, rng *rand.Rand) *Model {
	if rng == nil {
		rng = core.NewRNG(1).Source()
	}
	grid := core.NewGrid(opts.Cols, opts.Rows)
	total := grid.Len()
	m := &Model{
		grid:       grid,
		cells:      make([]Cell, total),
		structures: make([]Structure, 0, total+opts.Rooms),
		rng:        rng,
		scratch:    make([]int, 0, len(Directions)),
	}
	for i := range m.cells {
		x, y := grid.Coords(i)
		id := m.addStructure(newStructure(KindSingle, x, y, 1, 1, grid))
		m.cells[i] = Cell{X: x, Y: y, Index: i, GenerationTime: Unset, Structure: id}
	}

	for r := 0; r < opts.Rooms; r++ {
		m.addRoom(opts.RoomWidth, opts.RoomHeight)
	}

	start := opts.Start
	if start < 0 || start >= total {
		start = rng.IntN(total)
	}
	m.start = start
	sx, sy := grid.Coords(start)
	m.maxDistance = grid.FarthestCorner(sx, sy)

	c := &m.cells[start]
	c.Visited = true
	c.Distance = 0
	c.GenerationTime = Instant
	m.structures[c.Structure].entered = true
	m.visited = 1
	m.lookahead(start)
	return m
}

func (m *Model) addStructure(s Structure) StructureID {
	m.structures = append(m.structures, s)
	return StructureID(len(m.structures) - 1)
}

// Grid returns the grid geometry.
func (m *Model) Grid() core.Grid { return m.grid }

// Cells exposes the cell slice for read-only rendering.
func (m *Model) Cells() []Cell { return m.cells }

// Cell returns a copy of cell i.
func (m *Model) Cell(i int) Cell { return m.cells[i] }

// Structure returns the structure addressed by id.
func (m *Model) Structure(id StructureID) *Structure { return &m.structures[id] }

// Structures exposes the structure arena. Singles replaced by a room remain
// in the arena but no cell refers to them.
func (m *Model) Structures() []Structure { return m.structures }

// StructureOf returns the structure cell i belongs to.
func (m *Model) StructureOf(i int) *Structure { return &m.structures[m.cells[i].Structure] }

// Rooms lists the room structures that were placed.
func (m *Model) Rooms() []StructureID { return m.rooms }

// RoomsPlaced reports how many requested rooms found a free footprint.
func (m *Model) RoomsPlaced() int { return len(m.rooms) }

// Start returns the index of the start cell.
func (m *Model) Start() int { return m.start }

// MaxDistance returns the Manhattan distance from the start cell to the
// farthest grid corner.
func (m *Model) MaxDistance() int { return m.maxDistance }

// Visited returns the number of visited cells.
func (m *Model) Visited() int { return m.visited }

// Done reports whether the frontier has drained.
func (m *Model) Done() bool { return m.frontier.Len() == 0 }

// FrontierLen returns the number of frontier members.
func (m *Model) FrontierLen() int { return m.frontier.Len() }

// Frontier returns a copy of the frontier members.
func (m *Model) Frontier() []int { return m.frontier.Items() }

// InFrontier reports whether cell i is waiting in the frontier.
func (m *Model) InFrontier(i int) bool { return m.frontier.Has(i) }

// neighbor returns the index of the cell on side d of cell i.
func (m *Model) neighbor(i int, d Direction) (int, bool) {
	dx, dy := d.Delta()
	x, y := m.grid.Coords(i)
	nx, ny := x+dx, y+dy
	if !m.grid.InBounds(nx, ny) {
		return 0, false
	}
	return m.grid.Index(nx, ny), true
}
