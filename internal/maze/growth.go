package maze

// Step pops random frontier cells until one can be visited and connects it
// to the maze, stamping it with now. It returns the visited cell, or false
// once the frontier is empty.
func (m *Model) Step(now int64) (int, bool) {
	for m.frontier.Len() > 0 {
		cell := m.frontier.PopRandom(m.rng)
		if m.visit(cell, now) {
			return cell, true
		}
	}
	return -1, false
}

// Run steps until the frontier is empty, stamping every cell with Instant.
// It returns the number of cells visited.
func (m *Model) Run() int {
	n := 0
	for {
		if _, ok := m.Step(Instant); !ok {
			return n
		}
		n++
	}
}

// visit marks cell i visited, opens the wall to one visited neighbour when
// this is the first cell of its structure, and grows the frontier. A cell
// with no connectable visited neighbour is dropped; a later lookahead from
// inside its structure adds it back.
func (m *Model) visit(i int, now int64) bool {
	c := &m.cells[i]
	if c.Visited {
		return false
	}
	candidates := m.lookback(i)
	if len(candidates) == 0 {
		return false
	}

	c.Visited = true
	c.Distance = m.grid.Manhattan(m.start, i)
	c.GenerationTime = now
	m.visited++

	s := &m.structures[c.Structure]
	if !s.entered {
		peer := candidates[m.rng.IntN(len(candidates))]
		m.removeWall(i, peer)
		s.entered = true
	}
	m.lookahead(i)
	return true
}

// lookback collects the visited neighbours cell i may connect to. Cells of an
// already entered structure only join through their own structure, so each
// structure is entered through exactly one wall.
func (m *Model) lookback(i int) []int {
	m.scratch = m.scratch[:0]
	own := m.cells[i].Structure
	entered := m.structures[own].entered
	for _, d := range Directions {
		n, ok := m.neighbor(i, d)
		if !ok || !m.cells[n].Visited {
			continue
		}
		if m.cells[n].Structure == own {
			if entered {
				m.scratch = append(m.scratch, n)
			}
			continue
		}
		if !entered && m.crossable(i, n, d) {
			m.scratch = append(m.scratch, n)
		}
	}
	return m.scratch
}

// lookahead adds the unvisited, connectable neighbours of cell i to the
// frontier.
func (m *Model) lookahead(i int) {
	own := m.cells[i].Structure
	for _, d := range Directions {
		n, ok := m.neighbor(i, d)
		if !ok || m.cells[n].Visited {
			continue
		}
		other := m.cells[n].Structure
		if other == own {
			m.frontier.Add(n)
			continue
		}
		if !m.structures[other].entered && m.crossable(i, n, d) {
			m.frontier.Add(n)
		}
	}
}

// crossable reports whether a wall on side d of cell a can be opened into
// cell b: both structures need a perimeter record on the shared edge.
func (m *Model) crossable(a, b int, d Direction) bool {
	sa := &m.structures[m.cells[a].Structure]
	sb := &m.structures[m.cells[b].Structure]
	return sa.HasSide(a, d) && sb.HasSide(b, d.Opposite())
}

// removeWall clears the wall between adjacent cells a and b on both sides.
func (m *Model) removeWall(a, b int) {
	ax, ay := m.grid.Coords(a)
	bx, by := m.grid.Coords(b)
	var d Direction
	switch {
	case ax == bx && ay < by:
		d = South
	case ax == bx:
		d = North
	case ax < bx:
		d = East
	default:
		d = West
	}
	m.clearRecord(a, d)
	m.clearRecord(b, d.Opposite())
}

func (m *Model) clearRecord(cell int, d Direction) {
	s := &m.structures[m.cells[cell].Structure]
	if k := s.find(cell, d); k >= 0 {
		s.Perimeter[k].Wall = false
	}
}
