package maze

// WallAt reports whether a wall blocks side d of cell i. Sides inside a room
// have no perimeter record and are always open.
func (m *Model) WallAt(i int, d Direction) bool {
	s := &m.structures[m.cells[i].Structure]
	k := s.find(i, d)
	return k >= 0 && s.Perimeter[k].Wall
}

// Walls returns the wall flags of cell i indexed by Direction.
func (m *Model) Walls(i int) [4]bool {
	var out [4]bool
	for _, d := range Directions {
		out[d] = m.WallAt(i, d)
	}
	return out
}

// RoomRevealed reports whether every perimeter cell of structure id has been
// visited, at which point a renderer may fill the whole footprint.
func (m *Model) RoomRevealed(id StructureID) bool {
	for _, p := range m.structures[id].Perimeter {
		if !m.cells[p.Cell].Visited {
			return false
		}
	}
	return true
}
