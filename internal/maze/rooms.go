package maze

// roomPlacementAttempts bounds how many random origins addRoom tries.
const roomPlacementAttempts = 20

// addRoom tries to carve a w x h room at a random origin. Rooms never leave
// the grid and never overlap another room; when no attempt succeeds the maze
// is left unchanged.
func (m *Model) addRoom(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	for attempt := 0; attempt < roomPlacementAttempts; attempt++ {
		x, y := m.grid.Coords(m.rng.IntN(len(m.cells)))
		if m.placeRoom(x, y, w, h) {
			return true
		}
	}
	return false
}

// placeRoom carves a room with its top-left corner at (x, y) if the footprint
// fits and only covers single cells.
func (m *Model) placeRoom(x, y, w, h int) bool {
	if x < 0 || y < 0 || x+w > m.grid.W || y+h > m.grid.H {
		return false
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			idx := m.grid.Index(x+dx, y+dy)
			if m.structures[m.cells[idx].Structure].Kind != KindSingle {
				return false
			}
		}
	}
	id := m.addStructure(newStructure(KindRoom, x, y, w, h, m.grid))
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			m.cells[m.grid.Index(x+dx, y+dy)].Structure = id
		}
	}
	m.rooms = append(m.rooms, id)
	return true
}
