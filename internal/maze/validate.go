package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrIncomplete is returned when some cell was never visited.
	ErrIncomplete = errors.New("maze: unvisited cells remain")
	// ErrFrontierNotEmpty is returned when validation runs before the
	// frontier drained.
	ErrFrontierNotEmpty = errors.New("maze: frontier not empty")
	// ErrWallAsymmetry is returned when an opened wall is still closed on
	// its other side.
	ErrWallAsymmetry = errors.New("maze: wall open on one side only")
	// ErrDisconnected is returned when some structure cannot be reached
	// from the start through opened walls.
	ErrDisconnected = errors.New("maze: structures not connected")
	// ErrCycle is returned when more walls were opened than a spanning
	// tree needs.
	ErrCycle = errors.New("maze: passages contain a cycle")
)

// liveStructures returns the structures still referenced by at least one
// cell. Singles replaced by a room stay in the arena but are not live.
func (m *Model) liveStructures() mapset.Set[StructureID] {
	live := mapset.New[StructureID]()
	for i := range m.cells {
		live.Put(m.cells[i].Structure)
	}
	return live
}

// Validate checks that a finished maze is a perfect maze over its
// structures: every cell visited, wall records symmetric, all structures
// connected and exactly live-1 walls opened.
func (m *Model) Validate() error {
	if m.frontier.Len() != 0 {
		return fmt.Errorf("%w: %d cells pending", ErrFrontierNotEmpty, m.frontier.Len())
	}
	if m.visited != len(m.cells) {
		return fmt.Errorf("%w: %d of %d visited", ErrIncomplete, m.visited, len(m.cells))
	}

	live := m.liveStructures()
	adjacent := make(map[StructureID][]StructureID)
	opened := 0
	var err error
	live.Each(func(id StructureID) {
		if err != nil {
			return
		}
		for _, p := range m.structures[id].Perimeter {
			if p.Wall {
				continue
			}
			n, ok := m.neighbor(p.Cell, p.Dir)
			if !ok {
				err = fmt.Errorf("%w: cell %d opens %s onto the border", ErrWallAsymmetry, p.Cell, p.Dir)
				return
			}
			if m.WallAt(n, p.Dir.Opposite()) {
				err = fmt.Errorf("%w: cells %d and %d", ErrWallAsymmetry, p.Cell, n)
				return
			}
			adjacent[id] = append(adjacent[id], m.cells[n].Structure)
			opened++
		}
	})
	if err != nil {
		return err
	}
	edges := opened / 2

	root := m.cells[m.start].Structure
	seen := mapset.New[StructureID]()
	seen.Put(root)
	queue := []StructureID{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adjacent[id] {
			if seen.Has(next) {
				continue
			}
			seen.Put(next)
			queue = append(queue, next)
		}
	}
	if seen.Size() != live.Size() {
		return fmt.Errorf("%w: reached %d of %d", ErrDisconnected, seen.Size(), live.Size())
	}
	if edges != live.Size()-1 {
		return fmt.Errorf("%w: %d passages for %d structures", ErrCycle, edges, live.Size())
	}
	return nil
}

// Validate is the package-level form of Model.Validate.
func Validate(m *Model) error { return m.Validate() }
