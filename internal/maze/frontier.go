package maze

import "math/rand/v2"

// Frontier is a set of cell indices backed by a dense slice plus an index map
// so a uniformly random member can be removed in O(1).
type Frontier struct {
	items []int
	pos   map[int]int
}

// Len returns the number of members.
func (f *Frontier) Len() int { return len(f.items) }

// Has reports membership.
func (f *Frontier) Has(cell int) bool {
	_, ok := f.pos[cell]
	return ok
}

// Add inserts cell. Adding an existing member is a no-op and returns false.
func (f *Frontier) Add(cell int) bool {
	if f.pos == nil {
		f.pos = make(map[int]int)
	}
	if _, ok := f.pos[cell]; ok {
		return false
	}
	f.pos[cell] = len(f.items)
	f.items = append(f.items, cell)
	return true
}

// Remove deletes cell, reporting whether it was present.
func (f *Frontier) Remove(cell int) bool {
	k, ok := f.pos[cell]
	if !ok {
		return false
	}
	f.removeAt(k)
	return true
}

// PopRandom removes and returns a uniformly chosen member, or -1 when empty.
func (f *Frontier) PopRandom(r *rand.Rand) int {
	if len(f.items) == 0 {
		return -1
	}
	k := r.IntN(len(f.items))
	cell := f.items[k]
	f.removeAt(k)
	return cell
}

// Items returns a copy of the members in internal order.
func (f *Frontier) Items() []int {
	return append([]int(nil), f.items...)
}

// Clear empties the set.
func (f *Frontier) Clear() {
	f.items = f.items[:0]
	clear(f.pos)
}

func (f *Frontier) removeAt(k int) {
	last := len(f.items) - 1
	removed := f.items[k]
	if k != last {
		moved := f.items[last]
		f.items[k] = moved
		f.pos[moved] = k
	}
	f.items = f.items[:last]
	delete(f.pos, removed)
}
