package maze

import (
	"errors"
	"strings"
	"testing"

	"prims-maze/internal/core"
)

func newSeeded(opts Options, seed int64) *Model {
	return New(opts, core.NewRNG(seed).Source())
}

func TestRunWithoutRoomsVisitsEverything(t *testing.T) {
	opts := DefaultOptions(10, 10)
	opts.Start = 0
	m := newSeeded(opts, 42)
	m.Run()

	if !m.Done() {
		t.Fatal("frontier should be empty after Run")
	}
	if m.MaxDistance() != 18 {
		t.Fatalf("max distance = %d, want 18", m.MaxDistance())
	}
	for _, c := range m.Cells() {
		if !c.Visited {
			t.Fatalf("cell (%d,%d) not visited", c.X, c.Y)
		}
		if c.Distance != c.X+c.Y {
			t.Fatalf("cell (%d,%d) distance = %d, want %d", c.X, c.Y, c.Distance, c.X+c.Y)
		}
		if c.GenerationTime != Instant {
			t.Fatalf("cell (%d,%d) generation time = %d, want %d", c.X, c.Y, c.GenerationTime, Instant)
		}
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestNewSeedsFrontierFromStart(t *testing.T) {
	opts := DefaultOptions(5, 5)
	opts.Start = 12
	m := newSeeded(opts, 1)
	if m.Visited() != 1 || !m.Cell(12).Visited {
		t.Fatal("only the start cell should be visited")
	}
	for _, n := range []int{7, 11, 13, 17} {
		if !m.InFrontier(n) {
			t.Fatalf("neighbour %d missing from frontier", n)
		}
	}
	if m.FrontierLen() != 4 {
		t.Fatalf("frontier len = %d, want 4", m.FrontierLen())
	}
	if c := m.Cell(0); c.GenerationTime != Unset {
		t.Fatalf("unvisited generation time = %d, want %d", c.GenerationTime, Unset)
	}
}

func TestRoomPerimeter(t *testing.T) {
	opts := DefaultOptions(6, 6)
	opts.Start = 0
	m := newSeeded(opts, 3)
	if !m.placeRoom(1, 1, 3, 3) {
		t.Fatal("3x3 room should fit at (1,1)")
	}
	id := m.Rooms()[0]
	s := m.Structure(id)
	if s.Kind != KindRoom {
		t.Fatalf("kind = %s, want room", s.Kind)
	}
	if len(s.Perimeter) != 12 {
		t.Fatalf("perimeter records = %d, want 12", len(s.Perimeter))
	}
	center := m.Grid().Index(2, 2)
	for _, d := range Directions {
		if s.HasSide(center, d) {
			t.Fatalf("center cell has a %s perimeter record", d)
		}
	}
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if got := m.Cell(m.Grid().Index(x, y)).Structure; got != id {
				t.Fatalf("cell (%d,%d) structure = %d, want %d", x, y, got, id)
			}
		}
	}
	if m.placeRoom(2, 2, 3, 3) {
		t.Fatal("overlapping room should be rejected")
	}
	if m.placeRoom(4, 4, 3, 3) {
		t.Fatal("room leaving the grid should be rejected")
	}
}

func TestOversizedRoomIsSkipped(t *testing.T) {
	opts := DefaultOptions(4, 4)
	opts.Rooms = 2
	opts.RoomWidth = 5
	opts.RoomHeight = 5
	m := newSeeded(opts, 8)
	if m.RoomsPlaced() != 0 {
		t.Fatalf("rooms placed = %d, want 0", m.RoomsPlaced())
	}
	m.Run()
	if err := m.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestRoomsProducePerfectMaze(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		opts := DefaultOptions(24, 18)
		opts.Rooms = 6
		opts.RoomWidth = 4
		opts.RoomHeight = 3
		m := newSeeded(opts, seed)
		m.Run()
		if err := m.Validate(); err != nil {
			t.Fatalf("seed %d: %v\n%s", seed, err, m)
		}
		for _, id := range m.Rooms() {
			s := m.Structure(id)
			if s.OpenCount() == 0 {
				t.Fatalf("seed %d: room %d has no entrance", seed, id)
			}
			if !m.RoomRevealed(id) {
				t.Fatalf("seed %d: room %d not revealed after Run", seed, id)
			}
		}
	}
}

func TestRoomsNeverOverlap(t *testing.T) {
	opts := DefaultOptions(20, 20)
	opts.Rooms = 10
	opts.RoomWidth = 5
	opts.RoomHeight = 5
	m := newSeeded(opts, 77)
	covered := make(map[int]StructureID)
	for _, id := range m.Rooms() {
		s := m.Structure(id)
		for y := s.Y; y < s.Y+s.H; y++ {
			for x := s.X; x < s.X+s.W; x++ {
				i := m.Grid().Index(x, y)
				if prev, ok := covered[i]; ok {
					t.Fatalf("cell (%d,%d) in rooms %d and %d", x, y, prev, id)
				}
				covered[i] = id
			}
		}
	}
}

func TestSameSeedSameMaze(t *testing.T) {
	opts := DefaultOptions(15, 12)
	opts.Rooms = 3
	a := newSeeded(opts, 2024)
	b := newSeeded(opts, 2024)
	a.Run()
	b.Run()
	if a.String() != b.String() {
		t.Fatalf("mazes differ:\n%s\n%s", a, b)
	}
	if a.Start() != b.Start() {
		t.Fatalf("start %d != %d", a.Start(), b.Start())
	}
}

func TestStepMatchesRun(t *testing.T) {
	opts := DefaultOptions(12, 9)
	opts.Rooms = 2
	opts.RoomWidth = 3
	opts.RoomHeight = 3
	stepped := newSeeded(opts, 5)
	batch := newSeeded(opts, 5)

	now := int64(1)
	for {
		if _, ok := stepped.Step(now); !ok {
			break
		}
		if stepped.FrontierLen() != len(stepped.Frontier()) {
			t.Fatal("frontier length mismatch")
		}
		now++
	}
	batch.Run()

	for i := range batch.Cells() {
		if stepped.Walls(i) != batch.Walls(i) {
			t.Fatalf("cell %d walls differ: %v vs %v", i, stepped.Walls(i), batch.Walls(i))
		}
		if stepped.Cell(i).Distance != batch.Cell(i).Distance {
			t.Fatalf("cell %d distance differs", i)
		}
	}
	if stepped.Cell(stepped.Start()).GenerationTime != Instant {
		t.Fatal("start cell should carry the instant timestamp")
	}
}

func TestFrontierHoldsOnlyUnvisitedCells(t *testing.T) {
	opts := DefaultOptions(10, 10)
	opts.Rooms = 2
	m := newSeeded(opts, 11)
	for {
		for _, c := range m.Frontier() {
			if m.Cell(c).Visited {
				t.Fatalf("visited cell %d in frontier", c)
			}
		}
		if _, ok := m.Step(0); !ok {
			break
		}
	}
}

func TestWallsAreSymmetric(t *testing.T) {
	opts := DefaultOptions(9, 7)
	m := newSeeded(opts, 13)
	m.Run()
	g := m.Grid()
	for i := 0; i < g.Len(); i++ {
		for _, d := range Directions {
			n, ok := m.neighbor(i, d)
			if !ok {
				if !m.WallAt(i, d) {
					t.Fatalf("border wall %s of cell %d is open", d, i)
				}
				continue
			}
			if m.WallAt(i, d) != m.WallAt(n, d.Opposite()) {
				t.Fatalf("walls between %d and %d disagree", i, n)
			}
		}
	}
}

func TestValidateRejectsUnfinishedMaze(t *testing.T) {
	m := newSeeded(DefaultOptions(4, 4), 1)
	if err := m.Validate(); !errors.Is(err, ErrFrontierNotEmpty) {
		t.Fatalf("err = %v, want ErrFrontierNotEmpty", err)
	}
}

func TestValidateDetectsCycle(t *testing.T) {
	opts := DefaultOptions(3, 3)
	opts.Start = 0
	m := newSeeded(opts, 4)
	m.Run()
	for i := 0; i < 9; i++ {
		if n, ok := m.neighbor(i, East); ok && m.WallAt(i, East) {
			m.removeWall(i, n)
			break
		}
		if n, ok := m.neighbor(i, South); ok && m.WallAt(i, South) {
			m.removeWall(i, n)
			break
		}
	}
	if err := m.Validate(); !errors.Is(err, ErrCycle) {
		t.Fatalf("err = %v, want ErrCycle", err)
	}
}

func TestStringDrawsBorder(t *testing.T) {
	m := newSeeded(DefaultOptions(3, 2), 1)
	m.Run()
	lines := strings.Split(strings.TrimSpace(m.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(lines))
	}
	if lines[0] != "+--+--+--+" || lines[4] != "+--+--+--+" {
		t.Fatalf("unexpected border:\n%s", m)
	}
}
