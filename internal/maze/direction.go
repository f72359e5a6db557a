package maze

// Direction names one side of a cell.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every side in the fixed order neighbours are scanned.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the side facing d across a shared edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the grid offset of the neighbour on side d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return "?"
}
