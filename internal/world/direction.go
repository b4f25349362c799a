package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	NoDirection Direction = iota
	North
	East
	South
	West
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "None"
	}
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Entrance names the edge of a local map the player arrives through.
// EntranceLeft means the map is entered from its left edge, i.e. the player
// was travelling east.
type Entrance int

const (
	EntranceNone Entrance = iota
	EntranceLeft
	EntranceRight
	EntranceUp
	EntranceDown
)

// String returns the entrance name.
func (e Entrance) String() string {
	switch e {
	case EntranceLeft:
		return "left"
	case EntranceRight:
		return "right"
	case EntranceUp:
		return "up"
	case EntranceDown:
		return "down"
	default:
		return "none"
	}
}

// EntranceFor maps a world-cell step to the edge the destination map is entered from.
func EntranceFor(dx, dy int) Entrance {
	switch {
	case dx > 0:
		return EntranceLeft
	case dx < 0:
		return EntranceRight
	case dy > 0:
		return EntranceUp
	case dy < 0:
		return EntranceDown
	default:
		return EntranceNone
	}
}

// inward returns the step that moves away from the entrance edge.
func (e Entrance) inward() (dx, dy int) {
	switch e {
	case EntranceLeft:
		return 1, 0
	case EntranceRight:
		return -1, 0
	case EntranceUp:
		return 0, 1
	case EntranceDown:
		return 0, -1
	default:
		return 0, 0
	}
}
