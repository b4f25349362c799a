package entity

import "github.com/godofthunder8756/Valdmir-Roguelike/internal/world"

// Grid is the read-only map view entities are placed on and move over.
// *world.LocalMap satisfies it.
type Grid interface {
	Width() int
	Height() int
	At(x, y int) world.TileKind
	Walkable(x, y int) bool
}

// TimeOfDay selects the overworld enemy pool and whether villagers appear.
type TimeOfDay int

const (
	Day TimeOfDay = iota
	Night
)

// String returns "day" or "night".
func (t TimeOfDay) String() string {
	if t == Night {
		return "night"
	}
	return "day"
}
