package world

// Room represents a rectangular room in a dungeon. The outer rectangle is the
// room's wall footprint; only the interior is carved to floor.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return (2*r.X + r.Width) / 2, (2*r.Y + r.Height) / 2
}

// Contains returns true if the given point is inside the room's interior.
func (r Room) Contains(x, y int) bool {
	return x > r.X && x < r.X+r.Width && y > r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
// Touching borders count as an overlap.
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}
