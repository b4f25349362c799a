package world

import "math/rand"

const (
	townSize      = 20
	buildingCount = 5
	buildingSize  = 6
)

// Building is a square house placed in a town. Buildings are not checked for
// overlap, so a later one may cut through an earlier one.
type Building struct {
	X, Y int
	Size int
	Door Point
}

// PlaceTown clears a square in the middle of the map to plain and drops
// buildings at random positions inside it.
func PlaceTown(m *LocalMap, rng *rand.Rand) []Building {
	cx, cy := m.width/2, m.height/2
	left, top := cx-townSize/2, cy-townSize/2

	for y := top; y < top+townSize; y++ {
		for x := left; x < left+townSize; x++ {
			m.Set(x, y, TilePlain)
		}
	}

	buildings := make([]Building, 0, buildingCount)
	for i := 0; i < buildingCount; i++ {
		bx := left + rng.Intn(townSize-buildingSize+1)
		by := top + rng.Intn(townSize-buildingSize+1)
		buildings = append(buildings, PlaceBuilding(m, bx, by, buildingSize, rng))
	}
	return buildings
}

// PlaceBuilding draws a walled house with its top-left corner at (bx, by) and
// cuts exactly one door into a random side, away from the corners.
func PlaceBuilding(m *LocalMap, bx, by, size int, rng *rand.Rand) Building {
	for y := by; y < by+size; y++ {
		for x := bx; x < bx+size; x++ {
			if y == by || y == by+size-1 || x == bx || x == bx+size-1 {
				m.Set(x, y, TileHouseWall)
			} else {
				m.Set(x, y, TileHouseFloor)
			}
		}
	}

	offset := 1 + rng.Intn(size-2)
	var door Point
	switch rng.Intn(4) {
	case 0: // top
		door = Point{X: bx + offset, Y: by}
	case 1: // bottom
		door = Point{X: bx + offset, Y: by + size - 1}
	case 2: // left
		door = Point{X: bx, Y: by + offset}
	default: // right
		door = Point{X: bx + size - 1, Y: by + offset}
	}
	m.Set(door.X, door.Y, TileDoor)

	return Building{X: bx, Y: by, Size: size, Door: door}
}
