package world

const (
	// Dimensions of every region map and dungeon level.
	LocalWidth  = 100
	LocalHeight = 100

	// Building interiors are a separate, smaller fixed size.
	InteriorSize = 20
)

// Point is a position on a local map.
type Point struct {
	X, Y int
}

// LocalMap is a fixed-size grid of tiles. Its dimensions never change after creation.
type LocalMap struct {
	width  int
	height int
	tiles  [][]TileKind
}

// NewLocalMap creates a map of the given size filled with a single tile kind.
func NewLocalMap(width, height int, fill TileKind) *LocalMap {
	tiles := make([][]TileKind, height)
	for y := range tiles {
		tiles[y] = make([]TileKind, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}
	return &LocalMap{width: width, height: height, tiles: tiles}
}

// Width returns the number of columns.
func (m *LocalMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *LocalMap) Height() int { return m.height }

// InBounds returns true if the position lies on the map.
func (m *LocalMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the tile at the given position. Out-of-bounds positions read as wall.
func (m *LocalMap) At(x, y int) TileKind {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[y][x]
}

// Set replaces the tile at the given position. Out-of-bounds writes are ignored.
func (m *LocalMap) Set(x, y int, k TileKind) {
	if m.InBounds(x, y) {
		m.tiles[y][x] = k
	}
}

// Walkable returns true if the position is on the map and its tile can be walked on.
func (m *LocalMap) Walkable(x, y int) bool {
	return m.InBounds(x, y) && m.tiles[y][x].IsWalkable()
}

// Count returns how many tiles of the given kind the map holds.
func (m *LocalMap) Count(k TileKind) int {
	n := 0
	for y := range m.tiles {
		for _, t := range m.tiles[y] {
			if t == k {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two maps have identical dimensions and tiles.
func (m *LocalMap) Equal(other *LocalMap) bool {
	if other == nil || m.width != other.width || m.height != other.height {
		return false
	}
	for y := range m.tiles {
		for x := range m.tiles[y] {
			if m.tiles[y][x] != other.tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// NewInterior builds the inside of a free-standing building: a walled room with
// a single exit door at the bottom centre. It returns the map and the position
// just inside the door.
func NewInterior() (*LocalMap, Point) {
	m := NewLocalMap(InteriorSize, InteriorSize, TileHouseFloor)
	for y := 0; y < InteriorSize; y++ {
		for x := 0; x < InteriorSize; x++ {
			if y == 0 || y == InteriorSize-1 || x == 0 || x == InteriorSize-1 {
				m.tiles[y][x] = TileHouseWall
			}
		}
	}
	m.tiles[InteriorSize-1][InteriorSize/2] = TileDoor
	return m, Point{X: InteriorSize / 2, Y: InteriorSize - 2}
}
