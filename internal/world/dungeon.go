package world

import (
	"context"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/telemetry"
)

const (
	// Room placement parameters
	maxRoomAttempts = 10
	minRoomSize     = 6
	maxRoomSize     = 12

	// maxPlacementAttempts caps the search for a free floor tile inside a room.
	maxPlacementAttempts = 1000
)

// Dungeon is one generated dungeon level.
type Dungeon struct {
	Map    *LocalMap
	Rooms  []Room
	Chests []Point
	Stairs *Point // nil on the final level
	StartX int
	StartY int
	rng    *rand.Rand
}

// NewDungeon creates a new dungeon level filled with walls.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	return &Dungeon{
		Map:   NewLocalMap(width, height, TileWall),
		Rooms: make([]Room, 0),
		rng:   rng,
	}
}

// GenerateDungeon builds a full-size dungeon level. Stairs down are placed
// unless finalLevel is set.
func GenerateDungeon(ctx context.Context, rng *rand.Rand, finalLevel bool) *Dungeon {
	d := NewDungeon(LocalWidth, LocalHeight, rng)
	d.Generate(ctx, finalLevel)
	return d
}

// Generate carves rooms and corridors, places chests and stairs, and picks
// the start position.
func (d *Dungeon) Generate(ctx context.Context, finalLevel bool) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d.placeRooms()
	d.placeChests()
	if !finalLevel {
		d.placeStairs()
	}
	d.StartX, d.StartY = d.findStart()

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Map.Width()),
		attribute.Int("dungeon.height", d.Map.Height()),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.chest_count", len(d.Chests)),
		attribute.Bool("dungeon.final_level", finalLevel),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	return d.Map.Walkable(x, y)
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// placeRooms tries a fixed number of random rooms, skipping any that touch an
// accepted one, and links each new room to the previous accepted room.
func (d *Dungeon) placeRooms() {
	width, height := d.Map.Width(), d.Map.Height()

	for i := 0; i < maxRoomAttempts; i++ {
		w := minRoomSize + d.rng.Intn(maxRoomSize-minRoomSize+1)
		h := minRoomSize + d.rng.Intn(maxRoomSize-minRoomSize+1)
		x := 1 + d.rng.Intn(width-w-1)
		y := 1 + d.rng.Intn(height-h-1)
		room := Room{X: x, Y: y, Width: w, Height: h}

		overlaps := false
		for _, other := range d.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		d.carveRoom(room)
		if len(d.Rooms) > 0 {
			d.carveCorridor(d.Rooms[len(d.Rooms)-1], room)
		}
		d.Rooms = append(d.Rooms, room)
	}
}

// carveRoom sets all tiles within the room's interior to floor.
func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y + 1; y < room.Y+room.Height; y++ {
		for x := room.X + 1; x < room.X+room.Width; x++ {
			d.Map.Set(x, y, TileFloor)
		}
	}
}

// carveCorridor creates a corridor between two room centers.
func (d *Dungeon) carveCorridor(room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if d.rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.Map.Set(x, y, TileFloor)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.Map.Set(x, y, TileFloor)
	}
}

// randomInteriorPoint returns a random position strictly inside the room.
func (d *Dungeon) randomInteriorPoint(room Room) Point {
	return Point{
		X: room.X + 1 + d.rng.Intn(room.Width-1),
		Y: room.Y + 1 + d.rng.Intn(room.Height-1),
	}
}

// freeFloorIn looks for a plain floor tile in the room. It gives up after
// maxPlacementAttempts draws.
func (d *Dungeon) freeFloorIn(room Room) (Point, bool) {
	for i := 0; i < maxPlacementAttempts; i++ {
		p := d.randomInteriorPoint(room)
		if d.Map.At(p.X, p.Y) == TileFloor {
			return p, true
		}
	}
	return Point{}, false
}

// placeChests puts one chest in each of a random subset of up to half the rooms.
func (d *Dungeon) placeChests() {
	limit := len(d.Rooms) / 2
	if limit == 0 {
		return
	}
	count := 1 + d.rng.Intn(limit)

	chosen := mapset.New[int]()
	for _, idx := range d.rng.Perm(len(d.Rooms))[:count] {
		chosen.Put(idx)
	}

	for i, room := range d.Rooms {
		if !chosen.Has(i) {
			continue
		}
		p, ok := d.freeFloorIn(room)
		if !ok {
			continue
		}
		d.Map.Set(p.X, p.Y, TileChest)
		d.Chests = append(d.Chests, p)
	}
}

// placeStairs puts the stairs down inside a random room. A degenerate level
// without rooms gets its stairs at the map centre.
func (d *Dungeon) placeStairs() {
	var p Point
	if len(d.Rooms) == 0 {
		p = Point{X: d.Map.Width() / 2, Y: d.Map.Height() / 2}
	} else {
		room := d.Rooms[d.rng.Intn(len(d.Rooms))]
		var ok bool
		if p, ok = d.freeFloorIn(room); !ok {
			p = d.randomInteriorPoint(room)
			d.removeChest(p)
		}
	}
	d.Map.Set(p.X, p.Y, TileStairsDown)
	d.Stairs = &p
}

func (d *Dungeon) removeChest(p Point) {
	for i, c := range d.Chests {
		if c == p {
			d.Chests = append(d.Chests[:i], d.Chests[i+1:]...)
			return
		}
	}
}

// findStart returns the first floor tile in row-major order, or the map
// centre when the level has no floor at all.
func (d *Dungeon) findStart() (int, int) {
	for y := 0; y < d.Map.Height(); y++ {
		for x := 0; x < d.Map.Width(); x++ {
			if d.Map.At(x, y) == TileFloor {
				return x, y
			}
		}
	}
	return d.Map.Width() / 2, d.Map.Height() / 2
}
