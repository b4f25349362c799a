package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	seed := int64(12345)

	rng1 := rand.New(rand.NewSource(seed))
	rng2 := rand.New(rand.NewSource(seed))

	ctx := context.Background()
	d1 := GenerateDungeon(ctx, rng1, false)
	d2 := GenerateDungeon(ctx, rng2, false)

	// Verify same number of rooms
	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}

	// Verify rooms are in same positions
	for i := range d1.Rooms {
		if d1.Rooms[i] != d2.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, d1.Rooms[i], d2.Rooms[i])
		}
	}

	// Verify tiles are identical
	if !d1.Map.Equal(d2.Map) {
		t.Error("Dungeons generated from the same seed have different tiles")
	}

	if d1.StartX != d2.StartX || d1.StartY != d2.StartY {
		t.Errorf("Start mismatch: (%d,%d) != (%d,%d)", d1.StartX, d1.StartY, d2.StartX, d2.StartY)
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	// Generate two dungeons with different seeds - they should be different
	ctx := context.Background()
	d1 := GenerateDungeon(ctx, rand.New(rand.NewSource(12345)), false)
	d2 := GenerateDungeon(ctx, rand.New(rand.NewSource(54321)), false)

	if d1.Map.Equal(d2.Map) {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestDungeonRoomsDoNotOverlap(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 50; seed++ {
		d := GenerateDungeon(ctx, rand.New(rand.NewSource(seed)), false)
		if len(d.Rooms) == 0 {
			t.Fatalf("seed %d: no rooms accepted", seed)
		}
		for i := range d.Rooms {
			for j := i + 1; j < len(d.Rooms); j++ {
				if d.Rooms[i].Intersects(d.Rooms[j]) {
					t.Errorf("seed %d: room %d %+v overlaps room %d %+v", seed, i, d.Rooms[i], j, d.Rooms[j])
				}
			}
		}
	}
}

// reachableFrom returns every walkable tile 4-connected to start.
func reachableFrom(m *LocalMap, start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	queue := []Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range []Point{{p.X + 1, p.Y}, {p.X - 1, p.Y}, {p.X, p.Y + 1}, {p.X, p.Y - 1}} {
			if m.Walkable(n.X, n.Y) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

func TestDungeonConnectivity(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 50; seed++ {
		d := GenerateDungeon(ctx, rand.New(rand.NewSource(seed)), false)
		reachable := reachableFrom(d.Map, Point{d.StartX, d.StartY})

		walkable := 0
		for y := 0; y < d.Map.Height(); y++ {
			for x := 0; x < d.Map.Width(); x++ {
				if d.Map.Walkable(x, y) {
					walkable++
				}
			}
		}
		if reachable.Size() != walkable {
			t.Errorf("seed %d: %d of %d walkable tiles reachable from start", seed, reachable.Size(), walkable)
		}

		for i, room := range d.Rooms {
			cx, cy := room.Center()
			if !reachable.Has(Point{cx, cy}) {
				t.Errorf("seed %d: room %d center (%d,%d) not reachable", seed, i, cx, cy)
			}
		}
	}
}

func TestDungeonStartIsWalkable(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 50; seed++ {
		d := GenerateDungeon(ctx, rand.New(rand.NewSource(seed)), seed%2 == 0)
		if !d.IsPassable(d.StartX, d.StartY) {
			t.Errorf("seed %d: start (%d,%d) is %v", seed, d.StartX, d.StartY, d.Map.At(d.StartX, d.StartY))
		}
		if d.RoomIndexAt(d.StartX, d.StartY) < 0 && d.Map.At(d.StartX, d.StartY) != TileFloor {
			t.Errorf("seed %d: start is neither in a room nor on a corridor", seed)
		}
	}
}

func TestDungeonStairsOnlyBeforeFinalLevel(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 20; seed++ {
		inner := GenerateDungeon(ctx, rand.New(rand.NewSource(seed)), false)
		if got := inner.Map.Count(TileStairsDown); got != 1 {
			t.Errorf("seed %d: non-final level has %d stairs, want 1", seed, got)
		}
		if inner.Stairs == nil || inner.Map.At(inner.Stairs.X, inner.Stairs.Y) != TileStairsDown {
			t.Errorf("seed %d: Stairs = %v does not point at a stairs tile", seed, inner.Stairs)
		}

		final := GenerateDungeon(ctx, rand.New(rand.NewSource(seed)), true)
		if got := final.Map.Count(TileStairsDown); got != 0 {
			t.Errorf("seed %d: final level has %d stairs, want 0", seed, got)
		}
		if final.Stairs != nil {
			t.Errorf("seed %d: final level Stairs = %v, want nil", seed, final.Stairs)
		}
	}
}

func TestDungeonChests(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 30; seed++ {
		d := GenerateDungeon(ctx, rand.New(rand.NewSource(seed)), true)
		if len(d.Chests) > len(d.Rooms)/2 {
			t.Errorf("seed %d: %d chests for %d rooms", seed, len(d.Chests), len(d.Rooms))
		}
		if got := d.Map.Count(TileChest); got != len(d.Chests) {
			t.Errorf("seed %d: %d chest tiles, %d recorded", seed, got, len(d.Chests))
		}
		rooms := mapset.New[int]()
		for _, c := range d.Chests {
			idx := d.RoomIndexAt(c.X, c.Y)
			if idx < 0 {
				t.Errorf("seed %d: chest %v outside every room", seed, c)
				continue
			}
			if rooms.Has(idx) {
				t.Errorf("seed %d: room %d has more than one chest", seed, idx)
			}
			rooms.Put(idx)
		}
	}
}

func TestDungeonWithoutRoomsFallsBackToCenter(t *testing.T) {
	d := NewDungeon(LocalWidth, LocalHeight, rand.New(rand.NewSource(1)))
	x, y := d.findStart()
	if x != LocalWidth/2 || y != LocalHeight/2 {
		t.Errorf("findStart() on solid rock = (%d,%d), want (%d,%d)", x, y, LocalWidth/2, LocalHeight/2)
	}
}

func TestRoomIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Room
		want bool
	}{
		{"overlapping", Room{0, 0, 10, 10}, Room{5, 5, 10, 10}, true},
		{"touching edge", Room{0, 0, 10, 10}, Room{10, 0, 6, 6}, true},
		{"one tile gap", Room{0, 0, 10, 10}, Room{11, 0, 6, 6}, false},
		{"far apart", Room{0, 0, 10, 10}, Room{20, 20, 5, 5}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects() = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Intersects(tt.a); got != tt.want {
			t.Errorf("%s (reversed): Intersects() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRoomCenterAndContains(t *testing.T) {
	r := Room{X: 10, Y: 20, Width: 7, Height: 6}
	x, y := r.Center()
	if x != 13 || y != 23 {
		t.Errorf("Center() = (%d,%d), want (13,23)", x, y)
	}
	if !r.Contains(x, y) {
		t.Error("Contains(center) = false, want true")
	}
	if r.Contains(10, 20) {
		t.Error("Contains(corner) = true, want false")
	}
}
