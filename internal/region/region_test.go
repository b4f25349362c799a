package region

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/entity"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

func testPopulator(t *testing.T) *entity.Populator {
	t.Helper()
	tables, err := gamedata.LoadTables()
	if err != nil {
		t.Fatalf("LoadTables() error: %v", err)
	}
	return entity.NewPopulator(tables.Enemies, &tables.Villager)
}

// flatWorld is a small all-plain world with a town at (1,0).
func flatWorld() *world.WorldMap {
	w := &world.WorldMap{Width: 3, Height: 2, Cells: make([][]world.Cell, 2)}
	for y := range w.Cells {
		w.Cells[y] = make([]world.Cell, 3)
	}
	w.Cells[0][1].IsTown = true
	return w
}

func TestCacheEnterReturnsSameState(t *testing.T) {
	ctx := context.Background()
	c := NewCache(flatWorld(), testPopulator(t))
	rng := rand.New(rand.NewSource(1))
	coord := world.Coord{X: 0, Y: 0}

	first, created, err := c.Enter(ctx, coord, world.EntranceNone, entity.Day, rng)
	if err != nil {
		t.Fatalf("Enter() error: %v", err)
	}
	if !created {
		t.Error("first Enter() should generate")
	}
	if len(first.Enemies) < 3 || len(first.Villagers) != 0 {
		t.Errorf("wild cell: %d enemies %d villagers", len(first.Enemies), len(first.Villagers))
	}

	second, created, err := c.Enter(ctx, coord, world.EntranceLeft, entity.Night, rng)
	if err != nil {
		t.Fatalf("Enter() error: %v", err)
	}
	if created {
		t.Error("second Enter() should hit the cache")
	}
	if first != second {
		t.Error("Enter() on a visited cell returned a different object")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheKeepsMutations(t *testing.T) {
	ctx := context.Background()
	c := NewCache(flatWorld(), testPopulator(t))
	rng := rand.New(rand.NewSource(2))
	coord := world.Coord{X: 2, Y: 1}

	s, _, err := c.Enter(ctx, coord, world.EntranceNone, entity.Day, rng)
	if err != nil {
		t.Fatalf("Enter() error: %v", err)
	}
	n := len(s.Enemies)
	s.RemoveEnemy(s.Enemies[0])
	s.Map.Set(1, 1, world.TileFloor)
	s.Player = world.Point{X: 7, Y: 7}
	c.Save(coord, s)

	again, _, _ := c.Enter(ctx, coord, world.EntranceNone, entity.Day, rng)
	if len(again.Enemies) != n-1 {
		t.Errorf("enemies after revisit = %d, want %d", len(again.Enemies), n-1)
	}
	if again.Map.At(1, 1) != world.TileFloor {
		t.Error("tile change was lost")
	}
	if again.Player != (world.Point{X: 7, Y: 7}) {
		t.Errorf("player = %v, want saved position", again.Player)
	}
}

func TestCacheTownPopulation(t *testing.T) {
	ctx := context.Background()
	town := world.Coord{X: 1, Y: 0}

	day := NewCache(flatWorld(), testPopulator(t))
	s, _, err := day.Enter(ctx, town, world.EntranceNone, entity.Day, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Enter() error: %v", err)
	}
	if len(s.Villagers) < 3 || len(s.Enemies) != 0 {
		t.Errorf("town by day: %d villagers %d enemies", len(s.Villagers), len(s.Enemies))
	}
	if s.Map.Count(world.TileDoor) == 0 {
		t.Error("town map has no doors")
	}

	night := NewCache(flatWorld(), testPopulator(t))
	s, _, _ = night.Enter(ctx, town, world.EntranceNone, entity.Night, rand.New(rand.NewSource(3)))
	if len(s.Villagers) != 0 || len(s.Enemies) != 0 {
		t.Errorf("town by night: %d villagers %d enemies, want none", len(s.Villagers), len(s.Enemies))
	}
}

func TestCacheGenerationFailure(t *testing.T) {
	c := NewCache(flatWorld(), testPopulator(t))
	c.SetGenerator(func(_ context.Context, cell *world.Cell, e world.Entrance, _ *rand.Rand) (*world.LocalMap, world.Point, error) {
		return nil, world.Point{}, &world.GenerationError{Biome: cell.Biome, Entrance: e, Attempts: 1}
	})

	_, _, err := c.Enter(context.Background(), world.Coord{}, world.EntranceUp, entity.Day, rand.New(rand.NewSource(1)))
	if !errors.Is(err, world.ErrNoWalkableTile) {
		t.Errorf("Enter() error = %v, want ErrNoWalkableTile", err)
	}
	if c.Len() != 0 {
		t.Error("failed generation must not be cached")
	}
}

func TestCacheOutOfBounds(t *testing.T) {
	c := NewCache(flatWorld(), testPopulator(t))
	if _, _, err := c.Enter(context.Background(), world.Coord{X: 5, Y: 0}, world.EntranceNone, entity.Day, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Enter() outside the world should fail")
	}
}

func TestSceneLookups(t *testing.T) {
	e := &entity.Enemy{Name: "Goblin", X: 1, Y: 2}
	v := &entity.Villager{Name: "Villager", X: 3, Y: 4}
	s := Scene{Enemies: []*entity.Enemy{e}, Villagers: []*entity.Villager{v}}

	if s.EnemyAt(1, 2) != e || s.EnemyAt(0, 0) != nil {
		t.Error("EnemyAt() lookup wrong")
	}
	if s.VillagerAt(3, 4) != v || s.VillagerAt(1, 2) != nil {
		t.Error("VillagerAt() lookup wrong")
	}
	if !s.RemoveEnemy(e) || s.RemoveEnemy(e) {
		t.Error("RemoveEnemy() should succeed once")
	}
	if len(s.Enemies) != 0 {
		t.Errorf("enemies left = %d", len(s.Enemies))
	}
}
