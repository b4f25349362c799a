package entity

import (
	"math/rand"
	"testing"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

func aggressive(x, y int) *Enemy {
	return &Enemy{Name: "Goblin", X: x, Y: y, HP: 20, Behavior: gamedata.BehaviorAggressive}
}

func TestAggressiveChase(t *testing.T) {
	m := world.NewLocalMap(30, 30, world.TilePlain)
	player := world.Point{X: 10, Y: 10}

	tests := []struct {
		name       string
		from, want world.Point
	}{
		{"greater dx moves horizontally", world.Point{X: 4, Y: 8}, world.Point{X: 5, Y: 8}},
		{"greater dy moves vertically", world.Point{X: 9, Y: 16}, world.Point{X: 9, Y: 15}},
		{"tie moves vertically", world.Point{X: 13, Y: 13}, world.Point{X: 13, Y: 12}},
		{"out of range stays", world.Point{X: 0, Y: 0}, world.Point{X: 0, Y: 0}},
		{"exactly ten chases", world.Point{X: 20, Y: 10}, world.Point{X: 19, Y: 10}},
		{"adjacent steps onto player", world.Point{X: 10, Y: 11}, world.Point{X: 10, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := aggressive(tt.from.X, tt.from.Y)
			e.Step(m, player, rand.New(rand.NewSource(1)))
			if got := (world.Point{X: e.X, Y: e.Y}); got != tt.want {
				t.Errorf("Step() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggressiveBlockedDoesNotMove(t *testing.T) {
	m := world.NewLocalMap(30, 30, world.TilePlain)
	m.Set(5, 8, world.TileMountain)
	e := aggressive(4, 8)

	e.Step(m, world.Point{X: 10, Y: 10}, rand.New(rand.NewSource(1)))
	if e.X != 4 || e.Y != 8 {
		t.Errorf("blocked enemy moved to (%d,%d)", e.X, e.Y)
	}
}

func TestRandomWalkStaysWalkable(t *testing.T) {
	m := world.NewLocalMap(5, 5, world.TileWater)
	m.Set(2, 2, world.TilePlain)
	m.Set(3, 2, world.TilePlain)
	snake := &Enemy{Name: "Snake", X: 2, Y: 2, Behavior: gamedata.BehaviorRandom}
	v := &Villager{Name: "Villager", X: 3, Y: 2}

	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		snake.Step(m, world.Point{}, rng)
		v.Step(m, rng)
		if !m.Walkable(snake.X, snake.Y) || !m.Walkable(v.X, v.Y) {
			t.Fatalf("turn %d: snake (%d,%d) villager (%d,%d) left walkable ground", i, snake.X, snake.Y, v.X, v.Y)
		}
	}
}

func TestRandomWalkAtEdgeStaysInBounds(t *testing.T) {
	m := world.NewLocalMap(3, 3, world.TilePlain)
	v := &Villager{X: 0, Y: 0}
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		v.Step(m, rng)
		if !m.InBounds(v.X, v.Y) {
			t.Fatalf("villager walked off the map to (%d,%d)", v.X, v.Y)
		}
	}
}

func TestMoveAllReportsTriggers(t *testing.T) {
	m := world.NewLocalMap(20, 20, world.TilePlain)
	player := world.Point{X: 5, Y: 5}
	near := aggressive(5, 6)
	far := aggressive(19, 19)

	triggers := MoveAll(m, player, []*Enemy{far, near}, nil, rand.New(rand.NewSource(1)))
	if len(triggers) != 1 {
		t.Fatalf("MoveAll() returned %d triggers, want 1", len(triggers))
	}
	if triggers[0].Kind != TriggerCombat || triggers[0].Enemy != near {
		t.Errorf("trigger = %+v, want combat with the adjacent enemy", triggers[0])
	}
}

func TestMoveAllVillagerTrade(t *testing.T) {
	// A 1x2 corridor forces the villager to either stay or step onto the player.
	m := world.NewLocalMap(2, 1, world.TilePlain)
	player := world.Point{X: 0, Y: 0}
	v := &Villager{X: 1, Y: 0}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		v.X, v.Y = 1, 0
		triggers := MoveAll(m, player, nil, []*Villager{v}, rng)
		if v.X == 0 {
			if len(triggers) != 1 || triggers[0].Kind != TriggerTrade || triggers[0].Villager != v {
				t.Fatalf("villager on player produced %+v, want one trade trigger", triggers)
			}
			return
		}
		if len(triggers) != 0 {
			t.Fatalf("villager not on player produced %+v", triggers)
		}
	}
	t.Error("villager never stepped onto the player")
}
