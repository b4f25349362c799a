package entity

import (
	"math/rand"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// AggroRange is the taxicab distance within which aggressive enemies chase.
const AggroRange = 10

// TriggerKind identifies what a collision with the player starts.
type TriggerKind int

const (
	TriggerCombat TriggerKind = iota
	TriggerTrade
)

// Trigger reports that an entity ended its move on the player's tile.
type Trigger struct {
	Kind     TriggerKind
	Enemy    *Enemy
	Villager *Villager
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Step moves the enemy one tile according to its behavior.
func (e *Enemy) Step(g Grid, player world.Point, rng *rand.Rand) {
	switch e.Behavior {
	case gamedata.BehaviorAggressive:
		e.chase(g, player)
	case gamedata.BehaviorRandom:
		e.X, e.Y = wander(g, e.X, e.Y, rng)
	}
}

// chase steps along the axis with the larger offset to the player; ties step
// vertically. Blocked steps are not retried on the other axis.
func (e *Enemy) chase(g Grid, player world.Point) {
	dx, dy := player.X-e.X, player.Y-e.Y
	if abs(dx)+abs(dy) > AggroRange || (dx == 0 && dy == 0) {
		return
	}
	nx, ny := e.X, e.Y
	if abs(dx) > abs(dy) {
		nx += sign(dx)
	} else {
		ny += sign(dy)
	}
	if g.Walkable(nx, ny) {
		e.X, e.Y = nx, ny
	}
}

func sign(n int) int {
	if n > 0 {
		return 1
	}
	return -1
}

// wander picks an offset in {-1,0,1}² and takes it if the target is walkable.
func wander(g Grid, x, y int, rng *rand.Rand) (int, int) {
	nx := x + rng.Intn(3) - 1
	ny := y + rng.Intn(3) - 1
	if g.Walkable(nx, ny) {
		return nx, ny
	}
	return x, y
}

// Step moves the villager by the random rule.
func (v *Villager) Step(g Grid, rng *rand.Rand) {
	v.X, v.Y = wander(g, v.X, v.Y, rng)
}

// MoveAll runs one world turn of entity movement: every enemy then every
// villager steps once. Collisions with the player are returned in order; the
// caller decides which to act on.
func MoveAll(g Grid, player world.Point, enemies []*Enemy, villagers []*Villager, rng *rand.Rand) []Trigger {
	var triggers []Trigger
	for _, e := range enemies {
		e.Step(g, player, rng)
		if e.X == player.X && e.Y == player.Y {
			triggers = append(triggers, Trigger{Kind: TriggerCombat, Enemy: e})
		}
	}
	for _, v := range villagers {
		v.Step(g, rng)
		if v.X == player.X && v.Y == player.Y {
			triggers = append(triggers, Trigger{Kind: TriggerTrade, Villager: v})
		}
	}
	return triggers
}
