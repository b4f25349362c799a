package region

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/entity"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/logger"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/telemetry"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// maxDepthRange bounds the randomly chosen depth of a dungeon.
var maxDepthRange = gamedata.Range{2, 5}

// DungeonGenerator builds one dungeon level.
type DungeonGenerator func(ctx context.Context, rng *rand.Rand, finalLevel bool) *world.Dungeon

// DungeonCache holds the levels of the dungeon being explored, keyed by depth.
// Reset discards every level, so each visit through an entrance gets a fresh
// dungeon while levels persist for the length of that visit.
type DungeonCache struct {
	populator *entity.Populator
	generate  DungeonGenerator
	levels    map[int]*Level

	Depth    int
	MaxDepth int
	Entrance world.Point // Overworld tile the dungeon was entered from
}

// NewDungeonCache creates an inactive dungeon cache.
func NewDungeonCache(populator *entity.Populator) *DungeonCache {
	return &DungeonCache{
		populator: populator,
		generate:  world.GenerateDungeon,
		levels:    make(map[int]*Level),
	}
}

// SetGenerator replaces the dungeon level generator.
func (d *DungeonCache) SetGenerator(g DungeonGenerator) {
	d.generate = g
}

// Reset starts a new dungeon visit from the given overworld tile: all levels
// are dropped, depth becomes 1 and a new maximum depth is drawn.
func (d *DungeonCache) Reset(entrance world.Point, rng *rand.Rand) {
	d.levels = make(map[int]*Level)
	d.Depth = 1
	d.MaxDepth = maxDepthRange.Roll(rng)
	d.Entrance = entrance
}

// Enter returns the level at depth, generating it on first visit. Levels
// shallower than MaxDepth get stairs down.
func (d *DungeonCache) Enter(ctx context.Context, depth int, rng *rand.Rand) (level *Level, created bool) {
	ctx, span := telemetry.Tracer("region").Start(ctx, "dungeon.enter_level")
	defer span.End()
	span.SetAttributes(
		attribute.Int("dungeon.depth", depth),
		attribute.Int("dungeon.max_depth", d.MaxDepth),
	)

	d.Depth = depth
	if l, ok := d.levels[depth]; ok {
		span.SetAttributes(attribute.Bool("dungeon.cache_hit", true))
		return l, false
	}
	span.SetAttributes(attribute.Bool("dungeon.cache_hit", false))

	dg := d.generate(ctx, rng, depth >= d.MaxDepth)
	start := world.Point{X: dg.StartX, Y: dg.StartY}
	l := &Level{
		Scene: Scene{
			Map:     dg.Map,
			Player:  start,
			Enemies: d.populator.SpawnDungeonEnemies(dg.Map, start, rng),
		},
		Depth: depth,
	}
	d.levels[depth] = l

	logger.Log.WithFields(logrus.Fields{
		"depth":     depth,
		"max_depth": d.MaxDepth,
		"rooms":     len(dg.Rooms),
		"enemies":   len(l.Enemies),
	}).Info("dungeon level generated")

	return l, true
}

// Descend moves one level down. exited is true when the player went past the
// deepest level; the visit is then over and no level is returned.
func (d *DungeonCache) Descend(ctx context.Context, rng *rand.Rand) (level *Level, exited bool) {
	next := d.Depth + 1
	if next > d.MaxDepth {
		d.Depth = next
		return nil, true
	}
	level, _ = d.Enter(ctx, next, rng)
	return level, false
}

// Len returns the number of generated levels in the current visit.
func (d *DungeonCache) Len() int {
	return len(d.levels)
}
