package entity

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/logger"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// MaxPlacementAttempts bounds the rejection sampling for one entity.
const MaxPlacementAttempts = 1000

// Population counts, inclusive.
var (
	overworldEnemyCount = gamedata.Range{3, 6}
	dungeonEnemyCount   = gamedata.Range{5, 10}
	villagerCount       = gamedata.Range{3, 6}
)

// Populator places entities on freshly generated maps. It runs only at
// generation time; cached maps keep the entities they already have.
type Populator struct {
	enemies  *gamedata.EnemyRegistry
	villager *gamedata.ClassDef
}

// NewPopulator creates a populator drawing from the given tables.
func NewPopulator(enemies *gamedata.EnemyRegistry, villager *gamedata.ClassDef) *Populator {
	return &Populator{enemies: enemies, villager: villager}
}

// placer hands out distinct tiles that satisfy accept and differ from the
// player's tile.
type placer struct {
	g        Grid
	rng      *rand.Rand
	accept   func(x, y int) bool
	occupied mapset.Set[world.Point]
}

func newPlacer(g Grid, player world.Point, rng *rand.Rand, accept func(x, y int) bool) *placer {
	p := &placer{g: g, rng: rng, accept: accept, occupied: mapset.New[world.Point]()}
	p.occupied.Put(player)
	return p
}

// next draws uniformly random tiles until one is acceptable and free. It gives
// up after MaxPlacementAttempts draws.
func (p *placer) next() (world.Point, bool) {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		pt := world.Point{X: p.rng.Intn(p.g.Width()), Y: p.rng.Intn(p.g.Height())}
		if p.occupied.Has(pt) || !p.accept(pt.X, pt.Y) {
			continue
		}
		p.occupied.Put(pt)
		return pt, true
	}
	return world.Point{}, false
}

// SpawnEnemies populates an overworld region. Bats only join the pool at night.
func (p *Populator) SpawnEnemies(g Grid, tod TimeOfDay, player world.Point, rng *rand.Rand) []*Enemy {
	pool := gamedata.PoolDay
	if tod == Night {
		pool = gamedata.PoolNight
	}
	pl := newPlacer(g, player, rng, g.Walkable)
	return p.spawnEnemies(pl, pool, overworldEnemyCount.Roll(rng), rng)
}

// SpawnDungeonEnemies populates a dungeon level. Enemies only stand on plain
// floor, never on chests or stairs.
func (p *Populator) SpawnDungeonEnemies(g Grid, player world.Point, rng *rand.Rand) []*Enemy {
	pl := newPlacer(g, player, rng, func(x, y int) bool {
		return g.At(x, y) == world.TileFloor
	})
	return p.spawnEnemies(pl, gamedata.PoolDungeon, dungeonEnemyCount.Roll(rng), rng)
}

func (p *Populator) spawnEnemies(pl *placer, pool string, count int, rng *rand.Rand) []*Enemy {
	enemies := make([]*Enemy, 0, count)
	for i := 0; i < count; i++ {
		def := p.enemies.Pick(pool, rng)
		if def == nil {
			logger.Log.WithField("pool", pool).Warn("empty enemy pool")
			break
		}
		pt, ok := pl.next()
		if !ok {
			logger.Log.WithFields(logrus.Fields{
				"pool":     pool,
				"enemy":    def.ID,
				"attempts": MaxPlacementAttempts,
			}).Warn("no free tile for enemy, skipping")
			continue
		}
		enemies = append(enemies, NewEnemy(def, pt.X, pt.Y, rng))
	}
	return enemies
}

// SpawnVillagers populates a town region.
func (p *Populator) SpawnVillagers(g Grid, player world.Point, rng *rand.Rand) []*Villager {
	count := villagerCount.Roll(rng)
	pl := newPlacer(g, player, rng, g.Walkable)
	villagers := make([]*Villager, 0, count)
	for i := 0; i < count; i++ {
		pt, ok := pl.next()
		if !ok {
			logger.Log.WithField("attempts", MaxPlacementAttempts).Warn("no free tile for villager, skipping")
			continue
		}
		villagers = append(villagers, NewVillager(p.villager, pt.X, pt.Y))
	}
	return villagers
}
