package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/telemetry"
)

// terrainRule is the per-tile draw for one biome: a tile becomes one of kinds
// while the uniform draw is below the matching cumulative threshold.
type terrainRule struct {
	kinds      []TileKind
	thresholds []float64
	fallback   TileKind
}

var terrainRules = map[Biome]terrainRule{
	BiomePlain:    {[]TileKind{TileForest, TileMountain}, []float64{0.05, 0.06}, TilePlain},
	BiomeForest:   {[]TileKind{TileForest}, []float64{0.7}, TilePlain},
	BiomeMountain: {[]TileKind{TileMountain}, []float64{0.7}, TilePlain},
	BiomeDesert:   {[]TileKind{TileMountain}, []float64{0.1}, TileDesert},
	BiomeWater:    {[]TileKind{TileWater}, []float64{0.9}, TilePlain},
}

// terrainTile draws one tile for the biome.
func terrainTile(biome Biome, rng *rand.Rand) TileKind {
	rule, ok := terrainRules[biome]
	if !ok {
		return TilePlain
	}
	chance := rng.Float64()
	for i, limit := range rule.thresholds {
		if chance < limit {
			return rule.kinds[i]
		}
	}
	return rule.fallback
}

// GenerateRegion synthesizes the local map of a world cell and the position the
// player enters it at. The spawn is placed on the edge named by entrance, or at
// the centre when entrance is EntranceNone.
func GenerateRegion(ctx context.Context, cell *Cell, entrance Entrance, rng *rand.Rand) (*LocalMap, Point, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "localmap.generate")
	defer span.End()

	startTime := time.Now()

	m := NewLocalMap(LocalWidth, LocalHeight, TilePlain)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.tiles[y][x] = terrainTile(cell.Biome, rng)
		}
	}

	var buildings []Building
	if cell.IsTown {
		buildings = PlaceTown(m, rng)
	}

	for _, p := range cell.DungeonEntrances {
		m.Set(p.X, p.Y, TileDungeonEntrance)
	}

	spawn, err := FindSpawn(m, cell.Biome, entrance, rng)

	span.SetAttributes(
		attribute.String("localmap.biome", cell.Biome.String()),
		attribute.Bool("localmap.town", cell.IsTown),
		attribute.Int("localmap.buildings", len(buildings)),
		attribute.Int("localmap.dungeon_entrances", len(cell.DungeonEntrances)),
		attribute.String("localmap.entrance", entrance.String()),
		attribute.Int64("localmap.generation_ms", time.Since(startTime).Milliseconds()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "no spawn tile")
		return nil, Point{}, err
	}

	return m, spawn, nil
}

// entryPoint returns the first spawn candidate for an entrance edge.
func entryPoint(m *LocalMap, entrance Entrance) Point {
	switch entrance {
	case EntranceLeft:
		return Point{X: 0, Y: m.height / 2}
	case EntranceRight:
		return Point{X: m.width - 1, Y: m.height / 2}
	case EntranceUp:
		return Point{X: m.width / 2, Y: 0}
	case EntranceDown:
		return Point{X: m.width / 2, Y: m.height - 1}
	default:
		return Point{X: m.width / 2, Y: m.height / 2}
	}
}

// FindSpawn searches for a walkable entry tile. It walks inward from the
// entrance edge one tile per attempt and, once the walk leaves the map (or when
// there is no entrance), samples uniformly random tiles. The whole search is
// capped at width*height attempts.
func FindSpawn(m *LocalMap, biome Biome, entrance Entrance, rng *rand.Rand) (Point, error) {
	budget := m.width * m.height
	p := entryPoint(m, entrance)
	dx, dy := entrance.inward()
	walking := entrance != EntranceNone

	for attempt := 0; attempt < budget; attempt++ {
		if m.Walkable(p.X, p.Y) {
			return p, nil
		}
		if walking && m.InBounds(p.X+dx, p.Y+dy) {
			p = Point{X: p.X + dx, Y: p.Y + dy}
			continue
		}
		walking = false
		p = Point{X: rng.Intn(m.width), Y: rng.Intn(m.height)}
	}
	if m.Walkable(p.X, p.Y) {
		return p, nil
	}

	return Point{}, &GenerationError{Biome: biome, Entrance: entrance, Attempts: budget}
}
