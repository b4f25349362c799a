package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/telemetry"
)

const (
	// Default world dimensions
	DefaultWorldWidth  = 40
	DefaultWorldHeight = 30

	blobCount      = 60
	blobMinSize    = 2
	blobMaxSize    = 5
	townCount      = 20
	dungeonChance  = 0.5
	maxDungeons    = 3
	entranceMargin = 5
)

// Biome is the dominant terrain of a world cell.
type Biome uint8

const (
	BiomePlain Biome = iota
	BiomeForest
	BiomeMountain
	BiomeDesert
	BiomeWater
)

// blobBiomes are the biomes grown over the default plain.
var blobBiomes = []Biome{BiomeForest, BiomeMountain, BiomeDesert, BiomeWater}

// Tile returns the tile kind used to draw the biome.
func (b Biome) Tile() TileKind {
	switch b {
	case BiomeForest:
		return TileForest
	case BiomeMountain:
		return TileMountain
	case BiomeDesert:
		return TileDesert
	case BiomeWater:
		return TileWater
	default:
		return TilePlain
	}
}

// String returns the biome's display name.
func (b Biome) String() string {
	return b.Tile().String()
}

// Coord addresses a cell on the world map.
type Coord struct {
	X, Y int
}

// Cell is a single world map cell.
type Cell struct {
	Biome            Biome
	IsTown           bool
	DungeonEntrances []Point // Local map positions reserved for dungeon entrances
	Name             string
}

// HasDungeon returns true if the cell has at least one dungeon entrance.
func (c *Cell) HasDungeon() bool {
	return len(c.DungeonEntrances) > 0
}

// WorldMap is the fixed-size grid of world cells.
type WorldMap struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// InBounds returns true if the coordinate addresses a cell on the map.
func (w *WorldMap) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < w.Width && c.Y >= 0 && c.Y < w.Height
}

// Cell returns the cell at the coordinate, or nil if out of bounds.
func (w *WorldMap) Cell(c Coord) *Cell {
	if !w.InBounds(c) {
		return nil
	}
	return &w.Cells[c.Y][c.X]
}

// Center returns the coordinate of the middle cell.
func (w *WorldMap) Center() Coord {
	return Coord{X: w.Width / 2, Y: w.Height / 2}
}

// GenerateWorld builds a world map. The result depends only on the rng stream.
func GenerateWorld(ctx context.Context, width, height int, rng *rand.Rand) *WorldMap {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	w := &WorldMap{
		Width:  width,
		Height: height,
		Cells:  make([][]Cell, height),
	}
	for y := range w.Cells {
		w.Cells[y] = make([]Cell, width)
	}

	for i := 0; i < blobCount; i++ {
		biome := blobBiomes[rng.Intn(len(blobBiomes))]
		size := blobMinSize + rng.Intn(blobMaxSize-blobMinSize+1)
		start := Coord{X: rng.Intn(width), Y: rng.Intn(height)}
		w.growBlob(start, size, biome, rng)
	}

	towns := 0
	for i := 0; i < townCount; i++ {
		c := w.Cell(Coord{X: rng.Intn(width), Y: rng.Intn(height)})
		if !c.IsTown {
			towns++
		}
		c.IsTown = true
	}

	dungeonCells := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() >= dungeonChance {
				continue
			}
			n := 1 + rng.Intn(maxDungeons)
			entrances := make([]Point, 0, n)
			for j := 0; j < n; j++ {
				entrances = append(entrances, randomEntrancePoint(rng))
			}
			w.Cells[y][x].DungeonEntrances = entrances
			dungeonCells++
		}
	}

	span.SetAttributes(
		attribute.Int("world.width", width),
		attribute.Int("world.height", height),
		attribute.Int("world.town_count", towns),
		attribute.Int("world.dungeon_cells", dungeonCells),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return w
}

// growBlob spreads a biome from start using a frontier queue. There is no
// visited set: size bounds the number of pops, not the area covered.
func (w *WorldMap) growBlob(start Coord, size int, biome Biome, rng *rand.Rand) {
	frontier := []Coord{start}
	for i := 0; i < size && len(frontier) > 0; i++ {
		c := frontier[0]
		frontier = frontier[1:]
		if !w.InBounds(c) {
			continue
		}
		w.Cells[c.Y][c.X].Biome = biome

		neighbors := []Coord{
			{X: c.X + 1, Y: c.Y}, {X: c.X - 1, Y: c.Y},
			{X: c.X, Y: c.Y + 1}, {X: c.X, Y: c.Y - 1},
		}
		rng.Shuffle(len(neighbors), func(i, j int) {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		})
		frontier = append(frontier, neighbors[:2]...)
	}
}

// randomEntrancePoint picks a local position away from the map edges.
func randomEntrancePoint(rng *rand.Rand) Point {
	return Point{
		X: entranceMargin + rng.Intn(LocalWidth-2*entranceMargin),
		Y: entranceMargin + rng.Intn(LocalHeight-2*entranceMargin),
	}
}
