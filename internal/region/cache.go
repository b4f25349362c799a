package region

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/entity"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/logger"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/telemetry"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// Generator builds the local map of a world cell and the tile the player
// enters on.
type Generator func(ctx context.Context, cell *world.Cell, entrance world.Entrance, rng *rand.Rand) (*world.LocalMap, world.Point, error)

// Cache owns the state of every visited world cell for the whole session.
// The *State it hands out is the cached object itself: callers mutate it in
// place and the cache sees the change. There is no eviction.
type Cache struct {
	world     *world.WorldMap
	populator *entity.Populator
	generate  Generator
	states    map[world.Coord]*State
}

// NewCache creates an empty cache over the given world.
func NewCache(w *world.WorldMap, populator *entity.Populator) *Cache {
	return &Cache{
		world:     w,
		populator: populator,
		generate:  world.GenerateRegion,
		states:    make(map[world.Coord]*State),
	}
}

// SetGenerator replaces the local map generator. Tests use it to force
// generation failures.
func (c *Cache) SetGenerator(g Generator) {
	c.generate = g
}

// Enter returns the state of the cell, generating and populating it on the
// first visit. entrance and tod only matter on a miss. created reports whether
// the state was generated by this call.
func (c *Cache) Enter(ctx context.Context, coord world.Coord, entrance world.Entrance, tod entity.TimeOfDay, rng *rand.Rand) (state *State, created bool, err error) {
	ctx, span := telemetry.Tracer("region").Start(ctx, "region.enter")
	defer span.End()
	span.SetAttributes(
		attribute.Int("cell.x", coord.X),
		attribute.Int("cell.y", coord.Y),
	)

	if s, ok := c.states[coord]; ok {
		span.SetAttributes(attribute.Bool("region.cache_hit", true))
		logger.Log.WithFields(logrus.Fields{"cell_x": coord.X, "cell_y": coord.Y}).Debug("region cache hit")
		return s, false, nil
	}
	span.SetAttributes(attribute.Bool("region.cache_hit", false))

	cell := c.world.Cell(coord)
	if cell == nil {
		err := fmt.Errorf("enter region %d,%d: outside the world map", coord.X, coord.Y)
		span.RecordError(err)
		span.SetStatus(codes.Error, "out of bounds")
		return nil, false, err
	}

	m, spawn, err := c.generate(ctx, cell, entrance, rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return nil, false, fmt.Errorf("enter region %d,%d: %w", coord.X, coord.Y, err)
	}

	s := &State{
		Scene: Scene{Map: m, Player: spawn},
		Coord: coord,
		Biome: cell.Biome,
	}
	if cell.IsTown {
		if tod == entity.Day {
			s.Villagers = c.populator.SpawnVillagers(m, spawn, rng)
		}
	} else {
		s.Enemies = c.populator.SpawnEnemies(m, tod, spawn, rng)
	}
	c.states[coord] = s

	span.SetAttributes(
		attribute.Int("region.enemies", len(s.Enemies)),
		attribute.Int("region.villagers", len(s.Villagers)),
	)
	logger.Log.WithFields(logrus.Fields{
		"cell_x":    coord.X,
		"cell_y":    coord.Y,
		"biome":     cell.Biome.String(),
		"enemies":   len(s.Enemies),
		"villagers": len(s.Villagers),
	}).Info("region generated")

	return s, true, nil
}

// Save records state as the ground truth for coord. Since Enter hands out the
// cached object, saving a state obtained from Enter is a no-op re-assignment.
func (c *Cache) Save(coord world.Coord, state *State) {
	c.states[coord] = state
}

// Get returns the cached state of a cell without generating it.
func (c *Cache) Get(coord world.Coord) (*State, bool) {
	s, ok := c.states[coord]
	return s, ok
}

// Len returns the number of cached cells.
func (c *Cache) Len() int {
	return len(c.states)
}
