// Package region holds the live state of visited world cells and of the
// levels of the dungeon currently being explored.
package region

import (
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/entity"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// Scene is one playable map with everything standing on it.
type Scene struct {
	Map       *world.LocalMap
	Player    world.Point
	Enemies   []*entity.Enemy
	Villagers []*entity.Villager
}

// EnemyAt returns the enemy on the tile, or nil.
func (s *Scene) EnemyAt(x, y int) *entity.Enemy {
	for _, e := range s.Enemies {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// VillagerAt returns the villager on the tile, or nil.
func (s *Scene) VillagerAt(x, y int) *entity.Villager {
	for _, v := range s.Villagers {
		if v.X == x && v.Y == y {
			return v
		}
	}
	return nil
}

// RemoveEnemy drops a defeated enemy from the scene. It reports whether the
// enemy was present.
func (s *Scene) RemoveEnemy(target *entity.Enemy) bool {
	for i, e := range s.Enemies {
		if e == target {
			s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// State is the ground truth for one visited world cell.
type State struct {
	Scene
	Coord world.Coord
	Biome world.Biome
}

// Level is one depth of the dungeon currently being explored.
type Level struct {
	Scene
	Depth int
}
