package game

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/entity"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/region"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// stepOn runs whatever the tile the player just stepped onto triggers. from is
// the tile the player came from.
func (s *Session) stepOn(ctx context.Context, kind world.TileKind, from world.Point) {
	at := s.scene.Player
	if e := s.scene.EnemyAt(at.X, at.Y); e != nil {
		s.startCombat(e)
		return
	}

	switch kind {
	case world.TileDoor:
		switch s.state {
		case StateRegion:
			s.enterBuilding(from)
		case StateInStructure:
			s.exitBuilding()
		}
	case world.TileDungeonEntrance:
		if s.state == StateRegion {
			s.enterDungeon(ctx, at)
		}
	case world.TileStairsDown:
		if s.state == StateDungeon {
			s.descend(ctx)
		}
	case world.TileChest:
		s.openChest(at)
	}
}

// leaveRegion moves to the neighbouring world cell. Outside the world, or when
// the destination cannot be generated, nothing changes.
func (s *Session) leaveRegion(ctx context.Context, dx, dy int) {
	dest := world.Coord{X: s.current.X + dx, Y: s.current.Y + dy}
	if !s.world.InBounds(dest) {
		s.say("Cannot leave the world boundaries")
		return
	}

	s.regions.Save(s.current, s.region)
	st, _, err := s.regions.Enter(ctx, dest, world.EntranceFor(dx, dy), s.clock.TimeOfDay(), s.rng)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"cell_x": dest.X,
			"cell_y": dest.Y,
		}).Warn("region generation failed")
		s.say("Cannot enter region: %v", err)
		return
	}
	s.activateRegion(dest, st)
	s.say("Entered new region: %s", st.Biome)
}

// enterBuilding pushes the current scene and moves into a fresh interior.
// Leaving puts the player back on returnTo, outside the door.
func (s *Session) enterBuilding(returnTo world.Point) {
	s.structures = append(s.structures, structureFrame{
		scene:    s.scene,
		state:    s.state,
		coord:    s.current,
		returnTo: returnTo,
	})
	interior, spawn := world.NewInterior()
	s.scene = &region.Scene{Map: interior, Player: spawn}
	s.state = StateInStructure
	s.player.SetPosition(spawn.X, spawn.Y)
	s.say("You have entered a building.")
}

func (s *Session) exitBuilding() {
	if len(s.structures) == 0 {
		s.say("Cannot exit, no previous map.")
		return
	}
	top := s.structures[len(s.structures)-1]
	s.structures = s.structures[:len(s.structures)-1]
	s.scene = top.scene
	s.state = top.state
	s.current = top.coord
	s.moveTo(top.returnTo)
	s.say("You have exited the building.")
}

// enterDungeon starts a fresh dungeon visit from the entrance tile at.
func (s *Session) enterDungeon(ctx context.Context, at world.Point) {
	s.dungeon.Reset(at, s.rng)
	level, _ := s.dungeon.Enter(ctx, 1, s.rng)
	s.activateLevel(level)
	s.log.WithFields(logrus.Fields{
		"cell_x":    s.current.X,
		"cell_y":    s.current.Y,
		"max_depth": s.dungeon.MaxDepth,
	}).Info("dungeon entered")
	s.say("You enter the dungeon.")
}

func (s *Session) descend(ctx context.Context) {
	level, exited := s.dungeon.Descend(ctx, s.rng)
	if exited {
		s.exitDungeon()
		return
	}
	s.activateLevel(level)
	s.say("You descend to level %d.", level.Depth)
}

// exitDungeon returns to the region the dungeon was entered from, on the
// entrance tile.
func (s *Session) exitDungeon() {
	s.say("You have reached the end of the dungeon.")
	s.level = nil
	s.scene = &s.region.Scene
	s.state = StateRegion
	s.moveTo(s.dungeon.Entrance)
	s.log.WithField("depth", s.dungeon.Depth).Info("dungeon exited")
}

func (s *Session) activateLevel(level *region.Level) {
	s.level = level
	s.scene = &level.Scene
	s.state = StateDungeon
	s.moveTo(level.Player)
}

// openChest turns the chest into floor and hands out one piece of loot.
func (s *Session) openChest(at world.Point) {
	s.scene.Map.Set(at.X, at.Y, world.TileFloor)
	if s.rng.Intn(2) == 0 {
		amount := s.tables.Items.ChestGold().Roll(s.rng)
		s.player.Gold += amount
		s.say("You found %d gold in the chest!", amount)
		return
	}
	item := s.tables.Items.Random(s.rng)
	s.player.AddItem(item.Name)
	s.say("You found a %s in the chest!", item.Name)
}

// worldTurn advances the clock and moves every entity on the active scene
// once. The first enemy to reach the player starts combat; failing that the
// first villager starts a trade.
func (s *Session) worldTurn() {
	s.clock.Advance()
	triggers := entity.MoveAll(s.scene.Map, s.scene.Player, s.scene.Enemies, s.scene.Villagers, s.rng)

	var trade *entity.Villager
	for _, t := range triggers {
		switch t.Kind {
		case entity.TriggerCombat:
			s.startCombat(t.Enemy)
			return
		case entity.TriggerTrade:
			if trade == nil {
				trade = t.Villager
			}
		}
	}
	if trade != nil {
		s.startTrade(trade)
	}
}
