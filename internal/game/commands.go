package game

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/telemetry"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// Start leaves the main menu for world cell selection.
func (s *Session) Start() {
	if s.state == StateMainMenu {
		s.state = StateWorldSelect
	}
}

// SelectCell moves the world map cursor one cell, stopping at the edges. It
// works on the selection screen and in map mode.
func (s *Session) SelectCell(dir world.Direction) {
	if s.state != StateWorldSelect && !s.mapMode {
		return
	}
	dx, dy := dir.Delta()
	next := world.Coord{X: s.selected.X + dx, Y: s.selected.Y + dy}
	if s.world.InBounds(next) {
		s.selected = next
	}
}

// ConfirmSpawn starts play in the selected cell. Water cells are refused.
func (s *Session) ConfirmSpawn(ctx context.Context) {
	if s.state != StateWorldSelect {
		return
	}
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.spawn")
	defer span.End()
	span.SetAttributes(
		attribute.Int("cell.x", s.selected.X),
		attribute.Int("cell.y", s.selected.Y),
	)

	cell := s.world.Cell(s.selected)
	if cell.Biome == world.BiomeWater {
		span.SetAttributes(attribute.Bool("spawn.refused", true))
		s.say("Cannot spawn in water. Please select another cell.")
		return
	}

	st, _, err := s.regions.Enter(ctx, s.selected, world.EntranceNone, s.clock.TimeOfDay(), s.rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "spawn failed")
		s.log.WithError(err).Warn("spawn region generation failed")
		s.say("Cannot enter region: %v", err)
		return
	}
	s.activateRegion(s.selected, st)
	s.say("Spawned in %s", st.Biome)
}

// Move walks the player one tile and runs one world turn. In map mode it
// moves the world map cursor instead.
func (s *Session) Move(ctx context.Context, dir world.Direction) {
	if s.mapMode {
		s.SelectCell(dir)
		return
	}
	if !s.state.exploring() || s.commandMode {
		return
	}
	dx, dy := dir.Delta()
	if dx == 0 && dy == 0 {
		return
	}

	from := s.scene.Player
	to := world.Point{X: from.X + dx, Y: from.Y + dy}
	if !s.scene.Map.InBounds(to.X, to.Y) {
		if s.state == StateRegion {
			s.leaveRegion(ctx, dx, dy)
		}
	} else {
		kind := s.scene.Map.At(to.X, to.Y)
		info := world.Info(kind)
		if info.Walkable {
			s.moveTo(to)
			s.say("Moved to %s", info.Name)
			s.stepOn(ctx, kind, from)
		} else {
			s.say("Cannot walk into %s", info.Name)
		}
	}

	if s.running && s.state.exploring() {
		s.worldTurn()
	}
}

// Examine describes the tile next to the player in dir, or the player's own
// tile for NoDirection.
func (s *Session) Examine(dir world.Direction) {
	if !s.state.exploring() {
		return
	}
	dx, dy := dir.Delta()
	x, y := s.scene.Player.X+dx, s.scene.Player.Y+dy
	if !s.scene.Map.InBounds(x, y) {
		s.say("Nothing of interest")
		return
	}
	if e := s.scene.EnemyAt(x, y); e != nil {
		s.say("You see a %s", e.Name)
		return
	}
	if v := s.scene.VillagerAt(x, y); v != nil {
		s.say("You see a %s", v.Name)
		return
	}
	s.say("You see a %s", world.Info(s.scene.Map.At(x, y)).Name)
}

// OpenInventory lists the player's items in the event log.
func (s *Session) OpenInventory() {
	if !s.state.exploring() {
		return
	}
	if len(s.player.Inventory) == 0 {
		s.say("Your inventory is empty.")
		return
	}
	for _, item := range s.player.Inventory {
		s.say("- %s", item)
	}
}

// CheckTime reports the clock.
func (s *Session) CheckTime() {
	s.say("Current time: %s", s.clock)
}

// ToggleMapMode switches between the local map and the world map overlay.
// The cursor starts on the current cell.
func (s *Session) ToggleMapMode() {
	if s.mapMode {
		s.mapMode = false
		return
	}
	if s.state.exploring() {
		s.mapMode = true
		s.selected = s.current
	}
}

// EnterCommandMode opens the command prompt.
func (s *Session) EnterCommandMode() {
	if s.state != StateMainMenu {
		s.commandMode = true
	}
}

// CancelCommand closes the command prompt without running anything.
func (s *Session) CancelCommand() {
	s.commandMode = false
}

// SubmitCommand closes the prompt and runs a raw text command.
func (s *Session) SubmitCommand(text string) {
	s.commandMode = false
	cmd := strings.ToLower(strings.TrimSpace(text))
	switch cmd {
	case "time":
		s.CheckTime()
	case "fullscreen":
		s.fullscreen = !s.fullscreen
		s.say("Toggled fullscreen mode.")
	case "hud":
		s.hudVisible = !s.hudVisible
		state := "hidden"
		if s.hudVisible {
			state = "shown"
		}
		s.say("HUD is now %s.", state)
	case "regioninfo":
		s.regionInfo()
	default:
		s.say("Unknown command: %s", cmd)
	}
}

func (s *Session) regionInfo() {
	cell := s.world.Cell(s.current)
	name := cell.Name
	if name == "" {
		name = "Unknown"
	}
	s.say("Region Info:")
	s.say(" Biome: %s", cell.Biome)
	s.say(" Has Town: %s", yesNo(cell.IsTown))
	s.say(" Has Dungeon: %s", yesNo(cell.HasDungeon()))
	s.say(" Name: %s", name)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Quit ends the session.
func (s *Session) Quit() {
	s.running = false
	s.log.Info("session quit")
}
