package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/combat"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/entity"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// MaxEvents is how many of the latest event lines a View carries.
const MaxEvents = 5

// EntityView is one creature as drawn on the map.
type EntityView struct {
	Name      string
	Glyph     rune
	Color     tcell.Color
	X, Y      int
	HP, MaxHP int
}

// PlayerView is a copy of the player's stats.
type PlayerView struct {
	EntityView
	Level     int
	Attack    int
	XP        int
	Gold      int
	Inventory []string
}

// CombatView describes a fight in progress.
type CombatView struct {
	Phase    combat.Phase
	Enemy    EntityView
	Sequence []combat.Arrow
}

// View is a read-only snapshot of everything the renderer needs. Map and
// World are shared with the session and must not be modified.
type View struct {
	State State

	Map       *world.LocalMap // nil until the player has spawned
	Player    PlayerView
	Enemies   []EntityView
	Villagers []EntityView
	Biome     string
	Depth     int

	World    *world.WorldMap
	Selected world.Coord
	Current  world.Coord

	Time      string
	TimeOfDay entity.TimeOfDay
	Events    []string

	Combat *CombatView
	Shop   []gamedata.ItemDef

	MapMode     bool
	CommandMode bool
	HUDVisible  bool
	Fullscreen  bool
	Running     bool
}

// Snapshot copies the current session state into a View.
func (s *Session) Snapshot() View {
	v := View{
		State:       s.state,
		World:       s.world,
		Selected:    s.selected,
		Current:     s.current,
		Time:        s.clock.String(),
		TimeOfDay:   s.clock.TimeOfDay(),
		Player:      playerView(s.player),
		MapMode:     s.mapMode,
		CommandMode: s.commandMode,
		HUDVisible:  s.hudVisible,
		Fullscreen:  s.fullscreen,
		Running:     s.running,
	}

	start := len(s.events) - MaxEvents
	if start < 0 {
		start = 0
	}
	v.Events = append([]string(nil), s.events[start:]...)

	if s.scene != nil {
		v.Map = s.scene.Map
		for _, e := range s.scene.Enemies {
			v.Enemies = append(v.Enemies, enemyView(e))
		}
		for _, vg := range s.scene.Villagers {
			v.Villagers = append(v.Villagers, EntityView{
				Name:  vg.Name,
				Glyph: vg.Symbol,
				Color: vg.Color(),
				X:     vg.X,
				Y:     vg.Y,
			})
		}
	}
	if s.region != nil {
		v.Biome = s.region.Biome.String()
	}
	if s.level != nil {
		v.Depth = s.level.Depth
	}

	if s.encounter != nil {
		v.Combat = &CombatView{
			Phase:    s.encounter.Phase,
			Enemy:    enemyView(s.foe),
			Sequence: append([]combat.Arrow(nil), s.encounter.Sequence...),
		}
	}
	if s.state == StateShopping {
		v.Shop = s.tables.Items.All()
	}
	return v
}

// Events returns the whole event log.
func (s *Session) Events() []string {
	return append([]string(nil), s.events...)
}

func enemyView(e *entity.Enemy) EntityView {
	return EntityView{
		Name:  e.Name,
		Glyph: e.Symbol,
		Color: e.Color(),
		X:     e.X,
		Y:     e.Y,
		HP:    e.HP,
		MaxHP: e.MaxHP,
	}
}

func playerView(p *entity.Player) PlayerView {
	return PlayerView{
		EntityView: EntityView{
			Name:  p.Name,
			Glyph: p.Symbol,
			Color: p.Color(),
			X:     p.X,
			Y:     p.Y,
			HP:    p.HP,
			MaxHP: p.MaxHP,
		},
		Level:     p.Level,
		Attack:    p.Attack,
		XP:        p.XP,
		Gold:      p.Gold,
		Inventory: append([]string(nil), p.Inventory...),
	}
}
