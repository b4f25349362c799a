package game

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/combat"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/entity"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/logger"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/region"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/telemetry"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// structureFrame is what entering a building pushes: everything needed to put
// the player back where they were.
type structureFrame struct {
	scene    *region.Scene
	state    State
	coord    world.Coord
	returnTo world.Point
}

// Session holds the entire game state for one run. All randomness comes from
// a single seeded source, so a seed and a command sequence reproduce a run.
type Session struct {
	id     string
	seed   int64
	rng    *rand.Rand
	tables *gamedata.Tables
	text   *catalog
	log    *logrus.Entry

	world   *world.WorldMap
	regions *region.Cache
	dungeon *region.DungeonCache

	state    State
	resume   State // state to return to when a combat or shop ends
	player   *entity.Player
	clock    Clock
	selected world.Coord
	current  world.Coord

	scene      *region.Scene // active map, owned by one of the caches or the structure stack
	region     *region.State
	level      *region.Level
	structures []structureFrame

	encounter *combat.Encounter
	foe       *entity.Enemy

	events      []string
	mapMode     bool
	commandMode bool
	hudVisible  bool
	fullscreen  bool
	running     bool
}

// NewSession generates the world and returns a session at the main menu.
func NewSession(ctx context.Context, cfg Config, tables *gamedata.Tables) *Session {
	seed := cfg.ResolveSeed()
	rng := rand.New(rand.NewSource(seed))
	id := cfg.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	w := world.GenerateWorld(ctx, cfg.WorldWidth, cfg.WorldHeight, rng)
	populator := entity.NewPopulator(tables.Enemies, &tables.Villager)

	s := &Session{
		id:         id,
		seed:       seed,
		rng:        rng,
		tables:     tables,
		text:       newCatalog(cfg.LocaleDir, cfg.Language),
		log:        logger.Log.WithField("session_id", id),
		world:      w,
		regions:    region.NewCache(w, populator),
		dungeon:    region.NewDungeonCache(populator),
		state:      StateMainMenu,
		player:     entity.NewPlayer(&tables.Player),
		clock:      NewClock(),
		selected:   w.Center(),
		current:    w.Center(),
		hudVisible: true,
		running:    true,
	}

	span.SetAttributes(
		attribute.String("session.id", id),
		attribute.Int64("session.seed", seed),
	)
	s.log.WithField("seed", seed).Info("session started")
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Seed returns the seed the session's world was generated from.
func (s *Session) Seed() int64 { return s.seed }

// State returns the current top-level state.
func (s *Session) State() State { return s.state }

// Running reports false once the player quit or was defeated.
func (s *Session) Running() bool { return s.running }

// Regions exposes the region cache.
func (s *Session) Regions() *region.Cache { return s.regions }

// say appends a translated line to the event log.
func (s *Session) say(format string, args ...interface{}) {
	s.events = append(s.events, s.text.T(format, args...))
}

// moveTo places the player on the active scene.
func (s *Session) moveTo(p world.Point) {
	s.scene.Player = p
	s.player.SetPosition(p.X, p.Y)
}

// activateRegion makes a cached region the active scene.
func (s *Session) activateRegion(coord world.Coord, st *region.State) {
	s.current = coord
	s.region = st
	s.level = nil
	s.scene = &st.Scene
	s.state = StateRegion
	s.moveTo(st.Player)
}
