package gamedata

import "github.com/gdamore/tcell/v2"

// Behavior selects an enemy's movement rule.
type Behavior string

const (
	BehaviorAggressive Behavior = "aggressive"
	BehaviorRandom     Behavior = "random"
)

// EnemyDef defines an enemy kind loaded from JSON.
type EnemyDef struct {
	ID       string   `json:"id"`       // Unique identifier (e.g., "goblin")
	Name     string   `json:"name"`     // Display name (e.g., "Goblin")
	Glyph    string   `json:"glyph"`    // Single character for rendering
	Color    string   `json:"color"`    // Hex color code
	Attack   Range    `json:"attack"`   // Attack rolled once at creation
	HP       int      `json:"hp"`       // Fixed hit points
	XP       int      `json:"xp"`       // Reward on defeat
	Gold     Range    `json:"gold"`     // Gold carried, rolled once at creation
	Behavior Behavior `json:"behavior"` // Movement rule
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return []rune(e.Glyph)[0]
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	return colorOr(e.Color, tcell.ColorWhite)
}

// Spawn pool names.
const (
	PoolDay     = "day"
	PoolNight   = "night"
	PoolDungeon = "dungeon"
)

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef          `json:"enemies"`
	Pools   map[string][]string `json:"pools"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
