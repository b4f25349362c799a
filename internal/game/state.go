// Package game provides the session state machine that ties world
// generation, the region caches and the player's commands together.
package game

// State represents the current top-level game state.
type State int

const (
	// StateMainMenu is the title screen.
	StateMainMenu State = iota
	// StateWorldSelect lets the player pick a starting world cell.
	StateWorldSelect
	// StateRegion is free movement on a world cell's local map.
	StateRegion
	// StateDungeon is movement on a dungeon level.
	StateDungeon
	// StateInStructure is movement inside a building.
	StateInStructure
	// StateCombat owns input until the fight ends. The clock is held.
	StateCombat
	// StateShopping owns input until the trade dialog closes. The clock is held.
	StateShopping
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateWorldSelect:
		return "world_select"
	case StateRegion:
		return "region"
	case StateDungeon:
		return "dungeon"
	case StateInStructure:
		return "in_structure"
	case StateCombat:
		return "combat"
	case StateShopping:
		return "shopping"
	default:
		return "unknown"
	}
}

// exploring reports whether the player walks around a map in this state.
func (s State) exploring() bool {
	return s == StateRegion || s == StateDungeon || s == StateInStructure
}
