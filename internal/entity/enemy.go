// Package entity provides the player, enemies and villagers, how they are
// placed on a freshly generated map and how they move each world turn.
package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
)

// Enemy represents a hostile creature on a region map or dungeon level.
type Enemy struct {
	Def      *gamedata.EnemyDef // Reference to the enemy definition
	Name     string             // Display name (e.g., "Goblin")
	Symbol   rune               // Display symbol
	X, Y     int                // Position on the current map
	Attack   int                // Rolled once at creation
	HP       int                // Current hit points
	MaxHP    int                // Maximum hit points
	XP       int                // Experience awarded on defeat
	Gold     int                // Gold carried, rolled once at creation
	Behavior gamedata.Behavior  // Movement rule
}

// NewEnemy creates an enemy from its definition, rolling attack and gold.
func NewEnemy(def *gamedata.EnemyDef, x, y int, rng *rand.Rand) *Enemy {
	return &Enemy{
		Def:      def,
		Name:     def.Name,
		Symbol:   def.GlyphRune(),
		X:        x,
		Y:        y,
		Attack:   def.Attack.Roll(rng),
		HP:       def.HP,
		MaxHP:    def.HP,
		XP:       def.XP,
		Gold:     def.Gold.Roll(rng),
		Behavior: def.Behavior,
	}
}

// Position returns the enemy's current x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// ID returns the enemy's type identifier.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return e.Name
}

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// GetHP returns current HP.
func (e *Enemy) GetHP() int { return e.HP }

// GetMaxHP returns maximum HP.
func (e *Enemy) GetMaxHP() int { return e.MaxHP }

// GetAttack returns the rolled attack.
func (e *Enemy) GetAttack() int { return e.Attack }

// TakeDamage reduces HP and returns the damage dealt. HP may go negative; a
// defeated enemy is removed by the caller.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	e.HP -= amount
	return amount
}
