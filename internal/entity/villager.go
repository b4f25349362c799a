package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
)

// Villager is a friendly town dweller that wanders and trades.
type Villager struct {
	Name   string
	Symbol rune
	X, Y   int
	color  tcell.Color
}

// NewVillager creates a villager at the given position.
func NewVillager(def *gamedata.ClassDef, x, y int) *Villager {
	return &Villager{
		Name:   def.Name,
		Symbol: def.SymbolRune(),
		X:      x,
		Y:      y,
		color:  def.TCellColor(),
	}
}

// Position returns the villager's current x, y coordinates.
func (v *Villager) Position() (int, int) {
	return v.X, v.Y
}

// Color returns the tcell color for this villager.
func (v *Villager) Color() tcell.Color {
	return v.color
}
