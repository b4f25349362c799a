package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/gamedata"
)

// Player is the adventurer controlled by the user.
type Player struct {
	Name      string
	Symbol    rune
	X, Y      int
	Level     int
	Attack    int
	XP        int
	Gold      int
	HP, MaxHP int
	Inventory []string
	color     tcell.Color
}

// NewPlayer creates a player from a class definition.
func NewPlayer(def *gamedata.ClassDef) *Player {
	return &Player{
		Name:      def.Name,
		Symbol:    def.SymbolRune(),
		Level:     def.Level,
		Attack:    def.Attack,
		HP:        def.HP,
		MaxHP:     def.HP,
		Inventory: []string{},
		color:     def.TCellColor(),
	}
}

// SetPosition updates the player's position.
func (p *Player) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// Color returns the tcell color for the player glyph.
func (p *Player) Color() tcell.Color {
	return p.color
}

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// GetHP returns current HP.
func (p *Player) GetHP() int { return p.HP }

// GetMaxHP returns maximum HP.
func (p *Player) GetMaxHP() int { return p.MaxHP }

// GetAttack returns attack stat.
func (p *Player) GetAttack() int { return p.Attack }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.HP -= amount
	return amount
}

// Reward adds experience and gold.
func (p *Player) Reward(xp, gold int) {
	p.XP += xp
	p.Gold += gold
}

// Buy spends price gold on item. It returns false and changes nothing if the
// player cannot afford it.
func (p *Player) Buy(item string, price int) bool {
	if p.Gold < price {
		return false
	}
	p.Gold -= price
	p.Inventory = append(p.Inventory, item)
	return true
}

// AddItem puts an item in the inventory.
func (p *Player) AddItem(item string) {
	p.Inventory = append(p.Inventory, item)
}
