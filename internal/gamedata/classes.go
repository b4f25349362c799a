package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Class IDs the game relies on.
const (
	ClassAdventurer = "adventurer"
	ClassVillager   = "villager"
)

// ClassDef defines starting stats and appearance for a character kind.
type ClassDef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"` // Single character for rendering (e.g., "@")
	Color  string `json:"color"`
	Level  int    `json:"level"`
	HP     int    `json:"hp"`
	Attack int    `json:"attack"`
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *ClassDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return []rune(c.Symbol)[0]
}

// TCellColor returns the color as a tcell.Color.
func (c *ClassDef) TCellColor() tcell.Color {
	return colorOr(c.Color, tcell.ColorWhite)
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// FindClass returns the class with the given ID.
func FindClass(classes []ClassDef, id string) (*ClassDef, error) {
	for i := range classes {
		if classes[i].ID == id {
			return &classes[i], nil
		}
	}
	return nil, fmt.Errorf("class %q not defined", id)
}
