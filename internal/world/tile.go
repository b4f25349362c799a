// Package world provides world map, local map and dungeon generation.
package world

import "github.com/gdamore/tcell/v2"

// TileKind identifies a single map tile.
type TileKind uint8

const (
	TilePlain TileKind = iota
	TileForest
	TileMountain
	TileDesert
	TileWater
	TileHouseWall
	TileHouseFloor
	TileDoor
	TileDungeonEntrance
	TileFloor
	TileWall
	TileStairsDown
	TileChest

	tileKindCount
)

// TileInfo holds the immutable display and behaviour attributes of a tile kind.
type TileInfo struct {
	Glyph    rune
	Color    tcell.Color
	Walkable bool
	Name     string
}

var (
	colorYellow = tcell.NewRGBColor(255, 255, 0)
	colorGray   = tcell.NewRGBColor(169, 169, 169)
	colorGreen  = tcell.NewRGBColor(0, 255, 0)
)

var catalog = [tileKindCount]TileInfo{
	TilePlain:           {'.', tcell.NewRGBColor(34, 139, 34), true, "Plains"},
	TileForest:          {'T', tcell.NewRGBColor(0, 100, 0), false, "Forest"},
	TileMountain:        {'^', tcell.NewRGBColor(139, 137, 137), false, "Mountain"},
	TileDesert:          {'.', tcell.NewRGBColor(237, 201, 175), true, "Desert"},
	TileWater:           {'~', tcell.NewRGBColor(0, 105, 148), false, "Water"},
	TileHouseWall:       {'#', tcell.NewRGBColor(150, 75, 0), false, "Wall"},
	TileHouseFloor:      {'.', tcell.NewRGBColor(210, 180, 140), true, "Floor"},
	TileDoor:            {'+', colorYellow, true, "Door"},
	TileDungeonEntrance: {'+', colorGray, true, "Dungeon Entrance"},
	TileFloor:           {'.', tcell.NewRGBColor(150, 150, 150), true, "Floor"},
	TileWall:            {'#', tcell.NewRGBColor(100, 100, 100), false, "Wall"},
	TileStairsDown:      {'▼', colorGreen, true, "Stairs Down"},
	TileChest:           {'C', colorYellow, true, "Chest"},
}

// Info returns the attributes for a tile kind. Unknown kinds get the plain tile's attributes.
func Info(k TileKind) TileInfo {
	if k >= tileKindCount {
		return catalog[TilePlain]
	}
	return catalog[k]
}

// IsWalkable returns true if the tile can be walked on.
func (k TileKind) IsWalkable() bool {
	return Info(k).Walkable
}

// Rune returns the tile's display character.
func (k TileKind) Rune() rune {
	return Info(k).Glyph
}

// String returns the tile's display name.
func (k TileKind) String() string {
	return Info(k).Name
}
