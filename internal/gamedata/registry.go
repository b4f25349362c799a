package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and their spawn pools.
type EnemyRegistry struct {
	enemies []EnemyDef
	byID    map[string]*EnemyDef
	pools   map[string][]*EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions. Every pool
// entry must name a defined enemy.
func NewEnemyRegistry(enemies []EnemyDef, pools map[string][]string) (*EnemyRegistry, error) {
	r := &EnemyRegistry{
		enemies: enemies,
		byID:    make(map[string]*EnemyDef, len(enemies)),
		pools:   make(map[string][]*EnemyDef, len(pools)),
	}
	for i := range enemies {
		e := &enemies[i]
		if !e.Attack.Valid() || !e.Gold.Valid() {
			return nil, fmt.Errorf("enemy %q: inverted attack or gold range", e.ID)
		}
		r.byID[e.ID] = e
	}
	for name, ids := range pools {
		for _, id := range ids {
			def, ok := r.byID[id]
			if !ok {
				return nil, fmt.Errorf("pool %q references unknown enemy %q", name, id)
			}
			r.pools[name] = append(r.pools[name], def)
		}
	}
	return r, nil
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	if len(file.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(file.Enemies, file.Pools)
}

// Pick selects an enemy uniformly from the named pool, or nil if the pool is empty.
func (r *EnemyRegistry) Pick(pool string, rng *rand.Rand) *EnemyDef {
	defs := r.pools[pool]
	if len(defs) == 0 {
		return nil
	}
	return defs[rng.Intn(len(defs))]
}

// Pool returns the definitions in the named pool.
func (r *EnemyRegistry) Pool(pool string) []*EnemyDef {
	return r.pools[pool]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	return r.byID[id]
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds the shop catalogue in display order.
type ItemRegistry struct {
	items     []ItemDef
	chestGold Range
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(file ItemsFile) (*ItemRegistry, error) {
	if len(file.Items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	if !file.ChestGold.Valid() {
		return nil, fmt.Errorf("inverted chest gold range %v", file.ChestGold)
	}
	return &ItemRegistry{items: file.Items, chestGold: file.ChestGold}, nil
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return NewItemRegistry(file)
}

// At returns the item at index i of the catalogue, or nil if out of range.
func (r *ItemRegistry) At(i int) *ItemDef {
	if i < 0 || i >= len(r.items) {
		return nil
	}
	return &r.items[i]
}

// Random picks a catalogue item uniformly.
func (r *ItemRegistry) Random(rng *rand.Rand) *ItemDef {
	return &r.items[rng.Intn(len(r.items))]
}

// ChestGold returns the range chest gold is drawn from.
func (r *ItemRegistry) ChestGold() Range {
	return r.chestGold
}

// All returns the catalogue in display order.
func (r *ItemRegistry) All() []ItemDef {
	return r.items
}

// Count returns the number of items in the catalogue.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}

// =============================================================================
// Tables
// =============================================================================

// Tables bundles every data table a game session needs.
type Tables struct {
	Enemies  *EnemyRegistry
	Items    *ItemRegistry
	Player   ClassDef
	Villager ClassDef
}

// LoadTables loads all embedded data tables.
func LoadTables() (*Tables, error) {
	enemies, err := LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemies: %w", err)
	}
	items, err := LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	classes, err := LoadClasses()
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}
	player, err := FindClass(classes, ClassAdventurer)
	if err != nil {
		return nil, err
	}
	villager, err := FindClass(classes, ClassVillager)
	if err != nil {
		return nil, err
	}
	return &Tables{Enemies: enemies, Items: items, Player: *player, Villager: *villager}, nil
}

// MustLoadTables loads all tables, panicking on error.
func MustLoadTables() *Tables {
	t, err := LoadTables()
	if err != nil {
		panic(err)
	}
	return t
}
