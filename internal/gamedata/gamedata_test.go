package gamedata

import (
	"math/rand"
	"testing"
	"testing/fstest"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 4 {
		t.Errorf("Expected 4 enemies, got %d", len(enemies))
	}

	expected := map[string]struct {
		glyph    rune
		hp, xp   int
		attack   Range
		gold     Range
		behavior Behavior
	}{
		"goblin": {'G', 20, 10, Range{5, 10}, Range{1, 5}, BehaviorAggressive},
		"snake":  {'s', 15, 15, Range{8, 15}, Range{0, 3}, BehaviorRandom},
		"bandit": {'b', 25, 20, Range{10, 20}, Range{5, 15}, BehaviorAggressive},
		"bat":    {'m', 10, 5, Range{3, 7}, Range{0, 2}, BehaviorAggressive},
	}
	for _, e := range enemies {
		want, ok := expected[e.ID]
		if !ok {
			t.Errorf("Unexpected enemy %q", e.ID)
			continue
		}
		if e.GlyphRune() != want.glyph || e.HP != want.hp || e.XP != want.xp {
			t.Errorf("%s: glyph/hp/xp = %c/%d/%d, want %c/%d/%d",
				e.ID, e.GlyphRune(), e.HP, e.XP, want.glyph, want.hp, want.xp)
		}
		if e.Attack != want.attack || e.Gold != want.gold {
			t.Errorf("%s: attack/gold = %v/%v, want %v/%v", e.ID, e.Attack, e.Gold, want.attack, want.gold)
		}
		if e.Behavior != want.behavior {
			t.Errorf("%s: behavior = %q, want %q", e.ID, e.Behavior, want.behavior)
		}
	}
}

func TestEnemyPools(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	tests := []struct {
		pool string
		want []string
	}{
		{PoolDay, []string{"goblin", "snake", "bandit"}},
		{PoolNight, []string{"goblin", "snake", "bandit", "bat"}},
		{PoolDungeon, []string{"goblin", "snake", "bat"}},
	}
	for _, tt := range tests {
		defs := registry.Pool(tt.pool)
		if len(defs) != len(tt.want) {
			t.Errorf("Pool(%q) has %d entries, want %d", tt.pool, len(defs), len(tt.want))
			continue
		}
		for i, d := range defs {
			if d.ID != tt.want[i] {
				t.Errorf("Pool(%q)[%d] = %q, want %q", tt.pool, i, d.ID, tt.want[i])
			}
		}
	}

	if registry.Pick("missing", rand.New(rand.NewSource(1))) != nil {
		t.Error("Pick on an unknown pool should return nil")
	}
}

func TestEnemyRegistryPickDeterministic(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 10; i++ {
		a := registry.Pick(PoolNight, rng1).ID
		b := registry.Pick(PoolNight, rng2).ID
		if a != b {
			t.Errorf("Pick %d mismatch: %s != %s", i, a, b)
		}
	}

	goblin := registry.GetByID("goblin")
	if goblin == nil || goblin.Name != "Goblin" {
		t.Errorf("GetByID(goblin) = %v, want Goblin", goblin)
	}
}

func TestNewEnemyRegistryRejectsUnknownPoolEntry(t *testing.T) {
	_, err := NewEnemyRegistry(
		[]EnemyDef{{ID: "goblin", Attack: Range{1, 2}, Gold: Range{0, 1}}},
		map[string][]string{PoolDay: {"dragon"}},
	)
	if err == nil {
		t.Error("expected error for pool entry naming an undefined enemy")
	}

	_, err = NewEnemyRegistry([]EnemyDef{{ID: "bad", Attack: Range{5, 1}}}, nil)
	if err == nil {
		t.Error("expected error for inverted attack range")
	}
}

func TestItemRegistry(t *testing.T) {
	items, err := LoadItemRegistry()
	if err != nil {
		t.Fatalf("Failed to load items: %v", err)
	}

	want := []struct {
		name  string
		price int
	}{
		{"Health Potion", 10},
		{"Sword", 50},
		{"Shield", 40},
		{"Magic Ring", 100},
	}
	if items.Count() != len(want) {
		t.Fatalf("Count() = %d, want %d", items.Count(), len(want))
	}
	for i, w := range want {
		it := items.At(i)
		if it.Name != w.name || it.Price != w.price {
			t.Errorf("At(%d) = %s/%d, want %s/%d", i, it.Name, it.Price, w.name, w.price)
		}
	}
	if items.At(-1) != nil || items.At(len(want)) != nil {
		t.Error("At out of range should return nil")
	}
	if items.ChestGold() != (Range{10, 50}) {
		t.Errorf("ChestGold() = %v, want [10 50]", items.ChestGold())
	}
}

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables()
	if err != nil {
		t.Fatalf("LoadTables() error: %v", err)
	}
	if tables.Player.HP != 100 || tables.Player.Attack != 5 || tables.Player.Level != 1 {
		t.Errorf("player stats = hp %d attack %d level %d, want 100/5/1",
			tables.Player.HP, tables.Player.Attack, tables.Player.Level)
	}
	if tables.Villager.SymbolRune() != '@' {
		t.Errorf("villager symbol = %c, want @", tables.Villager.SymbolRune())
	}
}

func TestLoadFSErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json": {Data: []byte("{not json")},
	}
	if _, err := LoadFS[ItemsFile](fsys, "broken.json"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadFS[ItemsFile](fsys, "missing.json"); err == nil {
		t.Error("expected read error")
	}
}

func TestRangeRoll(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := Range{2, 5}
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.Roll(rng)
		if v < r.Min() || v > r.Max() {
			t.Fatalf("Roll() = %d outside %v", v, r)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("Roll() produced %d distinct values, want 4", len(seen))
	}
	if got := (Range{7, 7}).Roll(rng); got != 7 {
		t.Errorf("degenerate Roll() = %d, want 7", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#F0A", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	short, _ := ParseHexColor("#F0A")
	long, _ := ParseHexColor("#FF00AA")
	if short != long {
		t.Errorf("short form %v != long form %v", short, long)
	}
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{ID: "test", Glyph: "T", Color: "#FF0000"}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}

	empty := EnemyDef{Color: "nope"}
	if empty.GlyphRune() != '?' {
		t.Errorf("empty glyph = %c, want ?", empty.GlyphRune())
	}
	if empty.TCellColor() == 0 {
		t.Error("invalid color should fall back to white")
	}
}
