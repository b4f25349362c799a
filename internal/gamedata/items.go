package gamedata

// ItemDef is a purchasable item that may also turn up in chests.
type ItemDef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items     []ItemDef `json:"items"`
	ChestGold Range     `json:"chestGold"`
}
