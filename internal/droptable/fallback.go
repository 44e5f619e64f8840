package droptable

import (
	"strings"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

// FallbackCatalog holds hand-curated drop tables for well-known monsters.
// It covers the bosses people actually ask about when the wiki is down or
// the article markup has drifted past what the parser understands.
type FallbackCatalog struct {
	tables map[string]*domain.DropTable
}

// NewFallbackCatalog creates the catalog with its built-in tables.
func NewFallbackCatalog() *FallbackCatalog {
	return &FallbackCatalog{tables: builtinTables()}
}

// Lookup returns the curated table whose registry key is a substring of the
// lowercased monster name, or absent for unrecognized names.
func (f *FallbackCatalog) Lookup(monsterName string) (*domain.DropTable, bool) {
	name := strings.ToLower(monsterName)
	for key, table := range f.tables {
		if strings.Contains(name, key) {
			return table, true
		}
	}
	return nil, false
}

func builtinTables() map[string]*domain.DropTable {
	return map[string]*domain.DropTable{
		"cerberus": {
			Name:           "Cerberus",
			MainTableRolls: 1,
			Always: []domain.Drop{
				{Item: "Infernal ashes", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 1, RarityText: "Always"},
			},
			Main: []domain.Drop{
				{Item: "Coal", Quantity: domain.Quantity{Min: 120, Max: 120}, Rarity: 128.0 / 6, RarityText: "6/128"},
				{Item: "Runite ore", Quantity: domain.Quantity{Min: 5, Max: 5}, Rarity: 128.0 / 5, RarityText: "5/128"},
				{Item: "Super restore(4)", Quantity: domain.Quantity{Min: 2, Max: 2}, Rarity: 128.0 / 6, RarityText: "6/128"},
				{Item: "Fire rune", Quantity: domain.Quantity{Min: 300, Max: 300}, Rarity: 128.0 / 6, RarityText: "6/128"},
				{Item: "Soul rune", Quantity: domain.Quantity{Min: 100, Max: 100}, Rarity: 128.0 / 6, RarityText: "6/128"},
				{Item: "Pure essence", Quantity: domain.Quantity{Min: 300, Max: 300}, Rarity: 128.0 / 6, RarityText: "6/128"},
				{Item: "Coins", Quantity: domain.Quantity{Min: 10000, Max: 20000}, Rarity: 128.0 / 15, RarityText: "15/128"},
				{Item: "Dragon bones", Quantity: domain.Quantity{Min: 20, Max: 20}, Rarity: 128.0 / 5, RarityText: "5/128"},
				{Item: "Unholy symbol", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 128.0 / 6, RarityText: "6/128"},
				{Item: "Wine of zamorak", Quantity: domain.Quantity{Min: 15, Max: 15}, Rarity: 128.0 / 6, RarityText: "6/128"},
				{Item: "Ashes", Quantity: domain.Quantity{Min: 50, Max: 50}, Rarity: 128.0 / 6, RarityText: "6/128"},
				{Item: "Torstol seed", Quantity: domain.Quantity{Min: 3, Max: 3}, Rarity: 128.0 / 2, RarityText: "2/128"},
			},
			Uniques: []domain.Drop{
				{Item: "Primordial crystal", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 512, RarityText: "1/512"},
				{Item: "Pegasian crystal", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 512, RarityText: "1/512"},
				{Item: "Eternal crystal", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 512, RarityText: "1/512"},
				{Item: "Smouldering stone", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 512, RarityText: "1/512"},
			},
			Tertiary: []domain.Drop{
				{Item: "Clue scroll (elite)", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 100, RarityText: "1/100"},
				{Item: "Jar of souls", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 2000, RarityText: "1/2000"},
				{Item: "Hellpuppy", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 3000, RarityText: "1/3000"},
			},
		},
		"zulrah": {
			Name:              "Zulrah",
			MainTableRolls:    ZulrahMainTableRolls,
			UniqueTableChance: ZulrahUniqueTableChance,
			Main: []domain.Drop{
				{Item: "Dragon med helm", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 124.0 / 2, RarityText: "2/124"},
				{Item: "Battlestaff", Quantity: domain.Quantity{Min: 10, Max: 10}, Rarity: 124.0 / 10, RarityText: "10/124"},
				{Item: "Death rune", Quantity: domain.Quantity{Min: 300, Max: 300}, Rarity: 124.0 / 10, RarityText: "10/124"},
				{Item: "Dragon halberd", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 124.0 / 2, RarityText: "2/124"},
				{Item: "Snakeskin", Quantity: domain.Quantity{Min: 35, Max: 35}, Rarity: 124.0 / 11, RarityText: "11/124"},
				{Item: "Pure essence", Quantity: domain.Quantity{Min: 1500, Max: 1500}, Rarity: 124.0 / 6, RarityText: "6/124"},
				{Item: "Mahogany logs", Quantity: domain.Quantity{Min: 50, Max: 50}, Rarity: 124.0 / 11, RarityText: "11/124"},
				{Item: "Zulrah's scales", Quantity: domain.Quantity{Min: 100, Max: 299}, Rarity: 124.0 / 26, RarityText: "26/124"},
				{Item: "Coins", Quantity: domain.Quantity{Min: 1000, Max: 60000}, Rarity: 124.0 / 2, RarityText: "2/124"},
			},
			Uniques: []domain.Drop{
				{Item: "Tanzanite fang", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 1024, RarityText: "1/1024"},
				{Item: "Magic fang", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 1024, RarityText: "1/1024"},
				{Item: "Serpentine visage", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 1024, RarityText: "1/1024"},
				{Item: "Uncut onyx", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 1024, RarityText: "1/1024"},
			},
			Tertiary: []domain.Drop{
				{Item: "Clue scroll (elite)", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 75, RarityText: "1/75"},
				{Item: "Jar of swamp", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 3000, RarityText: "1/3000"},
				{Item: "Pet snakeling", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 4000, RarityText: "1/4000"},
			},
		},
		"vorkath": {
			Name:           "Vorkath",
			MainTableRolls: 2,
			Always: []domain.Drop{
				{Item: "Superior dragon bones", Quantity: domain.Quantity{Min: 2, Max: 2}, Rarity: 1, RarityText: "Always"},
				{Item: "Blue dragonhide", Quantity: domain.Quantity{Min: 2, Max: 2}, Rarity: 1, RarityText: "Always"},
			},
			Main: []domain.Drop{
				{Item: "Rune longsword", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 150.0 / 5, RarityText: "5/150"},
				{Item: "Dragon battleaxe", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 150.0 / 3, RarityText: "3/150"},
				{Item: "Dragon platelegs", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 150.0 / 3, RarityText: "3/150"},
				{Item: "Adamantite ore", Quantity: domain.Quantity{Min: 10, Max: 30}, Rarity: 150.0 / 6, RarityText: "6/150"},
				{Item: "Manta ray", Quantity: domain.Quantity{Min: 10, Max: 35}, Rarity: 150.0 / 7, RarityText: "7/150"},
				{Item: "Coins", Quantity: domain.Quantity{Min: 20000, Max: 81000}, Rarity: 150.0 / 10, RarityText: "10/150"},
				{Item: "Dragon bolts (unf)", Quantity: domain.Quantity{Min: 25, Max: 75}, Rarity: 150.0 / 6, RarityText: "6/150"},
				{Item: "Wrath talisman", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 150.0 / 5, RarityText: "5/150"},
			},
			Uniques: []domain.Drop{
				{Item: "Dragonbone necklace", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 1000, RarityText: "1/1000"},
				{Item: "Skeletal visage", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 5000, RarityText: "1/5000"},
			},
			Tertiary: []domain.Drop{
				{Item: "Clue scroll (elite)", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 65, RarityText: "1/65"},
				{Item: "Jar of decay", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 3000, RarityText: "1/3000"},
				{Item: "Vorki", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 3000, RarityText: "1/3000"},
			},
		},
		"graardor": {
			Name:           "General Graardor",
			MainTableRolls: 1,
			Always: []domain.Drop{
				{Item: "Big bones", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 1, RarityText: "Always"},
			},
			Main: []domain.Drop{
				{Item: "Coins", Quantity: domain.Quantity{Min: 19500, Max: 21000}, Rarity: 127.0 / 24, RarityText: "24/127"},
				{Item: "Rune 2h sword", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 127.0 / 8, RarityText: "8/127"},
				{Item: "Rune platebody", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 127.0 / 8, RarityText: "8/127"},
				{Item: "Snapdragon seed", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 127.0 / 8, RarityText: "8/127"},
				{Item: "Grimy snapdragon", Quantity: domain.Quantity{Min: 3, Max: 3}, Rarity: 127.0 / 8, RarityText: "8/127"},
				{Item: "Super restore(4)", Quantity: domain.Quantity{Min: 3, Max: 3}, Rarity: 127.0 / 8, RarityText: "8/127"},
				{Item: "Magic logs", Quantity: domain.Quantity{Min: 15, Max: 20}, Rarity: 127.0 / 8, RarityText: "8/127"},
				{Item: "Adamantite bar", Quantity: domain.Quantity{Min: 15, Max: 20}, Rarity: 127.0 / 8, RarityText: "8/127"},
			},
			Uniques: []domain.Drop{
				{Item: "Bandos chestplate", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 381, RarityText: "1/381"},
				{Item: "Bandos tassets", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 381, RarityText: "1/381"},
				{Item: "Bandos boots", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 381, RarityText: "1/381"},
				{Item: "Bandos hilt", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 508, RarityText: "1/508"},
			},
			Tertiary: []domain.Drop{
				{Item: "Clue scroll (hard)", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 128, RarityText: "1/128"},
				{Item: "Pet general graardor", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 5000, RarityText: "1/5000"},
			},
		},
	}
}
