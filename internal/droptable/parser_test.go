package droptable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.Quantity
	}{
		{"exact", "5", domain.Quantity{Min: 5, Max: 5}},
		{"range", "5-10", domain.Quantity{Min: 5, Max: 10}},
		{"inverted range is reordered", "10-5", domain.Quantity{Min: 5, Max: 10}},
		{"range with spaces", "5 - 10", domain.Quantity{Min: 5, Max: 10}},
		{"parenthetical stripped", "150 (noted)", domain.Quantity{Min: 150, Max: 150}},
		{"thousands separator", "1,000", domain.Quantity{Min: 1000, Max: 1000}},
		{"unparseable defaults to one", "Unknown", domain.Quantity{Min: 1, Max: 1}},
		{"empty defaults to one", "", domain.Quantity{Min: 1, Max: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseQuantity(tt.input))
		})
	}
}

func TestParseRarity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"fraction", "1/512", 512},
		{"fraction with commas", "1/5,000", 5000},
		{"non-unit numerator", "3/512", 512.0 / 3.0},
		{"always bucket", "Always", RarityAlways},
		{"common bucket", "Common", RarityCommon},
		{"uncommon bucket", "Uncommon", RarityUncommon},
		{"rare bucket", "Rare", RarityRare},
		{"very rare bucket", "Very rare", RarityVeryRare},
		{"parenthetical stripped", "1/128 (per roll)", 128},
		{"garbage defaults", "who knows", RarityDefault},
		{"empty defaults", "", RarityDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseRarity(tt.input), 1e-9)
		})
	}
}

const cerberusWikitext = `
==Drops==

===100%===
{{DropsLine|name=Infernal ashes|quantity=1|rarity=Always}}

===Uniques===
{{DropsLine|name=Primordial crystal|quantity=1|rarity=1/512}}
{{DropsLine|name=Pegasian crystal|quantity=1|rarity=1/512}}

===Tertiary===
{{DropsLine|name=Jar of souls|quantity=1|rarity=1/2000}}

===Other===
{{DropsLine|name=Coal|quantity=120 (noted)|rarity=Common}}
{{DropsLine|name=Rune platebody|quantity=1|rarity=1/128}}
`

func TestParseSections(t *testing.T) {
	p := NewParser()

	table := p.Parse(cerberusWikitext, "Cerberus")

	require.Len(t, table.Always, 1)
	assert.Equal(t, "Infernal ashes", table.Always[0].Item)
	assert.Equal(t, float64(RarityAlways), table.Always[0].Rarity)

	require.Len(t, table.Uniques, 2)
	assert.Equal(t, "Primordial crystal", table.Uniques[0].Item)
	assert.InDelta(t, 512, table.Uniques[0].Rarity, 1e-9)

	require.Len(t, table.Tertiary, 1)
	assert.Equal(t, "Jar of souls", table.Tertiary[0].Item)
	assert.InDelta(t, 2000, table.Tertiary[0].Rarity, 1e-9)

	// Main holds everything the named sections did not claim
	mainItems := make([]string, 0, len(table.Main))
	for _, d := range table.Main {
		mainItems = append(mainItems, d.Item)
	}
	assert.ElementsMatch(t, []string{"Coal", "Rune platebody"}, mainItems)

	assert.Equal(t, DefaultMainTableRolls, table.MainTableRolls)
	assert.Zero(t, table.UniqueTableChance)
}

func TestParseAlternateHeadings(t *testing.T) {
	p := NewParser()

	wikitext := `
===ALWAYS===
{{DropsLine|name=Bones|quantity=1|rarity=Always}}

===Unique drop table===
{{DropsLine|name=Dragon pickaxe|quantity=1|rarity=1/1024}}
`

	table := p.Parse(wikitext, "Test monster")

	require.Len(t, table.Always, 1)
	assert.Equal(t, "Bones", table.Always[0].Item)
	require.Len(t, table.Uniques, 1)
	assert.Equal(t, "Dragon pickaxe", table.Uniques[0].Item)
}

func TestParseAlternateDropsLines(t *testing.T) {
	p := NewParser()

	t.Run("capitalised parameters", func(t *testing.T) {
		table := p.Parse(`{{DropsLine|Name=Coins|Quantity=100-200|Rarity=Common}}`, "Test")
		require.Len(t, table.Main, 1)
		assert.Equal(t, "Coins", table.Main[0].Item)
		assert.Equal(t, domain.Quantity{Min: 100, Max: 200}, table.Main[0].Quantity)
	})

	t.Run("rarity before quantity", func(t *testing.T) {
		table := p.Parse(`{{DropsLine|name=Herb|rarity=1/64|quantity=2}}`, "Test")
		require.Len(t, table.Main, 1)
		assert.Equal(t, "Herb", table.Main[0].Item)
		assert.Equal(t, domain.Quantity{Min: 2, Max: 2}, table.Main[0].Quantity)
		assert.InDelta(t, 64, table.Main[0].Rarity, 1e-9)
	})

	t.Run("wikitable rows", func(t *testing.T) {
		table := p.Parse(`
{| class="wikitable"
| [[Big bones]] || 1 || Always
| [[Rune scimitar|Scimitar]] || 1 || 1/64
|}`, "Test")
		require.Len(t, table.Main, 2)
		assert.Equal(t, "Big bones", table.Main[0].Item)
		assert.Equal(t, "Rune scimitar", table.Main[1].Item)
	})
}

func TestParseDeduplication(t *testing.T) {
	p := NewParser()

	// Infernal ashes appears in both 100% and the loose body; the 100%
	// section wins and main must not repeat it.
	wikitext := `
===100%===
{{DropsLine|name=Infernal ashes|quantity=1|rarity=Always}}

===Other===
{{DropsLine|name=Infernal ashes|quantity=1|rarity=Common}}
{{DropsLine|name=Coal|quantity=5|rarity=Common}}
`
	table := p.Parse(wikitext, "Cerberus")

	require.Len(t, table.Always, 1)
	require.Len(t, table.Main, 1)
	assert.Equal(t, "Coal", table.Main[0].Item)
}

func TestParseMechanicOverrides(t *testing.T) {
	p := NewParser()

	t.Run("unique table chance phrase", func(t *testing.T) {
		wikitext := `
The monster hits the unique table with a probability of 1/86.
{{DropsLine|name=Coins|quantity=100|rarity=Common}}
`
		table := p.Parse(wikitext, "Test monster")
		assert.InDelta(t, 1.0/86.0, table.UniqueTableChance, 1e-9)
	})

	t.Run("main rolls phrase", func(t *testing.T) {
		wikitext := `
The player rolls on the main drop table twice per kill.
{{DropsLine|name=Coins|quantity=100|rarity=Common}}
`
		table := p.Parse(wikitext, "Test monster")
		assert.Equal(t, 2, table.MainTableRolls)
	})

	t.Run("numeric rolls phrase", func(t *testing.T) {
		wikitext := `
Each kill rolls the main drop table 3 times.
{{DropsLine|name=Coins|quantity=100|rarity=Common}}
`
		table := p.Parse(wikitext, "Test monster")
		assert.Equal(t, 3, table.MainTableRolls)
	})
}

func TestParseZulrahForcedMechanics(t *testing.T) {
	p := NewParser()

	wikitext := `{{DropsLine|name=Tanzanite fang|quantity=1|rarity=1/1024}}`

	table := p.Parse(wikitext, "Zulrah")

	assert.Equal(t, ZulrahMainTableRolls, table.MainTableRolls)
	assert.InDelta(t, ZulrahUniqueTableChance, table.UniqueTableChance, 1e-9)
}

func TestParseZulrahKeepsExplicitChance(t *testing.T) {
	p := NewParser()

	wikitext := `
Zulrah hits the unique table with a probability of 1/100.
{{DropsLine|name=Tanzanite fang|quantity=1|rarity=1/1024}}
`
	table := p.Parse(wikitext, "Zulrah")

	assert.Equal(t, ZulrahMainTableRolls, table.MainTableRolls)
	assert.InDelta(t, 1.0/100.0, table.UniqueTableChance, 1e-9)
}

func TestParseEmptyDocument(t *testing.T) {
	p := NewParser()

	table := p.Parse("Nothing about drops here.", "Test monster")

	assert.True(t, table.IsEmpty())
	assert.Equal(t, "Test monster", table.Name)
}
