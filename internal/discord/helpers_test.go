package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{10000, "10,000"},
		{1234567, "1,234,567"},
		{-5000, "-5,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatNumber(tt.input))
	}
}

func TestFormatLootSummarySortsByQuantity(t *testing.T) {
	result := &domain.SimulationResult{
		MonsterName: "Cerberus",
		KillCount:   100,
		Loot: map[string]int{
			"Infernal ashes": 100,
			"Coins":          54321,
			"Uncut diamond":  3,
		},
		UniqueDrops: []domain.UniqueDropEvent{
			{Item: "Primordial crystal", KillNumber: 42, Rarity: 512},
		},
	}

	out := formatLootSummary(result)

	assert.Contains(t, out, "**100** kills of **Cerberus**")
	assert.Contains(t, out, "Coins × **54,321**")
	assert.Contains(t, out, "Primordial crystal (kill 42)")

	// Highest quantity first
	coinsIdx := strings.Index(out, "Coins")
	diamondIdx := strings.Index(out, "Uncut diamond")
	assert.Less(t, coinsIdx, diamondIdx)
}

func TestFormatLootSummaryTruncatesLongLists(t *testing.T) {
	loot := make(map[string]int)
	for r := 'a'; r < 'a'+30; r++ {
		loot[strings.Repeat(string(r), 3)] = int(r)
	}

	out := formatLootSummary(&domain.SimulationResult{
		MonsterName: "Zulrah",
		KillCount:   10,
		Loot:        loot,
	})

	assert.Contains(t, out, "…and 5 more item types")
}

func TestFormatDropTable(t *testing.T) {
	table := &domain.DropTable{
		Name: "Zulrah",
		Always: []domain.Drop{
			{Item: "Zulrah's scales", Quantity: domain.Quantity{Min: 100, Max: 299}, Rarity: 1, RarityText: "Always"},
		},
		Uniques: []domain.Drop{
			{Item: "Tanzanite fang", Quantity: domain.Quantity{Min: 1, Max: 1}, Rarity: 1024, RarityText: "1/1,024"},
		},
		MainTableRolls: 2,
	}

	out := formatDropTable(table)

	assert.Contains(t, out, "**Always**")
	assert.Contains(t, out, "Zulrah's scales × 100–299 — Always")
	assert.Contains(t, out, "Tanzanite fang × 1 — 1/1,024")
	assert.Contains(t, out, "main table **2** times")
}

func TestFormatPrice(t *testing.T) {
	out := formatPrice(&domain.ItemPrice{
		ItemName: "Twisted bow",
		ItemID:   20997,
		High:     1601234567,
		Low:      1598000000,
	})

	assert.Contains(t, out, "**Twisted bow**")
	assert.Contains(t, out, "High: **1,601,234,567** gp")
	assert.Contains(t, out, "Low: **1,598,000,000** gp")
}

func TestRPSResponse(t *testing.T) {
	tests := []struct {
		outcome       domain.RPSOutcome
		expectedTitle string
		expectedColor int
	}{
		{domain.RPSWin, "🏆 You Win!", ColorGreen},
		{domain.RPSLoss, "💀 You Lose!", ColorRed},
		{domain.RPSDraw, "🤝 Draw!", ColorGrey},
	}

	for _, tt := range tests {
		title, desc, color := rpsResponse(&domain.RPSResult{
			PlayerMove: domain.RPSRock,
			BotMove:    domain.RPSScissors,
			Outcome:    tt.outcome,
		})
		assert.Equal(t, tt.expectedTitle, title)
		assert.Equal(t, tt.expectedColor, color)
		assert.Contains(t, desc, "rock")
	}
}
