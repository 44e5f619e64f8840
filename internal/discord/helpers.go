package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

// Embed colors
const (
	ColorGreen  = 0x2ecc71
	ColorRed    = 0xe74c3c
	ColorGrey   = 0x95a5a6
	ColorGold   = 0xf1c40f
	ColorPurple = 0x9b59b6
)

// Discord embed descriptions cap at 4096 characters; keep well under it
const maxLootLines = 25

// formatNumber renders an integer with thousands separators
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// formatLootSummary renders a simulation result as an embed description.
// Loot is sorted by quantity descending, then alphabetically for stable output.
func formatLootSummary(result *domain.SimulationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Loot from **%s** kills of **%s**:\n\n",
		formatNumber(result.KillCount), result.MonsterName)

	type lootLine struct {
		item  string
		count int
	}
	lines := make([]lootLine, 0, len(result.Loot))
	for item, count := range result.Loot {
		lines = append(lines, lootLine{item, count})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].count != lines[j].count {
			return lines[i].count > lines[j].count
		}
		return lines[i].item < lines[j].item
	})

	shown := len(lines)
	if shown > maxLootLines {
		shown = maxLootLines
	}
	for _, line := range lines[:shown] {
		fmt.Fprintf(&b, "• %s × **%s**\n", line.item, formatNumber(line.count))
	}
	if len(lines) > shown {
		fmt.Fprintf(&b, "…and %d more item types\n", len(lines)-shown)
	}

	if len(result.UniqueDrops) > 0 {
		b.WriteString("\n✨ **Notable drops:**\n")
		for _, drop := range result.UniqueDrops {
			fmt.Fprintf(&b, "• %s (kill %s)\n", drop.Item, formatNumber(drop.KillNumber))
		}
	}

	return b.String()
}

// formatDropTable renders a parsed drop table as an embed description
func formatDropTable(table *domain.DropTable) string {
	var b strings.Builder

	section := func(title string, drops []domain.Drop) {
		if len(drops) == 0 {
			return
		}
		fmt.Fprintf(&b, "**%s**\n", title)
		for _, d := range drops {
			qty := formatQuantity(d.Quantity)
			fmt.Fprintf(&b, "• %s × %s — %s\n", d.Item, qty, d.RarityText)
		}
		b.WriteByte('\n')
	}

	section("Always", table.Always)
	section("Uniques", table.Uniques)
	section("Main table", table.Main)
	section("Tertiary", table.Tertiary)

	if table.MainTableRolls > 1 {
		fmt.Fprintf(&b, "Rolls the main table **%d** times per kill.\n", table.MainTableRolls)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatQuantity(q domain.Quantity) string {
	if q.Min == q.Max {
		return formatNumber(q.Min)
	}
	return fmt.Sprintf("%s–%s", formatNumber(q.Min), formatNumber(q.Max))
}

// formatPrice renders a Grand Exchange quote as an embed description
func formatPrice(price *domain.ItemPrice) string {
	return fmt.Sprintf("**%s**\nHigh: **%s** gp\nLow: **%s** gp",
		price.ItemName, formatNumber(price.High), formatNumber(price.Low))
}

// rpsResponse maps an outcome to its embed title, description and color
func rpsResponse(result *domain.RPSResult) (string, string, int) {
	desc := fmt.Sprintf("You played **%s**, I played **%s**.",
		result.PlayerMove, result.BotMove)

	switch result.Outcome {
	case domain.RPSWin:
		return "🏆 You Win!", desc, ColorGreen
	case domain.RPSLoss:
		return "💀 You Lose!", desc, ColorRed
	default:
		return "🤝 Draw!", desc, ColorGrey
	}
}
