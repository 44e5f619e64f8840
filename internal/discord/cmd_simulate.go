package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// SimulateCommand returns the simulate command definition and handler
func SimulateCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minKills := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "simulate",
		Description: "Simulate killing a monster and see what loot you get",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "monster",
				Description: "Monster name (e.g. Zulrah, Cerberus)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "kill_count",
				Description: "Number of kills to simulate (max 10,000)",
				Required:    true,
				MinValue:    &minKills,
				MaxValue:    10000,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		monster := options[0].StringValue()
		killCount := int(options[1].IntValue())

		result, err := client.SimulateKills(monster, killCount)
		if err != nil {
			slog.Error("Failed to simulate kills", "monster", monster, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		title := fmt.Sprintf("⚔️ %s Loot Simulation", result.MonsterName)
		embed := createEmbed(title, formatLootSummary(result), ColorGold, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// DropTableCommand returns the droptable command definition and handler
func DropTableCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "droptable",
		Description: "Look up a monster's drop table",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "monster",
				Description: "Monster name (e.g. Zulrah, Cerberus)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		monster := options[0].StringValue()

		table, err := client.GetDropTable(monster)
		if err != nil {
			slog.Error("Failed to fetch drop table", "monster", monster, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		title := fmt.Sprintf("📜 %s Drop Table", table.Name)
		embed := createEmbed(title, formatDropTable(table), ColorPurple, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
