package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// PriceCommand returns the price lookup command definition and handler
func PriceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "price",
		Description: "Look up an item's Grand Exchange price",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item name (e.g. Twisted bow)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		itemName := options[0].StringValue()

		price, err := client.GetPrice(itemName)
		if err != nil {
			slog.Error("Failed to fetch price", "item", itemName, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed("💰 Grand Exchange", formatPrice(price), ColorGreen, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
