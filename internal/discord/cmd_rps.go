package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// RPSCommand returns the rock-paper-scissors command definition and handler
func RPSCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rps",
		Description: "Play rock-paper-scissors against the bot",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "move",
				Description: "Your move",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Rock", Value: "rock"},
					{Name: "Paper", Value: "paper"},
					{Name: "Scissors", Value: "scissors"},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		move := options[0].StringValue()

		result, err := client.PlayRPS(move)
		if err != nil {
			slog.Error("Failed to play RPS", "move", move, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		title, desc, color := rpsResponse(result)
		embed := createEmbed(title, desc, color, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
