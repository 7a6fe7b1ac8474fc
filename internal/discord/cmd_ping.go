package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// PingCommand reports whether the bot can reach the SpinWheel API
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check that the wheel is reachable",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), PingTimeout)
		defer cancel()

		if !client.Ping(ctx) {
			slog.Warn(LogMsgWheelUnreachable, "base_url", client.BaseURL)
			respondError(s, i, MsgServiceDown)
			return
		}
		respondText(s, i, MsgPong)
	}

	return cmd, handler
}
