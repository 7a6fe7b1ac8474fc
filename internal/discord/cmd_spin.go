package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// SpinCommand returns the spin command definition and handler
func SpinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "spin",
		Description: "Spin the prize wheel",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), CommandTimeout)
		defer cancel()

		user := getInteractionUser(i)
		outcome, err := client.Spin(ctx, user.ID, i.ID)
		if err != nil {
			slog.Error(LogMsgActionFailed, "command", "spin", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, outcomeEmbed(outcome))
	}

	return cmd, handler
}

// CooldownCommand returns the cooldown command definition and handler
func CooldownCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "cooldown",
		Description: "Check when you can spin again",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), CommandTimeout)
		defer cancel()

		user := getInteractionUser(i)
		status, err := client.Status(ctx, user.ID)
		if err != nil {
			slog.Error(LogMsgActionFailed, "command", "cooldown", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, createEmbed("⏱️ Spin Cooldown", statusMessage(status), ColorCooldown, ""))
	}

	return cmd, handler
}
