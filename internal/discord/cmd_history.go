package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const historyOptionPage = "page"

// HistoryCommand returns the history command definition and handler
func HistoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minPage := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "history",
		Description: "Show your recent spins and prize totals",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        historyOptionPage,
				Description: "Page number (default: 1)",
				Required:    false,
				MinValue:    &minPage,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), CommandTimeout)
		defer cancel()

		pageNum := 1
		for _, opt := range getOptions(i) {
			if opt.Name == historyOptionPage && opt.IntValue() > 0 {
				pageNum = int(opt.IntValue())
			}
		}

		user := getInteractionUser(i)
		page, err := client.History(ctx, user.ID, HistoryPageSize, (pageNum-1)*HistoryPageSize)
		if err != nil {
			slog.Error(LogMsgActionFailed, "command", "history", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, historyEmbed(user.Username, page, pageNum))
	}

	return cmd, handler
}
