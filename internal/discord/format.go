package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/handler"
)

const historyTimeFormat = "2006-01-02 15:04"

// prizeTypeTitle renders a prize type such as "jackpot" as "Jackpot"
func prizeTypeTitle(prizeType string) string {
	// Casers are stateful; one per call keeps concurrent handlers safe
	return cases.Title(language.English).String(prizeType)
}

func outcomeEmbed(o *domain.SpinOutcome) *discordgo.MessageEmbed {
	color := ColorWin
	if o.Prize.Type == domain.PrizeTypeJackpot {
		color = ColorJackpot
	}

	embed := createEmbed("🎡 "+o.Segment.Label, o.Message, color, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Prize", Value: prizeTypeTitle(o.Prize.Type), Inline: true},
		{Name: "Amount", Value: fmt.Sprintf("%d", o.Prize.Amount), Inline: true},
		{Name: "Next Spin", Value: fmt.Sprintf("in %d minute(s)", o.CooldownMinutes), Inline: true},
	}
	return embed
}

func historyEmbed(username string, page *domain.HistoryPage, pageNum int) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf("📜 %s's Spins", username), "", ColorHistory, fmt.Sprintf(MsgHistoryPageInfo, pageNum, page.TotalSpins))
	if len(page.Spins) == 0 {
		embed.Description = MsgNoSpinsYet
		return embed
	}

	stats := page.Stats
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: prizeTypeTitle(domain.PrizeTypeCoins), Value: fmt.Sprintf("%d", stats.TotalCoins), Inline: true},
		{Name: prizeTypeTitle(domain.PrizeTypeSpecial), Value: fmt.Sprintf("%d", stats.TotalSpecial), Inline: true},
		{Name: prizeTypeTitle(domain.PrizeTypeBonus), Value: fmt.Sprintf("%d", stats.TotalBonus), Inline: true},
		{Name: prizeTypeTitle(domain.PrizeTypeJackpot), Value: fmt.Sprintf("%d", stats.TotalJackpot), Inline: true},
	}
	if stats.MostCommonPrize != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Most Common", Value: *stats.MostCommonPrize, Inline: true})
	}

	var sb strings.Builder
	for idx, rec := range page.Spins {
		if idx == HistoryRecentRows {
			break
		}
		fmt.Fprintf(&sb, "`%s` %s\n", rec.Timestamp.UTC().Format(historyTimeFormat), rec.Prize.Description)
	}
	embed.Description = sb.String()
	return embed
}

func statusMessage(status *domain.SpinStatus) string {
	if status.CanSpin {
		return MsgReadyToSpin
	}
	return MsgCooldownActive + "\n" + fmt.Sprintf(MsgCooldownWait, status.RemainingMinutes)
}

// formatFriendlyError turns API failures into short messages users can act on
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgGenericError
	}

	switch apiErr.Kind {
	case handler.KindCooldownActive:
		if apiErr.RemainingMinutes != nil {
			return MsgCooldownActive + "\n" + fmt.Sprintf(MsgCooldownWait, *apiErr.RemainingMinutes)
		}
		return MsgCooldownActive
	case handler.KindConfigurationNotFound:
		return MsgNoWheel
	case handler.KindConfigurationError:
		return MsgWheelBroken
	case handler.KindStorageError:
		return MsgServiceDown
	case handler.KindRateLimited:
		return MsgSlowDown
	case handler.KindInvalidArgument:
		return "❌ " + apiErr.Message
	default:
		return MsgGenericError
	}
}
