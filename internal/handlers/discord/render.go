package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Component custom IDs are "<prefix>:<action>:<session id>[:<choice id>]"
const (
	customIDPrefix = "rpsls"
	actionJoin     = "join"
	actionChoose   = "choose"
)

var errBadCustomID = errors.New("malformed component id")

var choiceEmojis = map[models.Choice]string{
	models.ChoiceRock:     "🪨",
	models.ChoicePaper:    "📄",
	models.ChoiceScissors: "✂️",
	models.ChoiceLizard:   "🦎",
	models.ChoiceSpock:    "🖖",
}

var rankEmojis = []string{"🥇", "🥈", "🥉"}

func joinCustomID(sessionID string) string {
	return strings.Join([]string{customIDPrefix, actionJoin, sessionID}, ":")
}

func chooseCustomID(sessionID string, choice models.Choice) string {
	return strings.Join([]string{customIDPrefix, actionChoose, sessionID, strconv.Itoa(choice.ID())}, ":")
}

// parseCustomID splits a component id into its action, session and choice
func parseCustomID(customID string) (string, string, models.Choice, error) {
	parts := strings.Split(customID, ":")
	if len(parts) < 3 || parts[0] != customIDPrefix || parts[2] == "" {
		return "", "", models.ChoiceUnknown, errBadCustomID
	}

	switch parts[1] {
	case actionJoin:
		if len(parts) != 3 {
			return "", "", models.ChoiceUnknown, errBadCustomID
		}
		return actionJoin, parts[2], models.ChoiceUnknown, nil
	case actionChoose:
		if len(parts) != 4 {
			return "", "", models.ChoiceUnknown, errBadCustomID
		}
		choice, err := models.ParseChoice(parts[3])
		if err != nil {
			return "", "", models.ChoiceUnknown, fmt.Errorf("%w: %w", errBadCustomID, err)
		}
		return actionChoose, parts[2], choice, nil
	default:
		return "", "", models.ChoiceUnknown, errBadCustomID
	}
}

func choiceLabel(c models.Choice) string {
	return fmt.Sprintf("%s %s", choiceEmojis[c], c)
}

// renderSessionEmbed shows the seats and status of a session
func renderSessionEmbed(session *models.Session, status string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Session",
			Value:  fmt.Sprintf("`%s`", session.ID),
			Inline: false,
		},
	}

	for idx := 0; idx < models.MaxPlayers; idx++ {
		name := fmt.Sprintf("Player %d", idx+1)
		value := "*open seat*"
		if idx < len(session.Players) {
			player := session.Players[idx]
			value = player.Name
			if session.State == models.SessionStateCompleted && player.HasChoice() {
				value = fmt.Sprintf("%s (%s)", player.Name, choiceLabel(*player.Choice))
			} else if player.HasChoice() {
				value = fmt.Sprintf("%s ✅", player.Name)
			}
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  value,
			Inline: true,
		})
	}

	color := colorInfo
	if session.State == models.SessionStateCompleted {
		color = colorSuccess
	}

	return &discordgo.MessageEmbed{
		Title:       "Rock Paper Scissors Lizard Spock",
		Description: status,
		Color:       color,
		Fields:      fields,
	}
}

// renderSessionComponents returns the buttons the session currently accepts
func renderSessionComponents(session *models.Session) []discordgo.MessageComponent {
	switch session.State {
	case models.SessionStateWaitingForPlayers:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Join",
						Style:    discordgo.PrimaryButton,
						CustomID: joinCustomID(session.ID),
					},
				},
			},
		}
	case models.SessionStateChoicesSubmitted:
		buttons := make([]discordgo.MessageComponent, 0, models.ChoiceCount)
		for _, choice := range models.AllChoices() {
			buttons = append(buttons, discordgo.Button{
				Label:    choice.String(),
				Style:    discordgo.SecondaryButton,
				CustomID: chooseCustomID(session.ID, choice),
				Emoji: &discordgo.ComponentEmoji{
					Name: choiceEmojis[choice],
				},
			})
		}
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	default:
		return nil
	}
}

// renderRoundEmbed shows a resolved round
func renderRoundEmbed(title, message string, player, opponent models.Choice) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "You", Value: choiceLabel(player), Inline: true},
			{Name: "Opponent", Value: choiceLabel(opponent), Inline: true},
		},
	}
}

// renderScoreboardEmbed lists recent results, newest first
func renderScoreboardEmbed(results []*models.MatchResult) *discordgo.MessageEmbed {
	var description strings.Builder
	if len(results) == 0 {
		description.WriteString("No sessions have finished yet.")
	}

	for _, result := range results {
		winner := result.WinnerName
		if result.IsTie() {
			winner = "Tie"
		}
		description.WriteString(fmt.Sprintf("**%s** · %s vs %s · %s\n",
			winner,
			choiceLabel(result.Player1Choice),
			choiceLabel(result.Player2Choice),
			result.ResultDate.Format("Jan 2 15:04"),
		))
	}

	return &discordgo.MessageEmbed{
		Title:       "Scoreboard",
		Description: description.String(),
		Color:       colorInfo,
	}
}

// renderLeaderboardEmbed ranks players by wins
func renderLeaderboardEmbed(leaderboard *models.Leaderboard) *discordgo.MessageEmbed {
	var description strings.Builder
	if leaderboard == nil || len(leaderboard.Entries) == 0 {
		description.WriteString("Nobody has played yet. Be the first!")
	} else {
		for idx, entry := range leaderboard.Entries {
			rank := fmt.Sprintf("%d.", idx+1)
			if idx < len(rankEmojis) {
				rank = rankEmojis[idx]
			}
			description.WriteString(fmt.Sprintf("%s **%s** %dW / %dL / %dT\n", rank, entry.PlayerName, entry.Wins, entry.Losses, entry.Ties))
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "Leaderboard",
		Description: description.String(),
		Color:       colorInfo,
	}
}

// renderStatsEmbed shows one player's record
func renderStatsEmbed(stats *models.PlayerStats) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's record", stats.PlayerName),
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wins", Value: strconv.FormatInt(stats.Wins, 10), Inline: true},
			{Name: "Losses", Value: strconv.FormatInt(stats.Losses, 10), Inline: true},
			{Name: "Ties", Value: strconv.FormatInt(stats.Ties, 10), Inline: true},
			{Name: "Played", Value: strconv.FormatInt(stats.Played(), 10), Inline: true},
		},
	}
}
