package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpsls/internal/lifecycle"
	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/KirkDiggler/rpsls/internal/rules"
	"github.com/KirkDiggler/rpsls/internal/services/game"
	"github.com/KirkDiggler/rpsls/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// interactionTimeout keeps service calls inside Discord's response window
const interactionTimeout = 3 * time.Second

// Subcommand names
const (
	subcommandPlay        = "play"
	subcommandCreate      = "create"
	subcommandJoin        = "join"
	subcommandChoose      = "choose"
	subcommandScoreboard  = "scoreboard"
	subcommandLeaderboard = "leaderboard"
	subcommandStats       = "stats"
)

// RPSLSCommand handles the /rpsls command and its buttons
type RPSLSCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	logger           *slog.Logger
}

// NewRPSLSCommand creates a new rpsls command handler
func NewRPSLSCommand(gameService game.Service, messagingService messaging.Service, logger *slog.Logger) *RPSLSCommand {
	if logger == nil {
		logger = slog.Default()
	}

	choiceOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "choice",
		Description: "Rock, Paper, Scissors, Lizard or Spock",
		Required:    true,
		Choices:     choiceOptionChoices(),
	}
	sessionOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "session",
		Description: "Session id",
		Required:    true,
	}

	return &RPSLSCommand{
		BaseCommand: BaseCommand{
			Name:        "rpsls",
			Description: "Rock Paper Scissors Lizard Spock",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandPlay,
					Description: "Play a round against the computer",
					Options:     []*discordgo.ApplicationCommandOption{choiceOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandCreate,
					Description: "Create a two player session and take the first seat",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandJoin,
					Description: "Join a session",
					Options:     []*discordgo.ApplicationCommandOption{sessionOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandChoose,
					Description: "Submit your choice in a session",
					Options:     []*discordgo.ApplicationCommandOption{sessionOption, choiceOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandScoreboard,
					Description: "Show the most recent results",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandLeaderboard,
					Description: "Show the all time leaderboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStats,
					Description: "Show your record",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
		logger:           logger.With("component", "discord"),
	}
}

func choiceOptionChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, models.ChoiceCount)
	for _, choice := range models.AllChoices() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  choiceLabel(choice),
			Value: choice.String(),
		})
	}
	return choices
}

// Handle processes a Discord interaction for the rpsls command
func (c *RPSLSCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	return s.InteractionRespond(i.Interaction, c.Respond(ctx, i))
}

// HandleComponent processes a button click on a session message
func (c *RPSLSCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	resp, refresh := c.RespondToComponent(ctx, i)
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		return err
	}

	if refresh == nil || i.Message == nil {
		return nil
	}

	// The click was answered privately, so bring the shared message up to date
	embed := renderSessionEmbed(refresh, c.statusMessage(ctx, refresh))
	components := renderSessionComponents(refresh)
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         i.Message.ID,
		Channel:    i.Message.ChannelID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	return err
}

// Respond builds the response to a slash command
func (c *RPSLSCommand) Respond(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return newErrorResponse("Error", "Unknown command.")
	}

	sub := data.Options[0]
	name := playerName(i)

	switch sub.Name {
	case subcommandPlay:
		return c.handlePlay(ctx, name, stringOption(sub, "choice"))
	case subcommandCreate:
		return c.handleCreate(ctx, name)
	case subcommandJoin:
		return c.handleJoin(ctx, stringOption(sub, "session"), name)
	case subcommandChoose:
		return c.handleChoose(ctx, stringOption(sub, "session"), name, stringOption(sub, "choice"))
	case subcommandScoreboard:
		return c.handleScoreboard(ctx)
	case subcommandLeaderboard:
		return c.handleLeaderboard(ctx)
	case subcommandStats:
		return c.handleStats(ctx, name)
	default:
		return newErrorResponse("Error", fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// RespondToComponent builds the response to a button click. The returned
// session is set when the shared message should be refreshed separately.
func (c *RPSLSCommand) RespondToComponent(ctx context.Context, i *discordgo.InteractionCreate) (*discordgo.InteractionResponse, *models.Session) {
	action, sessionID, choice, err := parseCustomID(i.MessageComponentData().CustomID)
	if err != nil {
		return newErrorResponse("Error", "That button doesn't do anything."), nil
	}

	name := playerName(i)

	switch action {
	case actionJoin:
		output, err := c.gameService.JoinSession(ctx, &game.JoinSessionInput{
			SessionID:  sessionID,
			PlayerName: name,
		})
		if err != nil {
			return c.errorResponse(ctx, "join", err), nil
		}

		content := c.joinMessage(ctx, output.Session, name)
		return newUpdateResponse(content, renderSessionEmbed(output.Session, c.statusMessage(ctx, output.Session)), renderSessionComponents(output.Session)), nil
	default:
		output, err := c.gameService.SubmitChoice(ctx, &game.SubmitChoiceInput{
			SessionID:  sessionID,
			PlayerName: name,
			Choice:     choice,
		})
		if err != nil {
			return c.errorResponse(ctx, "choose", err), nil
		}

		if output.Result == nil {
			return newEphemeralMessage(fmt.Sprintf("Locked in %s. Waiting for your opponent.", choiceLabel(choice))), output.Session
		}

		title, message := c.roundMessage(ctx, output.Session, name)
		return newUpdateResponse(fmt.Sprintf("**%s** %s", title, message), renderSessionEmbed(output.Session, c.statusMessage(ctx, output.Session)), nil), nil
	}
}

func (c *RPSLSCommand) handlePlay(ctx context.Context, name, rawChoice string) *discordgo.InteractionResponse {
	choice, err := models.ParseChoice(rawChoice)
	if err != nil {
		return c.errorResponse(ctx, "play", err)
	}

	output, err := c.gameService.PlayRound(ctx, &game.PlayRoundInput{Choice: choice})
	if err != nil {
		return c.errorResponse(ctx, "play", err)
	}

	msg, err := c.messagingService.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		PlayerName:     name,
		PlayerChoice:   output.PlayerChoice,
		OpponentChoice: output.ComputerChoice,
		Outcome:        output.Outcome,
	})
	if err != nil {
		return newEmbedResponse(renderRoundEmbed(output.Result, output.Summary, output.PlayerChoice, output.ComputerChoice), nil, false)
	}

	return newEmbedResponse(renderRoundEmbed(msg.Title, msg.Message, output.PlayerChoice, output.ComputerChoice), nil, false)
}

func (c *RPSLSCommand) handleCreate(ctx context.Context, name string) *discordgo.InteractionResponse {
	created, err := c.gameService.CreateSession(ctx, &game.CreateSessionInput{})
	if err != nil {
		return c.errorResponse(ctx, "create", err)
	}

	// Seat the creator
	joined, err := c.gameService.JoinSession(ctx, &game.JoinSessionInput{
		SessionID:  created.Session.ID,
		PlayerName: name,
	})
	if err != nil {
		return c.errorResponse(ctx, "create", err)
	}

	resp := newEmbedResponse(renderSessionEmbed(joined.Session, c.statusMessage(ctx, joined.Session)), renderSessionComponents(joined.Session), false)
	resp.Data.Content = c.joinMessage(ctx, joined.Session, name)
	return resp
}

func (c *RPSLSCommand) handleJoin(ctx context.Context, sessionID, name string) *discordgo.InteractionResponse {
	output, err := c.gameService.JoinSession(ctx, &game.JoinSessionInput{
		SessionID:  sessionID,
		PlayerName: name,
	})
	if err != nil {
		return c.errorResponse(ctx, "join", err)
	}

	resp := newEmbedResponse(renderSessionEmbed(output.Session, c.statusMessage(ctx, output.Session)), renderSessionComponents(output.Session), false)
	resp.Data.Content = c.joinMessage(ctx, output.Session, name)
	return resp
}

func (c *RPSLSCommand) handleChoose(ctx context.Context, sessionID, name, rawChoice string) *discordgo.InteractionResponse {
	choice, err := models.ParseChoice(rawChoice)
	if err != nil {
		return c.errorResponse(ctx, "choose", err)
	}

	output, err := c.gameService.SubmitChoice(ctx, &game.SubmitChoiceInput{
		SessionID:  sessionID,
		PlayerName: name,
		Choice:     choice,
	})
	if err != nil {
		return c.errorResponse(ctx, "choose", err)
	}

	if output.Result == nil {
		return newEphemeralMessage(fmt.Sprintf("Locked in %s. Waiting for your opponent.", choiceLabel(choice)))
	}

	title, message := c.roundMessage(ctx, output.Session, name)
	return newEmbedResponse(&discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorSuccess,
	}, nil, false)
}

func (c *RPSLSCommand) handleScoreboard(ctx context.Context) *discordgo.InteractionResponse {
	output, err := c.gameService.GetScoreboard(ctx, &game.GetScoreboardInput{})
	if err != nil {
		return c.errorResponse(ctx, "scoreboard", err)
	}
	return newEmbedResponse(renderScoreboardEmbed(output.Results), nil, false)
}

func (c *RPSLSCommand) handleLeaderboard(ctx context.Context) *discordgo.InteractionResponse {
	output, err := c.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{Limit: 10})
	if err != nil {
		return c.errorResponse(ctx, "leaderboard", err)
	}
	return newEmbedResponse(renderLeaderboardEmbed(output.Leaderboard), nil, false)
}

func (c *RPSLSCommand) handleStats(ctx context.Context, name string) *discordgo.InteractionResponse {
	output, err := c.gameService.GetPlayerStats(ctx, &game.GetPlayerStatsInput{PlayerName: name})
	if err != nil {
		return c.errorResponse(ctx, "stats", err)
	}
	return newEmbedResponse(renderStatsEmbed(output.Stats), nil, true)
}

// roundMessage describes a completed session from one player's side
func (c *RPSLSCommand) roundMessage(ctx context.Context, session *models.Session, name string) (string, string) {
	var me, opponent *models.Player
	for _, p := range session.Players {
		if p.Name == name {
			me = p
		} else {
			opponent = p
		}
	}
	if me == nil || opponent == nil || !me.HasChoice() || !opponent.HasChoice() {
		return "Session complete", c.statusMessage(ctx, session)
	}

	outcome, err := rules.Resolve(*me.Choice, *opponent.Choice)
	if err != nil {
		return "Session complete", c.statusMessage(ctx, session)
	}

	msg, err := c.messagingService.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		PlayerName:     me.Name,
		PlayerChoice:   *me.Choice,
		OpponentName:   opponent.Name,
		OpponentChoice: *opponent.Choice,
		Outcome:        outcome,
	})
	if err != nil {
		return "Session complete", c.statusMessage(ctx, session)
	}
	return msg.Title, msg.Message
}

func (c *RPSLSCommand) statusMessage(ctx context.Context, session *models.Session) string {
	msg, err := c.messagingService.GetSessionStatusMessage(ctx, &messaging.GetSessionStatusMessageInput{
		Session: session,
	})
	if err != nil {
		c.logger.Warn("failed to get status message", "session_id", session.ID, "error", err)
		return string(session.State)
	}
	return msg.Message
}

func (c *RPSLSCommand) joinMessage(ctx context.Context, session *models.Session, name string) string {
	msg, err := c.messagingService.GetJoinSessionMessage(ctx, &messaging.GetJoinSessionMessageInput{
		PlayerName: name,
		SessionID:  session.ID,
		State:      session.State,
	})
	if err != nil {
		c.logger.Warn("failed to get join message", "session_id", session.ID, "error", err)
		return fmt.Sprintf("%s joined.", name)
	}
	return msg.Message
}

// errorResponse logs the failure and renders it as a friendly ephemeral embed
func (c *RPSLSCommand) errorResponse(ctx context.Context, op string, err error) *discordgo.InteractionResponse {
	if isUserError(err) {
		c.logger.Debug("command rejected", "op", op, "error", err)
	} else {
		c.logger.Error("command failed", "op", op, "error", err)
	}

	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return newErrorResponse("Error", "Something went wrong. Please try again.")
	}
	return newErrorResponse(msg.Title, msg.Message)
}

// isUserError reports whether err was caused by the request rather than the system
func isUserError(err error) bool {
	var lifecycleErr lifecycle.LifecycleError
	return errors.Is(err, game.ErrValidation) ||
		errors.Is(err, models.ErrInvalidChoice) ||
		errors.Is(err, game.ErrSessionNotFound) ||
		errors.Is(err, game.ErrPlayerNotFound) ||
		errors.As(err, &lifecycleErr)
}

// stringOption finds a string option on a subcommand
func stringOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}
