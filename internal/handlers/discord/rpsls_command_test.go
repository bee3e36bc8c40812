package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/rpsls/internal/lifecycle"
	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/KirkDiggler/rpsls/internal/rules"
	"github.com/KirkDiggler/rpsls/internal/services/game"
	"github.com/KirkDiggler/rpsls/internal/services/game/mocks"
	"github.com/KirkDiggler/rpsls/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/rpsls/internal/services/messaging/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RPSLSCommandTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockGameService *mocks.MockService
	command         *RPSLSCommand
	ctx             context.Context
}

func (s *RPSLSCommandTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGameService = mocks.NewMockService(s.ctrl)

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)

	s.command = NewRPSLSCommand(s.mockGameService, messagingService, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()
}

func (s *RPSLSCommandTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRPSLSCommandSuite(t *testing.T) {
	suite.Run(t, new(RPSLSCommandTestSuite))
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func commandInteraction(user, sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: &discordgo.Member{User: &discordgo.User{ID: "1", Username: user}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "rpsls",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: sub, Type: discordgo.ApplicationCommandOptionSubCommand, Options: opts},
			},
		},
	}}
}

func componentInteraction(user, customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:   discordgo.InteractionMessageComponent,
		Member: &discordgo.Member{User: &discordgo.User{ID: "1", Username: user}},
		Data:   discordgo.MessageComponentInteractionData{CustomID: customID},
	}}
}

func (s *RPSLSCommandTestSuite) fullSession() *models.Session {
	session := models.NewSession("session-1", testTime)
	session.Players = []*models.Player{{Name: "Alice"}, {Name: "Bob"}}
	session.State = models.SessionStateChoicesSubmitted
	return session
}

func (s *RPSLSCommandTestSuite) completedSession(alice, bob models.Choice, winner string) (*models.Session, *models.MatchResult) {
	session := s.fullSession()
	session.Players[0].Choice = alice.Ptr()
	session.Players[1].Choice = bob.Ptr()
	session.State = models.SessionStateCompleted
	result := &models.MatchResult{
		ID:            "result-1",
		SessionID:     session.ID,
		WinnerName:    winner,
		ResultDate:    testTime,
		Player1Choice: alice,
		Player2Choice: bob,
	}
	session.Results = []*models.MatchResult{result}
	return session, result
}

func (s *RPSLSCommandTestSuite) TestGetCommand() {
	cmd := s.command.GetCommand()
	s.Equal("rpsls", cmd.Name)

	var names []string
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}
	s.Equal([]string{"play", "create", "join", "choose", "scoreboard", "leaderboard", "stats"}, names)
	s.Len(cmd.Options[0].Options[0].Choices, models.ChoiceCount)
}

func (s *RPSLSCommandTestSuite) TestPlay() {
	s.mockGameService.EXPECT().
		PlayRound(gomock.Any(), &game.PlayRoundInput{Choice: models.ChoiceRock}).
		Return(&game.PlayRoundOutput{
			Outcome:        rules.OutcomeFirstWins,
			Result:         rules.ResultWin,
			PlayerChoice:   models.ChoiceRock,
			ComputerChoice: models.ChoiceScissors,
			Summary:        "Rock crushes Scissors",
		}, nil)

	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "play", stringOpt("choice", "Rock")))

	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Rock crushes Scissors. Alice beats The computer.", resp.Data.Embeds[0].Description)
	s.Zero(resp.Data.Flags)
}

func (s *RPSLSCommandTestSuite) TestPlay_InvalidChoice() {
	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "play", stringOpt("choice", "Dynamite")))

	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Invalid Choice", resp.Data.Embeds[0].Title)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func (s *RPSLSCommandTestSuite) TestPlay_Unavailable() {
	s.mockGameService.EXPECT().
		PlayRound(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: timeout", game.ErrUnavailable))

	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "play", stringOpt("choice", "Spock")))

	s.Equal("No Opponent", resp.Data.Embeds[0].Title)
}

func (s *RPSLSCommandTestSuite) TestCreate_SeatsCreator() {
	session := models.NewSession("session-1", testTime)
	seated := session.Clone()
	seated.Players = []*models.Player{{Name: "Alice"}}

	gomock.InOrder(
		s.mockGameService.EXPECT().
			CreateSession(gomock.Any(), &game.CreateSessionInput{}).
			Return(&game.CreateSessionOutput{Session: session}, nil),
		s.mockGameService.EXPECT().
			JoinSession(gomock.Any(), &game.JoinSessionInput{SessionID: "session-1", PlayerName: "Alice"}).
			Return(&game.JoinSessionOutput{Session: seated, Player: seated.Players[0]}, nil),
	)

	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "create"))

	s.Contains(resp.Data.Content, "Alice")
	s.Require().Len(resp.Data.Components, 1)
	row := resp.Data.Components[0].(discordgo.ActionsRow)
	s.Equal("rpsls:join:session-1", row.Components[0].(discordgo.Button).CustomID)
}

func (s *RPSLSCommandTestSuite) TestJoin_Duplicate() {
	s.mockGameService.EXPECT().
		JoinSession(gomock.Any(), &game.JoinSessionInput{SessionID: "session-1", PlayerName: "Alice"}).
		Return(nil, lifecycle.ErrDuplicatePlayer)

	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "join", stringOpt("session", "session-1")))

	s.Equal("Can't Join", resp.Data.Embeds[0].Title)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func (s *RPSLSCommandTestSuite) TestChoose_Pending() {
	session := s.fullSession()
	session.Players[0].Choice = models.ChoicePaper.Ptr()

	s.mockGameService.EXPECT().
		SubmitChoice(gomock.Any(), &game.SubmitChoiceInput{SessionID: "session-1", PlayerName: "Alice", Choice: models.ChoicePaper}).
		Return(&game.SubmitChoiceOutput{Session: session}, nil)

	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "choose", stringOpt("session", "session-1"), stringOpt("choice", "paper")))

	s.Contains(resp.Data.Content, "Locked in")
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func (s *RPSLSCommandTestSuite) TestChoose_Completes() {
	session, result := s.completedSession(models.ChoiceLizard, models.ChoiceSpock, "Alice")

	s.mockGameService.EXPECT().
		SubmitChoice(gomock.Any(), &game.SubmitChoiceInput{SessionID: "session-1", PlayerName: "Bob", Choice: models.ChoiceSpock}).
		Return(&game.SubmitChoiceOutput{Session: session, Result: result}, nil)

	resp := s.command.Respond(s.ctx, commandInteraction("Bob", "choose", stringOpt("session", "session-1"), stringOpt("choice", "Spock")))

	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Lizard poisons Spock. Alice beats Bob.", resp.Data.Embeds[0].Description)
	s.Zero(resp.Data.Flags)
}

func (s *RPSLSCommandTestSuite) TestChoose_Tie() {
	session, result := s.completedSession(models.ChoiceRock, models.ChoiceRock, models.NoWinner)

	s.mockGameService.EXPECT().
		SubmitChoice(gomock.Any(), gomock.Any()).
		Return(&game.SubmitChoiceOutput{Session: session, Result: result}, nil)

	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "choose", stringOpt("session", "session-1"), stringOpt("choice", "Rock")))

	s.Equal("Alice and Bob both played Rock.", resp.Data.Embeds[0].Description)
}

func (s *RPSLSCommandTestSuite) TestScoreboard() {
	s.mockGameService.EXPECT().
		GetScoreboard(gomock.Any(), &game.GetScoreboardInput{}).
		Return(&game.GetScoreboardOutput{}, nil)

	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "scoreboard"))

	s.Equal("Scoreboard", resp.Data.Embeds[0].Title)
}

func (s *RPSLSCommandTestSuite) TestLeaderboard() {
	s.mockGameService.EXPECT().
		GetLeaderboard(gomock.Any(), &game.GetLeaderboardInput{Limit: 10}).
		Return(&game.GetLeaderboardOutput{Leaderboard: &models.Leaderboard{}}, nil)

	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "leaderboard"))

	s.Equal("Leaderboard", resp.Data.Embeds[0].Title)
}

func (s *RPSLSCommandTestSuite) TestStats_NotFound() {
	s.mockGameService.EXPECT().
		GetPlayerStats(gomock.Any(), &game.GetPlayerStatsInput{PlayerName: "Alice"}).
		Return(nil, game.ErrPlayerNotFound)

	resp := s.command.Respond(s.ctx, commandInteraction("Alice", "stats"))

	s.Equal("No Record", resp.Data.Embeds[0].Title)
}

func (s *RPSLSCommandTestSuite) TestComponent_Join() {
	session := s.fullSession()

	s.mockGameService.EXPECT().
		JoinSession(gomock.Any(), &game.JoinSessionInput{SessionID: "session-1", PlayerName: "Bob"}).
		Return(&game.JoinSessionOutput{Session: session, Player: session.Players[1]}, nil)

	resp, refresh := s.command.RespondToComponent(s.ctx, componentInteraction("Bob", "rpsls:join:session-1"))

	s.Nil(refresh)
	s.Equal(discordgo.InteractionResponseUpdateMessage, resp.Type)
	row := resp.Data.Components[0].(discordgo.ActionsRow)
	s.Len(row.Components, models.ChoiceCount)
}

func (s *RPSLSCommandTestSuite) TestComponent_ChoosePendingRefreshesMessage() {
	session := s.fullSession()
	session.Players[1].Choice = models.ChoiceScissors.Ptr()

	s.mockGameService.EXPECT().
		SubmitChoice(gomock.Any(), &game.SubmitChoiceInput{SessionID: "session-1", PlayerName: "Bob", Choice: models.ChoiceScissors}).
		Return(&game.SubmitChoiceOutput{Session: session}, nil)

	resp, refresh := s.command.RespondToComponent(s.ctx, componentInteraction("Bob", "rpsls:choose:session-1:3"))

	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Same(session, refresh)
}

func (s *RPSLSCommandTestSuite) TestComponent_ChooseCompletes() {
	session, result := s.completedSession(models.ChoicePaper, models.ChoiceScissors, "Bob")

	s.mockGameService.EXPECT().
		SubmitChoice(gomock.Any(), gomock.Any()).
		Return(&game.SubmitChoiceOutput{Session: session, Result: result}, nil)

	resp, refresh := s.command.RespondToComponent(s.ctx, componentInteraction("Bob", "rpsls:choose:session-1:3"))

	s.Nil(refresh)
	s.Equal(discordgo.InteractionResponseUpdateMessage, resp.Type)
	s.Contains(resp.Data.Content, "Scissors cuts Paper. Bob beats Alice.")
	s.Empty(resp.Data.Components)
}

func (s *RPSLSCommandTestSuite) TestComponent_NotSeated() {
	s.mockGameService.EXPECT().
		SubmitChoice(gomock.Any(), gomock.Any()).
		Return(nil, lifecycle.ErrPlayerNotFound)

	resp, refresh := s.command.RespondToComponent(s.ctx, componentInteraction("Carol", "rpsls:choose:session-1:1"))

	s.Nil(refresh)
	s.Equal("Not In Session", resp.Data.Embeds[0].Title)
}

func (s *RPSLSCommandTestSuite) TestComponent_BadID() {
	resp, refresh := s.command.RespondToComponent(s.ctx, componentInteraction("Carol", "rpsls:roll"))

	s.Nil(refresh)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func (s *RPSLSCommandTestSuite) TestErrorResponse_MessagingFails() {
	mockMessaging := messagingMocks.NewMockService(s.ctrl)
	command := NewRPSLSCommand(s.mockGameService, mockMessaging, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.mockGameService.EXPECT().
		JoinSession(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: gone", game.ErrSessionNotFound))
	mockMessaging.EXPECT().
		GetErrorMessage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no template"))

	resp := command.Respond(s.ctx, commandInteraction("Alice", "join", stringOpt("session", "missing")))

	s.Equal("Error", resp.Data.Embeds[0].Title)
	s.Equal("Something went wrong. Please try again.", resp.Data.Embeds[0].Description)
}

func TestNew_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	gameService := mocks.NewMockService(ctrl)

	_, err := New(nil)
	if err != ErrNilConfig {
		t.Fatalf("expected ErrNilConfig, got %v", err)
	}

	_, err = New(&Config{GameService: gameService})
	if err != ErrEmptyToken {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}

	_, err = New(&Config{Token: "token", GameService: gameService})
	if err != ErrNilMessagingService {
		t.Fatalf("expected ErrNilMessagingService, got %v", err)
	}
}
