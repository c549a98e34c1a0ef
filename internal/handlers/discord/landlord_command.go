package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/landlord/internal/board"
	"github.com/KirkDiggler/landlord/internal/repositories/simulation"
	"github.com/KirkDiggler/landlord/internal/services/messaging"
	reportService "github.com/KirkDiggler/landlord/internal/services/report"
	"github.com/KirkDiggler/landlord/internal/simulator"
)

// Subcommands
const (
	SubcommandSimulate = "simulate"
	SubcommandBoard    = "board"
	SubcommandHistory  = "history"
)

const (
	maxGamesPerCommand = 25
	historyLimit       = 10
	simulateTimeout    = 2 * time.Minute
)

// Simulator plays a batch of games
type Simulator interface {
	Run(ctx context.Context, input *simulator.RunInput) (*simulator.RunOutput, error)
}

// LandlordCommand handles the /landlord command and its subcommands
type LandlordCommand struct {
	BaseCommand
	simulator  Simulator
	reporter   reportService.Service
	messenger  messaging.Service
	repository simulation.Repository
	logger     *zap.Logger
}

// NewLandlordCommand creates a new landlord command; repository may be nil
func NewLandlordCommand(sim Simulator, reporter reportService.Service, messenger messaging.Service, repository simulation.Repository, logger *zap.Logger) *LandlordCommand {
	minGames := 1.0

	return &LandlordCommand{
		BaseCommand: BaseCommand{
			Name:        "landlord",
			Description: "Simulate property trading games",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSimulate,
					Description: "Play simulated games and show the results",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "games",
							Description: "How many games to play",
							Required:    false,
							MinValue:    &minGames,
							MaxValue:    maxGamesPerCommand,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Comma separated player names",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandBoard,
					Description: "Show rent-to-investment ratios for every color group",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandHistory,
					Description: "Show recently recorded games and win counts",
				},
			},
		},
		simulator:  sim,
		reporter:   reporter,
		messenger:  messenger,
		repository: repository,
		logger:     logger,
	}
}

// Handle processes the command
func (c *LandlordCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Missing subcommand")
	}

	sub := data.Options[0]
	switch sub.Name {
	case SubcommandSimulate:
		games, players := parseSimulateOptions(sub.Options)
		return c.handleSimulate(s, i, games, players)
	case SubcommandBoard:
		return c.handleBoard(s, i)
	case SubcommandHistory:
		return c.handleHistory(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// HandleComponent processes the simulate-again button
func (c *LandlordCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	games, ok := parseSimulateAgain(customID)
	if !ok {
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
	return c.handleSimulate(s, i, games, nil)
}

func parseSimulateOptions(options []*discordgo.ApplicationCommandInteractionDataOption) (int, []string) {
	games := 1
	var players []string

	for _, opt := range options {
		switch opt.Name {
		case "games":
			games = int(opt.IntValue())
		case "players":
			players = splitPlayers(opt.StringValue())
		}
	}

	if games < 1 {
		games = 1
	}
	if games > maxGamesPerCommand {
		games = maxGamesPerCommand
	}

	return games, players
}

// splitPlayers trims names and drops blanks
func splitPlayers(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (c *LandlordCommand) handleSimulate(s *discordgo.Session, i *discordgo.InteractionCreate, games int, players []string) error {
	if len(players) == 1 {
		return RespondWithError(s, i, "At least two players are needed")
	}

	// a batch can outlast the interaction acknowledgement window
	if err := RespondDeferred(s, i); err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), simulateTimeout)
	defer cancel()

	output, err := c.simulator.Run(ctx, &simulator.RunInput{
		Games:   games,
		Players: players,
	})
	if err != nil {
		c.logger.Error("simulation failed", zap.Int("games", games), zap.Error(err))
		return FollowupWithEmbed(s, i, c.errorEmbed(ctx, err), nil)
	}

	embed := renderRunEmbed(output)
	if n := len(output.Reports); n > 0 {
		flavor, err := c.messenger.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{Report: output.Reports[n-1]})
		if err != nil {
			c.logger.Warn("failed to get game over message", zap.Error(err))
		} else {
			embed.Title = flavor.Title + " " + embed.Title
			embed.Description = embed.Description + "\n" + flavor.Message
		}
	}

	return FollowupWithEmbed(s, i, embed, simulateAgainComponents(games))
}

func (c *LandlordCommand) errorEmbed(ctx context.Context, cause error) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Simulation failed",
		Description: cause.Error(),
		Color:       colorError,
	}

	msg, err := c.messenger.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: cause})
	if err != nil {
		return embed
	}
	embed.Title = msg.Title
	embed.Description = msg.Message
	return embed
}

func (c *LandlordCommand) handleBoard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	squares, err := board.Standard()
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to load board: %v", err))
	}

	analysis, err := c.reporter.AnalyzeBoard(&reportService.AnalyzeBoardInput{Squares: squares})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to analyze board: %v", err))
	}

	return RespondWithEmbed(s, i, renderBoardEmbed(analysis))
}

func (c *LandlordCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if c.repository == nil {
		return RespondWithError(s, i, "History is unavailable because persistence is disabled")
	}

	ctx := context.Background()

	recent, err := c.repository.ListRecentReports(ctx, &simulation.ListRecentReportsInput{Limit: historyLimit})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to list games: %v", err))
	}

	wins, err := c.repository.GetWinCounts(ctx, &simulation.GetWinCountsInput{})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to get win counts: %v", err))
	}

	return RespondWithEmbed(s, i, renderHistoryEmbed(recent.Reports, wins.Wins))
}
