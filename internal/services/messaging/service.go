package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/landlord/internal/models"
	gameService "github.com/KirkDiggler/landlord/internal/services/game"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) *service {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

// bankrupts lists the players who went broke, in roster order
func bankrupts(report *models.GameReport) []string {
	var names []string
	for _, st := range report.Standings {
		if st.Status == models.PlayerStatusLost {
			names = append(names, st.Name)
		}
	}
	return names
}

// GetGameOverMessage returns a message describing how the game ended
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil || input.Report == nil {
		return nil, errors.New("input and report cannot be nil")
	}

	report := input.Report

	if report.Winner == "" {
		if input.Tone == ToneNeutral {
			return &GetGameOverMessageOutput{
				Title:   "Stalemate",
				Message: fmt.Sprintf("No winner after %d turns.", report.Turns),
			}, nil
		}

		return &GetGameOverMessageOutput{
			Title: s.pick([]string{"Stalemate!", "Gridlock!", "Nobody Blinked!"}),
			Message: s.pick([]string{
				fmt.Sprintf("%d turns and everyone is still solvent. The bank is unimpressed. 🏦", report.Turns),
				fmt.Sprintf("After %d turns the landlords agreed to disagree. 🤝", report.Turns),
				"The dice got tired before anyone went broke. 🎲",
				"Rent was paid, nobody cried, nothing was decided. 😐",
			}),
		}, nil
	}

	if input.Tone == ToneNeutral {
		return &GetGameOverMessageOutput{
			Title:   "Game Over",
			Message: fmt.Sprintf("%s won after %d turns.", report.Winner, report.Turns),
		}, nil
	}

	messages := []string{
		fmt.Sprintf("%s owns the town now. Pay up! 🏘️", report.Winner),
		fmt.Sprintf("%s collected the last rent check and the whole board with it. 💰", report.Winner),
		fmt.Sprintf("All hail %s, landlord supreme! 👑", report.Winner),
		fmt.Sprintf("%s outlasted everyone in %d turns. 🏁", report.Winner, report.Turns),
	}
	if broke := bankrupts(report); len(broke) > 0 {
		last := broke[len(broke)-1]
		messages = append(messages,
			fmt.Sprintf("%s mortgaged everything and it still wasn't enough. %s takes the crown. 📉", last, report.Winner),
			fmt.Sprintf("Pour one out for %s, evicted by %s. 🚪", last, report.Winner),
		)
	}

	return &GetGameOverMessageOutput{
		Title:   s.pick([]string{"Game Over!", "Monopoly Achieved!", "Last One Standing!"}),
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var message string
	switch {
	case errors.Is(input.Err, gameService.ErrNotEnoughPlayers):
		message = "A game needs at least two players."
	case errors.Is(input.Err, gameService.ErrDuplicatePlayerName):
		message = "Every player needs a different name."
	case errors.Is(input.Err, gameService.ErrEmptyPlayerName):
		message = "Player names cannot be blank."
	case errors.Is(input.Err, context.DeadlineExceeded):
		message = "The simulation took too long. Try fewer games."
	default:
		message = input.Err.Error()
	}

	title := "Error"
	if input.Tone != ToneNeutral {
		title = s.pick([]string{"Whoops!", "Foreclosed!", "Back to Go!"})
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}
