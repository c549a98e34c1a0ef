package messaging

import (
	"github.com/KirkDiggler/landlord/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// Config holds configuration for the messaging service
type Config struct {
	// Optional seed so message selection is reproducible
	Seed int64
}

// GetGameOverMessageInput contains parameters for getting a game over message
type GetGameOverMessageInput struct {
	// Report is the finished game
	Report *models.GameReport

	// Tone is the preferred tone for the message (optional)
	Tone MessageTone
}

// GetGameOverMessageOutput contains the generated game over message
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error to describe
	Err error

	// Tone is the preferred tone for the message (optional)
	Tone MessageTone
}

// GetErrorMessageOutput contains the generated error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
