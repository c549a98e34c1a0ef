package performance

import "github.com/KirkDiggler/landlord/internal/models"

// RecordEventInput contains parameters for recording a payment event
type RecordEventInput struct {
	// Property is the square the event happened on
	Property *models.Property

	// Amount is the money involved, zero for a landing with no payment
	Amount int

	// Kind says which history the amount belongs to
	Kind models.EventKind
}

// RecordEventOutput contains the recomputed metrics
type RecordEventOutput struct {
	// Performance is the property's record after the event
	Performance models.Performance
}
