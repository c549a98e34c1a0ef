package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/landlord/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/landlord/internal/models"
)

// DefaultSides is the number of faces on a standard die
const DefaultSides = 6

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a value between 1 and sides inclusive
	Roll(sides int) int
}

// RandomRoller rolls dice from a seeded pseudo-random source. It is safe for concurrent use.
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = DefaultSides
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// RollPair throws two standard dice
func RollPair(r Roller) models.Roll {
	return models.Roll{
		Die1: r.Roll(DefaultSides),
		Die2: r.Roll(DefaultSides),
	}
}
