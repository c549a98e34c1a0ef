package liquidation

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/KirkDiggler/landlord/internal/services/valuation"
)

// engine implements the Engine interface
type engine struct {
	valuation valuation.Service
	floor     int
	logger    *zap.Logger
}

// New creates a new liquidation engine
func New(cfg *Config) (*engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Valuation == nil {
		return nil, ErrNilValuation
	}
	if cfg.ImprovementFloor < 0 || cfg.ImprovementFloor > models.MaxImprovements {
		return nil, ErrImprovementFloor
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &engine{
		valuation: cfg.Valuation,
		floor:     cfg.ImprovementFloor,
		logger:    logger,
	}, nil
}

// run carries the state of a single ResolveShortfall call
type run struct {
	player       *models.Player
	improvements *models.ImprovementRegistry
	remaining    int
	output       *ResolveShortfallOutput
}

func (r *run) open() bool {
	return r.remaining > 0
}

func (r *run) record(stage Stage, kind ActionKind, propertyID, amount int) {
	r.remaining -= amount
	r.output.Raised += amount
	r.output.Actions = append(r.output.Actions, Action{
		Stage:      stage,
		Kind:       kind,
		PropertyID: propertyID,
		Amount:     amount,
	})
}

func (r *run) mortgage(stage Stage, prop *models.Property) error {
	amount, err := prop.Mortgage()
	if err != nil {
		return fmt.Errorf("failed to mortgage %s: %w", prop.Name, err)
	}
	r.record(stage, ActionMortgage, prop.ID, amount)
	return nil
}

// ResolveShortfall mortgages utilities, then properties outside complete groups, then shaves improvements
func (e *engine) ResolveShortfall(input *ResolveShortfallInput) (*ResolveShortfallOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}
	if input.Improvements == nil {
		return nil, ErrNilImprovements
	}
	if input.Debt < 0 {
		return nil, ErrNegativeDebt
	}

	r := &run{
		player:       input.Player,
		improvements: input.Improvements,
		remaining:    input.Debt,
		output:       &ResolveShortfallOutput{},
	}

	if r.open() {
		if err := e.mortgageUtilities(r); err != nil {
			return nil, err
		}
	}
	if r.open() {
		if err := e.mortgageIncompleteGroups(r); err != nil {
			return nil, err
		}
	}
	if r.open() {
		if err := e.shaveImprovements(r); err != nil {
			return nil, err
		}
	}

	r.player.Cash += r.output.Raised
	r.output.RemainingDebt = r.remaining

	if r.open() {
		r.output.Bankrupt = true
		r.player.Status = models.PlayerStatusLost
		e.logger.Info("liquidation exhausted",
			zap.String("player", r.player.Name),
			zap.Int("debt", input.Debt),
			zap.Int("raised", r.output.Raised),
			zap.Int("remaining", r.remaining),
		)
	}

	return r.output, nil
}

// mortgageUtilities mortgages each utility whose proceeds do not overpay the debt
func (e *engine) mortgageUtilities(r *run) error {
	for _, prop := range r.player.Properties {
		if !r.open() {
			return nil
		}
		if prop.Kind != models.PropertyKindUtility || prop.Mortgaged {
			continue
		}
		if r.remaining-prop.MortgageValue() < 0 {
			continue
		}
		if err := r.mortgage(StageUtilities, prop); err != nil {
			return err
		}
		e.logger.Debug("mortgaged utility",
			zap.String("player", r.player.Name),
			zap.String("property", prop.Name),
			zap.Int("remaining", r.remaining),
		)
	}
	return nil
}

type candidate struct {
	property *models.Property
	score    float64
	defined  bool
}

// mortgageIncompleteGroups mortgages properties outside complete groups, lowest opportunity cost first
func (e *engine) mortgageIncompleteGroups(r *run) error {
	mortgageMap, err := e.valuation.BuildValueMap(&valuation.BuildValueMapInput{
		Player:       r.player,
		Kind:         valuation.MapKindMortgage,
		Improvements: r.improvements,
	})
	if err != nil {
		return fmt.Errorf("failed to build mortgage map: %w", err)
	}

	candidates := make([]candidate, 0, len(r.player.Properties))
	for _, prop := range r.player.Properties {
		if prop.Mortgaged || r.player.CountInGroup(prop.Group) >= prop.GroupSize {
			continue
		}

		scored, err := e.valuation.ScoreProperty(&valuation.ScorePropertyInput{
			Property: prop,
			Player:   r.player,
			Values:   mortgageMap.Values,
		})
		switch {
		case errors.Is(err, valuation.ErrUndefinedOpportunityCost):
			candidates = append(candidates, candidate{property: prop})
		case err != nil:
			return fmt.Errorf("failed to score %s: %w", prop.Name, err)
		default:
			candidates = append(candidates, candidate{property: prop, score: scored.Score, defined: true})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.defined != b.defined {
			return a.defined
		}
		if a.defined && a.score != b.score {
			return a.score < b.score
		}
		return a.property.ID < b.property.ID
	})

	for _, c := range candidates {
		if !r.open() {
			return nil
		}
		if err := r.mortgage(StageIncompleteGroups, c.property); err != nil {
			return err
		}
		e.logger.Debug("mortgaged property",
			zap.String("player", r.player.Name),
			zap.String("property", c.property.Name),
			zap.Float64("opportunity_cost", c.score),
			zap.Int("remaining", r.remaining),
		)
	}
	return nil
}

// shaveImprovements removes improvements above the floor, cheapest group first
func (e *engine) shaveImprovements(r *run) error {
	groups, err := e.valuation.BuildValueMap(&valuation.BuildValueMapInput{
		Player:       r.player,
		Kind:         valuation.MapKindImprovements,
		Improvements: r.improvements,
	})
	if err != nil {
		return fmt.Errorf("failed to build improvement map: %w", err)
	}

	for _, group := range groups.Groups {
		for r.open() {
			propertyID, level := mostBuilt(group.Levels)
			if level <= e.floor {
				break
			}

			left, err := r.improvements.Decrement(propertyID)
			if err != nil {
				return fmt.Errorf("failed to shave property %d: %w", propertyID, err)
			}
			group.Levels[propertyID] = left
			r.record(StageImprovements, ActionShave, propertyID, group.ShaveValue)

			e.logger.Debug("shaved improvement",
				zap.String("player", r.player.Name),
				zap.String("group", group.Group),
				zap.Int("property_id", propertyID),
				zap.Int("improvements", left),
				zap.Int("remaining", r.remaining),
			)
		}
		if !r.open() {
			return nil
		}
	}
	return nil
}

// mostBuilt returns the property with the most improvements, lowest ID on ties
func mostBuilt(levels map[int]int) (int, int) {
	bestID, bestLevel := -1, -1
	for id, level := range levels {
		if level > bestLevel || (level == bestLevel && id < bestID) {
			bestID, bestLevel = id, level
		}
	}
	return bestID, bestLevel
}
