package valuation

import (
	"sort"

	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/KirkDiggler/landlord/internal/services/rent"
)

// service implements the Service interface
type service struct{}

// New creates a new valuation service
func New() *service {
	return &service{}
}

type holding struct {
	size       int
	properties []*models.Property
}

func (h *holding) complete() bool {
	return len(h.properties) == h.size
}

// groupHoldings buckets a player's properties by group, returning group IDs in sorted order
func groupHoldings(player *models.Player) ([]string, map[string]*holding) {
	groups := make(map[string]*holding)
	for _, prop := range player.Properties {
		h, ok := groups[prop.Group]
		if !ok {
			h = &holding{size: prop.GroupSize}
			groups[prop.Group] = h
		}
		h.properties = append(h.properties, prop)
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, groups
}

// BuildValueMap values the player's holdings group by group
func (s *service) BuildValueMap(input *BuildValueMapInput) (*BuildValueMapOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}

	ids, groups := groupHoldings(input.Player)

	switch input.Kind {
	case MapKindMortgage:
		values := make(ValueMap)
		for _, id := range ids {
			for _, prop := range groups[id].properties {
				values[prop.ID] = float64(prop.Cost) / 2
			}
		}
		return &BuildValueMapOutput{Values: values}, nil

	case MapKindRent:
		values := make(ValueMap)
		for _, id := range ids {
			h := groups[id]
			for _, prop := range h.properties {
				value, err := rentValue(prop, h, input.Improvements)
				if err != nil {
					return nil, err
				}
				values[prop.ID] = value
			}
		}
		return &BuildValueMapOutput{Values: values}, nil

	case MapKindImprovements:
		return &BuildValueMapOutput{Groups: improvementGroups(ids, groups, input.Improvements)}, nil
	}

	return &BuildValueMapOutput{Values: ValueMap{}}, nil
}

func rentValue(prop *models.Property, h *holding, improvements rent.ImprovementCounter) (float64, error) {
	if prop.Mortgaged {
		return 0, nil
	}

	switch prop.Kind {
	case models.PropertyKindStreet:
		if prop.Street == nil {
			return 0, nil
		}
		built := 0
		if improvements != nil {
			built = improvements.Count(prop.ID)
		}
		return float64(rent.StreetRent(prop.Street, h.complete(), built)), nil

	case models.PropertyKindRailroad:
		amount, err := rent.RailroadRent(len(h.properties))
		if err != nil {
			return 0, err
		}
		return float64(amount), nil

	case models.PropertyKindUtility:
		return float64(rent.UtilityMultiplier(h.complete()) * ExpectedRoll), nil
	}

	return 0, nil
}

func improvementGroups(ids []string, groups map[string]*holding, improvements rent.ImprovementCounter) []ImprovementGroup {
	result := make([]ImprovementGroup, 0)
	for _, id := range ids {
		h := groups[id]
		if !h.complete() {
			continue
		}

		first := h.properties[0]
		if first.Kind != models.PropertyKindStreet || first.Street == nil {
			continue
		}

		group := ImprovementGroup{
			Group:           id,
			Levels:          make(map[int]int, len(h.properties)),
			ImprovementCost: first.Street.ImprovementCost,
			ShaveValue:      first.Street.ImprovementCost / 2,
		}
		for _, prop := range h.properties {
			if improvements != nil {
				group.Levels[prop.ID] = improvements.Count(prop.ID)
			} else {
				group.Levels[prop.ID] = 0
			}
		}
		result = append(result, group)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ShaveValue < result[j].ShaveValue
	})
	return result
}

// ScoreProperty computes the footprint-weighted average value of everything the player owns except the candidate
func (s *service) ScoreProperty(input *ScorePropertyInput) (*ScorePropertyOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}
	if input.Property == nil {
		return nil, ErrNilProperty
	}

	others := make([]*models.Property, 0, len(input.Player.Properties))
	for _, prop := range input.Player.Properties {
		if prop.ID != input.Property.ID {
			others = append(others, prop)
		}
	}
	// sum in ID order so the result does not depend on holding order
	sort.Slice(others, func(i, j int) bool {
		return others[i].ID < others[j].ID
	})

	var revenue, footprint float64
	for _, prop := range others {
		revenue += input.Values[prop.ID] * prop.Weight
		footprint += prop.Weight
	}

	if footprint == 0 {
		return nil, ErrUndefinedOpportunityCost
	}

	return &ScorePropertyOutput{
		Score: revenue / footprint,
	}, nil
}
