package discord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/landlord/internal/models"
	reportService "github.com/KirkDiggler/landlord/internal/services/report"
	"github.com/KirkDiggler/landlord/internal/simulator"
)

// Button IDs
const (
	// ButtonSimulateAgain carries the batch size after the prefix, e.g. "simulate_again:5"
	ButtonSimulateAgain = "simulate_again"
)

const topPropertiesShown = 5

type tally struct {
	name  string
	count int64
}

// sortedTallies orders by count descending, then name
func sortedTallies(counts map[string]int64) []tally {
	out := make([]tally, 0, len(counts))
	for name, count := range counts {
		out = append(out, tally{name: name, count: count})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].count != out[b].count {
			return out[a].count > out[b].count
		}
		return out[a].name < out[b].name
	})
	return out
}

func renderTallies(counts map[string]int64) string {
	if len(counts) == 0 {
		return "None"
	}
	var sb strings.Builder
	for _, t := range sortedTallies(counts) {
		fmt.Fprintf(&sb, "**%s**: %d\n", t.name, t.count)
	}
	return sb.String()
}

func renderStandings(standings []models.Standing) string {
	if len(standings) == 0 {
		return "None"
	}
	var sb strings.Builder
	for _, st := range standings {
		status := ""
		if st.Status == models.PlayerStatusLost {
			status = " (bankrupt)"
		}
		fmt.Fprintf(&sb, "**%s**%s: $%d, %d properties, %d mortgaged\n", st.Name, status, st.Cash, st.Properties, st.Mortgaged)
	}
	return sb.String()
}

// renderTopProperties lists the highest net earners of a game
func renderTopProperties(props []models.PropertyReport, limit int) string {
	sorted := make([]models.PropertyReport, len(props))
	copy(sorted, props)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Net > sorted[b].Net
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if len(sorted) == 0 {
		return "None"
	}

	var sb strings.Builder
	for _, p := range sorted {
		owner := p.Owner
		if owner == "" {
			owner = "unowned"
		}
		fmt.Fprintf(&sb, "**%s** (%s): net $%d over %d landings\n", p.Name, owner, p.Net, p.Landings)
	}
	return sb.String()
}

func describeOutcome(report *models.GameReport) string {
	if report.Winner != "" {
		return fmt.Sprintf("%s won after %d turns", report.Winner, report.Turns)
	}
	return fmt.Sprintf("Stalemate after %d turns", report.Turns)
}

// renderRunEmbed summarizes a batch and details its last game
func renderRunEmbed(output *simulator.RunOutput) *discordgo.MessageEmbed {
	wins := make(map[string]int64, len(output.Wins))
	for name, count := range output.Wins {
		wins[name] = int64(count)
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Simulated %d game(s)", len(output.Reports)),
		Color: colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wins", Value: renderTallies(wins), Inline: true},
			{Name: "Stalemates", Value: strconv.Itoa(output.Stalemates), Inline: true},
		},
	}

	if len(output.Reports) == 0 {
		return embed
	}

	last := output.Reports[len(output.Reports)-1]
	embed.Description = describeOutcome(last)
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Final Standings", Value: renderStandings(last.Standings)},
		&discordgo.MessageEmbedField{Name: "Top Properties", Value: renderTopProperties(last.Properties, topPropertiesShown)},
	)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "Game " + last.GameID}

	return embed
}

// bestTier returns the improvement level with the highest earned-to-invested ratio
func bestTier(ratios [models.RentTiers]float64) int {
	best := 0
	for k := 1; k < len(ratios); k++ {
		if ratios[k] > ratios[best] {
			best = k
		}
	}
	return best
}

// renderBoardEmbed shows one field per color group
func renderBoardEmbed(analysis *reportService.AnalyzeBoardOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Board Analysis",
		Description: "Rent earned per dollar invested, best improvement level per street",
		Color:       colorInfo,
		Fields:      make([]*discordgo.MessageEmbedField, 0, len(analysis.Groups)),
	}

	for _, group := range analysis.Groups {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Own the set: $%d, one level on every street: $%d\n", group.OwnershipCost, group.ImprovementSetCost)
		for _, prop := range group.Properties {
			k := bestTier(prop.Ratios)
			fmt.Fprintf(&sb, "%s: %.3f at level %d\n", prop.Name, prop.Ratios[k], k)
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  strings.ToUpper(group.Group[:1]) + group.Group[1:],
			Value: sb.String(),
		})
	}

	return embed
}

// renderHistoryEmbed lists recently persisted games and the all-time win counts
func renderHistoryEmbed(reports []*models.GameReport, wins map[string]int64) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, report := range reports {
		fmt.Fprintf(&sb, "`%s` %s\n", report.GameID, describeOutcome(report))
	}
	recent := sb.String()
	if recent == "" {
		recent = "No games recorded yet"
	}

	return &discordgo.MessageEmbed{
		Title: "Simulation History",
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Recent Games", Value: recent},
			{Name: "All-Time Wins", Value: renderTallies(wins)},
		},
	}
}

func simulateAgainComponents(games int) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Simulate Again",
					Style:    discordgo.PrimaryButton,
					CustomID: fmt.Sprintf("%s:%d", ButtonSimulateAgain, games),
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎲",
					},
				},
			},
		},
	}
}

// parseSimulateAgain extracts the batch size from a simulate-again custom ID
func parseSimulateAgain(customID string) (int, bool) {
	rest, ok := strings.CutPrefix(customID, ButtonSimulateAgain+":")
	if !ok {
		return 0, false
	}
	games, err := strconv.Atoi(rest)
	if err != nil || games < 1 {
		return 0, false
	}
	return games, true
}
