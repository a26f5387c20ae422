package optimizer

import (
	"fmt"
	"sort"
	"strings"
)

type contribution struct {
	attribute string
	weight    float64
	value     float64
}

// rankedContributions orders a breakdown's per-attribute contributions
// from largest to smallest, attribute name as the tie-break.
func rankedContributions(b ScoreBreakdown, w Weights) []contribution {
	contributions := []contribution{
		{attribute: "rating", weight: w.Rating, value: b.RatingContribution},
		{attribute: "price", weight: w.Price, value: b.PriceContribution},
		{attribute: "travel", weight: w.Travel, value: b.TravelContribution},
		{attribute: "experience", weight: w.Experience, value: b.ExperienceContribution},
	}
	sort.Slice(contributions, func(i, j int) bool {
		if contributions[i].value != contributions[j].value {
			return contributions[i].value > contributions[j].value
		}
		return contributions[i].attribute < contributions[j].attribute
	})
	return contributions
}

// renderExplanation builds the deterministic per-candidate breakdown
// text shown to clients asking why a photographer was picked.
func renderExplanation(result *SelectionResult, w Weights) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Ranked %d feasible photographer(s); showing the top %d by optimization score.\n",
		result.TotalCandidates, len(result.Selected))

	for rank, c := range result.Selected {
		fmt.Fprintf(&sb, "\n%d. %s (total score %.3f, total cost %.2f)\n",
			rank+1, c.Photographer.Name, c.Breakdown.TotalScore, c.TotalCost)
		for _, contrib := range rankedContributions(c.Breakdown, w) {
			fmt.Fprintf(&sb, "   - %s contributed %.3f (weight %.0f%%)\n",
				contrib.attribute, contrib.value, contrib.weight*100)
		}
		if c.DistanceKm > 0 {
			fmt.Fprintf(&sb, "   - travel: %.0f km from the client city, travel cost %.2f\n",
				c.DistanceKm, c.TravelCost)
		}
	}
	return sb.String()
}
