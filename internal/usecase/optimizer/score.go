package optimizer

import (
	"fmt"
	"math"
)

// weightSumTolerance absorbs float rounding when validating that the
// four weights sum to 1.
const weightSumTolerance = 1e-9

// Weights is the fixed scoring configuration. All weights are
// non-negative and sum to 1, which keeps every total score in [0,1]
// for normalized inputs.
type Weights struct {
	Rating     float64 `json:"rating"`
	Price      float64 `json:"price"`
	Travel     float64 `json:"travel"`
	Experience float64 `json:"experience"`
}

func (w Weights) Validate() error {
	if w.Rating < 0 || w.Price < 0 || w.Travel < 0 || w.Experience < 0 {
		return fmt.Errorf("score weights must be non-negative, got %+v", w)
	}
	sum := w.Rating + w.Price + w.Travel + w.Experience
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("score weights must sum to 1, got %g", sum)
	}
	return nil
}

// Normalized holds contribution-ready attribute values in [0,1]. Price
// and travel are already inverted: a cheaper, closer photographer has
// values near 1.
type Normalized struct {
	Rating     float64 `json:"rating"`
	Price      float64 `json:"price"`
	Travel     float64 `json:"travel"`
	Experience float64 `json:"experience"`
}

// ScoreBreakdown decomposes a candidate's total score into weighted
// per-attribute contributions. TotalScore is the exact sum of the four
// contributions; the optimization engine and the explainability layer
// both obtain it from Weights.Score, so they can never diverge.
type ScoreBreakdown struct {
	RatingContribution     float64 `json:"rating_contribution"`
	PriceContribution      float64 `json:"price_contribution"`
	TravelContribution     float64 `json:"travel_contribution"`
	ExperienceContribution float64 `json:"experience_contribution"`
	TotalScore             float64 `json:"total_score"`
}

// Score computes the weighted breakdown for a set of normalized
// attributes.
func (w Weights) Score(n Normalized) ScoreBreakdown {
	b := ScoreBreakdown{
		RatingContribution:     w.Rating * n.Rating,
		PriceContribution:      w.Price * n.Price,
		TravelContribution:     w.Travel * n.Travel,
		ExperienceContribution: w.Experience * n.Experience,
	}
	b.TotalScore = b.RatingContribution + b.PriceContribution + b.TravelContribution + b.ExperienceContribution
	return b
}
