package optimizer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/photomatch/photomatch-backend/internal/domain"
)

// TravelParams describe how a travel distance turns into a travel cost.
// Same-city bookings travel for free; otherwise cost is a base call-out
// fee plus a per-kilometre rate.
type TravelParams struct {
	BaseFee       float64
	RatePerKm     float64
	MaxDistanceKm float64 // 0 disables the distance bound
}

func (t TravelParams) Cost(distanceKm float64) float64 {
	if distanceKm == 0 {
		return 0
	}
	return t.BaseFee + t.RatePerKm*distanceKm
}

// Candidate is a photographer that passed every hard constraint,
// annotated with the travel and scoring data the solver ranks on.
type Candidate struct {
	Photographer domain.Photographer `json:"photographer"`
	DistanceKm   float64             `json:"distance_km"`
	TravelCost   float64             `json:"travel_cost"`
	TotalCost    float64             `json:"total_cost"`
	Normalized   Normalized          `json:"normalized"`
	Breakdown    ScoreBreakdown      `json:"optimization_score"`
}

// AvailabilityChecker answers the candidate filter's availability
// constraint. Satisfied by the booking repository.
type AvailabilityChecker interface {
	HasActiveBooking(ctx context.Context, photographerID int, eventDate string) (bool, error)
}

// buildCandidates applies the hard constraints to the snapshot and
// returns the feasible candidate set, fully normalized and scored. The
// second return value reports why the set is empty, for the caller to
// surface; it is "" when candidates exist.
func (uc *UseCase) buildCandidates(ctx context.Context, snapshot *Snapshot, req Request) ([]Candidate, string, error) {
	if len(snapshot.Photographers) == 0 {
		return nil, "the photographer catalog is empty", nil
	}

	clientCity, ok := snapshot.CityByName(req.ClientCity)
	if !ok {
		return nil, "", fmt.Errorf("%w: unknown client city %q", domain.ErrValidation, req.ClientCity)
	}

	// Travel costs are ranged across the whole catalog, not just the
	// survivors, so a candidate's travel score does not depend on who
	// else got filtered out.
	distances := make([]float64, len(snapshot.Photographers))
	travelCosts := make([]float64, len(snapshot.Photographers))
	for i, p := range snapshot.Photographers {
		distances[i] = uc.travelDistanceKm(snapshot, clientCity, p)
		travelCosts[i] = uc.travel.Cost(distances[i])
	}
	travelRange := ComputeRange(travelCosts)

	var (
		candidates []Candidate
		overBudget int
	)
	for i, p := range snapshot.Photographers {
		if uc.travel.MaxDistanceKm > 0 && distances[i] > uc.travel.MaxDistanceKm {
			continue
		}
		totalCost := p.BasePrice + travelCosts[i]
		if totalCost > req.MaxBudget {
			overBudget++
			continue
		}
		if req.GenderPreference != "" && p.Gender != req.GenderPreference {
			continue
		}
		if req.Specialty != "" && !p.HasSpecialty(req.Specialty) {
			continue
		}
		booked, err := uc.bookings.HasActiveBooking(ctx, p.ID, req.EventDate)
		if err != nil {
			return nil, "", fmt.Errorf("availability check for photographer %d: %w", p.ID, err)
		}
		if booked {
			continue
		}

		normalized := Normalized{
			Rating:     snapshot.Bounds.Rating.Normalize(p.Rating),
			Price:      snapshot.Bounds.Price.Invert(p.BasePrice),
			Travel:     travelRange.Invert(travelCosts[i]),
			Experience: snapshot.Bounds.Experience.Normalize(float64(p.ExperienceYears)),
		}
		candidates = append(candidates, Candidate{
			Photographer: p,
			DistanceKm:   distances[i],
			TravelCost:   travelCosts[i],
			TotalCost:    totalCost,
			Normalized:   normalized,
			Breakdown:    uc.weights.Score(normalized),
		})
	}

	if len(candidates) == 0 {
		if overBudget == len(snapshot.Photographers) {
			return nil, fmt.Sprintf("all %d photographers cost more than the budget of %.2f", overBudget, req.MaxBudget), nil
		}
		return nil, "no photographer satisfies the budget, preference and availability constraints", nil
	}
	return candidates, "", nil
}

// travelDistanceKm resolves the distance between the client's city and
// the photographer. Photographer coordinates take precedence; the city
// table is the fallback. Same city is always distance zero.
func (uc *UseCase) travelDistanceKm(snapshot *Snapshot, clientCity domain.City, p domain.Photographer) float64 {
	if strings.EqualFold(p.City, clientCity.Name) {
		return 0
	}
	if p.LocationLat != nil && p.LocationLon != nil {
		return haversineKm(clientCity.Lat, clientCity.Lon, *p.LocationLat, *p.LocationLon)
	}
	if c, ok := snapshot.CityByName(p.City); ok {
		return haversineKm(clientCity.Lat, clientCity.Lon, c.Lat, c.Lon)
	}
	return 0
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371.0
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)
	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}
