package optimizer

import "github.com/photomatch/photomatch-backend/internal/domain"

// degenerateMidpoint is the value every member of a constant attribute
// column normalizes to, so a catalog where everyone shares a rating does
// not divide by zero and does not favor anyone on that attribute.
const degenerateMidpoint = 0.5

// Range holds the min/max bounds one attribute is rescaled against.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Normalize maps v linearly into [0,1] against the range, clamping
// values outside the bounds. A degenerate range maps everything to the
// midpoint.
func (r Range) Normalize(v float64) float64 {
	if r.Max <= r.Min {
		return degenerateMidpoint
	}
	n := (v - r.Min) / (r.Max - r.Min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Invert is Normalize flipped: smaller raw values yield higher scores.
// Used for price and travel cost, where cheap beats expensive.
func (r Range) Invert(v float64) float64 {
	return 1 - r.Normalize(v)
}

// Bounds are the catalog-wide normalization ranges for the attributes
// that do not depend on the request. They live inside an immutable
// catalog snapshot and are rebuilt only on an explicit refresh; travel
// cost depends on the client's city and is ranged per request.
type Bounds struct {
	Rating     Range `json:"rating"`
	Price      Range `json:"price"`
	Experience Range `json:"experience"`
}

// ComputeBounds scans the catalog once and records min/max for each
// request-independent attribute.
func ComputeBounds(photographers []domain.Photographer) Bounds {
	var b Bounds
	for i, p := range photographers {
		if i == 0 {
			b.Rating = Range{Min: p.Rating, Max: p.Rating}
			b.Price = Range{Min: p.BasePrice, Max: p.BasePrice}
			exp := float64(p.ExperienceYears)
			b.Experience = Range{Min: exp, Max: exp}
			continue
		}
		b.Rating = b.Rating.extend(p.Rating)
		b.Price = b.Price.extend(p.BasePrice)
		b.Experience = b.Experience.extend(float64(p.ExperienceYears))
	}
	return b
}

// ComputeRange returns the min/max over an arbitrary value set. Used for
// the per-request travel cost column.
func ComputeRange(values []float64) Range {
	var r Range
	for i, v := range values {
		if i == 0 {
			r = Range{Min: v, Max: v}
			continue
		}
		r = r.extend(v)
	}
	return r
}

func (r Range) extend(v float64) Range {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}
