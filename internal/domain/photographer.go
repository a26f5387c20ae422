package domain

import "time"

type Photographer struct {
	ID              int       `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	City            string    `json:"city" db:"city"`
	Gender          string    `json:"gender" db:"gender"`
	Specialties     []string  `json:"specialties" db:"specialties"`
	Rating          float64   `json:"rating" db:"rating"`
	BasePrice       float64   `json:"base_price" db:"base_price"`
	ExperienceYears int       `json:"experience_years" db:"experience_years"`
	LocationLat     *float64  `json:"location_lat" db:"location_lat"`
	LocationLon     *float64  `json:"location_lon" db:"location_lon"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Photographer) HasSpecialty(specialty string) bool {
	for _, s := range p.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// City is a geocoded city supplied by the external catalog provider.
// Travel distances between a client and a photographer are computed
// from these coordinates.
type City struct {
	Name string  `json:"name" db:"name"`
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
}
