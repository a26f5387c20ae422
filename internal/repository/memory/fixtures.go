package memory

import "github.com/photomatch/photomatch-backend/internal/domain"

func ptr(v float64) *float64 { return &v }

// DemoCatalog returns the small fixture catalog the memory storage
// backend starts with, enough to exercise every optimizer constraint
// locally without a database.
func DemoCatalog() ([]domain.Photographer, []domain.City) {
	photographers := []domain.Photographer{
		{
			ID: 1, Name: "Aigerim S.", City: "Almaty", Gender: "female",
			Specialties: []string{"wedding", "portrait"},
			Rating:      4.8, BasePrice: 45000, ExperienceYears: 7,
			LocationLat: ptr(43.2389), LocationLon: ptr(76.8897),
		},
		{
			ID: 2, Name: "Daniyar K.", City: "Almaty", Gender: "male",
			Specialties: []string{"wedding", "event"},
			Rating:      4.6, BasePrice: 38000, ExperienceYears: 5,
			LocationLat: ptr(43.2567), LocationLon: ptr(76.9286),
		},
		{
			ID: 3, Name: "Madina T.", City: "Astana", Gender: "female",
			Specialties: []string{"portrait", "fashion"},
			Rating:      4.9, BasePrice: 60000, ExperienceYears: 10,
			LocationLat: ptr(51.1605), LocationLon: ptr(71.4704),
		},
		{
			ID: 4, Name: "Olzhas B.", City: "Shymkent", Gender: "male",
			Specialties: []string{"event", "reportage"},
			Rating:      4.2, BasePrice: 25000, ExperienceYears: 3,
			LocationLat: ptr(42.3417), LocationLon: ptr(69.5901),
		},
		{
			ID: 5, Name: "Saule N.", City: "Almaty", Gender: "female",
			Specialties: []string{"wedding", "family"},
			Rating:      4.4, BasePrice: 30000, ExperienceYears: 4,
			LocationLat: ptr(43.2220), LocationLon: ptr(76.8512),
		},
	}

	cities := []domain.City{
		{Name: "Almaty", Lat: 43.2389, Lon: 76.8897},
		{Name: "Astana", Lat: 51.1605, Lon: 71.4704},
		{Name: "Shymkent", Lat: 42.3417, Lon: 69.5901},
	}

	return photographers, cities
}
