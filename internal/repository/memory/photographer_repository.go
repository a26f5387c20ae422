// Package memory provides in-memory repository implementations used by
// tests and by deployments that load the catalog from a static fixture
// instead of Postgres.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/photomatch/photomatch-backend/internal/domain"
	"github.com/photomatch/photomatch-backend/internal/repository"
)

type photographerRepository struct {
	mu            sync.RWMutex
	photographers map[int]domain.Photographer
}

func NewPhotographerRepository(photographers []domain.Photographer) repository.PhotographerRepository {
	byID := make(map[int]domain.Photographer, len(photographers))
	for _, p := range photographers {
		byID[p.ID] = p
	}
	return &photographerRepository{photographers: byID}
}

func (r *photographerRepository) List(ctx context.Context) ([]domain.Photographer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Photographer, 0, len(r.photographers))
	for _, p := range r.photographers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *photographerRepository) GetByID(ctx context.Context, id int) (*domain.Photographer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.photographers[id]
	if !ok {
		return nil, domain.ErrPhotographerNotFound
	}
	return &p, nil
}

type cityRepository struct {
	mu     sync.RWMutex
	cities map[string]domain.City
}

func NewCityRepository(cities []domain.City) repository.CityRepository {
	byName := make(map[string]domain.City, len(cities))
	for _, c := range cities {
		byName[strings.ToLower(c.Name)] = c
	}
	return &cityRepository{cities: byName}
}

func (r *cityRepository) List(ctx context.Context) ([]domain.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.City, 0, len(r.cities))
	for _, c := range r.cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
