package repository

import (
	"context"

	"github.com/photomatch/photomatch-backend/internal/domain"
)

// PhotographerRepository reads the photographer catalog. The catalog is
// maintained by an external data provider; this service only reads it.
type PhotographerRepository interface {
	List(ctx context.Context) ([]domain.Photographer, error)
	GetByID(ctx context.Context, id int) (*domain.Photographer, error)
}

// CityRepository supplies the city coordinate table the catalog bakes
// into its snapshots; name lookups happen against the snapshot.
type CityRepository interface {
	List(ctx context.Context) ([]domain.City, error)
}
