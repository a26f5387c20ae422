package optimizer

import (
	"strings"
	"time"

	"github.com/photomatch/photomatch-backend/internal/domain"
)

// Snapshot is an immutable, versioned view of the photographer catalog
// together with the normalization bounds computed from it. Every
// optimization run scores against exactly one snapshot, so normalization
// bounds can never be observed half-updated. Snapshots are built and
// swapped by the catalog use case; nothing mutates one after creation.
type Snapshot struct {
	Version       string                 `json:"version"`
	CreatedAt     time.Time              `json:"created_at"`
	Photographers []domain.Photographer  `json:"photographers"`
	Cities        map[string]domain.City `json:"cities"`
	Bounds        Bounds                 `json:"bounds"`
}

// CityByName resolves a city through the snapshot's coordinate table.
func (s *Snapshot) CityByName(name string) (domain.City, bool) {
	c, ok := s.Cities[strings.ToLower(name)]
	return c, ok
}
