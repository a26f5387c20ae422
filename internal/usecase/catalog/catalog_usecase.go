// Package catalog maintains the photographer catalog snapshot the
// optimizer reads from. A snapshot bundles the photographers, the city
// coordinate table and the normalization bounds computed from them; it is
// immutable once built and swapped in atomically, so a concurrent
// optimization run sees either the whole old snapshot or the whole new
// one, never a mix of bounds.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/photomatch/photomatch-backend/internal/domain"
	"github.com/photomatch/photomatch-backend/internal/repository"
	"github.com/photomatch/photomatch-backend/internal/usecase/optimizer"
)

const (
	snapshotCacheKey = "catalog:snapshot"
	snapshotCacheTTL = 24 * time.Hour
)

type CatalogUseCase struct {
	photographerRepo repository.PhotographerRepository
	cityRepo         repository.CityRepository
	cache            *redis.Client
	logger           zerolog.Logger

	current atomic.Pointer[optimizer.Snapshot]
}

// NewCatalogUseCase wires the catalog against its repositories. The
// Redis client is optional; when nil, snapshots are kept in process only.
func NewCatalogUseCase(
	photographerRepo repository.PhotographerRepository,
	cityRepo repository.CityRepository,
	cache *redis.Client,
	logger zerolog.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		photographerRepo: photographerRepo,
		cityRepo:         cityRepo,
		cache:            cache,
		logger:           logger.With().Str("component", "catalog").Logger(),
	}
}

// Refresh reloads the catalog from the repositories, rebuilds the
// normalization bounds and publishes a new snapshot version. This is the
// explicit cache invalidation point: any catalog mutation upstream must
// be followed by a Refresh, or optimization runs keep scoring against
// stale bounds.
func (uc *CatalogUseCase) Refresh(ctx context.Context) (*optimizer.Snapshot, error) {
	photographers, err := uc.photographerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load photographers: %w", err)
	}
	cities, err := uc.cityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}

	byName := make(map[string]domain.City, len(cities))
	for _, c := range cities {
		byName[strings.ToLower(c.Name)] = c
	}

	snapshot := &optimizer.Snapshot{
		Version:       uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Photographers: photographers,
		Cities:        byName,
		Bounds:        optimizer.ComputeBounds(photographers),
	}

	uc.current.Store(snapshot)
	uc.cacheSnapshot(ctx, snapshot)

	uc.logger.Info().
		Str("version", snapshot.Version).
		Int("photographers", len(photographers)).
		Int("cities", len(cities)).
		Msg("catalog snapshot refreshed")

	return snapshot, nil
}

// Snapshot returns the current snapshot, building the first one lazily.
func (uc *CatalogUseCase) Snapshot(ctx context.Context) (*optimizer.Snapshot, error) {
	if s := uc.current.Load(); s != nil {
		return s, nil
	}
	return uc.Refresh(ctx)
}

// GetPhotographer reads a single profile straight from the repository,
// bypassing the snapshot, so detail endpoints always show fresh data.
func (uc *CatalogUseCase) GetPhotographer(ctx context.Context, id int) (*domain.Photographer, error) {
	return uc.photographerRepo.GetByID(ctx, id)
}

// cacheSnapshot mirrors the snapshot into Redis so sibling replicas can
// warm up without hitting the database. Cache failures are logged and
// swallowed: the in-process snapshot is authoritative.
func (uc *CatalogUseCase) cacheSnapshot(ctx context.Context, snapshot *optimizer.Snapshot) {
	if uc.cache == nil {
		return
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("failed to marshal snapshot for cache")
		return
	}
	if err := uc.cache.Set(ctx, snapshotCacheKey, payload, snapshotCacheTTL).Err(); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to cache snapshot in redis")
	}
}

// WarmFromCache seeds the in-process snapshot from Redis at startup.
// Missing or unreadable cache entries are not errors; the first
// optimization run will build a snapshot from the database instead.
func (uc *CatalogUseCase) WarmFromCache(ctx context.Context) bool {
	if uc.cache == nil {
		return false
	}
	payload, err := uc.cache.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		return false
	}
	var snapshot optimizer.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		uc.logger.Warn().Err(err).Msg("discarding unreadable cached snapshot")
		return false
	}
	uc.current.Store(&snapshot)
	uc.logger.Info().Str("version", snapshot.Version).Msg("catalog snapshot warmed from redis")
	return true
}
