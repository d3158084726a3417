// Package catalog exposes the read-only provider catalog with conjunctive
// filtering and optional distance-ordered results.
package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"nexus/database/repository"
	"nexus/models"
	"nexus/utils"
)

// Locator supplies the caller's current position. Its absence or failure
// degrades catalog results to unsorted; it never surfaces an error to the
// booking flow.
type Locator interface {
	CurrentPosition(ctx context.Context) (models.GeoPoint, error)
}

// Filter narrows and optionally orders a provider listing. When Origin (or a
// working Locator) is available, results are annotated with great-circle
// distance and sorted ascending; MaxDistanceKm then also bounds the listing.
type Filter struct {
	Category      models.Category  `json:"category,omitempty"`
	City          string           `json:"city,omitempty"`
	Mode          models.Mode      `json:"mode,omitempty"`
	MaxDistanceKm float64          `json:"maxDistanceKm,omitempty"`
	Origin        *models.GeoPoint `json:"origin,omitempty"`
}

// Result is a provider annotated with its distance from the origin, when one
// was available.
type Result struct {
	models.Provider
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// CatalogService defines the read-only catalog contract.
type CatalogService interface {
	ListProviders(ctx context.Context, filter Filter) ([]Result, error)
	GetProvider(ctx context.Context, id string) (*models.Provider, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo    repository.ProviderRepository
	Locator Locator
}

// ListProviders applies the filter as a pure conjunction of predicates. An
// empty result is a valid empty sequence, never a failure.
func (s *DefaultCatalogService) ListProviders(ctx context.Context, filter Filter) ([]Result, error) {
	providers, err := s.Repo.Search(ctx, repository.ProviderSearchCriteria{
		Category: filter.Category,
		City:     filter.City,
		Mode:     filter.Mode,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	origin := s.resolveOrigin(ctx, filter)
	results := make([]Result, 0, len(providers))
	for _, p := range providers {
		r := Result{Provider: p}
		if origin != nil && p.LocationGeo != nil {
			d := Haversine(origin.Lat, origin.Lng, p.LocationGeo.Lat, p.LocationGeo.Lng)
			if filter.MaxDistanceKm > 0 && d > filter.MaxDistanceKm {
				continue
			}
			r.DistanceKm = &d
		}
		results = append(results, r)
	}

	if origin != nil {
		// Stable: ties and unannotated providers keep their input order;
		// providers without coordinates sort last.
		sort.SliceStable(results, func(i, j int) bool {
			di, dj := results[i].DistanceKm, results[j].DistanceKm
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	}
	return results, nil
}

func (s *DefaultCatalogService) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	return s.Repo.GetByID(ctx, id)
}

// resolveOrigin prefers an explicit origin, then falls back to the locator.
// Locator failure degrades to nil rather than erroring.
func (s *DefaultCatalogService) resolveOrigin(ctx context.Context, filter Filter) *models.GeoPoint {
	if filter.Origin != nil {
		return filter.Origin
	}
	if s.Locator == nil {
		return nil
	}
	pos, err := s.Locator.CurrentPosition(ctx)
	if err != nil {
		utils.GetLogger().Debug("Locator unavailable, returning unsorted catalog", zap.Error(err))
		return nil
	}
	return &pos
}

// Haversine returns the great-circle distance between two coordinates in km.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
