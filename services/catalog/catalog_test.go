package catalog

import (
	"context"
	"errors"
	"testing"

	providerRepo "nexus/database/repository/provider"
	"nexus/models"
)

func price(v float64) *float64 { return &v }

func seed() []models.Provider {
	return []models.Provider{
		{
			ID: "p1", Name: "Marco Barber Shop", Category: models.CategoryBarber, City: "Lausanne",
			LocationGeo: &models.GeoPoint{Lat: 46.5197, Lng: 6.6323},
			Modes:       []models.Mode{models.ModeInStudio}, StudioAddress: "Rue de Bourg 12",
			Published: true,
			Services:  []models.Service{{ID: "s1", ProviderID: "p1", Name: "Coupe", PriceInStudio: price(40)}},
		},
		{
			ID: "p2", Name: "Amina Massage", Category: models.CategoryMassage, City: "Lausanne",
			LocationGeo: &models.GeoPoint{Lat: 46.5285, Lng: 6.6030},
			Modes:       []models.Mode{models.ModeAtHome},
			Published:   true,
			Services:    []models.Service{{ID: "s2", ProviderID: "p2", Name: "Massage", PriceAtHome: price(110)}},
		},
		{
			ID: "p3", Name: "Élodie Coiffure", Category: models.CategoryCoiffure, City: "Genève",
			LocationGeo: &models.GeoPoint{Lat: 46.2044, Lng: 6.1432},
			Modes:       []models.Mode{models.ModeInStudio}, StudioAddress: "Rue du Rhône 45",
			Published: true,
			Services:  []models.Service{{ID: "s3", ProviderID: "p3", Name: "Brushing", PriceInStudio: price(55)}},
		},
		{
			ID: "p4", Name: "Hidden Studio", Category: models.CategoryBarber, City: "Lausanne",
			Modes:     []models.Mode{models.ModeAtHome},
			Published: false,
			Services:  []models.Service{{ID: "s4", ProviderID: "p4", Name: "Coupe", PriceAtHome: price(50)}},
		},
	}
}

type locatorFunc func(ctx context.Context) (models.GeoPoint, error)

func (f locatorFunc) CurrentPosition(ctx context.Context) (models.GeoPoint, error) { return f(ctx) }

func newTestCatalog(loc Locator) *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo:    providerRepo.NewMemoryProviderRepo(seed(), nil),
		Locator: loc,
	}
}

func TestListProviders_ConjunctiveFilter(t *testing.T) {
	svc := newTestCatalog(nil)

	results, err := svc.ListProviders(context.Background(), Filter{
		City: "Lausanne",
		Mode: models.ModeAtHome,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "p2" {
		t.Fatalf("expected only the published at-home Lausanne provider, got %+v", results)
	}
}

func TestListProviders_EmptyResultIsNotAnError(t *testing.T) {
	svc := newTestCatalog(nil)
	results, err := svc.ListProviders(context.Background(), Filter{Category: models.CategoryOnglerie})
	if err != nil {
		t.Fatalf("an empty filter result must not fail: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no matches, got %+v", results)
	}
}

func TestListProviders_DistanceSortAndAnnotation(t *testing.T) {
	svc := newTestCatalog(nil)

	// Origin near Geneva: p3 must come first, the two Lausanne providers after.
	origin := &models.GeoPoint{Lat: 46.2044, Lng: 6.1432}
	results, err := svc.ListProviders(context.Background(), Filter{Origin: origin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 published providers, got %d", len(results))
	}
	if results[0].ID != "p3" {
		t.Fatalf("expected the Geneva provider first, got %s", results[0].ID)
	}
	for _, r := range results {
		if r.DistanceKm == nil {
			t.Fatalf("provider %s missing distance annotation", r.ID)
		}
	}
	if *results[0].DistanceKm > *results[1].DistanceKm || *results[1].DistanceKm > *results[2].DistanceKm {
		t.Fatalf("results not sorted by ascending distance")
	}
}

func TestListProviders_MaxDistanceBound(t *testing.T) {
	svc := newTestCatalog(nil)

	origin := &models.GeoPoint{Lat: 46.5197, Lng: 6.6323} // Lausanne
	results, err := svc.ListProviders(context.Background(), Filter{Origin: origin, MaxDistanceKm: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range results {
		if r.ID == "p3" {
			t.Fatalf("Geneva provider within a 10 km bound of Lausanne")
		}
	}
	if len(results) != 2 {
		t.Fatalf("expected the two Lausanne providers, got %+v", results)
	}
}

func TestListProviders_LocatorFailureDegrades(t *testing.T) {
	svc := newTestCatalog(locatorFunc(func(ctx context.Context) (models.GeoPoint, error) {
		return models.GeoPoint{}, errors.New("position unavailable")
	}))

	results, err := svc.ListProviders(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("locator failure must not surface: %v", err)
	}
	// Unsorted, unannotated, in catalog order.
	if len(results) != 3 {
		t.Fatalf("expected 3 published providers, got %d", len(results))
	}
	if results[0].ID != "p1" || results[1].ID != "p2" || results[2].ID != "p3" {
		t.Fatalf("expected catalog order, got %s %s %s", results[0].ID, results[1].ID, results[2].ID)
	}
	for _, r := range results {
		if r.DistanceKm != nil {
			t.Fatalf("unexpected distance annotation without an origin")
		}
	}
}

func TestListProviders_LocatorSuppliesOrigin(t *testing.T) {
	svc := newTestCatalog(locatorFunc(func(ctx context.Context) (models.GeoPoint, error) {
		return models.GeoPoint{Lat: 46.2044, Lng: 6.1432}, nil
	}))

	results, err := svc.ListProviders(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 || results[0].ID != "p3" {
		t.Fatalf("expected locator origin to order results, got %+v", results)
	}
}
