// Package database holds the static demo catalog the marketplace is seeded
// with at startup.
package database

import "nexus/models"

func price(v float64) *float64 { return &v }

// SeedProviders returns the static provider catalog. IDs are stable so redis
// snapshots from previous runs can be overlaid.
func SeedProviders() []models.Provider {
	return []models.Provider{
		{
			ID:       "prov-marco",
			Name:     "Marco Barber Shop",
			Category: models.CategoryBarber,
			City:     "Lausanne",
			LocationGeo: &models.GeoPoint{
				Lat: 46.5197, Lng: 6.6323,
			},
			Modes:         []models.Mode{models.ModeInStudio, models.ModeAtHome},
			StudioAddress: "Rue de Bourg 12, 1003 Lausanne",
			Rating:        models.Rating{Value: 4.8, Count: 124},
			Published:     true,
			Services: []models.Service{
				{ID: "svc-marco-cut", ProviderID: "prov-marco", Name: "Coupe homme", DurationMin: 30, PriceAtHome: price(60), PriceInStudio: price(40)},
				{ID: "svc-marco-beard", ProviderID: "prov-marco", Name: "Taille de barbe", DurationMin: 20, PriceAtHome: price(45), PriceInStudio: price(30)},
			},
		},
		{
			ID:       "prov-elodie",
			Name:     "Élodie Coiffure",
			Category: models.CategoryCoiffure,
			City:     "Genève",
			LocationGeo: &models.GeoPoint{
				Lat: 46.2044, Lng: 6.1432,
			},
			Modes:         []models.Mode{models.ModeInStudio},
			StudioAddress: "Rue du Rhône 45, 1204 Genève",
			Rating:        models.Rating{Value: 4.6, Count: 89},
			Published:     true,
			Services: []models.Service{
				{ID: "svc-elodie-color", ProviderID: "prov-elodie", Name: "Coloration", DurationMin: 90, PriceInStudio: price(120)},
				{ID: "svc-elodie-brush", ProviderID: "prov-elodie", Name: "Brushing", DurationMin: 45, PriceInStudio: price(55)},
			},
		},
		{
			ID:       "prov-amina",
			Name:     "Amina Massage & Bien-être",
			Category: models.CategoryMassage,
			City:     "Lausanne",
			LocationGeo: &models.GeoPoint{
				Lat: 46.5285, Lng: 6.6030,
			},
			Modes:     []models.Mode{models.ModeAtHome},
			Rating:    models.Rating{Value: 4.9, Count: 203},
			Published: true,
			Services: []models.Service{
				{ID: "svc-amina-relax", ProviderID: "prov-amina", Name: "Massage relaxant", DurationMin: 60, PriceAtHome: price(110)},
				{ID: "svc-amina-deep", ProviderID: "prov-amina", Name: "Massage profond", DurationMin: 90, PriceAtHome: price(150)},
			},
		},
		{
			ID:       "prov-lucie",
			Name:     "Lucie Ongles Studio",
			Category: models.CategoryOnglerie,
			City:     "Genève",
			LocationGeo: &models.GeoPoint{
				Lat: 46.1983, Lng: 6.1422,
			},
			Modes:         []models.Mode{models.ModeInStudio, models.ModeAtHome},
			StudioAddress: "Boulevard de Saint-Georges 8, 1205 Genève",
			Rating:        models.Rating{Value: 4.5, Count: 67},
			Published:     true,
			Services: []models.Service{
				{ID: "svc-lucie-gel", ProviderID: "prov-lucie", Name: "Pose gel", DurationMin: 75, PriceAtHome: price(95), PriceInStudio: price(80)},
				{ID: "svc-lucie-manicure", ProviderID: "prov-lucie", Name: "Manucure", DurationMin: 40, PriceInStudio: price(50)},
			},
		},
		{
			ID:       "prov-sophia",
			Name:     "Sophia Esthétique",
			Category: models.CategoryEsthetique,
			City:     "Montreux",
			LocationGeo: &models.GeoPoint{
				Lat: 46.4312, Lng: 6.9107,
			},
			Modes:         []models.Mode{models.ModeInStudio},
			StudioAddress: "Avenue du Casino 32, 1820 Montreux",
			Rating:        models.Rating{Value: 4.7, Count: 54},
			Published:     true,
			Services: []models.Service{
				{ID: "svc-sophia-facial", ProviderID: "prov-sophia", Name: "Soin du visage", DurationMin: 60, PriceInStudio: price(90)},
			},
		},
	}
}
