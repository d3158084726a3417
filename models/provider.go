package models

import "time"

// Category is the service category a provider operates in.
type Category string

const (
	CategoryBarber     Category = "barber"
	CategoryCoiffure   Category = "coiffure"
	CategoryEsthetique Category = "esthetique"
	CategoryMassage    Category = "massage"
	CategoryOnglerie   Category = "onglerie"
)

// Mode is the delivery mode of a service: at the client's home or in the
// provider's studio.
type Mode string

const (
	ModeAtHome   Mode = "domicile"
	ModeInStudio Mode = "studio"
)

// Valid reports whether m is a known delivery mode.
func (m Mode) Valid() bool {
	return m == ModeAtHome || m == ModeInStudio
}

// Service is a single bookable offering. It belongs to exactly one provider.
// Each price is independently nullable; a nil price means the service is not
// offered in that mode. At least one of the two prices is non-nil.
type Service struct {
	ID            string   `json:"id"`
	ProviderID    string   `json:"providerId"`
	Name          string   `json:"name"`
	DurationMin   int      `json:"durationMin"`
	PriceAtHome   *float64 `json:"priceDomicile,omitempty"`
	PriceInStudio *float64 `json:"priceStudio,omitempty"`
}

// PriceFor returns the price for the given mode, or nil if the service does
// not support it.
func (s Service) PriceFor(m Mode) *float64 {
	switch m {
	case ModeAtHome:
		return s.PriceAtHome
	case ModeInStudio:
		return s.PriceInStudio
	}
	return nil
}

// SupportsMode reports whether the service carries a price for the mode.
func (s Service) SupportsMode(m Mode) bool {
	return s.PriceFor(m) != nil
}

// Rating is an aggregate review score.
type Rating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Provider is a business listed on the marketplace.
//
// Invariant: a provider offering ModeInStudio carries a non-empty
// StudioAddress and a non-nil LocationGeo. Seeded from the static catalog at
// startup; mutable only through the provider's own publish and slot-blocking
// actions.
type Provider struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      Category    `json:"category"`
	City          string      `json:"city"`
	LocationGeo   *GeoPoint   `json:"locationGeo,omitempty"`
	Services      []Service   `json:"services"`
	Modes         []Mode      `json:"modes"`
	StudioAddress string      `json:"studioAddress,omitempty"`
	Rating        Rating      `json:"rating"`
	BlockedSlots  []time.Time `json:"blockedSlots,omitempty"`
	Published     bool        `json:"published"`
	UpdatedAt     time.Time   `json:"updatedAt,omitzero"`
}

// OffersMode reports whether the provider operates in the given mode.
func (p Provider) OffersMode(m Mode) bool {
	for _, pm := range p.Modes {
		if pm == m {
			return true
		}
	}
	return false
}

// ServiceByID returns the provider's service with the given id, if any.
func (p Provider) ServiceByID(id string) (Service, bool) {
	for _, s := range p.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// IsBlocked reports whether the provider has blocked the slot starting at t.
// Slots are compared at minute precision.
func (p Provider) IsBlocked(t time.Time) bool {
	t = t.Truncate(time.Minute)
	for _, b := range p.BlockedSlots {
		if b.Truncate(time.Minute).Equal(t) {
			return true
		}
	}
	return false
}
