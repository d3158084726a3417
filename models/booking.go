package models

import "time"

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// CanTransition reports whether a booking may move from one status to
// another. Pending bookings are confirmed by the provider or cancelled by
// either side; confirmed bookings complete once their time elapses.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted
	}
	return false
}

// Booking is the immutable snapshot created from a completed draft at
// submission time. Only Status is ever mutated afterwards.
type Booking struct {
	ID           string        `json:"id"`
	ProviderID   string        `json:"providerId"`
	ProviderName string        `json:"providerName"`
	ServiceName  string        `json:"serviceName"`
	Price        float64       `json:"price"`
	Start        time.Time     `json:"start"`
	DurationMin  int           `json:"durationMin"`
	Mode         Mode          `json:"mode"`
	Address      string        `json:"address"`
	ClientName   string        `json:"clientName"`
	ClientPhone  string        `json:"clientPhone"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// End returns the instant the booked service finishes.
func (b Booking) End() time.Time {
	return b.Start.Add(time.Duration(b.DurationMin) * time.Minute)
}
