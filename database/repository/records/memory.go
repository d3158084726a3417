// Package records implements the booking records repository. Records live
// client-side only in the source product; here they live in memory for the
// lifetime of the process.
package records

import (
	"context"
	"fmt"
	"sync"

	"nexus/database/repository"
	"nexus/models"
)

// MemoryBookingRepo is an in-memory BookingRepository.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
	order    []string // insertion order
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) Insert(ctx context.Context, b models.Booking) error {
	if b.ID == "" {
		return fmt.Errorf("booking id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bookings[b.ID]; exists {
		return fmt.Errorf("booking %s already exists", b.ID)
	}
	r.bookings[b.ID] = b
	r.order = append(r.order, b.ID)
	return nil
}

// Delete removes a record entirely. It exists for compensation during
// submission, not as a user-facing operation.
func (r *MemoryBookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bookings[id]; !exists {
		return fmt.Errorf("booking %s not found", id)
	}
	delete(r.bookings, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	return &b, nil
}

func (r *MemoryBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bookings[id])
	}
	return out, nil
}

func (r *MemoryBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Booking{}
	for _, id := range r.order {
		if b := r.bookings[id]; b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Booking{}
	for _, id := range r.order {
		if b := r.bookings[id]; b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

// UpdateStatus applies a lifecycle transition. Illegal transitions are
// rejected and leave the record untouched.
func (r *MemoryBookingRepo) UpdateStatus(ctx context.Context, id string, to models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	if !models.CanTransition(b.Status, to) {
		return nil, fmt.Errorf("booking %s cannot move from %s to %s", id, b.Status, to)
	}
	b.Status = to
	r.bookings[id] = b
	return &b, nil
}

var _ repository.BookingRepository = (*MemoryBookingRepo)(nil)
