package records

import (
	"context"
	"testing"
	"time"

	"nexus/models"
)

func pending(id string) models.Booking {
	return models.Booking{
		ID:           id,
		ProviderID:   "p1",
		ProviderName: "Marco Barber Shop",
		ServiceName:  "Coupe homme",
		Price:        40,
		Start:        time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
		DurationMin:  30,
		Status:       models.BookingPending,
		CreatedAt:    time.Now(),
	}
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()
	if err := repo.Insert(ctx, pending("b1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := repo.UpdateStatus(ctx, "b1", models.BookingConfirmed)
	if err != nil {
		t.Fatalf("pending->confirmed rejected: %v", err)
	}
	if b.Status != models.BookingConfirmed {
		t.Fatalf("expected confirmed, got %s", b.Status)
	}

	if _, err := repo.UpdateStatus(ctx, "b1", models.BookingPending); err == nil {
		t.Fatalf("confirmed->pending must be rejected")
	}
	if _, err := repo.UpdateStatus(ctx, "b1", models.BookingCancelled); err == nil {
		t.Fatalf("confirmed->cancelled must be rejected")
	}

	if _, err := repo.UpdateStatus(ctx, "b1", models.BookingCompleted); err != nil {
		t.Fatalf("confirmed->completed rejected: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, "b1", models.BookingConfirmed); err == nil {
		t.Fatalf("completed bookings must be immutable")
	}
}

func TestUpdateStatus_PendingCancellation(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()
	if err := repo.Insert(ctx, pending("b1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, "b1", models.BookingCancelled); err != nil {
		t.Fatalf("pending->cancelled rejected: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, "b1", models.BookingConfirmed); err == nil {
		t.Fatalf("cancelled bookings must be immutable")
	}
}

func TestListByStatus(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()
	for _, id := range []string{"b1", "b2", "b3"} {
		if err := repo.Insert(ctx, pending(id)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := repo.UpdateStatus(ctx, "b2", models.BookingConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	confirmed, err := repo.ListByStatus(ctx, models.BookingConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].ID != "b2" {
		t.Fatalf("expected only b2 confirmed, got %+v", confirmed)
	}
}
