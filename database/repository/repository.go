package repository

import (
	"context"
	"time"

	"nexus/models"
)

// ProviderSearchCriteria narrows a provider listing. Zero values mean "any".
// Distance concerns live in the catalog service, which owns the origin
// coordinate; the repository filters attributes only.
type ProviderSearchCriteria struct {
	Category models.Category
	City     string
	Mode     models.Mode
}

// ProviderRepository is the catalog's storage seam.
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	Search(ctx context.Context, criteria ProviderSearchCriteria) ([]models.Provider, error)
	// Upsert replaces a provider entry, used by the provider's own publish
	// action. The in-studio invariant is validated before storage.
	Upsert(ctx context.Context, p models.Provider) error
	// SetSlotBlocked marks or clears a blocked slot at minute precision.
	SetSlotBlocked(ctx context.Context, providerID string, at time.Time, blocked bool) error
}

// BookingRepository stores booking records. Records are immutable except for
// their status field.
type BookingRepository interface {
	Insert(ctx context.Context, b models.Booking) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	// UpdateStatus applies a transition, rejecting any move not allowed by
	// models.CanTransition.
	UpdateStatus(ctx context.Context, id string, to models.BookingStatus) (*models.Booking, error)
}

// NotificationRepository stores in-app notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n models.Notification) error
	Delete(ctx context.Context, id string) error
	ListByRole(ctx context.Context, role models.Role) ([]models.Notification, error)
	UnreadCount(ctx context.Context, role models.Role) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, role models.Role) error
}
