// Package provider holds the provider-side actions: managing the published
// studio profile, blocking slots, and answering incoming booking requests.
package provider

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"nexus/database/repository"
	"nexus/models"
	"nexus/services/notification"
	"nexus/utils"
)

// ProviderService defines the provider-side operations.
type ProviderService interface {
	PublishStudio(ctx context.Context, p models.Provider) error
	SetSlotBlocked(ctx context.Context, providerID string, at time.Time, blocked bool) error
	ListRequests(ctx context.Context, providerID string) ([]models.Booking, error)
	// Accept moves a pending booking to confirmed and notifies the client.
	Accept(ctx context.Context, bookingID string) (*models.Booking, error)
	// Refuse cancels a pending booking and notifies the client.
	Refuse(ctx context.Context, bookingID string) (*models.Booking, error)
	// CancelByClient cancels a pending booking from the client side and
	// notifies the provider.
	CancelByClient(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Providers repository.ProviderRepository
	Bookings  repository.BookingRepository
	Notifier  notification.NotificationService
}

// PublishStudio publishes (or updates) the provider profile. The repository
// enforces the in-studio address invariant.
func (s *DefaultProviderService) PublishStudio(ctx context.Context, p models.Provider) error {
	p.Published = true
	if err := s.Providers.Upsert(ctx, p); err != nil {
		return fmt.Errorf("failed to publish studio: %w", err)
	}
	utils.GetLogger().Info("Studio published", zap.String("providerId", p.ID))
	return nil
}

func (s *DefaultProviderService) SetSlotBlocked(ctx context.Context, providerID string, at time.Time, blocked bool) error {
	return s.Providers.SetSlotBlocked(ctx, providerID, at, blocked)
}

func (s *DefaultProviderService) ListRequests(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.Bookings.ListByProvider(ctx, providerID)
}

func (s *DefaultProviderService) Accept(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.UpdateStatus(ctx, bookingID, models.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	if _, err := s.Notifier.Notify(ctx, models.RoleClient, models.NotificationPaymentConfirmed, b.ID,
		"Réservation confirmée",
		fmt.Sprintf("%s a accepté votre demande pour %s.", b.ProviderName, b.ServiceName),
	); err != nil {
		utils.GetLogger().Warn("Failed to notify client of acceptance", zap.String("bookingId", b.ID), zap.Error(err))
	}
	return b, nil
}

func (s *DefaultProviderService) Refuse(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.UpdateStatus(ctx, bookingID, models.BookingCancelled)
	if err != nil {
		return nil, err
	}
	if _, err := s.Notifier.Notify(ctx, models.RoleClient, models.NotificationRequestRefused, b.ID,
		"Demande refusée",
		fmt.Sprintf("%s n'a pas pu accepter votre demande pour %s.", b.ProviderName, b.ServiceName),
	); err != nil {
		utils.GetLogger().Warn("Failed to notify client of refusal", zap.String("bookingId", b.ID), zap.Error(err))
	}
	return b, nil
}

func (s *DefaultProviderService) CancelByClient(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.UpdateStatus(ctx, bookingID, models.BookingCancelled)
	if err != nil {
		return nil, err
	}
	if _, err := s.Notifier.Notify(ctx, models.RoleProvider, models.NotificationRequestCancelled, b.ID,
		"Demande annulée",
		fmt.Sprintf("%s a annulé la demande pour %s.", b.ClientName, b.ServiceName),
	); err != nil {
		utils.GetLogger().Warn("Failed to notify provider of cancellation", zap.String("bookingId", b.ID), zap.Error(err))
	}
	return b, nil
}

var _ ProviderService = (*DefaultProviderService)(nil)
