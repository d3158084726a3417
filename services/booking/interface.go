package booking

import (
	"context"
	"time"

	"nexus/database/repository"
	"nexus/models"
)

// BookingFlowService defines the interface for driving the booking wizard by
// reference: callers pass provider and service ids, the service resolves them
// against the catalog (read-only) and feeds the draft state machine.
type BookingFlowService interface {
	SelectProvider(ctx context.Context, providerID string) error
	SelectService(ctx context.Context, serviceID string) error
	SelectLocation(ctx context.Context, mode models.Mode) error
	SelectDateTime(ctx context.Context, at time.Time) error
	EnterContact(ctx context.Context, contact models.Contact) error
	Draft(ctx context.Context) models.Draft
	Step(ctx context.Context) models.DraftStep
	IsStepValid(ctx context.Context, step models.DraftStep) bool
	Submit(ctx context.Context) (*models.Booking, error)
	Cancel(ctx context.Context)
}

// DefaultBookingFlowService implements BookingFlowService.
type DefaultBookingFlowService struct {
	Flow      *DraftFlow
	Providers repository.ProviderRepository
	Gateway   *SubmissionGateway
}

func (s *DefaultBookingFlowService) SelectProvider(ctx context.Context, providerID string) error {
	p, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		return ErrInvalidSelection
	}
	return s.Flow.SetProvider(*p)
}

func (s *DefaultBookingFlowService) SelectService(ctx context.Context, serviceID string) error {
	d := s.Flow.Snapshot()
	if d.Provider == nil {
		return ErrStepNotReached
	}
	svc, ok := d.Provider.ServiceByID(serviceID)
	if !ok {
		// Either the id is unknown or the service belongs to another
		// provider; both are the same failure from the wizard's view.
		return ErrInvalidSelection
	}
	return s.Flow.SetService(svc)
}

func (s *DefaultBookingFlowService) SelectLocation(ctx context.Context, mode models.Mode) error {
	return s.Flow.SetLocation(mode)
}

func (s *DefaultBookingFlowService) SelectDateTime(ctx context.Context, at time.Time) error {
	// Re-read the provider so slots blocked after provider selection still
	// count.
	d := s.Flow.Snapshot()
	if d.Provider != nil {
		if fresh, err := s.Providers.GetByID(ctx, d.Provider.ID); err == nil && fresh.IsBlocked(at.Truncate(time.Minute)) {
			return ErrSlotUnavailable
		}
	}
	return s.Flow.SetDateTime(at)
}

func (s *DefaultBookingFlowService) EnterContact(ctx context.Context, contact models.Contact) error {
	return s.Flow.SetContact(contact)
}

func (s *DefaultBookingFlowService) Draft(ctx context.Context) models.Draft {
	return s.Flow.Snapshot()
}

func (s *DefaultBookingFlowService) Step(ctx context.Context) models.DraftStep {
	return s.Flow.Step()
}

func (s *DefaultBookingFlowService) IsStepValid(ctx context.Context, step models.DraftStep) bool {
	return s.Flow.IsStepValid(step)
}

func (s *DefaultBookingFlowService) Submit(ctx context.Context) (*models.Booking, error) {
	return s.Gateway.Submit(ctx)
}

func (s *DefaultBookingFlowService) Cancel(ctx context.Context) {
	s.Flow.Reset()
}

var _ BookingFlowService = (*DefaultBookingFlowService)(nil)
