package booking

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexus/config"
	"nexus/database/repository"
	"nexus/models"
	"nexus/utils"
)

// SubmissionGateway finalizes a completed draft. Submission is modeled as an
// asynchronous operation with simulated latency: the caller's context
// cancels it, and a cancelled submission applies no side effects at all.
// When it does apply, it applies fully: pending booking, one notification
// per side, draft reset.
type SubmissionGateway struct {
	Flow          *DraftFlow
	Bookings      repository.BookingRepository
	Notifications repository.NotificationRepository

	// Delay overrides the simulated latency. Nil uses the configured bounds.
	Delay func() time.Duration
}

func (g *SubmissionGateway) delay() time.Duration {
	if g.Delay != nil {
		return g.Delay()
	}
	minMs := config.AppConfig.SimulatedDelayMinMs
	maxMs := config.AppConfig.SimulatedDelayMaxMs
	if maxMs <= minMs {
		return time.Duration(minMs) * time.Millisecond
	}
	return time.Duration(minMs+rand.Intn(maxMs-minMs)) * time.Millisecond
}

// Submit validates completeness, waits out the simulated processing delay,
// then atomically persists the booking and its notifications and resets the
// draft. If ctx is cancelled before the delay elapses nothing is applied;
// the draft survives untouched.
func (g *SubmissionGateway) Submit(ctx context.Context) (*models.Booking, error) {
	record, err := g.Flow.ToBookingRecord()
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(g.delay()):
	}

	if err := g.Bookings.Insert(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	clientNotif := models.Notification{
		ID:        uuid.New().String(),
		Role:      models.RoleClient,
		Type:      models.NotificationBookingConfirmed,
		BookingID: record.ID,
		Title:     "Demande envoyée",
		Body:      fmt.Sprintf("Votre demande pour %s chez %s a bien été envoyée.", record.ServiceName, record.ProviderName),
		CreatedAt: record.CreatedAt,
	}
	if err := g.Notifications.Insert(ctx, clientNotif); err != nil {
		g.compensate(record.ID)
		return nil, fmt.Errorf("failed to store client notification: %w", err)
	}

	providerNotif := models.Notification{
		ID:        uuid.New().String(),
		Role:      models.RoleProvider,
		Type:      models.NotificationNewRequest,
		BookingID: record.ID,
		Title:     "Nouvelle demande",
		Body:      fmt.Sprintf("%s souhaite réserver %s.", record.ClientName, record.ServiceName),
		CreatedAt: record.CreatedAt,
	}
	if err := g.Notifications.Insert(ctx, providerNotif); err != nil {
		g.compensate(record.ID, clientNotif.ID)
		return nil, fmt.Errorf("failed to store provider notification: %w", err)
	}

	g.Flow.Reset()
	utils.GetLogger().Info("Booking submitted",
		zap.String("bookingId", record.ID),
		zap.String("providerId", record.ProviderID),
		zap.Float64("price", record.Price),
	)
	return record, nil
}

// compensate rolls back the partial side effects of a failed submission so
// no booking ever exists without its notifications.
func (g *SubmissionGateway) compensate(bookingID string, notificationIDs ...string) {
	ctx := context.Background()
	for _, id := range notificationIDs {
		if err := g.Notifications.Delete(ctx, id); err != nil {
			utils.GetLogger().Error("Failed to roll back notification", zap.String("id", id), zap.Error(err))
		}
	}
	if err := g.Bookings.Delete(ctx, bookingID); err != nil {
		utils.GetLogger().Error("Failed to roll back booking", zap.String("id", bookingID), zap.Error(err))
	}
}
