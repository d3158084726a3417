// Package cron runs the periodic booking status sweep. The source product
// simulates "time elapses" with UI timers; here a real scheduler moves
// confirmed bookings to completed once their end time has passed.
package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"nexus/database/repository"
	"nexus/models"
	"nexus/services/notification"
	"nexus/utils"
)

// StartStatusSweep schedules the completion sweep every minute and returns
// the scheduler so main can stop it on shutdown.
func StartStatusSweep(bookings repository.BookingRepository, notifier notification.NotificationService) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@every 1m", func() {
		SweepCompleted(context.Background(), bookings, notifier, time.Now())
	})
	if err != nil {
		utils.GetLogger().Error("Failed to schedule status sweep", zap.Error(err))
		return c
	}
	c.Start()
	utils.GetLogger().Info("Booking status sweep started")
	return c
}

// SweepCompleted completes every confirmed booking whose end time is before
// now and releases the provider's funds notification for each.
func SweepCompleted(ctx context.Context, bookings repository.BookingRepository, notifier notification.NotificationService, now time.Time) {
	confirmed, err := bookings.ListByStatus(ctx, models.BookingConfirmed)
	if err != nil {
		utils.GetLogger().Error("Status sweep failed to list bookings", zap.Error(err))
		return
	}

	for _, b := range confirmed {
		if b.End().After(now) {
			continue
		}
		updated, err := bookings.UpdateStatus(ctx, b.ID, models.BookingCompleted)
		if err != nil {
			utils.GetLogger().Warn("Status sweep could not complete booking", zap.String("bookingId", b.ID), zap.Error(err))
			continue
		}
		if _, err := notifier.Notify(ctx, models.RoleProvider, models.NotificationFundsReleased, updated.ID,
			"Fonds libérés",
			fmt.Sprintf("La prestation %s est terminée, %.2f CHF ont été crédités sur votre portefeuille.", updated.ServiceName, updated.Price),
		); err != nil {
			utils.GetLogger().Warn("Status sweep could not notify provider", zap.String("bookingId", updated.ID), zap.Error(err))
		}
	}
}
