package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexus/database/repository"
	"nexus/models"
	"nexus/utils"
)

// NotificationService defines the in-app notification center contract. Push
// delivery is a simulation: notifications land in the store and the "push"
// is a structured log line.
type NotificationService interface {
	Notify(ctx context.Context, role models.Role, typ models.NotificationType, bookingID, title, body string) (*models.Notification, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.Notification, error)
	UnreadCount(ctx context.Context, role models.Role) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, role models.Role) error
}

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	Repo repository.NotificationRepository
}

func (s *DefaultNotificationService) Notify(ctx context.Context, role models.Role, typ models.NotificationType, bookingID, title, body string) (*models.Notification, error) {
	n := models.Notification{
		ID:        uuid.New().String(),
		Role:      role,
		Type:      typ,
		BookingID: bookingID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to store notification: %w", err)
	}
	utils.GetLogger().Info("Push notification",
		zap.String("role", string(role)),
		zap.String("type", string(typ)),
		zap.String("title", title),
	)
	return &n, nil
}

func (s *DefaultNotificationService) ListByRole(ctx context.Context, role models.Role) ([]models.Notification, error) {
	return s.Repo.ListByRole(ctx, role)
}

func (s *DefaultNotificationService) UnreadCount(ctx context.Context, role models.Role) (int, error) {
	return s.Repo.UnreadCount(ctx, role)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(ctx, id)
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, role models.Role) error {
	return s.Repo.MarkAllRead(ctx, role)
}

var _ NotificationService = (*DefaultNotificationService)(nil)
