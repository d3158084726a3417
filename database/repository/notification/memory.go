// Package notification implements the in-memory notification repository.
package notification

import (
	"context"
	"fmt"
	"sync"

	"nexus/database/repository"
	"nexus/models"
)

// MemoryNotificationRepo is an in-memory NotificationRepository. Listings
// return newest first.
type MemoryNotificationRepo struct {
	mu            sync.RWMutex
	notifications map[string]models.Notification
	order         []string
}

func NewMemoryNotificationRepo() *MemoryNotificationRepo {
	return &MemoryNotificationRepo{notifications: make(map[string]models.Notification)}
}

func (r *MemoryNotificationRepo) Insert(ctx context.Context, n models.Notification) error {
	if n.ID == "" {
		return fmt.Errorf("notification id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.notifications[n.ID]; exists {
		return fmt.Errorf("notification %s already exists", n.ID)
	}
	r.notifications[n.ID] = n
	r.order = append(r.order, n.ID)
	return nil
}

// Delete exists for compensation during submission; notifications are never
// deleted individually by users.
func (r *MemoryNotificationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.notifications[id]; !exists {
		return fmt.Errorf("notification %s not found", id)
	}
	delete(r.notifications, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryNotificationRepo) ListByRole(ctx context.Context, role models.Role) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Notification{}
	for i := len(r.order) - 1; i >= 0; i-- {
		if n := r.notifications[r.order[i]]; n.Role == role {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *MemoryNotificationRepo) UnreadCount(ctx context.Context, role models.Role) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, n := range r.notifications {
		if n.Role == role && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *MemoryNotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok {
		return fmt.Errorf("notification %s not found", id)
	}
	n.Read = true
	r.notifications[id] = n
	return nil
}

func (r *MemoryNotificationRepo) MarkAllRead(ctx context.Context, role models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, n := range r.notifications {
		if n.Role == role && !n.Read {
			n.Read = true
			r.notifications[id] = n
		}
	}
	return nil
}

var _ repository.NotificationRepository = (*MemoryNotificationRepo)(nil)
