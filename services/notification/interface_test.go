package notification

import (
	"context"
	"testing"

	notifRepo "nexus/database/repository/notification"
	"nexus/models"
)

func newTestNotifier(t *testing.T) *DefaultNotificationService {
	t.Helper()
	return &DefaultNotificationService{Repo: notifRepo.NewMemoryNotificationRepo()}
}

func notify(t *testing.T, svc *DefaultNotificationService, role models.Role, title string) *models.Notification {
	t.Helper()
	n, err := svc.Notify(context.Background(), role, models.NotificationNewRequest, "b1", title, "body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return n
}

func TestListByRole_NewestFirstAndScoped(t *testing.T) {
	svc := newTestNotifier(t)
	notify(t, svc, models.RoleClient, "first")
	notify(t, svc, models.RoleProvider, "for the other side")
	notify(t, svc, models.RoleClient, "second")

	clientNotifs, err := svc.ListByRole(context.Background(), models.RoleClient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clientNotifs) != 2 {
		t.Fatalf("expected 2 client notifications, got %d", len(clientNotifs))
	}
	if clientNotifs[0].Title != "second" || clientNotifs[1].Title != "first" {
		t.Fatalf("expected newest first, got %q then %q", clientNotifs[0].Title, clientNotifs[1].Title)
	}
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	svc := newTestNotifier(t)
	first := notify(t, svc, models.RoleClient, "first")
	notify(t, svc, models.RoleClient, "second")
	notify(t, svc, models.RoleProvider, "provider side")

	count, err := svc.UnreadCount(context.Background(), models.RoleClient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread for the client, got %d", count)
	}

	if err := svc.MarkRead(context.Background(), first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count, _ = svc.UnreadCount(context.Background(), models.RoleClient)
	if count != 1 {
		t.Fatalf("expected 1 unread after marking one read, got %d", count)
	}

	if err := svc.MarkRead(context.Background(), "missing"); err == nil {
		t.Fatalf("marking an unknown notification must fail")
	}
}

func TestMarkAllRead_ScopedToRole(t *testing.T) {
	svc := newTestNotifier(t)
	notify(t, svc, models.RoleClient, "first")
	notify(t, svc, models.RoleClient, "second")
	notify(t, svc, models.RoleProvider, "provider side")

	if err := svc.MarkAllRead(context.Background(), models.RoleClient); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, _ := svc.UnreadCount(context.Background(), models.RoleClient)
	if count != 0 {
		t.Fatalf("expected 0 unread for the client, got %d", count)
	}
	// The other role's notifications stay untouched.
	count, _ = svc.UnreadCount(context.Background(), models.RoleProvider)
	if count != 1 {
		t.Fatalf("expected the provider's notification to stay unread, got %d", count)
	}
}
