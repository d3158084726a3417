package provider

import (
	"context"
	"testing"
	"time"

	notifRepo "nexus/database/repository/notification"
	providerRepo "nexus/database/repository/provider"
	"nexus/database/repository/records"
	"nexus/models"
	"nexus/services/notification"
)

func price(v float64) *float64 { return &v }

func newTestService(t *testing.T) (*DefaultProviderService, *records.MemoryBookingRepo, *notifRepo.MemoryNotificationRepo) {
	t.Helper()
	bookings := records.NewMemoryBookingRepo()
	notifications := notifRepo.NewMemoryNotificationRepo()
	svc := &DefaultProviderService{
		Providers: providerRepo.NewMemoryProviderRepo(nil, nil),
		Bookings:  bookings,
		Notifier:  &notification.DefaultNotificationService{Repo: notifications},
	}
	return svc, bookings, notifications
}

func insertPending(t *testing.T, bookings *records.MemoryBookingRepo, id string) {
	t.Helper()
	b := models.Booking{
		ID:           id,
		ProviderID:   "p1",
		ProviderName: "Marco Barber Shop",
		ServiceName:  "Coupe homme",
		ClientName:   "Jean Dupont",
		Price:        40,
		Start:        time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
		DurationMin:  30,
		Status:       models.BookingPending,
		CreatedAt:    time.Now(),
	}
	if err := bookings.Insert(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccept_ConfirmsAndNotifiesClient(t *testing.T) {
	svc, bookings, notifications := newTestService(t)
	insertPending(t, bookings, "b1")

	b, err := svc.Accept(context.Background(), "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.BookingConfirmed {
		t.Fatalf("expected confirmed, got %s", b.Status)
	}
	clientNotifs, _ := notifications.ListByRole(context.Background(), models.RoleClient)
	if len(clientNotifs) != 1 || clientNotifs[0].Type != models.NotificationPaymentConfirmed {
		t.Fatalf("expected one payment-confirmed client notification, got %+v", clientNotifs)
	}
}

func TestRefuse_CancelsWithRefusedType(t *testing.T) {
	svc, bookings, notifications := newTestService(t)
	insertPending(t, bookings, "b1")

	b, err := svc.Refuse(context.Background(), "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.BookingCancelled {
		t.Fatalf("expected cancelled, got %s", b.Status)
	}
	clientNotifs, _ := notifications.ListByRole(context.Background(), models.RoleClient)
	if len(clientNotifs) != 1 {
		t.Fatalf("expected one client notification, got %+v", clientNotifs)
	}
	// A refusal must not masquerade as a confirmation.
	if clientNotifs[0].Type != models.NotificationRequestRefused {
		t.Fatalf("expected request-refused type, got %s", clientNotifs[0].Type)
	}
}

func TestCancelByClient_CancelsWithCancelledType(t *testing.T) {
	svc, bookings, notifications := newTestService(t)
	insertPending(t, bookings, "b1")

	b, err := svc.CancelByClient(context.Background(), "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.BookingCancelled {
		t.Fatalf("expected cancelled, got %s", b.Status)
	}
	providerNotifs, _ := notifications.ListByRole(context.Background(), models.RoleProvider)
	if len(providerNotifs) != 1 || providerNotifs[0].Type != models.NotificationRequestCancelled {
		t.Fatalf("expected one request-cancelled provider notification, got %+v", providerNotifs)
	}
}

func TestAccept_RefusedBookingRejected(t *testing.T) {
	svc, bookings, _ := newTestService(t)
	insertPending(t, bookings, "b1")

	if _, err := svc.Refuse(context.Background(), "b1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Accept(context.Background(), "b1"); err == nil {
		t.Fatalf("accepting a cancelled booking must fail")
	}
}

func TestPublishStudio_EnforcesStudioInvariant(t *testing.T) {
	svc, _, _ := newTestService(t)

	bad := models.Provider{
		ID:       "p9",
		Name:     "Sans Adresse",
		Category: models.CategoryBarber,
		City:     "Lausanne",
		Modes:    []models.Mode{models.ModeInStudio},
		Services: []models.Service{{ID: "s1", ProviderID: "p9", Name: "Coupe", PriceInStudio: price(40)}},
	}
	if err := svc.PublishStudio(context.Background(), bad); err == nil {
		t.Fatalf("in-studio provider without address must be rejected")
	}

	bad.StudioAddress = "Rue de Bourg 12"
	bad.LocationGeo = &models.GeoPoint{Lat: 46.5197, Lng: 6.6323}
	if err := svc.PublishStudio(context.Background(), bad); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := svc.Providers.GetByID(context.Background(), "p9")
	if err != nil {
		t.Fatalf("published provider not stored: %v", err)
	}
	if !p.Published {
		t.Fatalf("publish did not set the published flag")
	}
}
