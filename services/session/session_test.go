package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"nexus/models"
	"nexus/services/booking"
)

func newTestSession(t *testing.T) (*DefaultSessionService, *booking.DraftFlow, *Navigator) {
	t.Helper()
	flow := booking.NewDraftFlow()
	nav := NewNavigator(models.ScreenSplash)
	svc := NewDefaultSessionService(nav, flow, nil)
	svc.Delay = func() time.Duration { return time.Millisecond }
	return svc, flow, nav
}

func TestSwitchRole_ClearsRoleScopedState(t *testing.T) {
	svc, flow, nav := newTestSession(t)

	if err := flow.SetProvider(models.Provider{ID: "p1", Name: "Marco"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := nav.NavigateTo(models.ScreenExplorer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := nav.NavigateTo(models.ScreenProviderDetail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	screen, token, err := svc.SwitchRole(context.Background(), models.RoleProvider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if screen != models.ScreenProviderDashboard {
		t.Fatalf("expected provider dashboard, got %s", screen)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if svc.Role(context.Background()) != models.RoleProvider {
		t.Fatalf("role not switched")
	}
	// All-or-nothing: draft gone, history gone, new default screen.
	if flow.Step() != models.StepSelectProvider {
		t.Fatalf("draft survived the role switch")
	}
	if nav.Current() != models.ScreenProviderDashboard || nav.Depth() != 0 {
		t.Fatalf("navigation state survived the role switch")
	}
}

func TestSwitchRole_TokenFailureLeavesStateUntouched(t *testing.T) {
	svc, flow, nav := newTestSession(t)
	svc.issueToken = func(subject, role string, d time.Duration) (string, error) {
		return "", errors.New("signer unavailable")
	}

	if err := flow.SetProvider(models.Provider{ID: "p1", Name: "Marco"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := nav.NavigateTo(models.ScreenExplorer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := svc.SwitchRole(context.Background(), models.RoleProvider); err == nil {
		t.Fatalf("expected the token failure to surface")
	}
	// All-or-nothing: the failed switch applied nothing.
	if svc.Role(context.Background()) != models.RoleClient {
		t.Fatalf("role changed despite the token failure")
	}
	if flow.Step() != models.StepSelectService {
		t.Fatalf("draft cleared despite the token failure")
	}
	if nav.Current() != models.ScreenExplorer {
		t.Fatalf("navigation reset despite the token failure")
	}
}

func TestSwitchRole_UnknownRoleRejected(t *testing.T) {
	svc, _, nav := newTestSession(t)
	if _, _, err := svc.SwitchRole(context.Background(), models.Role("admin")); err == nil {
		t.Fatalf("expected unknown role to be rejected")
	}
	if nav.Current() != models.ScreenSplash {
		t.Fatalf("failed switch mutated navigation state")
	}
}

func TestPendingOpGuard_SingleFlight(t *testing.T) {
	svc, _, _ := newTestSession(t)

	release, err := svc.Guard().Begin("submit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Guard().Begin("verifyOtp"); err == nil {
		t.Fatalf("expected second operation to be rejected while the first is pending")
	}
	var inflight *OperationInFlightError
	_, err = svc.Guard().Begin("verifyOtp")
	if !errors.As(err, &inflight) || inflight.Name != "submit" {
		t.Fatalf("expected OperationInFlightError naming submit, got %v", err)
	}

	release()
	release2, err := svc.Guard().Begin("verifyOtp")
	if err != nil {
		t.Fatalf("guard not released: %v", err)
	}
	release2()
}

func TestVerifyOTP_CancelledBeforeDelay(t *testing.T) {
	svc, _, _ := newTestSession(t)
	svc.Delay = func() time.Duration { return 200 * time.Millisecond }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.VerifyOTP(ctx, "+41790000000", "123456", models.RoleClient); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoginWithPassword(t *testing.T) {
	svc, _, _ := newTestSession(t)

	token, err := svc.LoginWithPassword(context.Background(), "client@nexus.ch", "nexus-demo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	if _, err := svc.LoginWithPassword(context.Background(), "client@nexus.ch", "wrong"); err == nil {
		t.Fatalf("expected invalid credentials to be rejected")
	}
	if _, err := svc.LoginWithPassword(context.Background(), "nobody@nexus.ch", "nexus-demo"); err == nil {
		t.Fatalf("expected unknown account to be rejected")
	}
}
