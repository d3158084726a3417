package session

import (
	"testing"

	"nexus/models"
)

func TestNavigator_HistorySymmetry(t *testing.T) {
	n := NewNavigator(models.ScreenSplash)

	visits := []models.Screen{
		models.ScreenExplorer,
		models.ScreenProviderDetail,
		models.ScreenBookingLocation,
		models.ScreenBookingDate,
	}
	for _, s := range visits {
		if err := n.NavigateTo(s); err != nil {
			t.Fatalf("navigate to %s: %v", s, err)
		}
	}
	if got := n.Current(); got != models.ScreenBookingDate {
		t.Fatalf("expected bookingDate, got %s", got)
	}

	// An equal number of backs lands on the screen active before the run.
	for range visits {
		n.GoBack()
	}
	if got := n.Current(); got != models.ScreenSplash {
		t.Fatalf("expected to return to splash, got %s", got)
	}
	if n.Depth() != 0 {
		t.Fatalf("expected empty history, depth %d", n.Depth())
	}
}

func TestNavigator_BackOnEmptyHistoryIsNoop(t *testing.T) {
	n := NewNavigator(models.ScreenSplash)
	if got := n.GoBack(); got != models.ScreenSplash {
		t.Fatalf("back on the start screen moved to %s", got)
	}
}

func TestNavigator_CurrentNeverTopOfStack(t *testing.T) {
	n := NewNavigator(models.ScreenExplorer)

	// Navigating to the current screen must not push it.
	if err := n.NavigateTo(models.ScreenExplorer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Depth() != 0 {
		t.Fatalf("self-navigation grew the history")
	}

	if err := n.NavigateTo(models.ScreenProviderDetail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", n.Depth())
	}
	if got := n.GoBack(); got != models.ScreenExplorer {
		t.Fatalf("expected explorer under providerDetail, got %s", got)
	}
}

func TestNavigator_RejectsUnknownScreen(t *testing.T) {
	n := NewNavigator(models.ScreenSplash)
	if err := n.NavigateTo(models.Screen("settings")); err == nil {
		t.Fatalf("expected unknown screen to be rejected")
	}
	if got := n.Current(); got != models.ScreenSplash {
		t.Fatalf("rejected navigation changed the current screen to %s", got)
	}
}
