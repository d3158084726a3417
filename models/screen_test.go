package models

import "testing"

func TestCompareScreens(t *testing.T) {
	if got := CompareScreens(ScreenExplorer, ScreenBookingDate); got != -1 {
		t.Fatalf("explorer should order before bookingDate, got %d", got)
	}
	if got := CompareScreens(ScreenBookingDate, ScreenExplorer); got != 1 {
		t.Fatalf("bookingDate should order after explorer, got %d", got)
	}
	if got := CompareScreens(ScreenWallet, ScreenWallet); got != 0 {
		t.Fatalf("a screen should compare equal to itself, got %d", got)
	}
	// Unknown screens sort after every known one.
	if got := CompareScreens(ScreenWallet, Screen("settings")); got != -1 {
		t.Fatalf("unknown screens should sort last, got %d", got)
	}
	if got := CompareScreens(Screen("settings"), Screen("other")); got != 0 {
		t.Fatalf("two unknown screens should compare equal, got %d", got)
	}
}

func TestScreenValid(t *testing.T) {
	if !ScreenSplash.Valid() {
		t.Fatalf("splash must be a known screen")
	}
	if Screen("settings").Valid() {
		t.Fatalf("settings must not be a known screen")
	}
}
