package models

// Screen is a named UI view the navigation controller tracks as current.
// The set is closed; anything outside it is rejected at the edge.
type Screen string

const (
	ScreenSplash            Screen = "splash"
	ScreenLogin             Screen = "login"
	ScreenProviderLogin     Screen = "providerLogin"
	ScreenExplorer          Screen = "explorer"
	ScreenProviderDetail    Screen = "providerDetail"
	ScreenBookingLocation   Screen = "bookingLocation"
	ScreenBookingDate       Screen = "bookingDate"
	ScreenBookingContact    Screen = "bookingContact"
	ScreenBookingConfirm    Screen = "bookingConfirmation"
	ScreenClientDashboard   Screen = "clientDashboard"
	ScreenProviderDashboard Screen = "providerDashboard"
	ScreenSubscription      Screen = "subscription"
	ScreenNotifications     Screen = "notifications"
	ScreenWallet            Screen = "wallet"
)

// screenOrder is an explicit total order over screens. It exists so callers
// can compare two screens without attaching any presentation meaning here.
var screenOrder = map[Screen]int{
	ScreenSplash:            0,
	ScreenLogin:             1,
	ScreenProviderLogin:     2,
	ScreenExplorer:          3,
	ScreenProviderDetail:    4,
	ScreenBookingLocation:   5,
	ScreenBookingDate:       6,
	ScreenBookingContact:    7,
	ScreenBookingConfirm:    8,
	ScreenClientDashboard:   9,
	ScreenProviderDashboard: 10,
	ScreenSubscription:      11,
	ScreenNotifications:     12,
	ScreenWallet:            13,
}

// Valid reports whether s belongs to the closed screen set.
func (s Screen) Valid() bool {
	_, ok := screenOrder[s]
	return ok
}

// CompareScreens returns -1, 0 or 1 ordering a before, equal to, or after b
// in the total order table. Unknown screens sort last.
func CompareScreens(a, b Screen) int {
	ai, aok := screenOrder[a]
	bi, bok := screenOrder[b]
	if !aok {
		ai = len(screenOrder)
	}
	if !bok {
		bi = len(screenOrder)
	}
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	}
	return 0
}

// DefaultScreen returns the screen a freshly switched role lands on.
func DefaultScreen(r Role) Screen {
	if r == RoleProvider {
		return ScreenProviderDashboard
	}
	return ScreenExplorer
}
