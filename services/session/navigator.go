// Package session holds the per-session state that is not booking data:
// the current screen and its history, the active role, and the guard that
// keeps simulated-async operations single-flight.
package session

import (
	"fmt"
	"sync"

	"nexus/models"
)

// Navigator tracks the current screen and a back-stack of previously visited
// screens. It enforces no business rule: callers gate forward navigation on
// draft validity themselves, keeping validation and navigation as two
// distinct collaborators.
//
// Invariant: the history stack never carries the current screen as its top
// entry; the current screen is tracked separately.
type Navigator struct {
	mu      sync.Mutex
	current models.Screen
	history []models.Screen
}

func NewNavigator(start models.Screen) *Navigator {
	return &Navigator{current: start}
}

// NavigateTo pushes the current screen onto the history and makes the target
// current. Navigating to the screen already current is a no-op, which is
// what keeps the top-of-stack invariant.
func (n *Navigator) NavigateTo(screen models.Screen) error {
	if !screen.Valid() {
		return fmt.Errorf("unknown screen %q", screen)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if screen == n.current {
		return nil
	}
	n.history = append(n.history, n.current)
	n.current = screen
	return nil
}

// GoBack pops the most recent screen and makes it current. On an empty
// history it is a no-op: the start screen has no back target.
func (n *Navigator) GoBack() models.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) == 0 {
		return n.current
	}
	n.current = n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	return n.current
}

// Current returns the screen currently shown.
func (n *Navigator) Current() models.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Depth returns the number of screens on the back-stack.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.history)
}

// Reset clears the history and jumps to the given screen. Used when the
// session switches roles.
func (n *Navigator) Reset(start models.Screen) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = start
	n.history = nil
}
