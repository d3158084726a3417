package session

import "sync"

// OperationInFlightError reports that a simulated-async operation is already
// running for this session. The triggering control stays disabled until the
// first one settles.
type OperationInFlightError struct {
	Name string
}

func (e *OperationInFlightError) Error() string {
	return "operation already in flight: " + e.Name
}

// PendingOpGuard allows at most one in-flight simulated-async operation per
// session. Begin returns a release func the caller must defer.
type PendingOpGuard struct {
	mu     sync.Mutex
	active string
}

func (g *PendingOpGuard) Begin(name string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active != "" {
		return nil, &OperationInFlightError{Name: g.active}
	}
	g.active = name
	return func() {
		g.mu.Lock()
		g.active = ""
		g.mu.Unlock()
	}, nil
}

// Active returns the name of the running operation, or "".
func (g *PendingOpGuard) Active() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}
