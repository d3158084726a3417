package booking

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nexus/models"
)

// phonePattern accepts international numbers (+ followed by 7-15 digits) and
// local ones (0 followed by 8-9 digits), ignoring spaces.
var phonePattern = regexp.MustCompile(`^(\+[0-9]{7,15}|0[0-9]{8,9})$`)

// DraftFlow is the booking wizard state machine. Fields accumulate strictly
// in step order; setting a field clears every field after it, so going back
// and changing an answer always invalidates downstream answers.
//
// DraftFlow enforces ordering and per-step validity itself; navigation is a
// separate concern and carries no business rules.
type DraftFlow struct {
	mu    sync.Mutex
	draft models.Draft

	// Now is the clock used for the past-slot check. Overridable in tests.
	Now func() time.Time
}

func NewDraftFlow() *DraftFlow {
	return &DraftFlow{Now: time.Now}
}

// SetProvider starts (or restarts) the wizard with the given provider and
// clears everything after it.
func (f *DraftFlow) SetProvider(p models.Provider) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = models.Draft{Provider: &p}
	return nil
}

// SetService records the chosen service. The service must belong to the
// selected provider.
func (f *DraftFlow) SetService(s models.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft.Provider == nil {
		return ErrStepNotReached
	}
	if s.ProviderID != f.draft.Provider.ID {
		return ErrInvalidSelection
	}
	f.draft.Service = &s
	f.draft.Mode = ""
	f.draft.Start = nil
	f.draft.Contact = nil
	return nil
}

// SetLocation records the delivery mode. The chosen mode must be priced by
// the selected service.
func (f *DraftFlow) SetLocation(mode models.Mode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft.Service == nil {
		return ErrStepNotReached
	}
	if !f.draft.Service.SupportsMode(mode) {
		return ErrUnsupportedMode
	}
	f.draft.Mode = mode
	f.draft.Start = nil
	f.draft.Contact = nil
	return nil
}

// SetDateTime records the appointment start. The slot must be in the future
// and not blocked by the provider.
func (f *DraftFlow) SetDateTime(at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft.Mode == "" {
		return ErrStepNotReached
	}
	at = at.Truncate(time.Minute)
	if at.Before(f.Now()) {
		return ErrPastDateTime
	}
	if f.draft.Provider.IsBlocked(at) {
		return ErrSlotUnavailable
	}
	f.draft.Start = &at
	f.draft.Contact = nil
	return nil
}

// SetContact records the contact fields, validating them as a group and
// reporting every failing field at once.
func (f *DraftFlow) SetContact(c models.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft.Start == nil {
		return ErrStepNotReached
	}

	fields := map[string]string{}
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	phone := strings.ReplaceAll(c.Phone, " ", "")
	if c.Name == "" {
		fields["name"] = "name is required"
	}
	if phone == "" {
		fields["phone"] = "phone is required"
	} else if !phonePattern.MatchString(phone) {
		fields["phone"] = "phone number is not valid"
	}
	if f.draft.Mode == models.ModeAtHome && c.Address == "" {
		fields["address"] = "address is required for at-home bookings"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	c.Phone = phone
	f.draft.Contact = &c
	return nil
}

// Step returns the wizard's current step.
func (f *DraftFlow) Step() models.DraftStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Step()
}

// IsStepValid reports whether the given step and every step before it hold
// valid values. Callers use it to gate forward navigation.
func (f *DraftFlow) IsStepValid(step models.DraftStep) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Fields are only ever stored after validating, so a step is valid
	// exactly when the draft has advanced past it.
	return f.draft.Step() > step
}

// Snapshot returns a copy of the current draft.
func (f *DraftFlow) Snapshot() models.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Reset clears the draft back to its initial state.
func (f *DraftFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = models.Draft{}
}

// ToBookingRecord transforms a complete draft into a pending booking record.
// It is pure: no side effects, the draft is left untouched.
func (f *DraftFlow) ToBookingRecord() (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.draft
	if d.Step() != models.StepComplete {
		return nil, ErrIncompleteDraft
	}

	address := d.Provider.StudioAddress
	if d.Mode == models.ModeAtHome {
		address = d.Contact.Address
	}
	return &models.Booking{
		ID:           uuid.New().String(),
		ProviderID:   d.Provider.ID,
		ProviderName: d.Provider.Name,
		ServiceName:  d.Service.Name,
		Price:        *d.Service.PriceFor(d.Mode),
		Start:        *d.Start,
		DurationMin:  d.Service.DurationMin,
		Mode:         d.Mode,
		Address:      address,
		ClientName:   d.Contact.Name,
		ClientPhone:  d.Contact.Phone,
		Status:       models.BookingPending,
		CreatedAt:    f.Now(),
	}, nil
}
