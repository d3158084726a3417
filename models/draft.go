package models

import "time"

// DraftStep identifies a position in the booking wizard. Steps are strictly
// ordered; a field at position N can only be set once every field before it
// is set.
type DraftStep int

const (
	StepSelectProvider DraftStep = iota
	StepSelectService
	StepSelectLocation
	StepSelectDateTime
	StepEnterContact
	StepComplete
)

func (s DraftStep) String() string {
	switch s {
	case StepSelectProvider:
		return "selectProvider"
	case StepSelectService:
		return "selectService"
	case StepSelectLocation:
		return "selectLocation"
	case StepSelectDateTime:
		return "selectDateTime"
	case StepEnterContact:
		return "enterContact"
	case StepComplete:
		return "complete"
	}
	return "unknown"
}

// Contact holds the client-entered contact fields of a draft. Address is
// required only for at-home bookings.
type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// Draft is the in-progress booking selection. Fields accumulate strictly in
// declaration order; unset fields are nil (Mode uses the empty string).
type Draft struct {
	Provider *Provider  `json:"provider,omitempty"`
	Service  *Service   `json:"service,omitempty"`
	Mode     Mode       `json:"mode,omitempty"`
	Start    *time.Time `json:"start,omitempty"`
	Contact  *Contact   `json:"contact,omitempty"`
}

// Step returns the first unset position, i.e. the step the wizard is
// currently on. A fully populated draft reports StepComplete.
func (d Draft) Step() DraftStep {
	switch {
	case d.Provider == nil:
		return StepSelectProvider
	case d.Service == nil:
		return StepSelectService
	case d.Mode == "":
		return StepSelectLocation
	case d.Start == nil:
		return StepSelectDateTime
	case d.Contact == nil:
		return StepEnterContact
	}
	return StepComplete
}
