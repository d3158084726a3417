package booking

import (
	"fmt"
	"sort"
	"strings"
)

// FlowError is a local validation failure raised by the booking flow. These
// are recovered at the step that raised them and rendered inline; nothing
// here is fatal.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches flow errors by code so wrapped errors still compare against the
// sentinels below.
func (e *FlowError) Is(target error) bool {
	t, ok := target.(*FlowError)
	return ok && t.Code == e.Code
}

var (
	// ErrInvalidSelection: the service does not belong to the selected provider.
	ErrInvalidSelection = &FlowError{Code: "invalidSelection", Message: "service does not belong to the selected provider"}
	// ErrUnsupportedMode: the service carries no price for the chosen mode.
	ErrUnsupportedMode = &FlowError{Code: "unsupportedMode", Message: "service is not offered in the chosen mode"}
	// ErrSlotUnavailable: the provider blocked the requested slot.
	ErrSlotUnavailable = &FlowError{Code: "slotUnavailable", Message: "provider is unavailable at the requested time"}
	// ErrPastDateTime: the requested slot is in the past.
	ErrPastDateTime = &FlowError{Code: "pastDateTime", Message: "requested time is in the past"}
	// ErrIncompleteDraft: submission attempted before every step was set.
	ErrIncompleteDraft = &FlowError{Code: "incompleteDraft", Message: "booking draft is not complete"}
	// ErrStepNotReached: a field was set before its predecessors.
	ErrStepNotReached = &FlowError{Code: "stepNotReached", Message: "earlier wizard steps are not set"}
)

// ValidationError carries per-field messages for the contact form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
