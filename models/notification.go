package models

import "time"

type NotificationType string

const (
	NotificationNewRequest       NotificationType = "new-request"
	NotificationBookingConfirmed NotificationType = "booking-confirmed"
	NotificationPaymentConfirmed NotificationType = "payment-confirmed"
	NotificationRequestRefused   NotificationType = "request-refused"
	NotificationRequestCancelled NotificationType = "request-cancelled"
	NotificationFundsReleased    NotificationType = "funds-released"
	NotificationReviewReceived   NotificationType = "review-received"
)

// Notification is an in-app message addressed to one side of the session.
type Notification struct {
	ID        string           `json:"id"`
	Role      Role             `json:"role"`
	Type      NotificationType `json:"type"`
	BookingID string           `json:"bookingId,omitempty"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
