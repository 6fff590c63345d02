package models

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingApproved   BookingStatus = "approved"
	BookingRejected   BookingStatus = "rejected"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "inProgress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// ActiveBookingStatuses are the states counted against a shop's queue length.
var ActiveBookingStatuses = []BookingStatus{
	BookingPending,
	BookingApproved,
	BookingConfirmed,
	BookingInProgress,
}

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingConfirmed,
		BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// IsActive reports whether a booking in state s occupies a queue slot.
func (s BookingStatus) IsActive() bool {
	for _, a := range ActiveBookingStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingRejected || s == BookingCancelled
}

// Booking represents an appointment placed by a customer against a shop.
// ShopName is snapshotted at creation time so the record survives shop renames.
type Booking struct {
	ID                 string        `bson:"id" json:"id"`
	CustomerID         string        `bson:"customerId" json:"customerId"`
	ShopID             string        `bson:"shopId" json:"shopId"`
	ShopName           string        `bson:"shopName" json:"shopName"`
	ServiceName        string        `bson:"serviceName" json:"serviceName"`
	BookingDate        string        `bson:"bookingDate" json:"bookingDate"` // "2006-01-02"
	BookingTime        string        `bson:"bookingTime" json:"bookingTime"` // "15:04"
	Price              float64       `bson:"price" json:"price"`
	Status             BookingStatus `bson:"status" json:"status"`
	QueuePosition      int           `bson:"queuePosition" json:"queuePosition"`
	PaymentID          string        `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	CancellationReason string        `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CompletedAt        *time.Time    `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}

const (
	BookingDateLayout = "2006-01-02"
	BookingTimeLayout = "15:04"
)
