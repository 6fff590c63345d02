package models

import "time"

// PaymentMethod enumerates the supported out-of-band payment channels.
type PaymentMethod string

const (
	PaymentMethodEVC   PaymentMethod = "evc"
	PaymentMethodZaad  PaymentMethod = "zaad"
	PaymentMethodSahal PaymentMethod = "sahal"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodCash  PaymentMethod = "cash"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodEVC, PaymentMethodZaad, PaymentMethodSahal,
		PaymentMethodCard, PaymentMethodCash:
		return true
	}
	return false
}

// PaymentStatus enumerates payment record states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is the proof-of-payment record a customer submits for a booking.
// A booking holds at most one active payment; re-submission overwrites the link.
type Payment struct {
	ID            string        `bson:"id" json:"id"`
	BookingID     string        `bson:"bookingId" json:"bookingId"`
	CustomerID    string        `bson:"customerId" json:"customerId"`
	Amount        float64       `bson:"amount" json:"amount"`
	Method        PaymentMethod `bson:"method" json:"method"`
	Status        PaymentStatus `bson:"status" json:"status"`
	TransactionID string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	ProofURL      string        `bson:"proofUrl,omitempty" json:"proofUrl,omitempty"`
	FailureReason string        `bson:"failureReason,omitempty" json:"failureReason,omitempty"`
	CompletedAt   *time.Time    `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
