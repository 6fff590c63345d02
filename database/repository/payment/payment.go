package paymentRepo

import (
	"time"

	"trimly/models"
)

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(paymentID string) (*models.Payment, error)
	Complete(paymentID string, completedAt time.Time) error
	ListByCustomer(customerID string) ([]models.Payment, error)
}
