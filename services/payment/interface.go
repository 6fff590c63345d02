package payment

import (
	"context"

	bookingRepo "trimly/database/repository/booking"
	paymentRepo "trimly/database/repository/payment"
	shopRepo "trimly/database/repository/shop"
	"trimly/models"
	"trimly/services/booking"
	"trimly/services/storage"
)

// ManualPaymentRequest carries a customer's proof-of-payment submission.
type ManualPaymentRequest struct {
	BookingID     string
	CustomerID    string
	Method        models.PaymentMethod
	TransactionID string
	Amount        float64
	ProofFilePath string // local path of the uploaded proof, empty if none
}

// ConfirmResult bundles the advanced booking with its completed payment.
type ConfirmResult struct {
	Booking *models.Booking
	Payment *models.Payment
}

// PaymentService attaches manual payment records to bookings and advances
// the booking on confirmation.
type PaymentService interface {
	SubmitManual(ctx context.Context, req ManualPaymentRequest) (*models.Payment, error)
	Confirm(bookingID, requesterID string) (*ConfirmResult, error)
	ListForCustomer(customerID, requesterID string) ([]models.Payment, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Repo        paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
	ShopRepo    shopRepo.ShopRepository
	Bookings    booking.BookingService
	Storage     storage.StorageService // nil disables proof uploads
}
