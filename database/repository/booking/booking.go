package bookingRepo

import (
	"trimly/models"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(bookingID string) (*models.Booking, error)
	Update(booking *models.Booking) error
	SetPaymentID(bookingID, paymentID string) error
	CountActive(shopID, date string) (int, error)
	ListByCustomer(customerID string) ([]models.Booking, error)
	ListByShop(shopID string, status models.BookingStatus) ([]models.Booking, error)
}
