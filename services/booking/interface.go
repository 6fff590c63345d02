package booking

import (
	bookingRepo "trimly/database/repository/booking"
	shopRepo "trimly/database/repository/shop"
	userRepo "trimly/database/repository/user"
	"trimly/models"
	"trimly/services/notification"
	"trimly/services/tasks"
)

// CreateBookingRequest carries the inputs for placing a booking.
type CreateBookingRequest struct {
	CustomerID  string
	ShopID      string
	ServiceName string
	BookingDate string // "2006-01-02"
	BookingTime string // "15:04"
	Price       float64
}

// CreateBookingResult is the booking plus the wait estimate computed at
// creation time (the estimate lives on the shop, not the booking).
type CreateBookingResult struct {
	Booking           *models.Booking
	EstimatedWaitTime int
}

// RescheduleRequest carries the optional fields of a reschedule. Supplying
// Status="pending" explicitly re-queues the booking.
type RescheduleRequest struct {
	BookingDate string
	BookingTime string
	Status      string
}

// BookingService is the booking lifecycle: creation, authorization-gated
// status transitions, rescheduling, and the listings built on top of them.
type BookingService interface {
	Create(req CreateBookingRequest) (*CreateBookingResult, error)
	TransitionStatus(bookingID, requesterID string, newStatus models.BookingStatus, cancellationReason string) (*models.Booking, error)
	Reschedule(bookingID, requesterID string, req RescheduleRequest) (*models.Booking, error)
	ListForCustomer(customerID, requesterID string) ([]models.Booking, error)
	ListForShop(shopID, requesterID string, status models.BookingStatus) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	ShopRepo  shopRepo.ShopRepository
	UserRepo  userRepo.UserRepository
	Notifier  notification.NotificationService
	Reminders tasks.ReminderScheduler // nil disables appointment reminders
}
