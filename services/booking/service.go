package booking

import (
	"fmt"
	"time"

	"trimly/config"
	"trimly/models"
	"trimly/services/tasks"
	"trimly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Minutes of estimated waiting added per customer ahead in the queue.
const waitPerActiveBooking = 15

// Create places a new booking in the pending state, assigns its queue
// position, bumps the shop's queue ledger, and notifies both participants.
// Notification failures never fail the call.
//
// The queue position comes from a count-then-insert; two creates racing on
// the same shop and date can compute the same position. The position is an
// advisory ticket number, so the window is documented rather than closed.
func (svc *DefaultBookingService) Create(req CreateBookingRequest) (*CreateBookingResult, error) {
	logger := utils.GetLogger()

	if err := validateCreate(req); err != nil {
		return nil, err
	}

	shop, err := svc.ShopRepo.GetByID(req.ShopID)
	if err != nil {
		return nil, utils.NewInternal("failed to load shop", err)
	}
	if shop == nil {
		return nil, utils.NewNotFound("Shop not found")
	}

	owner, err := svc.UserRepo.GetByID(shop.OwnerID)
	if err != nil {
		return nil, utils.NewInternal("failed to load shop owner", err)
	}
	if owner == nil || owner.Email == "" {
		return nil, utils.NewValidation("Shop contact email not found. The shop profile is incomplete.")
	}

	customer, err := svc.UserRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, utils.NewInternal("failed to load customer", err)
	}
	if customer == nil {
		return nil, utils.NewNotFound("Customer not found")
	}

	price := req.Price
	if price <= 0 {
		price = catalogPrice(shop, req.ServiceName)
		if price <= 0 {
			return nil, utils.NewValidation("Price is required for this service")
		}
	}

	activeAhead, err := svc.Repo.CountActive(req.ShopID, req.BookingDate)
	if err != nil {
		return nil, utils.NewInternal("failed to count active bookings", err)
	}
	queuePosition := activeAhead + 1
	estimatedWait := activeAhead * waitPerActiveBooking

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		CustomerID:    req.CustomerID,
		ShopID:        req.ShopID,
		ShopName:      shop.ShopName,
		ServiceName:   req.ServiceName,
		BookingDate:   req.BookingDate,
		BookingTime:   req.BookingTime,
		Price:         price,
		Status:        models.BookingPending,
		QueuePosition: queuePosition,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := svc.Repo.Create(booking); err != nil {
		return nil, utils.NewInternal("failed to save booking", err)
	}

	if err := svc.ShopRepo.IncrementQueue(req.ShopID, estimatedWait+waitPerActiveBooking); err != nil {
		// Booking is persisted but the ledger missed its increment. Surface
		// the failure instead of letting the counters drift.
		return nil, utils.NewInternal("failed to update shop queue", err)
	}

	svc.Notifier.NotifyBookingRequested(booking, owner.Email, customer.Email, customer.Name, estimatedWait)

	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("shopId", booking.ShopID),
		zap.Int("queuePosition", queuePosition),
	)

	return &CreateBookingResult{Booking: booking, EstimatedWaitTime: estimatedWait}, nil
}

// TransitionStatus moves a booking through the state machine. Approval and
// rejection are shop-owner only; other transitions are open to either
// participant. Leaving the active set decrements the shop's queue ledger.
func (svc *DefaultBookingService) TransitionStatus(
	bookingID, requesterID string,
	newStatus models.BookingStatus,
	cancellationReason string,
) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !newStatus.IsValid() {
		return nil, utils.NewValidation(fmt.Sprintf("Invalid status %q", newStatus))
	}

	booking, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		return nil, utils.NewInternal("failed to load booking", err)
	}
	if booking == nil {
		return nil, utils.NewNotFound("Booking not found")
	}

	shop, err := svc.ShopRepo.GetByID(booking.ShopID)
	if err != nil {
		return nil, utils.NewInternal("failed to load shop", err)
	}
	if shop == nil {
		return nil, utils.NewNotFound("Shop not found")
	}

	isOwner := shop.OwnerID == requesterID
	isCustomer := booking.CustomerID == requesterID
	if !isOwner && !isCustomer {
		return nil, utils.NewForbidden("You are not a participant of this booking")
	}
	if RequiresShopOwner(newStatus) && !isOwner {
		return nil, utils.NewForbidden("Only the shop owner can approve or reject bookings")
	}

	if !CanTransition(booking.Status, newStatus) {
		return nil, utils.NewInvalidTransition(
			fmt.Sprintf("Cannot transition booking from %q to %q", booking.Status, newStatus))
	}

	wasActive := booking.Status.IsActive()
	booking.Status = newStatus
	if newStatus == models.BookingCompleted {
		now := time.Now().UTC()
		booking.CompletedAt = &now
	}
	if newStatus == models.BookingCancelled && cancellationReason != "" {
		booking.CancellationReason = cancellationReason
	}

	if err := svc.Repo.Update(booking); err != nil {
		return nil, utils.NewInternal("failed to update booking", err)
	}

	if wasActive && !newStatus.IsActive() {
		if err := svc.ShopRepo.DecrementQueue(booking.ShopID); err != nil {
			return nil, utils.NewInternal("failed to update shop queue", err)
		}
	}

	svc.notifyTransition(booking, newStatus)

	logger.Info("booking status changed",
		zap.String("bookingId", booking.ID),
		zap.String("status", string(newStatus)),
	)

	return booking, nil
}

// notifyTransition fires the per-transition notification hooks. Everything in
// here is best-effort.
func (svc *DefaultBookingService) notifyTransition(booking *models.Booking, newStatus models.BookingStatus) {
	logger := utils.GetLogger()

	switch newStatus {
	case models.BookingApproved, models.BookingRejected:
		customer, err := svc.UserRepo.GetByID(booking.CustomerID)
		if err != nil || customer == nil {
			logger.Warn("skipping notification: customer lookup failed",
				zap.String("bookingId", booking.ID), zap.Error(err))
			return
		}
		if newStatus == models.BookingApproved {
			svc.Notifier.NotifyBookingApproved(booking, customer.Email)
			svc.scheduleReminder(booking, customer.Email)
		} else {
			svc.Notifier.NotifyBookingRejected(booking, customer.Email)
		}
	}
}

// scheduleReminder enqueues a day-of reminder ahead of the appointment.
// Skipped when no scheduler is wired or the slot is already too close.
func (svc *DefaultBookingService) scheduleReminder(booking *models.Booking, customerEmail string) {
	if svc.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	appointmentAt, err := time.ParseInLocation(
		models.BookingDateLayout+" "+models.BookingTimeLayout,
		booking.BookingDate+" "+booking.BookingTime,
		time.UTC,
	)
	if err != nil {
		logger.Warn("skipping reminder: unparseable appointment time",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return
	}

	fireAt := appointmentAt.Add(-svc.reminderLead())
	if !fireAt.After(time.Now().UTC()) {
		return
	}

	payload := tasks.BookingReminderPayload{
		BookingID:     booking.ID,
		CustomerEmail: customerEmail,
		ShopName:      booking.ShopName,
		ServiceName:   booking.ServiceName,
		BookingDate:   booking.BookingDate,
		BookingTime:   booking.BookingTime,
	}
	if err := svc.Reminders.ScheduleBookingReminder(payload, fireAt); err != nil {
		logger.Warn("failed to enqueue booking reminder",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

// Reschedule updates a booking's date and/or time. An explicit status of
// "pending" forces the booking back into the pending state and resets its
// queue position to zero, signalling that it needs re-queueing; a fresh
// position is not computed here.
func (svc *DefaultBookingService) Reschedule(bookingID, requesterID string, req RescheduleRequest) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		return nil, utils.NewInternal("failed to load booking", err)
	}
	if booking == nil {
		return nil, utils.NewNotFound("Booking not found")
	}

	if booking.CustomerID != requesterID {
		shop, err := svc.ShopRepo.GetByID(booking.ShopID)
		if err != nil {
			return nil, utils.NewInternal("failed to load shop", err)
		}
		if shop == nil || shop.OwnerID != requesterID {
			return nil, utils.NewForbidden("You are not a participant of this booking")
		}
	}

	if req.BookingDate != "" {
		if _, err := time.Parse(models.BookingDateLayout, req.BookingDate); err != nil {
			return nil, utils.NewValidation("Booking date must be in YYYY-MM-DD format")
		}
		booking.BookingDate = req.BookingDate
	}
	if req.BookingTime != "" {
		if _, err := time.Parse(models.BookingTimeLayout, req.BookingTime); err != nil {
			return nil, utils.NewValidation("Booking time must be in HH:MM format")
		}
		booking.BookingTime = req.BookingTime
	}

	if req.Status == string(models.BookingPending) {
		if booking.Status.IsTerminal() {
			return nil, utils.NewInvalidTransition(
				fmt.Sprintf("Cannot re-queue a %q booking", booking.Status))
		}
		booking.Status = models.BookingPending
		booking.QueuePosition = 0
	}

	if err := svc.Repo.Update(booking); err != nil {
		return nil, utils.NewInternal("failed to update booking", err)
	}
	return booking, nil
}

// ListForCustomer returns a customer's bookings, newest first. Customers can
// only read their own history.
func (svc *DefaultBookingService) ListForCustomer(customerID, requesterID string) ([]models.Booking, error) {
	if customerID != requesterID {
		return nil, utils.NewForbidden("You can only view your own bookings")
	}
	bookings, err := svc.Repo.ListByCustomer(customerID)
	if err != nil {
		return nil, utils.NewInternal("failed to list bookings", err)
	}
	return bookings, nil
}

// ListForShop returns a shop's bookings ordered by date and time, optionally
// filtered by status. Restricted to the shop owner.
func (svc *DefaultBookingService) ListForShop(shopID, requesterID string, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !status.IsValid() {
		return nil, utils.NewValidation(fmt.Sprintf("Invalid status %q", status))
	}

	shop, err := svc.ShopRepo.GetByID(shopID)
	if err != nil {
		return nil, utils.NewInternal("failed to load shop", err)
	}
	if shop == nil {
		return nil, utils.NewNotFound("Shop not found")
	}
	if shop.OwnerID != requesterID {
		return nil, utils.NewForbidden("You can only view bookings for your own shop")
	}

	bookings, err := svc.Repo.ListByShop(shopID, status)
	if err != nil {
		return nil, utils.NewInternal("failed to list bookings", err)
	}
	return bookings, nil
}

func validateCreate(req CreateBookingRequest) error {
	if req.ShopID == "" {
		return utils.NewValidation("Shop ID is required")
	}
	if req.ServiceName == "" {
		return utils.NewValidation("Service name is required")
	}
	if req.BookingDate == "" {
		return utils.NewValidation("Booking date is required")
	}
	if _, err := time.Parse(models.BookingDateLayout, req.BookingDate); err != nil {
		return utils.NewValidation("Booking date must be in YYYY-MM-DD format")
	}
	if req.BookingTime == "" {
		return utils.NewValidation("Booking time is required")
	}
	if _, err := time.Parse(models.BookingTimeLayout, req.BookingTime); err != nil {
		return utils.NewValidation("Booking time must be in HH:MM format")
	}
	if req.Price < 0 {
		return utils.NewValidation("Price cannot be negative")
	}
	return nil
}

// catalogPrice resolves the listed price of a shop's service, 0 if absent.
func catalogPrice(shop *models.Shop, serviceName string) float64 {
	for _, s := range shop.Services {
		if s.Name == serviceName {
			return s.Price
		}
	}
	return 0
}

func (svc *DefaultBookingService) reminderLead() time.Duration {
	lead := config.AppConfig.ReminderLeadMinutes
	if lead <= 0 {
		lead = 60
	}
	return time.Duration(lead) * time.Minute
}
