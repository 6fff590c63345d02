package notification

import (
	"trimly/models"
	"trimly/utils"

	"go.uber.org/zap"
)

// NotificationService is the dispatch hook the booking lifecycle calls at
// defined transitions. Every method is best-effort: delivery failures are
// logged and swallowed so a persisted transition always reports success.
type NotificationService interface {
	NotifyBookingRequested(booking *models.Booking, ownerEmail, customerEmail, customerName string, estimatedWaitTime int)
	NotifyBookingApproved(booking *models.Booking, customerEmail string)
	NotifyBookingRejected(booking *models.Booking, customerEmail string)
	NotifyBookingReminder(customerEmail, shopName, serviceName, date, timeOfDay string)
}

// DefaultNotificationService renders the email templates and hands them to
// the mailer, isolating each dispatch's failure.
type DefaultNotificationService struct {
	Mailer Mailer
}

func NewDefaultNotificationService(mailer Mailer) *DefaultNotificationService {
	return &DefaultNotificationService{Mailer: mailer}
}

// dispatch sends one email, recovering from panics and logging failures.
func (s *DefaultNotificationService) dispatch(to, subject, body string) {
	logger := utils.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("notification dispatch panicked",
				zap.Any("panic", r), zap.String("to", to), zap.String("subject", subject))
		}
	}()
	if to == "" {
		logger.Warn("notification skipped: empty recipient", zap.String("subject", subject))
		return
	}
	if err := s.Mailer.Send(to, subject, body); err != nil {
		logger.Warn("notification delivery failed",
			zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return
	}
	logger.Debug("notification sent", zap.String("to", to), zap.String("subject", subject))
}

func (s *DefaultNotificationService) NotifyBookingRequested(
	booking *models.Booking,
	ownerEmail, customerEmail, customerName string,
	estimatedWaitTime int,
) {
	s.dispatch(ownerEmail, subjectNewBookingOwner, newBookingOwnerBody(booking, customerName))
	s.dispatch(customerEmail, subjectNewBookingCustomer, newBookingCustomerBody(booking, estimatedWaitTime))
}

func (s *DefaultNotificationService) NotifyBookingApproved(booking *models.Booking, customerEmail string) {
	s.dispatch(customerEmail, subjectBookingApproved, bookingApprovedBody(booking))
}

func (s *DefaultNotificationService) NotifyBookingRejected(booking *models.Booking, customerEmail string) {
	s.dispatch(customerEmail, subjectBookingRejected, bookingRejectedBody(booking))
}

func (s *DefaultNotificationService) NotifyBookingReminder(customerEmail, shopName, serviceName, date, timeOfDay string) {
	s.dispatch(customerEmail, subjectBookingReminder, bookingReminderBody(shopName, serviceName, date, timeOfDay))
}
