package notification

import (
	"fmt"

	"trimly/models"
)

const (
	subjectNewBookingOwner    = "New Booking Request - Trimly"
	subjectNewBookingCustomer = "Booking Request Submitted - Trimly"
	subjectBookingApproved    = "Booking Approved - Trimly"
	subjectBookingRejected    = "Booking Rejected - Trimly"
	subjectBookingReminder    = "Appointment Reminder - Trimly"
)

func wrapEmail(headerColor, headerTitle, heading, details, footer string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: %s; color: white; padding: 20px; text-align: center;">
    <h1>%s</h1>
  </div>
  <div style="padding: 30px; background-color: #f5f5f5;">
    <h2 style="color: #212121;">%s</h2>
    <div style="background-color: white; padding: 20px; margin: 20px 0; border-radius: 8px;">
%s
    </div>
    <p style="color: #757575; font-size: 14px;">%s</p>
  </div>
</div>`, headerColor, headerTitle, heading, details, footer)
}

func newBookingOwnerBody(b *models.Booking, customerName string) string {
	details := fmt.Sprintf(`      <p><strong>Customer:</strong> %s</p>
      <p><strong>Service:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>
      <p><strong>Price:</strong> $%.2f</p>
      <p><strong>Queue Position:</strong> %d</p>`,
		customerName, b.ServiceName, b.BookingDate, b.BookingTime, b.Price, b.QueuePosition)
	return wrapEmail("#1E88E5", "New Booking Request",
		"You have a new booking request!",
		details,
		"Please log in to your dashboard to approve or reject this booking.")
}

func newBookingCustomerBody(b *models.Booking, estimatedWaitTime int) string {
	details := fmt.Sprintf(`      <p><strong>Shop:</strong> %s</p>
      <p><strong>Service:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>
      <p><strong>Price:</strong> $%.2f</p>
      <p><strong>Your Queue Position:</strong> %d</p>
      <p><strong>Estimated Wait Time:</strong> %d minutes</p>`,
		b.ShopName, b.ServiceName, b.BookingDate, b.BookingTime, b.Price, b.QueuePosition, estimatedWaitTime)
	return wrapEmail("#1E88E5", "Booking Request Submitted",
		"Your booking request has been submitted!",
		details,
		"The shop will review your request and you'll be notified once it's approved.")
}

func bookingApprovedBody(b *models.Booking) string {
	details := fmt.Sprintf(`      <p><strong>Shop:</strong> %s</p>
      <p><strong>Service:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>
      <p><strong>Queue Position:</strong> %d</p>`,
		b.ShopName, b.ServiceName, b.BookingDate, b.BookingTime, b.QueuePosition)
	return wrapEmail("#4CAF50", "Booking Approved!",
		"Your booking has been approved",
		details,
		"Please arrive on time for your appointment.")
}

func bookingRejectedBody(b *models.Booking) string {
	details := fmt.Sprintf(`      <p><strong>Shop:</strong> %s</p>
      <p><strong>Service:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>`,
		b.ShopName, b.ServiceName, b.BookingDate)
	return wrapEmail("#f44336", "Booking Rejected",
		"Your booking request was rejected",
		details,
		"Please try booking with another shop or a different time.")
}

func bookingReminderBody(shopName, serviceName, date, timeOfDay string) string {
	details := fmt.Sprintf(`      <p><strong>Shop:</strong> %s</p>
      <p><strong>Service:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>`,
		shopName, serviceName, date, timeOfDay)
	return wrapEmail("#1E88E5", "Appointment Reminder",
		"Your appointment is coming up",
		details,
		"See you soon! If you can't make it, please cancel or reschedule in the app.")
}
