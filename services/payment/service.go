package payment

import (
	"context"
	"fmt"
	"time"

	"trimly/models"
	"trimly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const proofUploadFolder = "payments/proofs"

// SubmitManual records a customer's out-of-band payment against a booking and
// links it through booking.paymentId. The booking's status is left untouched:
// resetting an already-approved booking back to pending on payment submission
// would regress it.
func (svc *DefaultPaymentService) SubmitManual(ctx context.Context, req ManualPaymentRequest) (*models.Payment, error) {
	logger := utils.GetLogger()

	if req.BookingID == "" {
		return nil, utils.NewValidation("Booking ID is required")
	}
	if !req.Method.IsValid() {
		return nil, utils.NewValidation(fmt.Sprintf("Invalid payment method %q", req.Method))
	}
	if req.Amount < 0 {
		return nil, utils.NewValidation("Amount cannot be negative")
	}

	booking, err := svc.BookingRepo.GetByID(req.BookingID)
	if err != nil {
		return nil, utils.NewInternal("failed to load booking", err)
	}
	if booking == nil {
		return nil, utils.NewNotFound("Booking not found")
	}
	if booking.CustomerID != req.CustomerID {
		return nil, utils.NewForbidden("Only the booking customer can submit a payment")
	}

	amount := req.Amount
	if amount == 0 {
		amount = booking.Price
	}

	var proofURL string
	if req.ProofFilePath != "" {
		if svc.Storage == nil {
			return nil, utils.NewInternal("proof upload requested but no storage configured", nil)
		}
		proofURL, err = svc.Storage.UploadFile(ctx, req.ProofFilePath, proofUploadFolder)
		if err != nil {
			return nil, utils.NewInternal("failed to upload payment proof", err)
		}
	}

	now := time.Now().UTC()
	payment := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		CustomerID:    req.CustomerID,
		Amount:        amount,
		Method:        req.Method,
		Status:        models.PaymentPending,
		TransactionID: req.TransactionID,
		ProofURL:      proofURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := svc.Repo.Create(payment); err != nil {
		return nil, utils.NewInternal("failed to save payment", err)
	}
	if err := svc.BookingRepo.SetPaymentID(booking.ID, payment.ID); err != nil {
		return nil, utils.NewInternal("failed to link payment to booking", err)
	}

	logger.Info("manual payment submitted",
		zap.String("paymentId", payment.ID),
		zap.String("bookingId", booking.ID),
		zap.String("method", string(payment.Method)),
	)
	return payment, nil
}

// Confirm marks a booking's payment as completed and advances the booking to
// confirmed. Restricted to the shop owner; the status change goes through the
// booking state machine, so confirming a booking that was never approved is
// rejected as an invalid transition.
func (svc *DefaultPaymentService) Confirm(bookingID, requesterID string) (*ConfirmResult, error) {
	booking, err := svc.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, utils.NewInternal("failed to load booking", err)
	}
	if booking == nil {
		return nil, utils.NewNotFound("Booking not found")
	}
	if booking.PaymentID == "" {
		return nil, utils.NewNotFound("No payment submitted for this booking")
	}

	shop, err := svc.ShopRepo.GetByID(booking.ShopID)
	if err != nil {
		return nil, utils.NewInternal("failed to load shop", err)
	}
	if shop == nil {
		return nil, utils.NewNotFound("Shop not found")
	}
	if shop.OwnerID != requesterID {
		return nil, utils.NewForbidden("Only the shop owner can confirm payments")
	}

	payment, err := svc.Repo.GetByID(booking.PaymentID)
	if err != nil {
		return nil, utils.NewInternal("failed to load payment", err)
	}
	if payment == nil {
		return nil, utils.NewNotFound("Payment not found")
	}

	updated, err := svc.Bookings.TransitionStatus(bookingID, requesterID, models.BookingConfirmed, "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := svc.Repo.Complete(payment.ID, now); err != nil {
		return nil, utils.NewInternal("failed to complete payment", err)
	}
	payment.Status = models.PaymentCompleted
	payment.CompletedAt = &now

	utils.GetLogger().Info("payment confirmed",
		zap.String("paymentId", payment.ID),
		zap.String("bookingId", bookingID),
	)
	return &ConfirmResult{Booking: updated, Payment: payment}, nil
}

// ListForCustomer returns a customer's payment history, newest first.
func (svc *DefaultPaymentService) ListForCustomer(customerID, requesterID string) ([]models.Payment, error) {
	if customerID != requesterID {
		return nil, utils.NewForbidden("You can only view your own payments")
	}
	payments, err := svc.Repo.ListByCustomer(customerID)
	if err != nil {
		return nil, utils.NewInternal("failed to list payments", err)
	}
	return payments, nil
}
